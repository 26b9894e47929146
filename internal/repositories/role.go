package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/petrkoval/notes-api/internal/logger"
)

// RoleRepository manages role rows. Roles are created lazily on first
// reference and never deleted by user or note operations.
type RoleRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewRoleRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *RoleRepository {
	return &RoleRepository{db: db, txGetter: txGetter}
}

func (r *RoleRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Ensure returns the id of the named role, inserting the row if it does not
// exist yet.
func (r *RoleRepository) Ensure(ctx context.Context, name string) (int64, error) {
	const query = `
		WITH inserted AS (
			INSERT INTO roles (name)
			VALUES ($1)
			ON CONFLICT (name) DO NOTHING
			RETURNING id
		)
		SELECT id FROM inserted
		UNION ALL
		SELECT id FROM roles WHERE name = $1
		LIMIT 1
	`

	var id int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query, name)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{name},
		"result", id,
		"error", err,
	)

	return id, err
}

// Assign links a role to a user. Assigning twice is a no-op.
func (r *RoleRepository) Assign(ctx context.Context, userID, roleID int64) error {
	const query = `
		INSERT INTO user_roles (user_id, role_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, role_id) DO NOTHING
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, userID, roleID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, roleID},
		"error", err,
	)

	return err
}
