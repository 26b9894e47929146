package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/petrkoval/notes-api/internal/errs"
	"github.com/petrkoval/notes-api/internal/logger"
	"github.com/petrkoval/notes-api/internal/models"
)

// userSortColumns whitelists the fields a page request may sort users by.
var userSortColumns = map[string]string{
	"id":         "id",
	"username":   "username",
	"email":      "email",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

// UserReadRepository handles user read operations.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByID returns the user with the given id, or nil when absent.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	const query = `
		SELECT id, username, email, password_hash, created_at, updated_at, deleted_at
		FROM users
		WHERE id = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, id)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername returns the user with the given username, or nil when absent.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT id, username, email, password_hash, created_at, updated_at, deleted_at
		FROM users
		WHERE username = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ExistsByID reports whether a user row with the given id exists.
func (r *UserReadRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, id)

	logger.Log.Infow("query executed",
		"query", query,
		"args", []any{id},
		"result", exists,
		"error", err,
	)

	return exists, err
}

// GetRoles returns the role names assigned to the user.
func (r *UserReadRepository) GetRoles(ctx context.Context, userID int64) ([]string, error) {
	const query = `
		SELECT r.name
		FROM roles r
		JOIN user_roles ur ON ur.role_id = r.id
		WHERE ur.user_id = $1
		ORDER BY r.name
	`

	var roles []string
	err := r.db.SelectContext(ctx, &roles, query, userID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", roles,
		"error", err,
	)

	return roles, err
}

// GetPage returns one page of users ordered by the requested sort field.
// An unknown sort field fails before any query is issued.
func (r *UserReadRepository) GetPage(ctx context.Context, page *models.PageRequest) ([]models.UserDB, error) {
	column, err := sortColumn(userSortColumns, page.Sort, "User")
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT id, username, email, password_hash, created_at, updated_at, deleted_at
		FROM users
		ORDER BY %s %s
		LIMIT $1 OFFSET $2
	`, column, sortDirection(page))

	var users []models.UserDB
	err = r.db.SelectContext(ctx, &users, query, page.Limit(), page.Offset())

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{page.Limit(), page.Offset()},
		"error", err,
	)

	return users, err
}

// UserWriteRepository handles user write operations.
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

func (r *UserWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new user and returns its generated id. Uniqueness races on
// username/email are decided by the database constraints; the loser gets the
// raw violation back for classification.
func (r *UserWriteRepository) Save(ctx context.Context, username, email, passwordHash string) (int64, error) {
	const query = `
		INSERT INTO users (username, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id
	`
	args := []any{username, email, passwordHash}

	var id int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, email},
		"result", id,
		"error", err,
	)

	return id, err
}

// UpdateUsername replaces the username and refreshes updated_at.
func (r *UserWriteRepository) UpdateUsername(ctx context.Context, id int64, username string) (int64, error) {
	const query = `UPDATE users SET username = $2, updated_at = NOW() WHERE id = $1`
	return r.exec(ctx, query, id, username)
}

// UpdateEmail replaces the email and refreshes updated_at.
func (r *UserWriteRepository) UpdateEmail(ctx context.Context, id int64, email string) (int64, error) {
	const query = `UPDATE users SET email = $2, updated_at = NOW() WHERE id = $1`
	return r.exec(ctx, query, id, email)
}

// UpdatePassword replaces the password hash and refreshes updated_at.
func (r *UserWriteRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) (int64, error) {
	const query = `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`
	return r.exec(ctx, query, id, passwordHash)
}

// Delete removes the user row. The notes FK cascades in the same statement,
// so a user and their notes disappear atomically.
func (r *UserWriteRepository) Delete(ctx context.Context, id int64) (int64, error) {
	const query = `DELETE FROM users WHERE id = $1`
	return r.exec(ctx, query, id)
}

func (r *UserWriteRepository) exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := r.executor(ctx).ExecContext(ctx, query, args...)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args[:1],
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// sortColumn resolves a requested sort field against a whitelist. Empty sort
// defaults to id.
func sortColumn(allowed map[string]string, sort, entity string) (string, error) {
	if sort == "" {
		return "id", nil
	}
	column, ok := allowed[sort]
	if !ok {
		return "", &errs.UnknownSortPropertyError{Property: sort, Entity: entity}
	}
	return column, nil
}

func sortDirection(page *models.PageRequest) string {
	if page.Descending() {
		return "DESC"
	}
	return "ASC"
}
