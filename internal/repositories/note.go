package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/petrkoval/notes-api/internal/logger"
	"github.com/petrkoval/notes-api/internal/models"
)

// noteSortColumns whitelists the fields a page request may sort notes by.
var noteSortColumns = map[string]string{
	"id":         "id",
	"title":      "title",
	"updated_at": "updated_at",
}

// NoteReadRepository handles note read operations. Every read is scoped to
// the owning user; a note id belonging to someone else behaves like a
// missing note.
type NoteReadRepository struct {
	db *sqlx.DB
}

func NewNoteReadRepository(db *sqlx.DB) *NoteReadRepository {
	return &NoteReadRepository{db: db}
}

// GetByIDAndUser returns the note with the given id owned by userID, or nil
// when absent.
func (r *NoteReadRepository) GetByIDAndUser(ctx context.Context, id, userID int64) (*models.NoteDB, error) {
	const query = `
		SELECT id, title, content, updated_at, user_id
		FROM notes
		WHERE id = $1 AND user_id = $2
	`

	var note models.NoteDB
	err := r.db.GetContext(ctx, &note, query, id, userID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// GetPageByUser returns one page of the user's notes.
func (r *NoteReadRepository) GetPageByUser(ctx context.Context, page *models.PageRequest, userID int64) ([]models.NoteDB, error) {
	column, err := sortColumn(noteSortColumns, page.Sort, "Note")
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT id, title, content, updated_at, user_id
		FROM notes
		WHERE user_id = $1
		ORDER BY %s %s
		LIMIT $2 OFFSET $3
	`, column, sortDirection(page))

	var notes []models.NoteDB
	err = r.db.SelectContext(ctx, &notes, query, userID, page.Limit(), page.Offset())

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, page.Limit(), page.Offset()},
		"error", err,
	)

	return notes, err
}

// NoteWriteRepository handles note write operations.
type NoteWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewNoteWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *NoteWriteRepository {
	return &NoteWriteRepository{db: db, txGetter: txGetter}
}

func (r *NoteWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new note for the user and returns its generated id.
func (r *NoteWriteRepository) Save(ctx context.Context, userID int64, title, content string) (int64, error) {
	const query = `
		INSERT INTO notes (title, content, updated_at, user_id)
		VALUES ($1, $2, NOW(), $3)
		RETURNING id
	`
	args := []any{title, content, userID}

	var id int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", id,
		"error", err,
	)

	return id, err
}

// Upsert creates the note with the given id if absent, otherwise overwrites
// title, content and updated_at while preserving id and owner. A conflicting
// id owned by a different user updates nothing and reports zero rows.
func (r *NoteWriteRepository) Upsert(ctx context.Context, id, userID int64, title, content string) (int64, error) {
	const query = `
		INSERT INTO notes (id, title, content, updated_at, user_id)
		VALUES ($1, $2, $3, NOW(), $4)
		ON CONFLICT (id) DO UPDATE
		SET title = EXCLUDED.title,
		    content = EXCLUDED.content,
		    updated_at = NOW()
		WHERE notes.user_id = EXCLUDED.user_id
	`
	args := []any{id, title, content, userID}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// Delete removes the note if it belongs to the user.
func (r *NoteWriteRepository) Delete(ctx context.Context, id, userID int64) (int64, error) {
	const query = `DELETE FROM notes WHERE id = $1 AND user_id = $2`

	res, err := r.executor(ctx).ExecContext(ctx, query, id, userID)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", query,
		"args", []any{id, userID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// DeleteAll removes every note. Administrative.
func (r *NoteWriteRepository) DeleteAll(ctx context.Context) (int64, error) {
	const query = `DELETE FROM notes`

	res, err := r.executor(ctx).ExecContext(ctx, query)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", query,
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
