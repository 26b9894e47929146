package handlers

import (
	"context"
	"net/http"

	"github.com/petrkoval/notes-api/internal/errs"
)

// NoteBulkDeleter defines the interface that the service must implement.
type NoteBulkDeleter interface {
	DeleteAll(ctx context.Context) error
}

// NewDeleteAllNotesHandler returns an HTTP handler wiping the notes table.
// Routed behind the admin role gate.
// @Summary Delete all notes
// @Description Deletes every note of every user. Admin only.
// @Tags admin
// @Success 204 {string} string "Deleted"
// @Failure 403 {object} models.ErrorResponse "Admin role required"
// @Router /admin/notes [delete]
// @Security BearerAuth
func NewDeleteAllNotesHandler(svc NoteBulkDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.DeleteAll(r.Context()); err != nil {
			writeClassified(w, err, errs.FamilyNote)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
