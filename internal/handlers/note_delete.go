package handlers

import (
	"context"
	"net/http"

	"github.com/petrkoval/notes-api/internal/errs"
	"github.com/petrkoval/notes-api/internal/middlewares"
)

// NoteDeleter defines the interface that the service must implement.
type NoteDeleter interface {
	DeleteByID(ctx context.Context, noteID, ownerID int64) error
}

// NewDeleteNoteHandler returns an HTTP handler deleting one of the caller's
// notes.
// @Summary Delete a note
// @Description Deletes one of the caller's notes by id.
// @Tags notes
// @Param id path int true "Note id"
// @Success 204 {string} string "Deleted"
// @Failure 404 {object} models.ErrorResponse "Note not found"
// @Router /notes/{id} [delete]
// @Security BearerAuth
func NewDeleteNoteHandler(svc NoteDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, errs.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		if err := svc.DeleteByID(r.Context(), pathID(r, "id"), claims.UserID); err != nil {
			writeClassified(w, err, errs.FamilyNote)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
