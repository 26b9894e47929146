package handlers

import (
	"context"
	"net/http"

	"github.com/petrkoval/notes-api/internal/errs"
	"github.com/petrkoval/notes-api/internal/middlewares"
	"github.com/petrkoval/notes-api/internal/models"
)

// NoteGetter defines the interface that the service must implement.
type NoteGetter interface {
	Get(ctx context.Context, noteID, ownerID int64) (*models.PublicNote, error)
}

// NewGetNoteHandler returns an HTTP handler reading one of the caller's
// notes. Another user's note is indistinguishable from a missing one.
// @Summary Get a note by id
// @Description Returns one of the caller's notes. Notes owned by other users read as not found.
// @Tags notes
// @Produce json
// @Param id path int true "Note id"
// @Success 200 {object} models.PublicNote "Note found"
// @Failure 404 {object} models.ErrorResponse "Note not found"
// @Router /notes/{id} [get]
// @Security BearerAuth
func NewGetNoteHandler(svc NoteGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, errs.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		note, err := svc.Get(r.Context(), pathID(r, "id"), claims.UserID)
		if err != nil {
			writeClassified(w, err, errs.FamilyNote)
			return
		}

		writeJSON(w, http.StatusOK, note)
	}
}
