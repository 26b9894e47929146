package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/petrkoval/notes-api/internal/errs"
	"github.com/petrkoval/notes-api/internal/middlewares"
	"github.com/petrkoval/notes-api/internal/models"
)

// NotePutter defines the interface that the service must implement.
type NotePutter interface {
	Put(ctx context.Context, noteID int64, dto *models.CreateNoteDTO, ownerID int64) error
}

// NewPutNoteHandler returns an HTTP handler for create-or-replace at a
// caller-chosen id. An id already held by another user's note is treated as
// not found, never overwritten.
// @Summary Create or replace a note
// @Description Creates or fully replaces the note at the given id for the authenticated user.
// @Tags notes
// @Accept json
// @Param id path int true "Note id"
// @Param createNoteDTO body models.CreateNoteDTO true "Note content"
// @Success 204 {string} string "Stored"
// @Failure 400 {object} models.ErrorResponse "Title too long"
// @Failure 404 {object} models.ErrorResponse "Note not found"
// @Router /notes/{id} [put]
// @Security BearerAuth
func NewPutNoteHandler(svc NotePutter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, errs.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		var dto models.CreateNoteDTO
		if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
			writeError(w, errs.MsgInvalidBody, http.StatusBadRequest)
			return
		}

		if err := svc.Put(r.Context(), pathID(r, "id"), &dto, claims.UserID); err != nil {
			writeClassified(w, err, errs.FamilyNote)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
