package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/petrkoval/notes-api/internal/errs"
	"github.com/petrkoval/notes-api/internal/middlewares"
	"github.com/petrkoval/notes-api/internal/models"
)

// NoteCreator defines the interface that the service must implement.
type NoteCreator interface {
	Create(ctx context.Context, dto *models.CreateNoteDTO, ownerID int64) (int64, error)
}

// NewCreateNoteHandler returns an HTTP handler creating a note owned by the
// caller.
// @Summary Create a note
// @Description Creates a note owned by the authenticated user. Blank title and content are stored as empty strings.
// @Tags notes
// @Accept json
// @Produce json
// @Param createNoteDTO body models.CreateNoteDTO true "Note to create"
// @Success 201 {string} string "Created; Location header points at the new note"
// @Failure 400 {object} models.ErrorResponse "Title too long"
// @Router /notes [post]
// @Security BearerAuth
func NewCreateNoteHandler(svc NoteCreator) http.HandlerFunc {
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

		id, err := svc.Create(r.Context(), &dto, claims.UserID)
		if err != nil {
			writeClassified(w, err, errs.FamilyNote)
			return
		}

		w.Header().Set("Location", fmt.Sprintf("/api/notes/%d", id))
		w.WriteHeader(http.StatusCreated)
	}
}
