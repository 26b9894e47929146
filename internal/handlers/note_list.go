package handlers

import (
	"context"
	"net/http"

	"github.com/petrkoval/notes-api/internal/errs"
	"github.com/petrkoval/notes-api/internal/middlewares"
	"github.com/petrkoval/notes-api/internal/models"
)

// NoteLister defines the interface that the service must implement.
type NoteLister interface {
	GetPage(ctx context.Context, page *models.PageRequest, ownerID int64) ([]models.PublicNote, error)
}

// NewListNotesHandler returns an HTTP handler listing the caller's notes.
// @Summary List notes
// @Description Returns one page of the caller's notes.
// @Tags notes
// @Produce json
// @Param page query int false "0-based page index"
// @Param size query int false "Page size"
// @Param sort query string false "Sort field"
// @Param dir query string false "Sort direction, asc or desc"
// @Success 200 {array} models.PublicNote "One page of notes"
// @Failure 400 {object} models.ErrorResponse "Unknown sort field"
// @Router /notes [get]
// @Security BearerAuth
func NewListNotesHandler(svc NoteLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, errs.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		notes, err := svc.GetPage(r.Context(), parsePageRequest(r), claims.UserID)
		if err != nil {
			writeClassified(w, err, errs.FamilyNote)
			return
		}
		writeJSON(w, http.StatusOK, notes)
	}
}
