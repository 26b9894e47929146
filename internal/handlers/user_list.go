package handlers

import (
	"context"
	"net/http"

	"github.com/petrkoval/notes-api/internal/errs"
	"github.com/petrkoval/notes-api/internal/models"
)

// UserLister defines the interface that the service must implement.
type UserLister interface {
	GetPage(ctx context.Context, page *models.PageRequest) ([]models.PublicUser, error)
}

// NewListUsersHandler returns an HTTP handler listing all users. Routed
// behind the admin role gate.
// @Summary List users
// @Description Returns one page of users. Admin only.
// @Tags users
// @Produce json
// @Param page query int false "0-based page index"
// @Param size query int false "Page size"
// @Param sort query string false "Sort field"
// @Param dir query string false "Sort direction, asc or desc"
// @Success 200 {array} models.PublicUser "One page of users"
// @Failure 400 {object} models.ErrorResponse "Unknown sort field"
// @Failure 403 {object} models.ErrorResponse "Admin role required"
// @Router /users [get]
// @Security BearerAuth
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.GetPage(r.Context(), parsePageRequest(r))
		if err != nil {
			writeClassified(w, err, errs.FamilyUser)
			return
		}
		writeJSON(w, http.StatusOK, users)
	}
}
