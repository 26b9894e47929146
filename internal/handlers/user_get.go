package handlers

import (
	"context"
	"net/http"

	"github.com/petrkoval/notes-api/internal/auth"
	"github.com/petrkoval/notes-api/internal/errs"
	"github.com/petrkoval/notes-api/internal/middlewares"
	"github.com/petrkoval/notes-api/internal/models"
)

// UserGetter defines the interface that the service must implement.
type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*models.PublicUser, error)
}

// NewGetUserHandler returns an HTTP handler for reading a user record.
// Callers may only read their own record unless they hold the admin role;
// the service is never invoked for forbidden requests.
// @Summary Get a user by id
// @Description Returns the public projection of a user. Self or admin only.
// @Tags users
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} models.PublicUser "User found"
// @Failure 403 {object} models.ErrorResponse "Not your id"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Router /users/{id} [get]
// @Security BearerAuth
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := pathID(r, "id")

		claims := middlewares.GetClaimsFromContext(r.Context())
		if !auth.CanAccessUser(claims, id) {
			writeError(w, errs.MsgAccessDenied, http.StatusForbidden)
			return
		}

		user, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeClassified(w, err, errs.FamilyUser)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
