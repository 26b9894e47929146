package handlers

import (
	"context"
	"net/http"

	"github.com/petrkoval/notes-api/internal/errs"
)

// UserDeleter defines the interface that the service must implement.
type UserDeleter interface {
	DeleteByID(ctx context.Context, id int64) error
}

// NewDeleteUserHandler returns an HTTP handler deleting the caller's own
// account. All of the user's notes disappear in the same unit of work.
// @Summary Delete a user
// @Description Deletes the caller's own account and all of its notes.
// @Tags users
// @Param id path int true "User id"
// @Success 204 {string} string "Deleted"
// @Failure 403 {object} models.ErrorResponse "Not your id"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Router /users/{id} [delete]
// @Security BearerAuth
func NewDeleteUserHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := selfOnly(w, r)
		if !ok {
			return
		}

		if err := svc.DeleteByID(r.Context(), id); err != nil {
			writeClassified(w, err, errs.FamilyUser)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
