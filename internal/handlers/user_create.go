package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/petrkoval/notes-api/internal/errs"
	"github.com/petrkoval/notes-api/internal/models"
)

// UserCreator defines the interface that the service must implement.
type UserCreator interface {
	Create(ctx context.Context, dto *models.CreateUserDTO, defaultRole string) (int64, error)
}

// NewCreateUserHandler returns an HTTP handler for account creation. Public;
// the new account always gets the USER role.
// @Summary Create a new user
// @Description Creates a new account with the USER role. Ensures unique username and email; the password is hashed before storing.
// @Tags users
// @Accept json
// @Produce json
// @Param createUserDTO body models.CreateUserDTO true "User to create"
// @Success 201 {string} string "Created; Location header points at the new user"
// @Failure 400 {object} models.ErrorResponse "Validation failure"
// @Failure 409 {object} models.ErrorResponse "Username or email already exists"
// @Router /users [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var dto models.CreateUserDTO

		if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
			writeError(w, errs.MsgInvalidBody, http.StatusBadRequest)
			return
		}

		id, err := svc.Create(r.Context(), &dto, models.RoleUser)
		if err != nil {
			writeClassified(w, err, errs.FamilyUser)
			return
		}

		w.Header().Set("Location", fmt.Sprintf("/api/users/%d", id))
		w.WriteHeader(http.StatusCreated)
	}
}
