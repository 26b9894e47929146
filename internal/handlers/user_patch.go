package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/petrkoval/notes-api/internal/auth"
	"github.com/petrkoval/notes-api/internal/errs"
	"github.com/petrkoval/notes-api/internal/middlewares"
	"github.com/petrkoval/notes-api/internal/models"
)

// UserPatcher defines the patch operations the service must implement.
type UserPatcher interface {
	PatchUsernameByID(ctx context.Context, id int64, dto *models.PatchUsernameDTO) error
	PatchEmailByID(ctx context.Context, id int64, dto *models.PatchEmailDTO) error
	PatchPasswordByID(ctx context.Context, id int64, dto *models.PatchPasswordDTO) error
}

// NewPatchUsernameHandler returns an HTTP handler replacing the caller's
// username. Self only.
// @Summary Patch username
// @Description Replaces the username of the caller's own account.
// @Tags users
// @Accept json
// @Param id path int true "User id"
// @Param patchUsernameDTO body models.PatchUsernameDTO true "New username"
// @Success 204 {string} string "Updated"
// @Failure 403 {object} models.ErrorResponse "Not your id"
// @Failure 409 {object} models.ErrorResponse "Username already exists"
// @Router /users/{id}/username [patch]
// @Security BearerAuth
func NewPatchUsernameHandler(svc UserPatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := selfOnly(w, r)
		if !ok {
			return
		}

		var dto models.PatchUsernameDTO
		if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
			writeError(w, errs.MsgInvalidBody, http.StatusBadRequest)
			return
		}

		if err := svc.PatchUsernameByID(r.Context(), id, &dto); err != nil {
			writeClassified(w, err, errs.FamilyUser)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// NewPatchEmailHandler returns an HTTP handler replacing the caller's email.
// Self only.
// @Summary Patch email
// @Description Replaces the email of the caller's own account.
// @Tags users
// @Accept json
// @Param id path int true "User id"
// @Param patchEmailDTO body models.PatchEmailDTO true "New email"
// @Success 204 {string} string "Updated"
// @Failure 403 {object} models.ErrorResponse "Not your id"
// @Failure 409 {object} models.ErrorResponse "Email already exists"
// @Router /users/{id}/email [patch]
// @Security BearerAuth
func NewPatchEmailHandler(svc UserPatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := selfOnly(w, r)
		if !ok {
			return
		}

		var dto models.PatchEmailDTO
		if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
			writeError(w, errs.MsgInvalidBody, http.StatusBadRequest)
			return
		}

		if err := svc.PatchEmailByID(r.Context(), id, &dto); err != nil {
			writeClassified(w, err, errs.FamilyUser)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// NewPatchPasswordHandler returns an HTTP handler replacing the caller's
// password. The plaintext is re-hashed by the service. Self only.
// @Summary Patch password
// @Description Re-hashes and stores a new password for the caller's own account.
// @Tags users
// @Accept json
// @Param id path int true "User id"
// @Param patchPasswordDTO body models.PatchPasswordDTO true "New password"
// @Success 204 {string} string "Updated"
// @Failure 400 {object} models.ErrorResponse "Password too short"
// @Failure 403 {object} models.ErrorResponse "Not your id"
// @Router /users/{id}/password [patch]
// @Security BearerAuth
func NewPatchPasswordHandler(svc UserPatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := selfOnly(w, r)
		if !ok {
			return
		}

		var dto models.PatchPasswordDTO
		if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
			writeError(w, errs.MsgInvalidBody, http.StatusBadRequest)
			return
		}

		if err := svc.PatchPasswordByID(r.Context(), id, &dto); err != nil {
			writeClassified(w, err, errs.FamilyUser)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// selfOnly extracts the target id and rejects callers other than the target
// user. Admin membership does not bypass the self-only endpoints.
func selfOnly(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id := pathID(r, "id")
	claims := middlewares.GetClaimsFromContext(r.Context())
	if !auth.IsSelf(claims, id) {
		writeError(w, errs.MsgAccessDenied, http.StatusForbidden)
		return 0, false
	}
	return id, true
}
