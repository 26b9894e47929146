package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/petrkoval/notes-api/internal/jwt"
	"github.com/petrkoval/notes-api/internal/models"
)

func TestCanAccessUser(t *testing.T) {
	tests := []struct {
		name     string
		claims   *jwt.Claims
		targetID int64
		want     bool
	}{
		{"NilClaims", nil, 1, false},
		{"ZeroUserID", &jwt.Claims{UserID: 0, Roles: []string{models.RoleUser}}, 1, false},
		{"ZeroTarget", &jwt.Claims{UserID: 1, Roles: []string{models.RoleUser}}, 0, false},
		{"SelfWithUserRole", &jwt.Claims{UserID: 5, Roles: []string{models.RoleUser}}, 5, true},
		{"OtherWithUserRole", &jwt.Claims{UserID: 5, Roles: []string{models.RoleUser}}, 6, false},
		{"SelfWithoutAnyRole", &jwt.Claims{UserID: 5}, 5, false},
		{"AdminAnyTarget", &jwt.Claims{UserID: 5, Roles: []string{models.RoleAdmin}}, 99, true},
		{"AdminOwnRecord", &jwt.Claims{UserID: 5, Roles: []string{models.RoleAdmin}}, 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanAccessUser(tt.claims, tt.targetID))
		})
	}
}

func TestIsSelf(t *testing.T) {
	assert.False(t, IsSelf(nil, 1))
	assert.False(t, IsSelf(&jwt.Claims{UserID: 0}, 0))
	assert.False(t, IsSelf(&jwt.Claims{UserID: 1}, 2))
	assert.True(t, IsSelf(&jwt.Claims{UserID: 2}, 2))

	// Admin role does not widen self checks
	admin := &jwt.Claims{UserID: 1, Roles: []string{models.RoleAdmin}}
	assert.False(t, IsSelf(admin, 2))
}

func TestIsAdmin(t *testing.T) {
	assert.False(t, IsAdmin(nil))
	assert.False(t, IsAdmin(&jwt.Claims{UserID: 1, Roles: []string{models.RoleUser}}))
	assert.True(t, IsAdmin(&jwt.Claims{UserID: 1, Roles: []string{models.RoleUser, models.RoleAdmin}}))
}

func TestHasRole(t *testing.T) {
	claims := &jwt.Claims{UserID: 1, Roles: []string{models.RoleUser}}
	assert.True(t, HasRole(claims, models.RoleUser))
	assert.False(t, HasRole(claims, models.RoleAdmin))
	assert.False(t, HasRole(claims, ""))
	assert.False(t, HasRole(nil, models.RoleUser))
}
