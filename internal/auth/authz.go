// Package auth holds the authorization predicates consulted before service
// calls that operate on a specific user id.
package auth

import (
	"github.com/petrkoval/notes-api/internal/jwt"
	"github.com/petrkoval/notes-api/internal/models"
)

// CanAccessUser reports whether the caller may read or modify the user record
// identified by targetID: admins always may, regular users only when the id
// is their own. Missing or malformed claims fail closed.
func CanAccessUser(claims *jwt.Claims, targetID int64) bool {
	if claims == nil || claims.UserID <= 0 || targetID <= 0 {
		return false
	}
	if HasRole(claims, models.RoleAdmin) {
		return true
	}
	return HasRole(claims, models.RoleUser) && claims.UserID == targetID
}

// IsSelf reports whether the caller is the user identified by targetID.
// Admin membership does not help here; used by the self-only endpoints.
func IsSelf(claims *jwt.Claims, targetID int64) bool {
	return claims != nil && claims.UserID > 0 && claims.UserID == targetID
}

// IsAdmin reports whether the caller holds the admin role.
func IsAdmin(claims *jwt.Claims) bool {
	return HasRole(claims, models.RoleAdmin)
}

// HasRole reports whether the claims carry the named role.
func HasRole(claims *jwt.Claims, role string) bool {
	if claims == nil {
		return false
	}
	for _, r := range claims.Roles {
		if r == role {
			return true
		}
	}
	return false
}
