package middlewares

import (
	"net/http"

	"github.com/petrkoval/notes-api/internal/auth"
	"github.com/petrkoval/notes-api/internal/errs"
)

// RequireRoles returns a middleware that lets the request through only when
// the authenticated caller holds at least one of the given roles. Must run
// after AuthMiddleware.
func RequireRoles(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := GetClaimsFromContext(r.Context())

			allowed := false
			for _, role := range roles {
				if auth.HasRole(claims, role) {
					allowed = true
					break
				}
			}
			if !allowed {
				writeAuthError(w, errs.MsgAccessDenied, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
