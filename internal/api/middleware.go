package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"

	"github.com/ananya/practiq/internal/identity"
)

// Auth returns middleware that verifies the bearer token and attaches the
// authenticated user to the request context.
func Auth(secret []byte) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				respondError(w, http.StatusUnauthorized, "authorization header required")
				return
			}
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				respondError(w, http.StatusUnauthorized, "authorization header must be a bearer token")
				return
			}

			user, err := parseToken(secret, parts[1])
			if err != nil {
				if errors.Is(err, jwt.ErrTokenExpired) {
					respondError(w, http.StatusUnauthorized, "token expired")
					return
				}
				respondError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(identity.WithUser(r.Context(), user)))
		})
	}
}

// requireAdmin rejects non-admin users. It runs inside Auth, so a missing
// user means a wiring bug rather than a bad request.
func requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return requireRole(identity.RoleAdmin, "admin role required", next)
}

// requireStudent rejects non-student users. Practice sessions belong to
// students; an admin token cannot start or mutate them.
func requireStudent(next http.HandlerFunc) http.HandlerFunc {
	return requireRole(identity.RoleStudent, "student role required", next)
}

func requireRole(role identity.Role, message string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := identity.FromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, "not authenticated")
			return
		}
		if user.Role != role {
			respondError(w, http.StatusForbidden, message)
			return
		}
		next(w, r)
	}
}
