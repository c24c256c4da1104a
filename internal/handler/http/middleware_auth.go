package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/MKhiriev/asset-management/internal/logger"
	"github.com/MKhiriev/asset-management/internal/service"
	"github.com/MKhiriev/asset-management/internal/utils"
	"github.com/MKhiriev/asset-management/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header and resolves
// it through [service.AuthService.Authenticate], which also rejects disabled
// accounts. On success the principal is stored in the request context with
// [utils.WithCurrentUser].
//
// Requests are rejected with 401 Unauthorized when the header is missing or
// malformed, the token is invalid or expired, or the user is disabled.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx := r.Context()
		current, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		l := logger.FromRequest(r).With().Int64("user_id", current.ID).Logger()
		ctx = utils.WithCurrentUser(l.WithContext(ctx), current)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireRole lets the request through only when the authenticated user
// has one of roles. It must run after [Handler.auth].
func (h *Handler) requireRole(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			current, err := currentUser(r)
			if err != nil {
				writeError(w, r, err)
				return
			}

			if !slices.Contains(roles, current.Role) {
				writeError(w, r, service.ErrForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getTokenFromAuthHeader extracts the token from a
// "Bearer <token>" header value. The scheme is case-insensitive.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	scheme, tokenString, found := strings.Cut(strings.TrimSpace(authHeader), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
