package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/redact"
	"github.com/phrazzld/taskboard-api/internal/service/auth"
)

// AuthMiddleware admits requests whose bearer token is the current session token.
type AuthMiddleware struct {
	gate auth.Gate
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(gate auth.Gate) *AuthMiddleware {
	return &AuthMiddleware{
		gate: gate,
	}
}

// Authenticate validates the bearer token from the Authorization header and
// adds it to the request context for authorized requests.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid authorization format")
			return
		}

		token := parts[1]

		if err := m.gate.Authenticate(r.Context(), token); err != nil {
			switch {
			case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrMissingToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
			default:
				logger.FromContext(r.Context()).Error("failed to validate token", "error", redact.Error(err))
				shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			}
			return
		}

		next.ServeHTTP(w, r.WithContext(shared.SetSessionToken(r.Context(), token)))
	})
}
