package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/Pritish2005/Event-Hub/internal/common"
	"github.com/Pritish2005/Event-Hub/internal/server/models"
)

type ctxKey string

const principalKey ctxKey = "principal"

// extractBearerToken extracts a bearer token from the Authorization header.
// Returns the token and an error message (empty if successful).
func extractBearerToken(authHeader string) (string, string) {
	if authHeader == "" {
		return "", "missing authorization header"
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", "invalid authorization header format"
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" {
		return "", "empty token"
	}
	return token, ""
}

// requireAuth verifies the bearer token and resolves it to a live user record
// before handing off to next. The resolved principal is attached to the
// request context read-only, scoped to this one request. Every failure mode
// (missing header, bad token, expired token, user gone) is the same 401.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, errMsg := extractBearerToken(r.Header.Get("Authorization"))
		if errMsg != "" {
			s.writeError(r.Context(), w, common.ErrorUnauthorized)
			return
		}

		user, err := s.users.Authenticate(r.Context(), token)
		if err != nil {
			s.writeError(r.Context(), w, err)
			return
		}

		ctx := context.WithValue(r.Context(), principalKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// principalFromContext returns the authenticated user attached by requireAuth.
func principalFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(principalKey).(*models.User)
	return user, ok
}
