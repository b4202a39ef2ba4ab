package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/crewhive/crewhive/internal/server/auth"
)

type claimsKey struct{}

// claimsFrom returns the verified claims the auth middleware stored on the
// request context.
func claimsFrom(ctx context.Context) (*auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey{}).(*auth.Claims)
	return c, ok
}

// requireAuth verifies the bearer token and makes its claims available to
// downstream handlers.
func requireAuth(m *auth.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				WriteError(w, http.StatusUnauthorized, ErrorBody{
					Code: CodeUnauthorized, Message: "missing bearer token",
				})
				return
			}

			claims, err := m.ParseAccess(token)
			if err != nil {
				WriteError(w, http.StatusUnauthorized, ErrorBody{
					Code: CodeUnauthorized, Message: "invalid or expired token",
				})
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey{}, claims)))
		})
	}
}
