// Package middleware provides the bearer-token authentication middleware.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vasapolrittideah/health-profile-api/internal/identity"
	"github.com/vasapolrittideah/health-profile-api/internal/response"
)

type contextKey struct{}

var identityContextKey = contextKey{}

// GetIdentity retrieves the authenticated identity from the request context.
func GetIdentity(ctx context.Context) (*identity.Identity, bool) {
	ident, ok := ctx.Value(identityContextKey).(*identity.Identity)
	return ident, ok
}

// WithIdentity attaches an identity to the context. Exposed for tests.
func WithIdentity(ctx context.Context, ident *identity.Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, ident)
}

// Authenticate returns middleware that verifies the bearer token on protected
// routes and attaches the decoded identity to the request context.
//
// Missing or malformed Authorization headers are rejected with 401
// {"error": "Unauthorized"}; verification failures with 401
// {"error": "Invalid token"}. The underlying provider error is never leaked.
func Authenticate(provider identity.Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || token == "" {
				response.Error(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ident, err := provider.VerifyToken(r.Context(), token)
			if err != nil {
				response.Error(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), ident)))
		})
	}
}
