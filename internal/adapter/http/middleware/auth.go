package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gstmate/gstmate/internal/domain"
	"github.com/gstmate/gstmate/internal/infrastructure/auth"
)

// ContextKey is the type for context keys
type ContextKey string

const (
	// IdentityContextKey is the context key for the authenticated identity
	IdentityContextKey ContextKey = "identity"
)

// RequireAuth rejects requests without a valid bearer identity token. History
// and summary operations use it: without a user there is nothing to scope by.
func RequireAuth(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := identityFromHeader(r, tokens)
			if err != nil {
				http.Error(w, "missing or invalid identity token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), IdentityContextKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth attaches the identity when a valid token is present and lets
// the request through either way. Compute works anonymously; an identity just
// turns history recording on.
func OptionalAuth(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := identityFromHeader(r, tokens)
			if err == nil {
				ctx := context.WithValue(r.Context(), IdentityContextKey, identity)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func identityFromHeader(r *http.Request, tokens *auth.TokenManager) (*domain.Identity, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, auth.ErrInvalidToken
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, auth.ErrInvalidToken
	}

	return tokens.Verify(parts[1])
}

// GetIdentityFromContext extracts the authenticated identity from context.
func GetIdentityFromContext(ctx context.Context) (*domain.Identity, bool) {
	identity, ok := ctx.Value(IdentityContextKey).(*domain.Identity)
	return identity, ok
}
