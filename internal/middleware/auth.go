// Package middleware provides HTTP middlewares for authentication and logging.
package middleware

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const userKey ctxKey = "user"

// TokenVerifier validates a bearer token and resolves the user ID it asserts.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// Auth is a middleware that enforces bearer-token authentication.
//
// It extracts the token from the Authorization header and verifies it with
// the given TokenVerifier. Requests without a "Bearer <token>" header are
// rejected with 401; requests whose token fails verification (malformed,
// bad signature, expired) are rejected with 403. The wrapped handler is
// never invoked on failure.
//
// On success, the resolved user ID is stored in the request context so it
// can be used downstream as the authenticated identity.
func Auth(tokens TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			userID, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				http.Error(w, "invalid token", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// WithUserID returns a copy of ctx carrying the authenticated user ID.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userKey, userID)
}

// UserIDFromContext extracts the authenticated user ID from the request
// context. Returns an empty string if not found.
func UserIDFromContext(ctx context.Context) string {
	val := ctx.Value(userKey)
	if s, ok := val.(string); ok {
		return s
	}
	return ""
}
