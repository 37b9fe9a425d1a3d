package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/agroassist/engine/internal/token"
)

type userKeyType string

const UserIDKey userKeyType = "user_id"

// Auth verifies a Bearer credential via the token issuer and adds the user id
// to the request context. The concrete token mechanism lives entirely behind
// token.Issuer.
func Auth(issuer token.Issuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ah := r.Header.Get("Authorization")
			if !strings.HasPrefix(strings.ToLower(ah), "bearer ") {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
			uid, err := issuer.Verify(strings.TrimSpace(ah[len("Bearer "):]))
			if err != nil {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), UserIDKey, uid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID returns the authenticated user id from context.
func GetUserID(ctx context.Context) string {
	if v := ctx.Value(UserIDKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
