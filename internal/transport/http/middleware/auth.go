package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/baechuer/leads-api/internal/domain"
	"github.com/baechuer/leads-api/internal/infrastructure/security"
)

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (domain.User, error)
}

type WriteErrFunc func(http.ResponseWriter, *http.Request, error)

// Auth resolves the caller from "Authorization: Bearer <token>" or, failing
// that, the token cookie, and puts the user into the request context.
func Auth(authn Authenticator, writeErr WriteErrFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, err := tokenFromRequest(r)
			if err != nil {
				writeErr(w, r, err)
				return
			}

			u, err := authn.Authenticate(r.Context(), raw)
			if err != nil {
				writeErr(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
		})
	}
}

// A "Bearer <token>" header wins over the cookie. Any other
// Authorization value is ignored.
func tokenFromRequest(r *http.Request) (string, error) {
	if raw, ok := bearerToken(r.Header.Get("Authorization")); ok {
		return raw, nil
	}

	if c, err := security.ReadTokenCookie(r); err == nil && strings.TrimSpace(c) != "" {
		return strings.TrimSpace(c), nil
	}
	return "", domain.ErrTokenMissing()
}

func bearerToken(h string) (string, bool) {
	parts := strings.SplitN(strings.TrimSpace(h), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	raw := strings.TrimSpace(parts[1])
	return raw, raw != ""
}
