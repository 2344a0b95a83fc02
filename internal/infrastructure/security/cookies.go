package security

import (
	"net/http"
	"time"
)

const (
	TokenCookieName = "token"
	EmailCookieName = "email"
)

// SetSessionCookies writes the http-only token cookie and the script-readable email cookie.
func SetSessionCookies(w http.ResponseWriter, token, email string, maxAge time.Duration, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(maxAge.Seconds()),
	})
	http.SetCookie(w, &http.Cookie{
		Name:     EmailCookieName,
		Value:    email,
		Path:     "/",
		HttpOnly: false,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(maxAge.Seconds()),
	})
}

func ClearSessionCookies(w http.ResponseWriter, secure bool) {
	for _, name := range []string{TokenCookieName, EmailCookieName} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			HttpOnly: name == TokenCookieName,
			Secure:   secure,
			SameSite: http.SameSiteLaxMode,
			MaxAge:   -1,
		})
	}
}

func ReadTokenCookie(r *http.Request) (string, error) {
	c, err := r.Cookie(TokenCookieName)
	if err != nil {
		return "", err
	}
	return c.Value, nil
}
