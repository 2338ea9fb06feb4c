package auth

import (
	"net/http"
	"time"
)

const (
	UserCookie  = "token"
	AdminCookie = "admin_token"
)

type CookieConfig struct {
	Domain string
	MaxAge time.Duration
	Secure bool
}

// SetTokenCookie writes an HttpOnly session cookie holding tok.
func SetTokenCookie(w http.ResponseWriter, cfg *CookieConfig, name, tok string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    tok,
		Path:     "/",
		Domain:   cfg.Domain,
		MaxAge:   int(cfg.MaxAge.Seconds()),
		Expires:  time.Now().Add(cfg.MaxAge),
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func ClearTokenCookie(w http.ResponseWriter, cfg *CookieConfig, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   cfg.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
