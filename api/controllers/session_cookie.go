package controllers

import (
	"net/http"
	"time"

	pkgAuth "github.com/drgilson/gascrm-backend/pkg/auth"
	"github.com/drgilson/gascrm-backend/pkg/config"
)

// setSessionCookie mints the signed session token and attaches it as an
// http-only cookie scoped to the whole API.
func setSessionCookie(w http.ResponseWriter, cfg config.SessionConfig, userID int64, sessionID string) error {
	token, err := pkgAuth.MintSessionToken(cfg, time.Now(), userID, sessionID)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(cfg.TTL.Seconds()),
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func clearSessionCookie(w http.ResponseWriter, cfg config.SessionConfig) {
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
