package controllers

import (
	"net/http"

	"github.com/drgilson/gascrm-backend/api/middleware"
	"github.com/drgilson/gascrm-backend/api/responses"
	"github.com/drgilson/gascrm-backend/api/validators"
	"github.com/drgilson/gascrm-backend/internal/auth"
	pkgAuth "github.com/drgilson/gascrm-backend/pkg/auth"
	"github.com/drgilson/gascrm-backend/pkg/config"
	pkgerrors "github.com/drgilson/gascrm-backend/pkg/errors"
	"github.com/drgilson/gascrm-backend/pkg/logger"
)

// AuthLogin wires the login endpoint into the HTTP layer. A successful login
// establishes the session cookie.
func AuthLogin(svc auth.Service, sessionCfg config.SessionConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body auth.LoginRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Login(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := setSessionCookie(w, sessionCfg, result.User.ID, result.SessionID); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint session"))
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// AuthLogout revokes the server-side session and clears the cookie. It stays
// idempotent: a missing or invalid cookie still yields a success response.
func AuthLogout(svc auth.Service, sessionCfg config.SessionConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sessionID := ""
		if cookie, err := r.Cookie(sessionCfg.CookieName); err == nil && cookie.Value != "" {
			if claims, err := pkgAuth.ParseSessionToken(sessionCfg, cookie.Value); err == nil {
				sessionID = claims.ID
			}
		}

		if err := svc.Logout(r.Context(), sessionID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		clearSessionCookie(w, sessionCfg)
		responses.WriteSuccess(w, map[string]string{"mensagem": "Logout realizado com sucesso"})
	}
}

// AuthCurrentUser returns the account behind the authenticated session.
func AuthCurrentUser(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		userID := middleware.UserIDFromContext(r.Context())
		if userID == 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthenticated, "não autenticado"))
			return
		}

		user, err := svc.CurrentUser(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, user)
	}
}
