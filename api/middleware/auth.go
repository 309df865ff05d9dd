package middleware

import (
	"net/http"
	"strconv"

	"github.com/drgilson/gascrm-backend/api/responses"
	pkgAuth "github.com/drgilson/gascrm-backend/pkg/auth"
	"github.com/drgilson/gascrm-backend/pkg/auth/session"
	"github.com/drgilson/gascrm-backend/pkg/config"
	pkgerrors "github.com/drgilson/gascrm-backend/pkg/errors"
	"github.com/drgilson/gascrm-backend/pkg/logger"
)

// Session validates the signed session cookie against the server-side
// session store and seeds the request context with the user id.
func Session(cfg config.SessionConfig, checker session.Checker, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cfg.CookieName)
			if err != nil || cookie.Value == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthenticated, "não autenticado"))
				return
			}

			claims, err := pkgAuth.ParseSessionToken(cfg, cookie.Value)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthenticated, err, "não autenticado"))
				return
			}

			if claims.ID == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthenticated, "não autenticado"))
				return
			}

			if checker != nil {
				userID, ok, err := checker.Lookup(r.Context(), claims.ID)
				if err != nil {
					responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "validate session"))
					return
				}
				if !ok || userID != claims.UserID {
					responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthenticated, "não autenticado"))
					return
				}
			}

			ctx := WithUserID(r.Context(), claims.UserID)
			if logg != nil {
				ctx = logg.WithUserID(ctx, strconv.FormatInt(claims.UserID, 10))
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
