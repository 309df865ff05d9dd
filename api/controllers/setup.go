package controllers

import (
	"net/http"

	"github.com/drgilson/gascrm-backend/api/responses"
	"github.com/drgilson/gascrm-backend/api/validators"
	"github.com/drgilson/gascrm-backend/internal/setup"
	"github.com/drgilson/gascrm-backend/pkg/config"
	pkgerrors "github.com/drgilson/gascrm-backend/pkg/errors"
	"github.com/drgilson/gascrm-backend/pkg/logger"
)

// SetupVerify reports whether the admin bootstrap has already run. Schema
// failures are reported in-band with a 200 so the frontend can offer init-db.
func SetupVerify(svc setup.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.VerifyStatus(r.Context()))
	}
}

// SetupCreateAdmin runs the one-time bootstrap and establishes the session.
func SetupCreateAdmin(svc setup.Service, sessionCfg config.SessionConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "setup service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body setup.CreateAdminRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.CreateAdmin(r.Context(), body)
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
