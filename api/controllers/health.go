package controllers

import (
	"net/http"

	"github.com/drgilson/gascrm-backend/api/responses"
	"github.com/drgilson/gascrm-backend/pkg/db"
	pkgerrors "github.com/drgilson/gascrm-backend/pkg/errors"
	"github.com/drgilson/gascrm-backend/pkg/logger"
)

func HealthLive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady probes the database and session store so load balancers only
// route traffic once both are reachable.
func HealthReady(probes map[string]db.Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for name, probe := range probes {
			if probe == nil {
				continue
			}
			if err := probe.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, name+" unavailable"))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
