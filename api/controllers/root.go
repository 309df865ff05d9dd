package controllers

import (
	"net/http"

	"github.com/drgilson/gascrm-backend/api/responses"
)

const serviceVersion = "1.0.2"

// Root serves the service banner with the bootstrap entrypoints a fresh
// deploy needs.
func Root() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{
			"mensagem": "API do CRM de Gás - Dr. Gilson",
			"versao":   serviceVersion,
			"status":   "online",
			"endpoints": map[string]string{
				"init_db":         "/api/init-db",
				"verificar_setup": "/api/setup/verificar",
				"criar_admin":     "/api/setup/criar-admin",
			},
		})
	}
}
