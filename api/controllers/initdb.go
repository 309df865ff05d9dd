package controllers

import (
	"net/http"

	"github.com/drgilson/gascrm-backend/api/responses"
	"github.com/drgilson/gascrm-backend/pkg/db"
	pkgerrors "github.com/drgilson/gascrm-backend/pkg/errors"
	"github.com/drgilson/gascrm-backend/pkg/logger"
	"github.com/drgilson/gascrm-backend/pkg/migrate"
)

// InitDB applies pending migrations and reports the resulting table set.
// Running it against an up-to-date schema is a no-op.
func InitDB(client *db.Client, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := migrate.Up(r.Context(), client); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "apply migrations"))
			return
		}

		tables, err := migrate.Tables(r.Context(), client)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list tables"))
			return
		}

		responses.WriteSuccess(w, map[string]any{
			"mensagem": "BD inicializado",
			"tabelas":  tables,
			"status":   "ok",
		})
	}
}
