package controllers

import (
	"net/http"

	"github.com/drgilson/gascrm-backend/api/responses"
	"github.com/drgilson/gascrm-backend/api/validators"
	"github.com/drgilson/gascrm-backend/internal/messages"
	"github.com/drgilson/gascrm-backend/pkg/logger"
)

// MessagesSend records a personalized message per selected customer.
func MessagesSend(svc messages.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body messages.SendRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Send(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// MessagesHistory returns the most recent messages, newest first.
func MessagesHistory(svc messages.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		history, err := svc.History(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, history)
	}
}
