package setup

import "github.com/drgilson/gascrm-backend/internal/users"

// StatusResponse reports the bootstrap state. DBError and NeedsInit are only
// present when the admin probe hit a persistence failure.
type StatusResponse struct {
	Configured bool    `json:"configurado"`
	DBError    *string `json:"erro_db,omitempty"`
	NeedsInit  *bool   `json:"precisa_init,omitempty"`
}

// CreateAdminRequest is the one-time bootstrap payload.
type CreateAdminRequest struct {
	Name     string `json:"nome" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"senha" validate:"required"`
}

// CreateAdminResponse carries the created account plus the session id the
// controller turns into a cookie.
type CreateAdminResponse struct {
	Message   string         `json:"mensagem"`
	User      *users.UserDTO `json:"usuario"`
	SessionID string         `json:"-"`
}
