package auth

import "github.com/drgilson/gascrm-backend/internal/users"

// LoginRequest carries the credential payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"senha" validate:"required"`
}

// LoginResponse carries the authenticated user plus the session id the
// controller turns into a cookie.
type LoginResponse struct {
	Message   string         `json:"mensagem"`
	User      *users.UserDTO `json:"usuario"`
	SessionID string         `json:"-"`
}
