package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionTokenClaims is the typed payload carried by the signed session cookie.
// The registered ID (jti) doubles as the server-side session key; the cookie is
// only honored while that session record exists.
type SessionTokenClaims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}
