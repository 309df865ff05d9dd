package users

import "github.com/drgilson/gascrm-backend/pkg/db/models"

// UserDTO is the transport shape that omits sensitive credentials.
type UserDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"nome"`
	Email string `json:"email"`
	Level string `json:"nivel"`
}

// CreateUserDTO holds the data required by the repo to persist a new user.
type CreateUserDTO struct {
	Name         string
	Email        string
	PasswordHash string
	Level        string
}

func FromModel(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}

	return &UserDTO{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Level: u.Level,
	}
}

func (c CreateUserDTO) ToModel() *models.User {
	level := c.Level
	if level == "" {
		level = "gerente"
	}

	return &models.User{
		Name:         c.Name,
		Email:        c.Email,
		PasswordHash: c.PasswordHash,
		Level:        level,
		IsActive:     true,
	}
}
