package models

import "time"

// User is an operator account. The level field is an informational label
// ("admin", "gerente"); no handler enforces permissions from it beyond the
// admin bootstrap probe.
type User struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Name         string    `gorm:"column:name;not null"`
	Email        string    `gorm:"column:email;not null;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	Level        string    `gorm:"column:level;not null;default:gerente"`
	IsActive     bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}
