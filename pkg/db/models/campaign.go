package models

import "time"

// Campaign is a reusable message template. The table is migrated but no
// endpoint consumes it yet; the send flow takes an ad-hoc template instead.
type Campaign struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"column:name;not null"`
	Description string    `gorm:"column:description;not null;default:''"`
	Template    string    `gorm:"column:template;not null"`
	IsActive    bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}
