package messages

import (
	"context"

	"gorm.io/gorm"

	"github.com/drgilson/gascrm-backend/pkg/db/models"
)

// Repository exposes message persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a messages repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateBatch inserts all messages in one transaction so a bulk send either
// records every resolved row or none of them.
func (r *Repository) CreateBatch(ctx context.Context, msgs []models.Message) error {
	if len(msgs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&msgs).Error
	})
}

// ListRecent returns the newest messages first, capped at limit.
func (r *Repository) ListRecent(ctx context.Context, limit int) ([]models.Message, error) {
	var msgs []models.Message
	if err := r.db.WithContext(ctx).Order("sent_at DESC, id DESC").Limit(limit).Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}
