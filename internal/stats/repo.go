package stats

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/drgilson/gascrm-backend/pkg/db/models"
)

// Repository exposes the aggregate queries behind the dashboard numbers.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a stats repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CountActiveCustomers counts customers that have not been soft deleted.
func (r *Repository) CountActiveCustomers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("is_active = ?", true).
		Count(&count).Error
	return count, err
}

// CountMessagesBetween counts messages sent in [from, to).
func (r *Repository) CountMessagesBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Message{}).
		Where("sent_at >= ? AND sent_at < ?", from, to).
		Count(&count).Error
	return count, err
}

// ListActiveWithPurchase returns active customers that have a recorded last
// purchase. The alert window is computed in Go, matching cycle arithmetic
// across both supported databases.
func (r *Repository) ListActiveWithPurchase(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND last_purchase IS NOT NULL", true).
		Find(&customers).Error
	if err != nil {
		return nil, err
	}
	return customers, nil
}
