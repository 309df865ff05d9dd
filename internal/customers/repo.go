package customers

import (
	"context"

	"gorm.io/gorm"

	"github.com/drgilson/gascrm-backend/pkg/db/models"
)

// Repository exposes customer persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a customers repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListActive returns all customers that have not been soft deleted.
func (r *Repository) ListActive(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("id").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

// FindByID loads a customer by id regardless of the active flag.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.WithContext(ctx).First(&customer, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// Create inserts a new customer and returns the persisted model.
func (r *Repository) Create(ctx context.Context, customer *models.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

// Save persists all fields of an already-loaded customer.
func (r *Repository) Save(ctx context.Context, customer *models.Customer) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

// SoftDelete flips the active flag. The row stays so message history keeps
// its reference. Deleting an already-inactive customer succeeds again.
func (r *Repository) SoftDelete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
