package models

import "time"

// Customer is a gas-delivery client with a purchase cycle. The next expected
// purchase is LastPurchase + CycleDays and is only defined when LastPurchase
// is set. Deletion is soft: IsActive flips to false and the row stays.
type Customer struct {
	ID           int64      `gorm:"primaryKey;autoIncrement"`
	Name         string     `gorm:"column:name;not null"`
	Phone        string     `gorm:"column:phone;not null"`
	Address      string     `gorm:"column:address;not null;default:''"`
	CycleDays    int        `gorm:"column:cycle_days;not null;default:30"`
	LastPurchase *time.Time `gorm:"column:last_purchase"`
	Notes        string     `gorm:"column:notes;not null;default:''"`
	IsActive     bool       `gorm:"column:is_active;not null;default:true"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

// NextPurchase returns the expected next purchase date, or nil when the
// customer has no recorded purchase.
func (c Customer) NextPurchase() *time.Time {
	if c.LastPurchase == nil {
		return nil
	}
	next := c.LastPurchase.AddDate(0, 0, c.CycleDays)
	return &next
}
