package models

import "time"

// Message statuses. Only sent is written today; failed exists for the future
// transport integration, which must flip the status and fill ErrorText when a
// delivery attempt fails.
const (
	MessageStatusSent   = "enviada"
	MessageStatusFailed = "falha"
)

// Message is one recorded outbound text. The customer reference is nullable
// so history survives customer removal. Rows are immutable after creation.
type Message struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	CustomerID *int64    `gorm:"column:customer_id;index"`
	Text       string    `gorm:"column:text;not null"`
	SentAt     time.Time `gorm:"column:sent_at;autoCreateTime;index"`
	Status     string    `gorm:"column:status;not null;default:enviada"`
	ErrorText  *string   `gorm:"column:error_text"`
}
