package models

import "time"

type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusExpired   PaymentStatus = "expired"
)

// Payment is the reconciliation record written by the webhook receiver.
// The provider is the system of record for session state; this row mirrors
// the last lifecycle event observed for a session.
type Payment struct {
	ID              uint          `gorm:"primaryKey" json:"id"`
	PaymentID       string        `gorm:"uniqueIndex;not null" json:"payment_id"` // provider session/payment id
	Status          PaymentStatus `gorm:"type:VARCHAR(20)" json:"status"`
	Amount          int64         `json:"amount"` // minor units
	Currency        string        `json:"currency"`
	CustomerName    string        `json:"customer_name"`
	CustomerPhone   string        `json:"customer_phone"`
	CustomerAddress string        `json:"customer_address"`
	ProductID       string        `json:"product_id"`
	ProductName     string        `json:"product_name"`
	PaidAt          *time.Time    `json:"paid_at,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// WebhookEvent records provider event ids already processed. The provider
// delivers at least once; inserting here with ON CONFLICT DO NOTHING makes
// redelivery an idempotent no-op.
type WebhookEvent struct {
	ID         uint      `gorm:"primaryKey"`
	EventID    string    `gorm:"uniqueIndex;not null"`
	Type       string    `gorm:"type:VARCHAR(64)"`
	ReceivedAt time.Time
}
