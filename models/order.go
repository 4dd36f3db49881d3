package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // placed, awaiting payment/confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // payment reconciled
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type Order struct {
	ID                  uint        `gorm:"primaryKey" json:"id"`
	OrderNumber         string      `gorm:"uniqueIndex;not null" json:"order_number"`
	UserID              string      `gorm:"index;not null" json:"user_id"`
	Items               []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount         float64     `json:"total_amount"`
	DeliveryAddress     string      `gorm:"not null" json:"delivery_address"`
	PaymentMethod       string      `json:"payment_method"` // e.g. "monime", "cash"
	SpecialInstructions string      `json:"special_instructions"`
	Status              OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	OrderID      uint    `gorm:"index" json:"order_id"`
	ProductID    uint    `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductPrice float64 `json:"product_price"`
	Quantity     int     `json:"quantity"`
	SpecialNotes string  `json:"special_notes"`
}
