package models

import "time"

// UserProfile keys off the external auth provider's user id.
type UserProfile struct {
	ID                 string    `gorm:"primaryKey" json:"id"`
	FullName           string    `json:"full_name"`
	Phone              string    `json:"phone"`
	DietaryPreferences []string  `gorm:"serializer:json" json:"dietary_preferences"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
