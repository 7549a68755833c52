package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	NotificationNewBooking   = "new_booking"
	NotificationStatusChange = "status_change"
)

type Notification struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	RecipientID uuid.UUID `gorm:"type:uuid;index" json:"recipient_id"`

	Type      string    `gorm:"size:30;not null" json:"type"`
	BookingID uuid.UUID `gorm:"type:uuid" json:"booking_id"`
	Message   string    `gorm:"size:255" json:"message"`

	Read bool `gorm:"default:false" json:"read"`

	CreatedAt time.Time `json:"created_at"`
}
