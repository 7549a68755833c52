package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserBookingDTO is the requesting user's view of a booking. Provider
// contact fields are filled only once the provider has accepted.
type UserBookingDTO struct {
	ID            uuid.UUID `json:"id"`
	Status        string    `json:"status"`
	ScheduledDate time.Time `json:"scheduled_date"`
	Notes         string    `json:"notes,omitempty"`
	Address       string    `json:"address,omitempty"`
	CreatedAt     time.Time `json:"created_at"`

	ServiceTitle string  `json:"service_title"`
	ServicePrice float64 `json:"service_price"`

	ProviderName     string `json:"provider_name"`
	ProviderPhone    string `json:"provider_phone,omitempty"`
	ProviderEmail    string `json:"provider_email,omitempty"`
	ProviderWhatsapp string `json:"provider_whatsapp,omitempty"`
}

// ProviderBookingDTO is the provider's view of a booking request.
type ProviderBookingDTO struct {
	ID            uuid.UUID `json:"id"`
	Status        string    `json:"status"`
	ScheduledDate time.Time `json:"scheduled_date"`
	Notes         string    `json:"notes,omitempty"`
	Address       string    `json:"address,omitempty"`
	CreatedAt     time.Time `json:"created_at"`

	ServiceTitle string `json:"service_title"`

	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
}
