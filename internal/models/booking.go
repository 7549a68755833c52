package models

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	UserID uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	User   Profile   `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	ProviderID uuid.UUID `gorm:"type:uuid;index" json:"provider_id"`
	Provider   Profile   `gorm:"foreignKey:ProviderID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"provider"`

	ServiceID uuid.UUID `gorm:"type:uuid;index" json:"service_id"`
	Service   Service   `gorm:"foreignKey:ServiceID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	ScheduledDate time.Time `json:"scheduled_date"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	Notes   string `gorm:"size:500" json:"notes"`
	Address string `gorm:"size:255" json:"address"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
