package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser     = "user"
	RoleProvider = "provider"
)

type Profile struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	FullName     string `gorm:"size:100;not null" json:"full_name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         string `gorm:"size:20;default:'user'" json:"role"`

	Phone          string `gorm:"size:20" json:"phone"`
	WhatsappNumber string `gorm:"size:20" json:"whatsapp_number"`
	Location       string `gorm:"size:100" json:"location"`

	EmailConfirmed bool `gorm:"default:false" json:"email_confirmed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
