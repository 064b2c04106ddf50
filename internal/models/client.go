package models

import "time"

// Cliente do personal trainer. Nome e telefone são obrigatórios.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name" validate:"required"`
	Phone string `gorm:"size:30;not null" json:"phone" validate:"required"`
	Email string `gorm:"size:100" json:"email,omitempty" validate:"omitempty,email"`

	BirthDate        string `gorm:"size:10" json:"birth_date,omitempty"`
	EmergencyContact string `gorm:"size:100" json:"emergency_contact,omitempty"`
	Notes            string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
