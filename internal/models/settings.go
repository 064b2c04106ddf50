package models

import "time"

// Perfil do personal trainer
type Settings struct {
	Name      string    `json:"name" validate:"required"`
	Email     string    `json:"email" validate:"omitempty,email"`
	Phone     string    `json:"phone"`
	Bio       string    `json:"bio"`
	UpdatedAt time.Time `json:"updated_at"`
}
