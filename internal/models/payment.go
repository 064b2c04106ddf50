package models

import "time"

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentOverdue PaymentStatus = "overdue"
)

type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint    `gorm:"not null;index" json:"client_id" validate:"required"`
	Client   *Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	// preenchidos por join (relacional) ou lookup (fallback)
	ClientName  string `gorm:"->;-:migration" json:"client_name,omitempty"`
	ClientPhone string `gorm:"->;-:migration" json:"client_phone,omitempty"`

	Amount  float64 `gorm:"not null" json:"amount" validate:"gt=0"`
	DueDate string  `gorm:"size:10;not null;index" json:"due_date" validate:"required,datetime=2006-01-02"`

	// RFC3339 quando marcado como pago pelo sistema
	PaidDate string `gorm:"size:35" json:"paid_date,omitempty"`

	Status        PaymentStatus `gorm:"size:20;default:'pending'" json:"status" validate:"oneof=pending paid overdue"`
	PaymentMethod string        `gorm:"size:50" json:"payment_method,omitempty"`
	Notes         string        `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
