package models

import "time"

type ReminderType string

const (
	ReminderPayment ReminderType = "payment"
	ReminderSession ReminderType = "session"
	ReminderGeneral ReminderType = "general"
)

type ReminderStatus string

const (
	ReminderPending ReminderStatus = "pending"
	ReminderSent    ReminderStatus = "sent"
	ReminderFailed  ReminderStatus = "failed"
)

type Reminder struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint    `gorm:"not null;index" json:"client_id" validate:"required"`
	Client   *Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ClientName string `gorm:"->;-:migration" json:"client_name,omitempty"`

	Title        string `gorm:"size:150;not null" json:"title" validate:"required"`
	Message      string `gorm:"not null" json:"message" validate:"required"`
	ReminderDate string `gorm:"size:10;not null" json:"reminder_date" validate:"required,datetime=2006-01-02"`
	ReminderTime string `gorm:"size:5;not null" json:"reminder_time" validate:"required,datetime=15:04"`

	Type         ReminderType   `gorm:"size:20;default:'general'" json:"type" validate:"oneof=payment session general"`
	Status       ReminderStatus `gorm:"size:20;default:'pending'" json:"status" validate:"oneof=pending sent failed"`
	WhatsappSent bool           `gorm:"default:false" json:"whatsapp_sent"`

	CreatedAt time.Time `json:"created_at"`
}
