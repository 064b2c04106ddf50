package models

import "time"

type SessionType string

const (
	SessionPersonal SessionType = "personal"
	SessionGroup    SessionType = "group"
	SessionOnline   SessionType = "online"
)

type SessionStatus string

const (
	SessionScheduled SessionStatus = "scheduled"
	SessionCompleted SessionStatus = "completed"
	SessionCancelled SessionStatus = "cancelled"
	SessionNoShow    SessionStatus = "no_show"
)

// Sessão de treino. Duração em minutos.
type Session struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint    `gorm:"not null;index" json:"client_id" validate:"required"`
	Client   *Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ClientName  string `gorm:"->;-:migration" json:"client_name,omitempty"`
	ClientPhone string `gorm:"->;-:migration" json:"client_phone,omitempty"`

	SessionDate string `gorm:"size:10;not null;index" json:"session_date" validate:"required,datetime=2006-01-02"`
	SessionTime string `gorm:"size:5;not null" json:"session_time" validate:"required,datetime=15:04"`
	Duration    int    `gorm:"not null" json:"duration" validate:"gt=0"`

	Type   SessionType   `gorm:"size:20;default:'personal'" json:"type" validate:"oneof=personal group online"`
	Status SessionStatus `gorm:"size:20;default:'scheduled'" json:"status" validate:"oneof=scheduled completed cancelled no_show"`
	Notes  string        `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
