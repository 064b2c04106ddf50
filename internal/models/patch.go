package models

// Atualizações parciais: somente os campos não-nil são alterados.

type ClientPatch struct {
	Name             *string `json:"name" validate:"omitempty,min=1"`
	Phone            *string `json:"phone" validate:"omitempty,min=1"`
	Email            *string `json:"email" validate:"omitempty,email"`
	BirthDate        *string `json:"birth_date"`
	EmergencyContact *string `json:"emergency_contact"`
	Notes            *string `json:"notes"`
}

func (p ClientPatch) IsEmpty() bool {
	return len(p.Columns()) == 0
}

func (p ClientPatch) Columns() map[string]any {
	cols := map[string]any{}
	setString(cols, "name", p.Name)
	setString(cols, "phone", p.Phone)
	setString(cols, "email", p.Email)
	setString(cols, "birth_date", p.BirthDate)
	setString(cols, "emergency_contact", p.EmergencyContact)
	setString(cols, "notes", p.Notes)
	return cols
}

func (p ClientPatch) Apply(c *Client) {
	applyString(&c.Name, p.Name)
	applyString(&c.Phone, p.Phone)
	applyString(&c.Email, p.Email)
	applyString(&c.BirthDate, p.BirthDate)
	applyString(&c.EmergencyContact, p.EmergencyContact)
	applyString(&c.Notes, p.Notes)
}

type PaymentPatch struct {
	Amount        *float64       `json:"amount" validate:"omitempty,gt=0"`
	DueDate       *string        `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	PaidDate      *string        `json:"paid_date"`
	Status        *PaymentStatus `json:"status" validate:"omitempty,oneof=pending paid overdue"`
	PaymentMethod *string        `json:"payment_method"`
	Notes         *string        `json:"notes"`
}

func (p PaymentPatch) IsEmpty() bool {
	return len(p.Columns()) == 0
}

func (p PaymentPatch) Columns() map[string]any {
	cols := map[string]any{}
	if p.Amount != nil {
		cols["amount"] = *p.Amount
	}
	setString(cols, "due_date", p.DueDate)
	setString(cols, "paid_date", p.PaidDate)
	if p.Status != nil {
		cols["status"] = *p.Status
	}
	setString(cols, "payment_method", p.PaymentMethod)
	setString(cols, "notes", p.Notes)
	return cols
}

func (p PaymentPatch) Apply(pay *Payment) {
	if p.Amount != nil {
		pay.Amount = *p.Amount
	}
	applyString(&pay.DueDate, p.DueDate)
	applyString(&pay.PaidDate, p.PaidDate)
	if p.Status != nil {
		pay.Status = *p.Status
	}
	applyString(&pay.PaymentMethod, p.PaymentMethod)
	applyString(&pay.Notes, p.Notes)
}

type SessionPatch struct {
	SessionDate *string        `json:"session_date" validate:"omitempty,datetime=2006-01-02"`
	SessionTime *string        `json:"session_time" validate:"omitempty,datetime=15:04"`
	Duration    *int           `json:"duration" validate:"omitempty,gt=0"`
	Type        *SessionType   `json:"type" validate:"omitempty,oneof=personal group online"`
	Status      *SessionStatus `json:"status" validate:"omitempty,oneof=scheduled completed cancelled no_show"`
	Notes       *string        `json:"notes"`
}

func (p SessionPatch) IsEmpty() bool {
	return len(p.Columns()) == 0
}

func (p SessionPatch) Columns() map[string]any {
	cols := map[string]any{}
	setString(cols, "session_date", p.SessionDate)
	setString(cols, "session_time", p.SessionTime)
	if p.Duration != nil {
		cols["duration"] = *p.Duration
	}
	if p.Type != nil {
		cols["type"] = *p.Type
	}
	if p.Status != nil {
		cols["status"] = *p.Status
	}
	setString(cols, "notes", p.Notes)
	return cols
}

func (p SessionPatch) Apply(s *Session) {
	applyString(&s.SessionDate, p.SessionDate)
	applyString(&s.SessionTime, p.SessionTime)
	if p.Duration != nil {
		s.Duration = *p.Duration
	}
	if p.Type != nil {
		s.Type = *p.Type
	}
	if p.Status != nil {
		s.Status = *p.Status
	}
	applyString(&s.Notes, p.Notes)
}

type ReminderPatch struct {
	Title        *string         `json:"title" validate:"omitempty,min=1"`
	Message      *string         `json:"message" validate:"omitempty,min=1"`
	ReminderDate *string         `json:"reminder_date" validate:"omitempty,datetime=2006-01-02"`
	ReminderTime *string         `json:"reminder_time" validate:"omitempty,datetime=15:04"`
	Type         *ReminderType   `json:"type" validate:"omitempty,oneof=payment session general"`
	Status       *ReminderStatus `json:"status" validate:"omitempty,oneof=pending sent failed"`
	WhatsappSent *bool           `json:"whatsapp_sent"`
}

func (p ReminderPatch) IsEmpty() bool {
	return len(p.Columns()) == 0
}

func (p ReminderPatch) Columns() map[string]any {
	cols := map[string]any{}
	setString(cols, "title", p.Title)
	setString(cols, "message", p.Message)
	setString(cols, "reminder_date", p.ReminderDate)
	setString(cols, "reminder_time", p.ReminderTime)
	if p.Type != nil {
		cols["type"] = *p.Type
	}
	if p.Status != nil {
		cols["status"] = *p.Status
	}
	if p.WhatsappSent != nil {
		cols["whatsapp_sent"] = *p.WhatsappSent
	}
	return cols
}

func (p ReminderPatch) Apply(r *Reminder) {
	applyString(&r.Title, p.Title)
	applyString(&r.Message, p.Message)
	applyString(&r.ReminderDate, p.ReminderDate)
	applyString(&r.ReminderTime, p.ReminderTime)
	if p.Type != nil {
		r.Type = *p.Type
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
	if p.WhatsappSent != nil {
		r.WhatsappSent = *p.WhatsappSent
	}
}

func setString(cols map[string]any, col string, v *string) {
	if v != nil {
		cols[col] = *v
	}
}

func applyString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
