package trainer

import (
	"time"

	"github.com/BruksfildServices01/trainer-manager/internal/models"
	"github.com/BruksfildServices01/trainer-manager/internal/timezone"
)

// UnknownClientName é usado quando o cliente dono do registro não existe mais.
const UnknownClientName = "Cliente desconocido"

// IsOverdue: pendente e com vencimento estritamente anterior a hoje.
// Datas ISO (YYYY-MM-DD) comparam corretamente como texto.
func IsOverdue(p models.Payment, today string) bool {
	return p.Status == models.PaymentPending && p.DueDate < today
}

// ===============================
// Domain Actions
// ===============================

// MarkPaid marca o pagamento como pago. Um método vazio preserva o atual.
func MarkPaid(p *models.Payment, method string, now time.Time) {
	p.Status = models.PaymentPaid
	p.PaidDate = timezone.Stamp(now)
	if method != "" {
		p.PaymentMethod = method
	}
}

// Defaults aplicados antes da validação, iguais aos DEFAULT do schema.

func PaymentDefaults(p *models.Payment) {
	if p.Status == "" {
		p.Status = models.PaymentPending
	}
}

func SessionDefaults(s *models.Session) {
	if s.Type == "" {
		s.Type = models.SessionPersonal
	}
	if s.Status == "" {
		s.Status = models.SessionScheduled
	}
}

func ReminderDefaults(r *models.Reminder) {
	if r.Type == "" {
		r.Type = models.ReminderGeneral
	}
	if r.Status == "" {
		r.Status = models.ReminderPending
	}
}
