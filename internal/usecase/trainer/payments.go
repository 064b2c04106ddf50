package trainer

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/trainer-manager/internal/domain/trainer"
	"github.com/BruksfildServices01/trainer-manager/internal/events"
	"github.com/BruksfildServices01/trainer-manager/internal/httperr"
	"github.com/BruksfildServices01/trainer-manager/internal/models"
)

// ListPayments roda a varredura de vencidos antes de listar.
// status vazio devolve todos.
func (s *Service) ListPayments(ctx context.Context, status models.PaymentStatus) ([]models.Payment, models.PaymentSummary, error) {
	payments, err := s.store.ListPayments(ctx)
	if err != nil {
		return nil, models.PaymentSummary{}, err
	}

	summary := domain.SummarizePayments(payments)
	if status == "" {
		return payments, summary, nil
	}

	out := make([]models.Payment, 0, len(payments))
	for _, p := range payments {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out, summary, nil
}

func (s *Service) GetPayment(ctx context.Context, id uint) (*models.Payment, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return s.store.GetPayment(ctx, id)
}

func (s *Service) CreatePayment(ctx context.Context, in models.Payment) (*models.Payment, error) {
	domain.PaymentDefaults(&in)
	in.PaymentMethod = strings.TrimSpace(in.PaymentMethod)

	if err := s.check(in); err != nil {
		return nil, err
	}

	id, err := s.store.AddPayment(ctx, in)
	if err != nil {
		return nil, err
	}

	s.publish(events.PaymentsUpdated, "created", id)
	return s.store.GetPayment(ctx, id)
}

func (s *Service) UpdatePayment(ctx context.Context, id uint, patch models.PaymentPatch) (*models.Payment, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	if err := s.check(patch); err != nil {
		return nil, err
	}
	if _, err := s.store.GetPayment(ctx, id); err != nil {
		return nil, err
	}

	if !patch.IsEmpty() {
		if err := s.store.UpdatePayment(ctx, id, patch); err != nil {
			return nil, err
		}
		s.publish(events.PaymentsUpdated, "updated", id)
	}
	return s.store.GetPayment(ctx, id)
}

// MarkPaymentAsPaid grava status pago com o carimbo de agora.
// method vazio mantém o método já registrado. Pagamento já pago não é
// recarimbado, senão a receita mudaria de mês.
func (s *Service) MarkPaymentAsPaid(ctx context.Context, id uint, method string) (*models.Payment, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	current, err := s.store.GetPayment(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status == models.PaymentPaid {
		return nil, httperr.ErrBusiness(httperr.CodePaymentAlreadyPaid)
	}

	if err := s.store.MarkPaymentAsPaid(ctx, id, strings.TrimSpace(method)); err != nil {
		return nil, err
	}

	s.publish(events.PaymentsUpdated, "paid", id)
	return s.store.GetPayment(ctx, id)
}

func (s *Service) DeletePayment(ctx context.Context, id uint) error {
	if err := requireID(id); err != nil {
		return err
	}
	if _, err := s.store.GetPayment(ctx, id); err != nil {
		return err
	}
	if err := s.store.DeletePayment(ctx, id); err != nil {
		return err
	}

	s.publish(events.PaymentsUpdated, "deleted", id)
	return nil
}

func (s *Service) OverduePayments(ctx context.Context) ([]models.Payment, error) {
	return s.store.OverduePayments(ctx)
}

// SweepOverdue marca como vencidos os pendentes com vencimento passado.
// Usado pelo agendador; publica só quando algo mudou.
func (s *Service) SweepOverdue(ctx context.Context) (int64, error) {
	flipped, err := s.store.SweepOverdue(ctx)
	if err != nil {
		return 0, err
	}
	if flipped > 0 {
		s.publish(events.PaymentsUpdated, "overdue", 0)
	}
	return flipped, nil
}
