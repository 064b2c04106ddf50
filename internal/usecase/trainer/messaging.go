package trainer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domain "github.com/BruksfildServices01/trainer-manager/internal/domain/trainer"
	"github.com/BruksfildServices01/trainer-manager/internal/events"
	"github.com/BruksfildServices01/trainer-manager/internal/models"
	"github.com/BruksfildServices01/trainer-manager/internal/timezone"
	"github.com/BruksfildServices01/trainer-manager/internal/whatsapp"
)

var ErrInvalidPhone = fmt.Errorf("%w: invalid phone number", domain.ErrInvalidInput)

// Dispatch é o resultado de um envio: a mensagem pronta (com o link wa.me)
// e o lembrete registrado.
type Dispatch struct {
	Message     whatsapp.Message `json:"message"`
	Reminder    *models.Reminder `json:"reminder"`
	CheckoutURL string           `json:"checkout_url,omitempty"`
}

func (s *Service) recipient(ctx context.Context, clientID uint) (*models.Client, error) {
	client, err := s.store.GetClient(ctx, clientID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrClientNotFound
	}
	if err != nil {
		return nil, err
	}
	if !whatsapp.IsValid(client.Phone) {
		return nil, ErrInvalidPhone
	}
	return client, nil
}

// record grava o lembrete como já enviado pelo WhatsApp.
func (s *Service) record(ctx context.Context, clientID uint, typ models.ReminderType, title string, msg whatsapp.Message) (*Dispatch, error) {
	now := s.now()

	rem := models.Reminder{
		ClientID:     clientID,
		Title:        title,
		Message:      msg.Text,
		ReminderDate: timezone.Today(now),
		ReminderTime: now.Format(timezone.TimeLayout),
		Type:         typ,
		Status:       models.ReminderSent,
		WhatsappSent: true,
	}

	id, err := s.store.AddReminder(ctx, rem)
	if err != nil {
		return nil, err
	}
	rem.ID = id
	rem.CreatedAt = now

	s.publish(events.RemindersUpdated, "sent", id)
	return &Dispatch{Message: msg, Reminder: &rem}, nil
}

// SendPaymentReminder monta o lembrete de um pagamento. Se houver checkout
// configurado e o pagamento estiver em aberto, o link de pagamento vai junto;
// uma falha no checkout não impede o lembrete.
func (s *Service) SendPaymentReminder(ctx context.Context, paymentID uint) (*Dispatch, error) {
	if err := requireID(paymentID); err != nil {
		return nil, err
	}

	p, err := s.store.GetPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	client, err := s.recipient(ctx, p.ClientID)
	if err != nil {
		return nil, err
	}

	var checkoutURL string
	if s.checkout != nil && p.Status != models.PaymentPaid {
		checkoutURL, err = s.checkout.PaymentLink(ctx, *p)
		if err != nil {
			s.logger.Warn("checkout link failed", "payment_id", p.ID, "error", err)
			checkoutURL = ""
		}
	}

	msg := s.whatsapp.PaymentReminder(*p, *client, s.today(), checkoutURL)

	d, err := s.record(ctx, client.ID, models.ReminderPayment, "Recordatorio de pago", msg)
	if err != nil {
		return nil, err
	}
	d.CheckoutURL = checkoutURL
	return d, nil
}

func (s *Service) SendSessionReminder(ctx context.Context, sessionID uint) (*Dispatch, error) {
	if err := requireID(sessionID); err != nil {
		return nil, err
	}

	sess, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	client, err := s.recipient(ctx, sess.ClientID)
	if err != nil {
		return nil, err
	}

	msg := s.whatsapp.SessionReminder(*sess, *client)
	return s.record(ctx, client.ID, models.ReminderSession, "Recordatorio de sesión", msg)
}

func (s *Service) SendCustomMessage(ctx context.Context, clientID uint, text string) (*Dispatch, error) {
	if err := requireID(clientID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: message is required", domain.ErrInvalidInput)
	}

	client, err := s.recipient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	msg := s.whatsapp.Custom(*client, text)
	return s.record(ctx, client.ID, models.ReminderGeneral, "Mensaje personalizado", msg)
}
