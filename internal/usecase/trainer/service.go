// Package trainer is the application service of the trainer manager: it
// validates input, calls the Store and publishes change notifications.
package trainer

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/trainer-manager/internal/checkout"
	domain "github.com/BruksfildServices01/trainer-manager/internal/domain/trainer"
	"github.com/BruksfildServices01/trainer-manager/internal/events"
	"github.com/BruksfildServices01/trainer-manager/internal/timezone"
	"github.com/BruksfildServices01/trainer-manager/internal/whatsapp"
)

// ======================================================
// SERVICE
// ======================================================

type Service struct {
	store    domain.Store
	events   events.Publisher
	clock    timezone.Clock
	logger   *slog.Logger
	validate *validator.Validate

	whatsapp *whatsapp.Formatter
	checkout checkout.LinkProvider
}

type Options struct {
	Store  domain.Store
	Events events.Publisher
	Clock  timezone.Clock
	Logger *slog.Logger

	WhatsApp *whatsapp.Formatter
	// opcional: sem ele os lembretes de pagamento saem sem link de checkout
	Checkout checkout.LinkProvider
}

func NewService(opts Options) *Service {
	s := &Service{
		store:    opts.Store,
		events:   opts.Events,
		clock:    opts.Clock,
		logger:   opts.Logger,
		validate: validator.New(),
		whatsapp: opts.WhatsApp,
		checkout: opts.Checkout,
	}

	if s.clock == nil {
		s.clock = timezone.ClockIn(timezone.DefaultTimezone)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.whatsapp == nil {
		s.whatsapp = whatsapp.NewFormatter("")
	}
	return s
}

func (s *Service) Store() domain.Store {
	return s.store
}

func (s *Service) today() string {
	return timezone.Today(s.clock())
}

func (s *Service) check(v any) error {
	if err := s.validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

func (s *Service) publish(topic events.Topic, action string, id uint) {
	if s.events == nil {
		return
	}
	s.events.Publish(events.Event{
		Topic:  topic,
		Action: action,
		ID:     id,
		At:     s.clock(),
	})
}

// ids em rota nunca são zero
func requireID(id uint) error {
	if id == 0 {
		return fmt.Errorf("%w: id must be positive", domain.ErrInvalidInput)
	}
	return nil
}

func (s *Service) now() time.Time {
	return s.clock()
}
