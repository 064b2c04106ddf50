package trainer

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/trainer-manager/internal/domain/trainer"
	"github.com/BruksfildServices01/trainer-manager/internal/events"
	"github.com/BruksfildServices01/trainer-manager/internal/models"
)

func (s *Service) ListReminders(ctx context.Context) ([]models.Reminder, error) {
	return s.store.ListReminders(ctx)
}

func (s *Service) CreateReminder(ctx context.Context, in models.Reminder) (*models.Reminder, error) {
	domain.ReminderDefaults(&in)
	in.Title = strings.TrimSpace(in.Title)

	if err := s.check(in); err != nil {
		return nil, err
	}

	id, err := s.store.AddReminder(ctx, in)
	if err != nil {
		return nil, err
	}

	s.publish(events.RemindersUpdated, "created", id)
	in.ID = id
	in.CreatedAt = s.now()
	return &in, nil
}

// UpdateReminder aplica a atualização parcial; id inexistente não faz nada.
func (s *Service) UpdateReminder(ctx context.Context, id uint, patch models.ReminderPatch) error {
	if err := requireID(id); err != nil {
		return err
	}
	if err := s.check(patch); err != nil {
		return err
	}
	if patch.IsEmpty() {
		return nil
	}
	if err := s.store.UpdateReminder(ctx, id, patch); err != nil {
		return err
	}

	s.publish(events.RemindersUpdated, "updated", id)
	return nil
}

func (s *Service) DeleteReminder(ctx context.Context, id uint) error {
	if err := requireID(id); err != nil {
		return err
	}
	if err := s.store.DeleteReminder(ctx, id); err != nil {
		return err
	}

	s.publish(events.RemindersUpdated, "deleted", id)
	return nil
}
