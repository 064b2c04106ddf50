package trainer

import (
	"context"
	"fmt"

	domain "github.com/BruksfildServices01/trainer-manager/internal/domain/trainer"
	"github.com/BruksfildServices01/trainer-manager/internal/events"
	"github.com/BruksfildServices01/trainer-manager/internal/models"
	"github.com/BruksfildServices01/trainer-manager/internal/timezone"
)

type SessionRange string

const (
	RangeAll   SessionRange = ""
	RangeToday SessionRange = "today"
	RangeWeek  SessionRange = "week"
)

type SessionFilter struct {
	Range  SessionRange
	Status models.SessionStatus
}

// ListSessions devolve as sessões por data e hora, opcionalmente só as de hoje
// ou as da semana corrente (domingo a sábado).
func (s *Service) ListSessions(ctx context.Context, f SessionFilter) ([]models.Session, error) {
	var from, to string

	now := s.now()
	switch f.Range {
	case RangeAll, "all":
	case RangeToday:
		from, to = timezone.Today(now), timezone.Today(now)
	case RangeWeek:
		from, to = timezone.Week(now)
	default:
		return nil, fmt.Errorf("%w: unknown range %q", domain.ErrInvalidInput, f.Range)
	}

	sessions, err := s.store.ListSessions(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.Session, 0, len(sessions))
	for _, sess := range sessions {
		if from != "" && (sess.SessionDate < from || sess.SessionDate > to) {
			continue
		}
		if f.Status != "" && sess.Status != f.Status {
			continue
		}
		out = append(out, sess)
	}
	return out, nil
}

func (s *Service) GetSession(ctx context.Context, id uint) (*models.Session, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return s.store.GetSession(ctx, id)
}

func (s *Service) CreateSession(ctx context.Context, in models.Session) (*models.Session, error) {
	domain.SessionDefaults(&in)

	if err := s.check(in); err != nil {
		return nil, err
	}

	id, err := s.store.AddSession(ctx, in)
	if err != nil {
		return nil, err
	}

	s.publish(events.SessionsUpdated, "created", id)
	return s.store.GetSession(ctx, id)
}

func (s *Service) UpdateSession(ctx context.Context, id uint, patch models.SessionPatch) (*models.Session, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	if err := s.check(patch); err != nil {
		return nil, err
	}
	if _, err := s.store.GetSession(ctx, id); err != nil {
		return nil, err
	}

	if !patch.IsEmpty() {
		if err := s.store.UpdateSession(ctx, id, patch); err != nil {
			return nil, err
		}
		s.publish(events.SessionsUpdated, "updated", id)
	}
	return s.store.GetSession(ctx, id)
}

func (s *Service) DeleteSession(ctx context.Context, id uint) error {
	if err := requireID(id); err != nil {
		return err
	}
	if _, err := s.store.GetSession(ctx, id); err != nil {
		return err
	}
	if err := s.store.DeleteSession(ctx, id); err != nil {
		return err
	}

	s.publish(events.SessionsUpdated, "deleted", id)
	return nil
}

func (s *Service) TodaysSessions(ctx context.Context) ([]models.Session, error) {
	return s.store.TodaysSessions(ctx)
}
