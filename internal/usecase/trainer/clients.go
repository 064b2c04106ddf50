package trainer

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/trainer-manager/internal/events"
	"github.com/BruksfildServices01/trainer-manager/internal/models"
)

// ListClients devolve os clientes por nome. query filtra por nome ou
// e-mail (sem diferenciar maiúsculas) ou por trecho do telefone.
func (s *Service) ListClients(ctx context.Context, query string) ([]models.Client, error) {
	clients, err := s.store.ListClients(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return clients, nil
	}

	q := strings.ToLower(query)
	out := make([]models.Client, 0, len(clients))
	for _, c := range clients {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(c.Phone, query) ||
			strings.Contains(strings.ToLower(c.Email), q) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *Service) GetClient(ctx context.Context, id uint) (*models.Client, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return s.store.GetClient(ctx, id)
}

func (s *Service) CreateClient(ctx context.Context, in models.Client) (*models.Client, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Email = strings.TrimSpace(in.Email)

	if err := s.check(in); err != nil {
		return nil, err
	}

	id, err := s.store.AddClient(ctx, in)
	if err != nil {
		return nil, err
	}

	s.publish(events.ClientsUpdated, "created", id)
	return s.store.GetClient(ctx, id)
}

// UpdateClient aplica a atualização parcial. Um id inexistente é ErrNotFound;
// uma atualização vazia não grava nada.
func (s *Service) UpdateClient(ctx context.Context, id uint, patch models.ClientPatch) (*models.Client, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	if err := s.check(patch); err != nil {
		return nil, err
	}
	if _, err := s.store.GetClient(ctx, id); err != nil {
		return nil, err
	}

	if !patch.IsEmpty() {
		if err := s.store.UpdateClient(ctx, id, patch); err != nil {
			return nil, err
		}
		s.publish(events.ClientsUpdated, "updated", id)
	}
	return s.store.GetClient(ctx, id)
}

// DeleteClient remove o cliente e, em cascata, seus pagamentos, sessões e lembretes.
func (s *Service) DeleteClient(ctx context.Context, id uint) error {
	if err := requireID(id); err != nil {
		return err
	}
	if _, err := s.store.GetClient(ctx, id); err != nil {
		return err
	}
	if err := s.store.DeleteClient(ctx, id); err != nil {
		return err
	}

	s.publish(events.ClientsUpdated, "deleted", id)
	s.publish(events.PaymentsUpdated, "client_deleted", id)
	s.publish(events.SessionsUpdated, "client_deleted", id)
	s.publish(events.RemindersUpdated, "client_deleted", id)
	return nil
}
