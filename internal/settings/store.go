package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	domain "github.com/BruksfildServices01/trainer-manager/internal/domain/trainer"
	"github.com/BruksfildServices01/trainer-manager/internal/events"
	"github.com/BruksfildServices01/trainer-manager/internal/infra/kv"
	"github.com/BruksfildServices01/trainer-manager/internal/models"
	"github.com/BruksfildServices01/trainer-manager/internal/timezone"
)

// Key é onde o perfil do treinador fica guardado.
const Key = "trainerSettings"

type Store struct {
	kv       kv.Backend
	events   events.Publisher
	clock    timezone.Clock
	validate *validator.Validate
}

func NewStore(backend kv.Backend, publisher events.Publisher, clock timezone.Clock) *Store {
	return &Store{
		kv:       backend,
		events:   publisher,
		clock:    clock,
		validate: validator.New(),
	}
}

// Get devolve o perfil salvo, ou o valor zero se ainda não houver nenhum.
func (s *Store) Get(ctx context.Context) (models.Settings, error) {
	var out models.Settings

	raw, err := s.kv.Get(ctx, Key)
	if errors.Is(err, kv.ErrNotFound) {
		return out, nil
	}
	if err != nil {
		return out, err
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode %s: %w", Key, err)
	}
	return out, nil
}

func (s *Store) Save(ctx context.Context, in models.Settings) (models.Settings, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Bio = strings.TrimSpace(in.Bio)

	if err := s.validate.Struct(in); err != nil {
		return models.Settings{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	in.UpdatedAt = s.clock()

	raw, err := json.Marshal(in)
	if err != nil {
		return models.Settings{}, err
	}
	if err := s.kv.Set(ctx, Key, raw); err != nil {
		return models.Settings{}, err
	}

	if s.events != nil {
		s.events.Publish(events.Event{Topic: events.SettingsUpdated, Action: "updated", At: in.UpdatedAt})
	}
	return in, nil
}
