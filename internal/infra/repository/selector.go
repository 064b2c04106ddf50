package repository

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/trainer-manager/internal/config"
	domain "github.com/BruksfildServices01/trainer-manager/internal/domain/trainer"
	"github.com/BruksfildServices01/trainer-manager/internal/infra/kv"
	"github.com/BruksfildServices01/trainer-manager/internal/timezone"
)

// Selector escolhe o backend uma única vez, na inicialização.
type Selector struct {
	Mode config.StorageMode

	// OpenRelational abre a conexão relacional (db.Open em produção)
	OpenRelational func() (*gorm.DB, error)
	KV             kv.Backend

	Clock  timezone.Clock
	Logger *slog.Logger
}

func (s Selector) Select(ctx context.Context) (domain.Store, error) {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}

	switch s.Mode {
	case config.StorageWeb:
		logger.Info("running in web mode, using key-value fallback")
		return s.fallback(ctx)

	case config.StorageRelational:
		return s.relational(ctx)

	case config.StorageAuto, "":
		store, err := s.relational(ctx)
		if err == nil {
			return store, nil
		}
		logger.Error("error initializing database, falling back to key-value storage", "error", err)
		return s.fallback(ctx)

	default:
		return nil, fmt.Errorf("unsupported STORAGE_MODE %q", s.Mode)
	}
}

func (s Selector) relational(ctx context.Context) (domain.Store, error) {
	if s.OpenRelational == nil {
		return nil, fmt.Errorf("relational backend not configured")
	}

	gdb, err := s.OpenRelational()
	if err != nil {
		return nil, err
	}

	store := NewTrainerGormRepository(gdb, s.Clock)
	if err := store.Init(ctx); err != nil {
		store.Close()
		return nil, err
	}
	return store, nil
}

func (s Selector) fallback(ctx context.Context) (domain.Store, error) {
	if s.KV == nil {
		return nil, fmt.Errorf("key-value backend not configured")
	}

	store := NewTrainerKVRepository(s.KV, s.Clock, s.Logger)
	if err := store.Init(ctx); err != nil {
		return nil, err
	}
	return store, nil
}
