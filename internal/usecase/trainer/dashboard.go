package trainer

import (
	"context"

	"github.com/BruksfildServices01/trainer-manager/internal/models"
)

// Dashboard junta o que a tela inicial mostra.
type Dashboard struct {
	Stats           models.DashboardStats `json:"stats"`
	OverduePayments []models.Payment      `json:"overdue_payments"`
	TodaysSessions  []models.Session      `json:"todays_sessions"`
}

// DashboardStats varre os vencidos antes de contar, para que pendentes e
// vencidos do painel batam com a lista de pagamentos.
func (s *Service) DashboardStats(ctx context.Context) (models.DashboardStats, error) {
	if _, err := s.SweepOverdue(ctx); err != nil {
		return models.DashboardStats{}, err
	}
	return s.store.DashboardStats(ctx)
}

func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	stats, err := s.DashboardStats(ctx)
	if err != nil {
		return nil, err
	}
	overdue, err := s.store.OverduePayments(ctx)
	if err != nil {
		return nil, err
	}
	today, err := s.store.TodaysSessions(ctx)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Stats:           stats,
		OverduePayments: overdue,
		TodaysSessions:  today,
	}, nil
}

// Snapshot devolve o dataset completo (backup e exportação).
func (s *Service) Snapshot(ctx context.Context) (*models.Dataset, error) {
	return s.store.Snapshot(ctx)
}
