package trainer

import (
	"context"

	"github.com/BruksfildServices01/trainer-manager/internal/models"
)

type Backend string

const (
	BackendRelational Backend = "relational"
	BackendFallback   Backend = "fallback"
)

// Store é o contrato de acesso a dados. As duas implementações
// (relacional e chave-valor) devolvem os mesmos formatos e a mesma ordenação.
type Store interface {
	Backend() Backend

	// Init prepara o armazenamento (schema ou dados de exemplo). Idempotente.
	Init(ctx context.Context) error
	Close() error

	// -------- Clients --------
	ListClients(ctx context.Context) ([]models.Client, error)
	GetClient(ctx context.Context, id uint) (*models.Client, error)
	AddClient(ctx context.Context, c models.Client) (uint, error)
	UpdateClient(ctx context.Context, id uint, patch models.ClientPatch) error
	DeleteClient(ctx context.Context, id uint) error

	// -------- Payments --------

	// ListPayments executa a varredura de vencidos antes de listar.
	ListPayments(ctx context.Context) ([]models.Payment, error)
	GetPayment(ctx context.Context, id uint) (*models.Payment, error)
	AddPayment(ctx context.Context, p models.Payment) (uint, error)
	UpdatePayment(ctx context.Context, id uint, patch models.PaymentPatch) error
	MarkPaymentAsPaid(ctx context.Context, id uint, method string) error
	DeletePayment(ctx context.Context, id uint) error
	SweepOverdue(ctx context.Context) (int64, error)
	OverduePayments(ctx context.Context) ([]models.Payment, error)

	// -------- Sessions --------
	ListSessions(ctx context.Context) ([]models.Session, error)
	GetSession(ctx context.Context, id uint) (*models.Session, error)
	AddSession(ctx context.Context, s models.Session) (uint, error)
	UpdateSession(ctx context.Context, id uint, patch models.SessionPatch) error
	DeleteSession(ctx context.Context, id uint) error
	TodaysSessions(ctx context.Context) ([]models.Session, error)

	// -------- Reminders --------
	ListReminders(ctx context.Context) ([]models.Reminder, error)
	AddReminder(ctx context.Context, r models.Reminder) (uint, error)
	UpdateReminder(ctx context.Context, id uint, patch models.ReminderPatch) error
	DeleteReminder(ctx context.Context, id uint) error

	// -------- Aggregation --------
	DashboardStats(ctx context.Context) (models.DashboardStats, error)
	Snapshot(ctx context.Context) (*models.Dataset, error)
}
