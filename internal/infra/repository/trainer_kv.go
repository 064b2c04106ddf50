package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	domain "github.com/BruksfildServices01/trainer-manager/internal/domain/trainer"
	"github.com/BruksfildServices01/trainer-manager/internal/infra/kv"
	"github.com/BruksfildServices01/trainer-manager/internal/models"
	"github.com/BruksfildServices01/trainer-manager/internal/timezone"
)

// DatasetKey é a chave única onde o fallback guarda os quatro arrays.
const DatasetKey = "trainerDB"

// TrainerKVRepository guarda todo o dataset como um único documento JSON
// num backend chave-valor. Cada mutação lê, altera e regrava o documento inteiro.
type TrainerKVRepository struct {
	kv     kv.Backend
	clock  timezone.Clock
	logger *slog.Logger

	mu sync.Mutex
}

func NewTrainerKVRepository(backend kv.Backend, clock timezone.Clock, logger *slog.Logger) *TrainerKVRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &TrainerKVRepository{kv: backend, clock: clock, logger: logger}
}

func (r *TrainerKVRepository) Backend() domain.Backend {
	return domain.BackendFallback
}

// --------------------------------------------------
// Store document
// --------------------------------------------------

// Init grava os dados de exemplo somente quando ainda não existe nada.
func (r *TrainerKVRepository) Init(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.kv.Get(ctx, DatasetKey)
	if err == nil {
		return nil
	}
	if !errors.Is(err, kv.ErrNotFound) {
		return err
	}

	r.logger.Info("seeding fallback store", "key", DatasetKey)
	seed := domain.SeedDataset(r.clock())
	return r.save(ctx, &seed)
}

func (r *TrainerKVRepository) Close() error {
	return r.kv.Close()
}

// load lê o documento; se não existir cria um vazio (inicialização preguiçosa).
func (r *TrainerKVRepository) load(ctx context.Context) (*models.Dataset, error) {
	raw, err := r.kv.Get(ctx, DatasetKey)
	if errors.Is(err, kv.ErrNotFound) {
		ds := emptyDataset()
		if err := r.save(ctx, ds); err != nil {
			return nil, err
		}
		return ds, nil
	}
	if err != nil {
		return nil, err
	}

	ds := emptyDataset()
	if err := json.Unmarshal(raw, ds); err != nil {
		return nil, fmt.Errorf("decode %s: %w", DatasetKey, err)
	}
	return ds, nil
}

func (r *TrainerKVRepository) save(ctx context.Context, ds *models.Dataset) error {
	raw, err := json.Marshal(ds)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, DatasetKey, raw)
}

func (r *TrainerKVRepository) read(ctx context.Context) (*models.Dataset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

// mutate aplica fn e regrava o documento somente se fn reportar mudança.
func (r *TrainerKVRepository) mutate(ctx context.Context, fn func(ds *models.Dataset) (bool, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ds, err := r.load(ctx)
	if err != nil {
		return err
	}

	changed, err := fn(ds)
	if err != nil || !changed {
		return err
	}
	return r.save(ctx, ds)
}

func emptyDataset() *models.Dataset {
	return &models.Dataset{
		Clients:   []models.Client{},
		Payments:  []models.Payment{},
		Sessions:  []models.Session{},
		Reminders: []models.Reminder{},
	}
}

func nextID[T any](items []T, id func(T) uint) uint {
	var max uint
	for _, it := range items {
		if v := id(it); v > max {
			max = v
		}
	}
	return max + 1
}

func hasClient(ds *models.Dataset, id uint) bool {
	for _, c := range ds.Clients {
		if c.ID == id {
			return true
		}
	}
	return false
}

func clientIndex(ds *models.Dataset) map[uint]models.Client {
	idx := make(map[uint]models.Client, len(ds.Clients))
	for _, c := range ds.Clients {
		idx[c.ID] = c
	}
	return idx
}

func decoratePayment(p models.Payment, clients map[uint]models.Client) models.Payment {
	if c, ok := clients[p.ClientID]; ok {
		p.ClientName, p.ClientPhone = c.Name, c.Phone
	} else {
		p.ClientName, p.ClientPhone = domain.UnknownClientName, ""
	}
	return p
}

func decorateSession(s models.Session, clients map[uint]models.Client) models.Session {
	if c, ok := clients[s.ClientID]; ok {
		s.ClientName, s.ClientPhone = c.Name, c.Phone
	} else {
		s.ClientName, s.ClientPhone = domain.UnknownClientName, ""
	}
	return s
}

// --------------------------------------------------
// Clients
// --------------------------------------------------

func (r *TrainerKVRepository) ListClients(ctx context.Context) ([]models.Client, error) {
	ds, err := r.read(ctx)
	if err != nil {
		return nil, err
	}

	clients := append([]models.Client{}, ds.Clients...)
	domain.SortClients(clients)
	return clients, nil
}

func (r *TrainerKVRepository) GetClient(ctx context.Context, id uint) (*models.Client, error) {
	ds, err := r.read(ctx)
	if err != nil {
		return nil, err
	}

	for _, c := range ds.Clients {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *TrainerKVRepository) AddClient(ctx context.Context, c models.Client) (uint, error) {
	err := r.mutate(ctx, func(ds *models.Dataset) (bool, error) {
		now := r.clock()
		c.ID = nextID(ds.Clients, func(c models.Client) uint { return c.ID })
		c.CreatedAt, c.UpdatedAt = now, now
		ds.Clients = append(ds.Clients, c)
		return true, nil
	})
	if err != nil {
		return 0, err
	}
	return c.ID, nil
}

func (r *TrainerKVRepository) UpdateClient(ctx context.Context, id uint, patch models.ClientPatch) error {
	if patch.IsEmpty() {
		return nil
	}

	return r.mutate(ctx, func(ds *models.Dataset) (bool, error) {
		for i := range ds.Clients {
			if ds.Clients[i].ID == id {
				patch.Apply(&ds.Clients[i])
				ds.Clients[i].UpdatedAt = r.clock()
				return true, nil
			}
		}
		return false, nil
	})
}

// DeleteClient remove o cliente e os registros dependentes,
// igual ao ON DELETE CASCADE do backend relacional.
func (r *TrainerKVRepository) DeleteClient(ctx context.Context, id uint) error {
	return r.mutate(ctx, func(ds *models.Dataset) (bool, error) {
		if !hasClient(ds, id) {
			return false, nil
		}

		ds.Clients = filter(ds.Clients, func(c models.Client) bool { return c.ID != id })
		ds.Payments = filter(ds.Payments, func(p models.Payment) bool { return p.ClientID != id })
		ds.Sessions = filter(ds.Sessions, func(s models.Session) bool { return s.ClientID != id })
		ds.Reminders = filter(ds.Reminders, func(rm models.Reminder) bool { return rm.ClientID != id })
		return true, nil
	})
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// --------------------------------------------------
// Payments
// --------------------------------------------------

func sweep(ds *models.Dataset, today string) int64 {
	var flipped int64
	for i := range ds.Payments {
		if domain.IsOverdue(ds.Payments[i], today) {
			ds.Payments[i].Status = models.PaymentOverdue
			flipped++
		}
	}
	return flipped
}

func (r *TrainerKVRepository) SweepOverdue(ctx context.Context) (int64, error) {
	var flipped int64
	err := r.mutate(ctx, func(ds *models.Dataset) (bool, error) {
		flipped = sweep(ds, timezone.Today(r.clock()))
		return flipped > 0, nil
	})
	return flipped, err
}

func (r *TrainerKVRepository) ListPayments(ctx context.Context) ([]models.Payment, error) {
	var payments []models.Payment

	err := r.mutate(ctx, func(ds *models.Dataset) (bool, error) {
		flipped := sweep(ds, timezone.Today(r.clock()))

		clients := clientIndex(ds)
		payments = make([]models.Payment, 0, len(ds.Payments))
		for _, p := range ds.Payments {
			payments = append(payments, decoratePayment(p, clients))
		}
		return flipped > 0, nil
	})
	if err != nil {
		return nil, err
	}

	domain.SortPayments(payments)
	return payments, nil
}

func (r *TrainerKVRepository) GetPayment(ctx context.Context, id uint) (*models.Payment, error) {
	ds, err := r.read(ctx)
	if err != nil {
		return nil, err
	}

	for _, p := range ds.Payments {
		if p.ID == id {
			p = decoratePayment(p, clientIndex(ds))
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *TrainerKVRepository) AddPayment(ctx context.Context, p models.Payment) (uint, error) {
	err := r.mutate(ctx, func(ds *models.Dataset) (bool, error) {
		if !hasClient(ds, p.ClientID) {
			return false, domain.ErrClientNotFound
		}
		p.ID = nextID(ds.Payments, func(p models.Payment) uint { return p.ID })
		p.ClientName, p.ClientPhone = "", ""
		p.CreatedAt = r.clock()
		ds.Payments = append(ds.Payments, p)
		return true, nil
	})
	if err != nil {
		return 0, err
	}
	return p.ID, nil
}

func (r *TrainerKVRepository) UpdatePayment(ctx context.Context, id uint, patch models.PaymentPatch) error {
	if patch.IsEmpty() {
		return nil
	}

	return r.mutate(ctx, func(ds *models.Dataset) (bool, error) {
		for i := range ds.Payments {
			if ds.Payments[i].ID == id {
				patch.Apply(&ds.Payments[i])
				return true, nil
			}
		}
		return false, nil
	})
}

func (r *TrainerKVRepository) MarkPaymentAsPaid(ctx context.Context, id uint, method string) error {
	return r.mutate(ctx, func(ds *models.Dataset) (bool, error) {
		for i := range ds.Payments {
			if ds.Payments[i].ID == id {
				domain.MarkPaid(&ds.Payments[i], method, r.clock())
				return true, nil
			}
		}
		return false, nil
	})
}

func (r *TrainerKVRepository) DeletePayment(ctx context.Context, id uint) error {
	return r.mutate(ctx, func(ds *models.Dataset) (bool, error) {
		before := len(ds.Payments)
		ds.Payments = filter(ds.Payments, func(p models.Payment) bool { return p.ID != id })
		return len(ds.Payments) != before, nil
	})
}

func (r *TrainerKVRepository) OverduePayments(ctx context.Context) ([]models.Payment, error) {
	ds, err := r.read(ctx)
	if err != nil {
		return nil, err
	}

	today := timezone.Today(r.clock())
	clients := clientIndex(ds)

	out := []models.Payment{}
	for _, p := range ds.Payments {
		if p.Status == models.PaymentOverdue || domain.IsOverdue(p, today) {
			out = append(out, decoratePayment(p, clients))
		}
	}
	domain.SortPaymentsByDueAsc(out)
	return out, nil
}

// --------------------------------------------------
// Sessions
// --------------------------------------------------

func (r *TrainerKVRepository) ListSessions(ctx context.Context) ([]models.Session, error) {
	ds, err := r.read(ctx)
	if err != nil {
		return nil, err
	}

	clients := clientIndex(ds)
	sessions := make([]models.Session, 0, len(ds.Sessions))
	for _, s := range ds.Sessions {
		sessions = append(sessions, decorateSession(s, clients))
	}
	domain.SortSessions(sessions)
	return sessions, nil
}

func (r *TrainerKVRepository) GetSession(ctx context.Context, id uint) (*models.Session, error) {
	ds, err := r.read(ctx)
	if err != nil {
		return nil, err
	}

	for _, s := range ds.Sessions {
		if s.ID == id {
			s = decorateSession(s, clientIndex(ds))
			return &s, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *TrainerKVRepository) AddSession(ctx context.Context, s models.Session) (uint, error) {
	err := r.mutate(ctx, func(ds *models.Dataset) (bool, error) {
		if !hasClient(ds, s.ClientID) {
			return false, domain.ErrClientNotFound
		}
		s.ID = nextID(ds.Sessions, func(s models.Session) uint { return s.ID })
		s.ClientName, s.ClientPhone = "", ""
		s.CreatedAt = r.clock()
		ds.Sessions = append(ds.Sessions, s)
		return true, nil
	})
	if err != nil {
		return 0, err
	}
	return s.ID, nil
}

func (r *TrainerKVRepository) UpdateSession(ctx context.Context, id uint, patch models.SessionPatch) error {
	if patch.IsEmpty() {
		return nil
	}

	return r.mutate(ctx, func(ds *models.Dataset) (bool, error) {
		for i := range ds.Sessions {
			if ds.Sessions[i].ID == id {
				patch.Apply(&ds.Sessions[i])
				return true, nil
			}
		}
		return false, nil
	})
}

func (r *TrainerKVRepository) DeleteSession(ctx context.Context, id uint) error {
	return r.mutate(ctx, func(ds *models.Dataset) (bool, error) {
		before := len(ds.Sessions)
		ds.Sessions = filter(ds.Sessions, func(s models.Session) bool { return s.ID != id })
		return len(ds.Sessions) != before, nil
	})
}

func (r *TrainerKVRepository) TodaysSessions(ctx context.Context) ([]models.Session, error) {
	ds, err := r.read(ctx)
	if err != nil {
		return nil, err
	}

	today := timezone.Today(r.clock())
	clients := clientIndex(ds)

	out := []models.Session{}
	for _, s := range ds.Sessions {
		if s.SessionDate == today && s.Status == models.SessionScheduled {
			out = append(out, decorateSession(s, clients))
		}
	}
	domain.SortSessions(out)
	return out, nil
}

// --------------------------------------------------
// Reminders
// --------------------------------------------------

func (r *TrainerKVRepository) ListReminders(ctx context.Context) ([]models.Reminder, error) {
	ds, err := r.read(ctx)
	if err != nil {
		return nil, err
	}

	clients := clientIndex(ds)
	reminders := make([]models.Reminder, 0, len(ds.Reminders))
	for _, rm := range ds.Reminders {
		if c, ok := clients[rm.ClientID]; ok {
			rm.ClientName = c.Name
		} else {
			rm.ClientName = domain.UnknownClientName
		}
		reminders = append(reminders, rm)
	}
	domain.SortReminders(reminders)
	return reminders, nil
}

func (r *TrainerKVRepository) AddReminder(ctx context.Context, rm models.Reminder) (uint, error) {
	err := r.mutate(ctx, func(ds *models.Dataset) (bool, error) {
		if !hasClient(ds, rm.ClientID) {
			return false, domain.ErrClientNotFound
		}
		rm.ID = nextID(ds.Reminders, func(rm models.Reminder) uint { return rm.ID })
		rm.ClientName = ""
		rm.CreatedAt = r.clock()
		ds.Reminders = append(ds.Reminders, rm)
		return true, nil
	})
	if err != nil {
		return 0, err
	}
	return rm.ID, nil
}

func (r *TrainerKVRepository) UpdateReminder(ctx context.Context, id uint, patch models.ReminderPatch) error {
	if patch.IsEmpty() {
		return nil
	}

	return r.mutate(ctx, func(ds *models.Dataset) (bool, error) {
		for i := range ds.Reminders {
			if ds.Reminders[i].ID == id {
				patch.Apply(&ds.Reminders[i])
				return true, nil
			}
		}
		return false, nil
	})
}

func (r *TrainerKVRepository) DeleteReminder(ctx context.Context, id uint) error {
	return r.mutate(ctx, func(ds *models.Dataset) (bool, error) {
		before := len(ds.Reminders)
		ds.Reminders = filter(ds.Reminders, func(rm models.Reminder) bool { return rm.ID != id })
		return len(ds.Reminders) != before, nil
	})
}

// --------------------------------------------------
// Dashboard
// --------------------------------------------------

func (r *TrainerKVRepository) DashboardStats(ctx context.Context) (models.DashboardStats, error) {
	ds, err := r.read(ctx)
	if err != nil {
		return models.DashboardStats{}, err
	}
	return domain.ComputeStats(*ds, r.clock()), nil
}

func (r *TrainerKVRepository) Snapshot(ctx context.Context) (*models.Dataset, error) {
	return r.read(ctx)
}

// Compile-time check
var _ domain.Store = (*TrainerKVRepository)(nil)
