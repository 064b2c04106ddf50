package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/trainer-manager/internal/domain/trainer"
	"github.com/BruksfildServices01/trainer-manager/internal/models"
	"github.com/BruksfildServices01/trainer-manager/internal/timezone"
)

const clientNameColumn = "COALESCE(clients.name, '" + domain.UnknownClientName + "') AS client_name"

type TrainerGormRepository struct {
	db          *gorm.DB
	clock       timezone.Clock
	initialized bool
}

func NewTrainerGormRepository(db *gorm.DB, clock timezone.Clock) *TrainerGormRepository {
	return &TrainerGormRepository{db: db, clock: clock}
}

func (r *TrainerGormRepository) Backend() domain.Backend {
	return domain.BackendRelational
}

// --------------------------------------------------
// Schema
// --------------------------------------------------

// Init cria as quatro tabelas (se não existirem) com chaves estrangeiras
// ON DELETE CASCADE para clients.
func (r *TrainerGormRepository) Init(ctx context.Context) error {
	if r.db == nil {
		return domain.ErrNotInitialized
	}

	if err := r.db.WithContext(ctx).AutoMigrate(
		&models.Client{},
		&models.Payment{},
		&models.Session{},
		&models.Reminder{},
	); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	r.initialized = true
	return nil
}

func (r *TrainerGormRepository) Close() error {
	if r.db == nil {
		return nil
	}
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (r *TrainerGormRepository) conn(ctx context.Context) (*gorm.DB, error) {
	if r.db == nil || !r.initialized {
		return nil, domain.ErrNotInitialized
	}
	return r.db.WithContext(ctx), nil
}

func (r *TrainerGormRepository) today() string {
	return timezone.Today(r.clock())
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

func (r *TrainerGormRepository) assertClient(db *gorm.DB, clientID uint) error {
	var count int64
	if err := db.Model(&models.Client{}).Where("id = ?", clientID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

func insertError(err error) error {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return domain.ErrClientNotFound
	}
	return err
}

// --------------------------------------------------
// Clients
// --------------------------------------------------

func (r *TrainerGormRepository) ListClients(ctx context.Context) ([]models.Client, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}

	clients := []models.Client{}
	if err := db.Order("name ASC").Order("id ASC").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *TrainerGormRepository) GetClient(ctx context.Context, id uint) (*models.Client, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}

	var c models.Client
	if err := db.First(&c, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

func (r *TrainerGormRepository) AddClient(ctx context.Context, c models.Client) (uint, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return 0, err
	}

	now := r.clock()
	c.ID = 0
	c.CreatedAt, c.UpdatedAt = now, now
	if err := db.Create(&c).Error; err != nil {
		return 0, err
	}
	return c.ID, nil
}

func (r *TrainerGormRepository) UpdateClient(ctx context.Context, id uint, patch models.ClientPatch) error {
	db, err := r.conn(ctx)
	if err != nil {
		return err
	}
	if patch.IsEmpty() {
		return nil
	}

	cols := patch.Columns()
	cols["updated_at"] = r.clock()

	return db.Model(&models.Client{}).Where("id = ?", id).Updates(cols).Error
}

// DeleteClient remove o cliente; pagamentos, sessões e lembretes
// caem junto pelo ON DELETE CASCADE.
func (r *TrainerGormRepository) DeleteClient(ctx context.Context, id uint) error {
	db, err := r.conn(ctx)
	if err != nil {
		return err
	}
	return db.Delete(&models.Client{}, id).Error
}

// --------------------------------------------------
// Payments
// --------------------------------------------------

func (r *TrainerGormRepository) paymentsWithClient(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Payment{}).
		Select("payments.*, " + clientNameColumn + ", clients.phone AS client_phone").
		Joins("LEFT JOIN clients ON clients.id = payments.client_id")
}

func (r *TrainerGormRepository) SweepOverdue(ctx context.Context) (int64, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return 0, err
	}

	res := db.Model(&models.Payment{}).
		Where("status = ? AND due_date < ?", models.PaymentPending, r.today()).
		Update("status", models.PaymentOverdue)

	return res.RowsAffected, res.Error
}

func (r *TrainerGormRepository) ListPayments(ctx context.Context) ([]models.Payment, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := r.SweepOverdue(ctx); err != nil {
		return nil, err
	}

	payments := []models.Payment{}
	if err := r.paymentsWithClient(db).
		Order("payments.due_date DESC").
		Order("payments.id ASC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *TrainerGormRepository) GetPayment(ctx context.Context, id uint) (*models.Payment, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}

	var p models.Payment
	if err := r.paymentsWithClient(db).
		Where("payments.id = ?", id).
		First(&p).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (r *TrainerGormRepository) AddPayment(ctx context.Context, p models.Payment) (uint, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return 0, err
	}
	if err := r.assertClient(db, p.ClientID); err != nil {
		return 0, err
	}

	p.ID = 0
	p.ClientName, p.ClientPhone = "", ""
	p.CreatedAt = r.clock()
	if err := db.Create(&p).Error; err != nil {
		return 0, insertError(err)
	}
	return p.ID, nil
}

func (r *TrainerGormRepository) UpdatePayment(ctx context.Context, id uint, patch models.PaymentPatch) error {
	db, err := r.conn(ctx)
	if err != nil {
		return err
	}
	if patch.IsEmpty() {
		return nil
	}
	return db.Model(&models.Payment{}).Where("id = ?", id).Updates(patch.Columns()).Error
}

func (r *TrainerGormRepository) MarkPaymentAsPaid(ctx context.Context, id uint, method string) error {
	db, err := r.conn(ctx)
	if err != nil {
		return err
	}

	var p models.Payment
	domain.MarkPaid(&p, method, r.clock())

	cols := map[string]any{
		"status":    p.Status,
		"paid_date": p.PaidDate,
	}
	if method != "" {
		cols["payment_method"] = method
	}

	return db.Model(&models.Payment{}).Where("id = ?", id).Updates(cols).Error
}

func (r *TrainerGormRepository) DeletePayment(ctx context.Context, id uint) error {
	db, err := r.conn(ctx)
	if err != nil {
		return err
	}
	return db.Delete(&models.Payment{}, id).Error
}

// OverduePayments lista os vencidos (já marcados ou ainda pendentes), com telefone do cliente.
func (r *TrainerGormRepository) OverduePayments(ctx context.Context) ([]models.Payment, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}

	payments := []models.Payment{}
	if err := r.paymentsWithClient(db).
		Where(
			"payments.status = ? OR (payments.status = ? AND payments.due_date < ?)",
			models.PaymentOverdue, models.PaymentPending, r.today(),
		).
		Order("payments.due_date ASC").
		Order("payments.id ASC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// --------------------------------------------------
// Sessions
// --------------------------------------------------

func (r *TrainerGormRepository) sessionsWithClient(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Session{}).
		Select("sessions.*, " + clientNameColumn + ", clients.phone AS client_phone").
		Joins("LEFT JOIN clients ON clients.id = sessions.client_id")
}

func (r *TrainerGormRepository) ListSessions(ctx context.Context) ([]models.Session, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}

	sessions := []models.Session{}
	if err := r.sessionsWithClient(db).
		Order("sessions.session_date ASC").
		Order("sessions.session_time ASC").
		Order("sessions.id ASC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *TrainerGormRepository) GetSession(ctx context.Context, id uint) (*models.Session, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}

	var s models.Session
	if err := r.sessionsWithClient(db).
		Where("sessions.id = ?", id).
		First(&s).Error; err != nil {
		return nil, notFound(err)
	}
	return &s, nil
}

func (r *TrainerGormRepository) AddSession(ctx context.Context, s models.Session) (uint, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return 0, err
	}
	if err := r.assertClient(db, s.ClientID); err != nil {
		return 0, err
	}

	s.ID = 0
	s.ClientName, s.ClientPhone = "", ""
	s.CreatedAt = r.clock()
	if err := db.Create(&s).Error; err != nil {
		return 0, insertError(err)
	}
	return s.ID, nil
}

func (r *TrainerGormRepository) UpdateSession(ctx context.Context, id uint, patch models.SessionPatch) error {
	db, err := r.conn(ctx)
	if err != nil {
		return err
	}
	if patch.IsEmpty() {
		return nil
	}
	return db.Model(&models.Session{}).Where("id = ?", id).Updates(patch.Columns()).Error
}

func (r *TrainerGormRepository) DeleteSession(ctx context.Context, id uint) error {
	db, err := r.conn(ctx)
	if err != nil {
		return err
	}
	return db.Delete(&models.Session{}, id).Error
}

func (r *TrainerGormRepository) TodaysSessions(ctx context.Context) ([]models.Session, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}

	sessions := []models.Session{}
	if err := r.sessionsWithClient(db).
		Where("sessions.session_date = ? AND sessions.status = ?", r.today(), models.SessionScheduled).
		Order("sessions.session_time ASC").
		Order("sessions.id ASC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// --------------------------------------------------
// Reminders
// --------------------------------------------------

func (r *TrainerGormRepository) ListReminders(ctx context.Context) ([]models.Reminder, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}

	reminders := []models.Reminder{}
	if err := db.Model(&models.Reminder{}).
		Select("reminders.*, " + clientNameColumn).
		Joins("LEFT JOIN clients ON clients.id = reminders.client_id").
		Order("reminders.reminder_date ASC").
		Order("reminders.reminder_time ASC").
		Order("reminders.id ASC").
		Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *TrainerGormRepository) AddReminder(ctx context.Context, rem models.Reminder) (uint, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return 0, err
	}
	if err := r.assertClient(db, rem.ClientID); err != nil {
		return 0, err
	}

	rem.ID = 0
	rem.ClientName = ""
	rem.CreatedAt = r.clock()
	if err := db.Create(&rem).Error; err != nil {
		return 0, insertError(err)
	}
	return rem.ID, nil
}

func (r *TrainerGormRepository) UpdateReminder(ctx context.Context, id uint, patch models.ReminderPatch) error {
	db, err := r.conn(ctx)
	if err != nil {
		return err
	}
	if patch.IsEmpty() {
		return nil
	}
	return db.Model(&models.Reminder{}).Where("id = ?", id).Updates(patch.Columns()).Error
}

func (r *TrainerGormRepository) DeleteReminder(ctx context.Context, id uint) error {
	db, err := r.conn(ctx)
	if err != nil {
		return err
	}
	return db.Delete(&models.Reminder{}, id).Error
}

// --------------------------------------------------
// Dashboard
// --------------------------------------------------

// DashboardStats calcula as estatísticas com consultas agregadas.
// Hoje e o mês corrente vêm do relógio injetado, não do banco,
// para coincidir com o cálculo em memória do fallback.
func (r *TrainerGormRepository) DashboardStats(ctx context.Context) (models.DashboardStats, error) {
	var stats models.DashboardStats

	db, err := r.conn(ctx)
	if err != nil {
		return stats, err
	}

	now := r.clock()
	today := timezone.Today(now)
	month := timezone.Month(now)

	payments := func() *gorm.DB { return db.Model(&models.Payment{}) }
	sessions := func() *gorm.DB { return db.Model(&models.Session{}) }

	var totalRevenue, monthlyRevenue float64

	steps := []func() error{
		func() error { return db.Model(&models.Client{}).Count(&stats.TotalClients).Error },
		func() error {
			return sessions().
				Where("status = ?", models.SessionScheduled).
				Distinct("client_id").
				Count(&stats.ActiveClients).Error
		},
		func() error {
			return payments().Where("status = ?", models.PaymentPending).Count(&stats.PendingPayments).Error
		},
		func() error {
			return payments().Where("status = ?", models.PaymentOverdue).Count(&stats.OverduePayments).Error
		},
		func() error {
			return payments().
				Select("COALESCE(SUM(amount), 0)").
				Where("status = ?", models.PaymentPaid).
				Scan(&totalRevenue).Error
		},
		func() error {
			return payments().
				Select("COALESCE(SUM(amount), 0)").
				Where("status = ? AND SUBSTR(paid_date, 1, 7) = ?", models.PaymentPaid, month).
				Scan(&monthlyRevenue).Error
		},
		func() error {
			return sessions().
				Where("session_date >= ? AND status = ?", today, models.SessionScheduled).
				Count(&stats.UpcomingSessions).Error
		},
		func() error {
			return sessions().
				Where("session_date = ? AND status = ?", today, models.SessionScheduled).
				Count(&stats.TodaySessions).Error
		},
	}

	for _, step := range steps {
		if err := step(); err != nil {
			return models.DashboardStats{}, err
		}
	}

	stats.TotalRevenue = domain.RoundMoney(totalRevenue)
	stats.MonthlyRevenue = domain.RoundMoney(monthlyRevenue)

	return stats, nil
}

func (r *TrainerGormRepository) Snapshot(ctx context.Context) (*models.Dataset, error) {
	db, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}

	ds := &models.Dataset{
		Clients:   []models.Client{},
		Payments:  []models.Payment{},
		Sessions:  []models.Session{},
		Reminders: []models.Reminder{},
	}

	if err := db.Order("id ASC").Find(&ds.Clients).Error; err != nil {
		return nil, err
	}
	if err := db.Order("id ASC").Find(&ds.Payments).Error; err != nil {
		return nil, err
	}
	if err := db.Order("id ASC").Find(&ds.Sessions).Error; err != nil {
		return nil, err
	}
	if err := db.Order("id ASC").Find(&ds.Reminders).Error; err != nil {
		return nil, err
	}
	return ds, nil
}

// Compile-time check
var _ domain.Store = (*TrainerGormRepository)(nil)
