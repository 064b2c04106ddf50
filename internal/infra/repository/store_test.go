package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/trainer-manager/internal/domain/trainer"
	"github.com/BruksfildServices01/trainer-manager/internal/infra/kv"
	"github.com/BruksfildServices01/trainer-manager/internal/models"
)

func strPtr(s string) *string { return &s }

func addJuan(t *testing.T, store domain.Store) uint {
	t.Helper()
	id, err := store.AddClient(t.Context(), models.Client{Name: "Juan Pérez", Phone: "+54 9 11 1234-5678"})
	require.NoError(t, err)
	return id
}

func TestAddClientThenList(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store domain.Store) {
		ctx := t.Context()

		in := models.Client{
			Name:             "María García",
			Phone:            "+54 9 11 2345-6789",
			Email:            "maria@email.com",
			BirthDate:        "1985-08-22",
			EmergencyContact: "+54 9 11 9876-5432",
			Notes:            "Nueva cliente",
		}
		id1, err := store.AddClient(ctx, in)
		require.NoError(t, err)
		id2 := addJuan(t, store)

		assert.NotZero(t, id1)
		assert.NotEqual(t, id1, id2)

		clients, err := store.ListClients(ctx)
		require.NoError(t, err)
		require.Len(t, clients, 2)

		// ordenado por nome
		assert.Equal(t, "Juan Pérez", clients[0].Name)
		got := clients[1]
		assert.Equal(t, id1, got.ID)
		assert.Equal(t, in.Name, got.Name)
		assert.Equal(t, in.Phone, got.Phone)
		assert.Equal(t, in.Email, got.Email)
		assert.Equal(t, in.BirthDate, got.BirthDate)
		assert.Equal(t, in.EmergencyContact, got.EmergencyContact)
		assert.Equal(t, in.Notes, got.Notes)
		assert.True(t, got.CreatedAt.Equal(testNow))
		assert.True(t, got.UpdatedAt.Equal(testNow))
	})
}

// carimbos enviados pelo chamador são ignorados
func TestAddStampsCreationTime(t *testing.T) {
	old := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

	forEachBackend(t, func(t *testing.T, store domain.Store) {
		ctx := t.Context()

		cid, err := store.AddClient(ctx, models.Client{Name: "X", Phone: "1", CreatedAt: old, UpdatedAt: old})
		require.NoError(t, err)
		c, err := store.GetClient(ctx, cid)
		require.NoError(t, err)
		assert.True(t, c.CreatedAt.Equal(testNow), c.CreatedAt)
		assert.True(t, c.UpdatedAt.Equal(testNow), c.UpdatedAt)

		pid, err := store.AddPayment(ctx, models.Payment{
			ClientID: cid, Amount: 100, DueDate: "2026-11-01", Status: models.PaymentPending, CreatedAt: old,
		})
		require.NoError(t, err)
		p, err := store.GetPayment(ctx, pid)
		require.NoError(t, err)
		assert.True(t, p.CreatedAt.Equal(testNow), p.CreatedAt)

		sid, err := store.AddSession(ctx, models.Session{
			ClientID: cid, SessionDate: "2026-10-20", SessionTime: "09:00", Duration: 60,
			Type: models.SessionPersonal, Status: models.SessionScheduled, CreatedAt: old,
		})
		require.NoError(t, err)
		s, err := store.GetSession(ctx, sid)
		require.NoError(t, err)
		assert.True(t, s.CreatedAt.Equal(testNow), s.CreatedAt)

		_, err = store.AddReminder(ctx, models.Reminder{
			ClientID: cid, Title: "Pago", Message: "Hola", ReminderDate: "2026-10-18", ReminderTime: "09:00",
			Type: models.ReminderGeneral, Status: models.ReminderPending, CreatedAt: old,
		})
		require.NoError(t, err)
		reminders, err := store.ListReminders(ctx)
		require.NoError(t, err)
		require.Len(t, reminders, 1)
		assert.True(t, reminders[0].CreatedAt.Equal(testNow), reminders[0].CreatedAt)
	})
}

func TestGetMissingRecords(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store domain.Store) {
		ctx := t.Context()

		_, err := store.GetClient(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		_, err = store.GetPayment(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		_, err = store.GetSession(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestUpdateClientPartial(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store domain.Store) {
		ctx := t.Context()
		id := addJuan(t, store)

		require.NoError(t, store.UpdateClient(ctx, id, models.ClientPatch{Notes: strPtr("prefiere mañanas")}))

		c, err := store.GetClient(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Juan Pérez", c.Name)
		assert.Equal(t, "+54 9 11 1234-5678", c.Phone)
		assert.Equal(t, "prefiere mañanas", c.Notes)

		// id inexistente: no-op silencioso
		assert.NoError(t, store.UpdateClient(ctx, 404, models.ClientPatch{Name: strPtr("x")}))
	})
}

func TestOverdueSweepOnList(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store domain.Store) {
		ctx := t.Context()
		id := addJuan(t, store)

		_, err := store.AddPayment(ctx, models.Payment{
			ClientID: id,
			Amount:   4500,
			DueDate:  "2026-10-16",
			Status:   models.PaymentPending,
		})
		require.NoError(t, err)
		_, err = store.AddPayment(ctx, models.Payment{
			ClientID: id,
			Amount:   4500,
			DueDate:  "2026-10-17",
			Status:   models.PaymentPending,
		})
		require.NoError(t, err)

		payments, err := store.ListPayments(ctx)
		require.NoError(t, err)
		require.Len(t, payments, 2)

		// vencimento mais recente primeiro
		assert.Equal(t, "2026-10-17", payments[0].DueDate)
		assert.Equal(t, models.PaymentPending, payments[0].Status)
		assert.Equal(t, "2026-10-16", payments[1].DueDate)
		assert.Equal(t, models.PaymentOverdue, payments[1].Status)
		assert.Equal(t, "Juan Pérez", payments[1].ClientName)

		// idempotente
		flipped, err := store.SweepOverdue(ctx)
		require.NoError(t, err)
		assert.Zero(t, flipped)

		again, err := store.ListPayments(ctx)
		require.NoError(t, err)
		assert.Equal(t, models.PaymentOverdue, again[1].Status)

		overdue, err := store.OverduePayments(ctx)
		require.NoError(t, err)
		require.Len(t, overdue, 1)
		assert.Equal(t, "+54 9 11 1234-5678", overdue[0].ClientPhone)
	})
}

func TestMarkPaymentAsPaid(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store domain.Store) {
		ctx := t.Context()
		clientID := addJuan(t, store)

		id, err := store.AddPayment(ctx, models.Payment{
			ClientID: clientID, Amount: 5000, DueDate: "2026-10-30", Status: models.PaymentPending,
		})
		require.NoError(t, err)

		require.NoError(t, store.MarkPaymentAsPaid(ctx, id, "Efectivo"))

		p, err := store.GetPayment(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, models.PaymentPaid, p.Status)
		assert.Equal(t, "2026-10-17T15:00:00Z", p.PaidDate)
		assert.Equal(t, "Efectivo", p.PaymentMethod)

		// sem método: mantém o anterior
		require.NoError(t, store.MarkPaymentAsPaid(ctx, id, ""))
		p, err = store.GetPayment(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Efectivo", p.PaymentMethod)
	})
}

func TestAddForMissingClient(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store domain.Store) {
		ctx := t.Context()

		_, err := store.AddPayment(ctx, models.Payment{ClientID: 7, Amount: 1, DueDate: "2026-10-17", Status: models.PaymentPending})
		assert.ErrorIs(t, err, domain.ErrClientNotFound)

		_, err = store.AddSession(ctx, models.Session{ClientID: 7, SessionDate: "2026-10-17", SessionTime: "09:00", Duration: 60,
			Type: models.SessionPersonal, Status: models.SessionScheduled})
		assert.ErrorIs(t, err, domain.ErrClientNotFound)
	})
}

func TestDeleteClientCascades(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store domain.Store) {
		ctx := t.Context()
		juan := addJuan(t, store)
		maria, err := store.AddClient(ctx, models.Client{Name: "María García", Phone: "2"})
		require.NoError(t, err)

		for _, cid := range []uint{juan, maria} {
			_, err := store.AddPayment(ctx, models.Payment{ClientID: cid, Amount: 100, DueDate: "2026-11-01", Status: models.PaymentPending})
			require.NoError(t, err)
			_, err = store.AddSession(ctx, models.Session{ClientID: cid, SessionDate: "2026-10-20", SessionTime: "09:00",
				Duration: 60, Type: models.SessionPersonal, Status: models.SessionScheduled})
			require.NoError(t, err)
			_, err = store.AddReminder(ctx, models.Reminder{ClientID: cid, Title: "t", Message: "m",
				ReminderDate: "2026-10-19", ReminderTime: "08:00", Type: models.ReminderGeneral, Status: models.ReminderPending})
			require.NoError(t, err)
		}

		require.NoError(t, store.DeleteClient(ctx, juan))

		ds, err := store.Snapshot(ctx)
		require.NoError(t, err)
		require.Len(t, ds.Clients, 1)
		assert.Len(t, ds.Payments, 1)
		assert.Len(t, ds.Sessions, 1)
		assert.Len(t, ds.Reminders, 1)
		assert.Equal(t, maria, ds.Payments[0].ClientID)
		assert.Equal(t, maria, ds.Sessions[0].ClientID)
		assert.Equal(t, maria, ds.Reminders[0].ClientID)

		// deletar de novo é no-op
		assert.NoError(t, store.DeleteClient(ctx, juan))
	})
}

func TestDeletePaymentAndSession(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store domain.Store) {
		ctx := t.Context()
		cid := addJuan(t, store)

		pid, err := store.AddPayment(ctx, models.Payment{ClientID: cid, Amount: 10, DueDate: "2026-11-01", Status: models.PaymentPending})
		require.NoError(t, err)
		sid, err := store.AddSession(ctx, models.Session{ClientID: cid, SessionDate: "2026-10-20", SessionTime: "09:00",
			Duration: 60, Type: models.SessionGroup, Status: models.SessionScheduled})
		require.NoError(t, err)

		require.NoError(t, store.DeletePayment(ctx, pid))
		require.NoError(t, store.DeleteSession(ctx, sid))

		payments, err := store.ListPayments(ctx)
		require.NoError(t, err)
		assert.Empty(t, payments)
		sessions, err := store.ListSessions(ctx)
		require.NoError(t, err)
		assert.Empty(t, sessions)
	})
}

func TestSessionsOrderingAndToday(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store domain.Store) {
		ctx := t.Context()
		cid := addJuan(t, store)

		add := func(date, hour string, status models.SessionStatus) {
			_, err := store.AddSession(ctx, models.Session{ClientID: cid, SessionDate: date, SessionTime: hour,
				Duration: 45, Type: models.SessionPersonal, Status: status})
			require.NoError(t, err)
		}
		add("2026-10-18", "08:00", models.SessionScheduled)
		add("2026-10-17", "10:30", models.SessionScheduled)
		add("2026-10-17", "09:00", models.SessionScheduled)
		add("2026-10-17", "07:00", models.SessionCancelled)

		sessions, err := store.ListSessions(ctx)
		require.NoError(t, err)
		require.Len(t, sessions, 4)
		assert.Equal(t, "07:00", sessions[0].SessionTime)
		assert.Equal(t, "09:00", sessions[1].SessionTime)
		assert.Equal(t, "10:30", sessions[2].SessionTime)
		assert.Equal(t, "2026-10-18", sessions[3].SessionDate)
		assert.Equal(t, "Juan Pérez", sessions[0].ClientName)

		today, err := store.TodaysSessions(ctx)
		require.NoError(t, err)
		require.Len(t, today, 2)
		assert.Equal(t, "09:00", today[0].SessionTime)

		status := models.SessionCompleted
		require.NoError(t, store.UpdateSession(ctx, today[0].ID, models.SessionPatch{Status: &status}))
		s, err := store.GetSession(ctx, today[0].ID)
		require.NoError(t, err)
		assert.Equal(t, models.SessionCompleted, s.Status)
		assert.Equal(t, 45, s.Duration)
	})
}

func TestReminders(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store domain.Store) {
		ctx := t.Context()
		cid := addJuan(t, store)

		id, err := store.AddReminder(ctx, models.Reminder{
			ClientID: cid, Title: "Pago", Message: "Hola", ReminderDate: "2026-10-18", ReminderTime: "09:00",
			Type: models.ReminderPayment, Status: models.ReminderPending,
		})
		require.NoError(t, err)

		sent := models.ReminderSent
		yes := true
		require.NoError(t, store.UpdateReminder(ctx, id, models.ReminderPatch{Status: &sent, WhatsappSent: &yes}))

		list, err := store.ListReminders(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, models.ReminderSent, list[0].Status)
		assert.True(t, list[0].WhatsappSent)
		assert.Equal(t, "Juan Pérez", list[0].ClientName)

		require.NoError(t, store.DeleteReminder(ctx, id))
		list, err = store.ListReminders(ctx)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

// mesmo dataset sintético nos dois backends → mesmas estatísticas
func TestDashboardStatsParity(t *testing.T) {
	load := func(t *testing.T, store domain.Store) models.DashboardStats {
		ctx := t.Context()
		juan := addJuan(t, store)
		maria, err := store.AddClient(ctx, models.Client{Name: "María García", Phone: "2"})
		require.NoError(t, err)
		_, err = store.AddClient(ctx, models.Client{Name: "Pedro", Phone: "3"})
		require.NoError(t, err)

		payments := []models.Payment{
			{ClientID: juan, Amount: 5000, DueDate: "2024-01-15", PaidDate: "2024-01-10", Status: models.PaymentPaid},
			{ClientID: maria, Amount: 4500.1, DueDate: "2026-10-01", Status: models.PaymentPending},
			{ClientID: maria, Amount: 0.1, DueDate: "2026-10-30", Status: models.PaymentPending},
			{ClientID: juan, Amount: 0.2, DueDate: "2026-10-30", Status: models.PaymentPending},
			{ClientID: juan, Amount: 99.99, DueDate: "2026-11-30", Status: models.PaymentPending},
		}
		var ids []uint
		for _, p := range payments {
			id, err := store.AddPayment(ctx, p)
			require.NoError(t, err)
			ids = append(ids, id)
		}
		require.NoError(t, store.MarkPaymentAsPaid(ctx, ids[2], "Efectivo"))
		require.NoError(t, store.MarkPaymentAsPaid(ctx, ids[3], ""))
		_, err = store.SweepOverdue(ctx)
		require.NoError(t, err)

		sessions := []models.Session{
			{ClientID: juan, SessionDate: "2026-10-17", SessionTime: "09:00", Status: models.SessionScheduled},
			{ClientID: maria, SessionDate: "2026-10-17", SessionTime: "10:30", Status: models.SessionScheduled},
			{ClientID: maria, SessionDate: "2026-10-25", SessionTime: "10:30", Status: models.SessionScheduled},
			{ClientID: juan, SessionDate: "2026-10-16", SessionTime: "10:30", Status: models.SessionCompleted},
		}
		for _, s := range sessions {
			s.Duration, s.Type = 60, models.SessionPersonal
			_, err := store.AddSession(ctx, s)
			require.NoError(t, err)
		}

		stats, err := store.DashboardStats(ctx)
		require.NoError(t, err)
		return stats
	}

	var results []models.DashboardStats
	forEachBackend(t, func(t *testing.T, store domain.Store) {
		results = append(results, load(t, store))
	})

	require.Len(t, results, 2)
	assert.Equal(t, results[0], results[1])

	want := models.DashboardStats{
		TotalClients:     3,
		ActiveClients:    2,
		PendingPayments:  1,
		OverduePayments:  1,
		TotalRevenue:     5000.3,
		MonthlyRevenue:   0.3,
		UpcomingSessions: 3,
		TodaySessions:    2,
	}
	assert.Equal(t, want, results[0])
	assert.LessOrEqual(t, results[0].MonthlyRevenue, results[0].TotalRevenue)
}

func TestRelationalNotInitialized(t *testing.T) {
	store := NewTrainerGormRepository(openTestDB(t), nil)

	_, err := store.ListClients(t.Context())
	assert.ErrorIs(t, err, domain.ErrNotInitialized)

	_, err = store.DashboardStats(t.Context())
	assert.ErrorIs(t, err, domain.ErrNotInitialized)

	nilDB := NewTrainerGormRepository(nil, nil)
	assert.ErrorIs(t, nilDB.Init(t.Context()), domain.ErrNotInitialized)
}

func TestRelationalInitIsIdempotent(t *testing.T) {
	store := newGormStore(t)
	addJuan(t, store)

	require.NoError(t, store.Init(t.Context()))

	clients, err := store.ListClients(t.Context())
	require.NoError(t, err)
	assert.Len(t, clients, 1)
}

func TestRelationalEmptyPatchIssuesNoWrite(t *testing.T) {
	store := newGormStore(t)
	id := addJuan(t, store)

	updates := 0
	require.NoError(t, store.db.Callback().Update().Before("gorm:update").
		Register("test:count_updates", func(*gorm.DB) { updates++ }))

	require.NoError(t, store.UpdateClient(t.Context(), id, models.ClientPatch{}))
	require.NoError(t, store.UpdatePayment(t.Context(), id, models.PaymentPatch{}))
	require.NoError(t, store.UpdateSession(t.Context(), id, models.SessionPatch{}))
	assert.Zero(t, updates)

	require.NoError(t, store.UpdateClient(t.Context(), id, models.ClientPatch{Notes: strPtr("x")}))
	assert.Equal(t, 1, updates)
}

// countingKV conta as escritas feitas no backend
type countingKV struct {
	kv.Backend
	sets int
}

func (c *countingKV) Set(ctx context.Context, key string, value []byte) error {
	c.sets++
	return c.Backend.Set(ctx, key, value)
}

func TestFallbackEmptyPatchIssuesNoWrite(t *testing.T) {
	backend := &countingKV{Backend: kv.NewMemory()}
	store := NewTrainerKVRepository(backend, func() time.Time { return testNow }, nil)
	require.NoError(t, store.Init(t.Context()))

	before := backend.sets
	require.NoError(t, store.UpdateClient(t.Context(), 1, models.ClientPatch{}))
	assert.Equal(t, before, backend.sets)

	// id inexistente também não grava
	require.NoError(t, store.UpdateClient(t.Context(), 99, models.ClientPatch{Name: strPtr("x")}))
	assert.Equal(t, before, backend.sets)

	c, err := store.GetClient(t.Context(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Juan Pérez", c.Name)
}

func TestFallbackSeedsOnce(t *testing.T) {
	store, mem := newKVStore(t)
	ctx := t.Context()

	require.NoError(t, store.Init(ctx))
	clients, err := store.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 2)

	_, err = store.AddClient(ctx, models.Client{Name: "Ana", Phone: "1"})
	require.NoError(t, err)

	// segunda inicialização não sobrescreve
	require.NoError(t, store.Init(ctx))
	clients, err = store.ListClients(ctx)
	require.NoError(t, err)
	assert.Len(t, clients, 3)
	assert.Equal(t, uint(3), clients[0].ID)

	raw, err := mem.Get(ctx, DatasetKey)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"clients"`)
	assert.Contains(t, string(raw), `"reminders"`)
}

// cenário: Juan Pérez com um pagamento pendente vencido ontem
func TestFallbackSeedScenarioOverdue(t *testing.T) {
	store, _ := newKVStore(t)
	ctx := t.Context()
	require.NoError(t, store.Init(ctx))

	// os pagamentos de exemplo são de 2024; remove para isolar o cenário
	require.NoError(t, store.DeletePayment(ctx, 1))
	require.NoError(t, store.DeletePayment(ctx, 2))

	_, err := store.AddPayment(ctx, models.Payment{ClientID: 1, Amount: 5000, DueDate: "2026-10-16", Status: models.PaymentPending})
	require.NoError(t, err)

	payments, err := store.ListPayments(ctx)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, models.PaymentOverdue, payments[0].Status)
	assert.Equal(t, "Juan Pérez", payments[0].ClientName)
}

func TestFallbackLazyInitWithoutSeed(t *testing.T) {
	store, mem := newKVStore(t)

	clients, err := store.ListClients(t.Context())
	require.NoError(t, err)
	assert.Empty(t, clients)

	_, err = mem.Get(t.Context(), DatasetKey)
	assert.NoError(t, err)
}

func TestFallbackOrphanGetsUnknownName(t *testing.T) {
	store, mem := newKVStore(t)
	ctx := t.Context()

	require.NoError(t, mem.Set(ctx, DatasetKey, []byte(
		`{"clients":[],"payments":[{"id":4,"client_id":9,"amount":10,"due_date":"2026-11-01","status":"pending"}],"sessions":[],"reminders":[]}`,
	)))

	payments, err := store.ListPayments(ctx)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, domain.UnknownClientName, payments[0].ClientName)

	id, err := store.AddClient(ctx, models.Client{Name: "Ana", Phone: "1"})
	require.NoError(t, err)
	assert.Equal(t, uint(1), id)
}
