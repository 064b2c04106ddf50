package trainer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/trainer-manager/internal/models"
)

var now = time.Date(2026, 10, 17, 15, 0, 0, 0, time.UTC)

func TestIsOverdue(t *testing.T) {
	today := "2026-10-17"

	assert.True(t, IsOverdue(models.Payment{Status: models.PaymentPending, DueDate: "2026-10-16"}, today))
	assert.False(t, IsOverdue(models.Payment{Status: models.PaymentPending, DueDate: today}, today))
	assert.False(t, IsOverdue(models.Payment{Status: models.PaymentPaid, DueDate: "2020-01-01"}, today))
	assert.False(t, IsOverdue(models.Payment{Status: models.PaymentOverdue, DueDate: "2020-01-01"}, today))
}

func TestMarkPaid(t *testing.T) {
	p := models.Payment{Status: models.PaymentPending, PaymentMethod: "Transferencia"}

	MarkPaid(&p, "", now)
	assert.Equal(t, models.PaymentPaid, p.Status)
	assert.Equal(t, "2026-10-17T15:00:00Z", p.PaidDate)
	assert.Equal(t, "Transferencia", p.PaymentMethod)

	MarkPaid(&p, "Efectivo", now)
	assert.Equal(t, "Efectivo", p.PaymentMethod)
}

func TestComputeStatsSessions(t *testing.T) {
	ds := models.Dataset{
		Clients: []models.Client{{ID: 1}, {ID: 2}, {ID: 3}},
		Sessions: []models.Session{
			{ID: 1, ClientID: 1, SessionDate: "2026-10-17", Status: models.SessionScheduled},
			{ID: 2, ClientID: 2, SessionDate: "2026-10-17", Status: models.SessionScheduled},
			{ID: 3, ClientID: 3, SessionDate: "2026-10-16", Status: models.SessionCompleted},
		},
	}

	stats := ComputeStats(ds, now)

	assert.EqualValues(t, 3, stats.TotalClients)
	assert.EqualValues(t, 2, stats.TodaySessions)
	assert.EqualValues(t, 2, stats.UpcomingSessions)
	assert.EqualValues(t, 2, stats.ActiveClients)
}

func TestComputeStatsPayments(t *testing.T) {
	ds := models.Dataset{
		Payments: []models.Payment{
			{ID: 1, Amount: 5000, Status: models.PaymentPaid, PaidDate: "2024-01-10"},
			{ID: 2, Amount: 0.1, Status: models.PaymentPaid, PaidDate: "2026-10-02T10:00:00Z"},
			{ID: 3, Amount: 0.2, Status: models.PaymentPaid, PaidDate: "2026-10-03T10:00:00Z"},
			{ID: 4, Amount: 4500, Status: models.PaymentPending},
			{ID: 5, Amount: 4500, Status: models.PaymentOverdue},
		},
	}

	stats := ComputeStats(ds, now)

	assert.EqualValues(t, 1, stats.PendingPayments)
	assert.EqualValues(t, 1, stats.OverduePayments)
	assert.Equal(t, 5000.3, stats.TotalRevenue)
	assert.Equal(t, 0.3, stats.MonthlyRevenue)
	assert.LessOrEqual(t, stats.MonthlyRevenue, stats.TotalRevenue)
}

func TestComputeStatsEmpty(t *testing.T) {
	assert.Equal(t, models.DashboardStats{}, ComputeStats(models.Dataset{}, now))
}

func TestSeedDataset(t *testing.T) {
	ds := SeedDataset(now)

	assert.Len(t, ds.Clients, 2)
	assert.Len(t, ds.Payments, 2)
	assert.Len(t, ds.Sessions, 2)
	assert.Empty(t, ds.Reminders)
	assert.Equal(t, "Juan Pérez", ds.Clients[0].Name)
	for _, s := range ds.Sessions {
		assert.Equal(t, "2026-10-17", s.SessionDate)
	}
}

func TestSortSessions(t *testing.T) {
	list := []models.Session{
		{ID: 1, SessionDate: "2026-10-18", SessionTime: "08:00"},
		{ID: 2, SessionDate: "2026-10-17", SessionTime: "10:30"},
		{ID: 3, SessionDate: "2026-10-17", SessionTime: "09:00"},
	}

	SortSessions(list)

	assert.Equal(t, []uint{3, 2, 1}, []uint{list[0].ID, list[1].ID, list[2].ID})
}

func TestSummarizePayments(t *testing.T) {
	sum := SummarizePayments([]models.Payment{
		{Amount: 0.1, Status: models.PaymentPaid},
		{Amount: 0.2, Status: models.PaymentPaid},
		{Amount: 100, Status: models.PaymentPending},
		{Amount: 50.5, Status: models.PaymentOverdue},
	})

	assert.Equal(t, models.PaymentSummary{
		Total: 4, Paid: 2, Pending: 1, Overdue: 1,
		TotalAmount: 150.8, PaidAmount: 0.3,
	}, sum)

	assert.Equal(t, models.PaymentSummary{}, SummarizePayments(nil))
}
