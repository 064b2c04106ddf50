package trainer

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/trainer-manager/internal/models"
	"github.com/BruksfildServices01/trainer-manager/internal/timezone"
)

// RoundMoney arredonda para centavos. Os dois backends passam as receitas
// por aqui para produzir exatamente os mesmos números.
func RoundMoney(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// ComputeStats reduz um snapshot em memória às estatísticas do painel.
func ComputeStats(ds models.Dataset, now time.Time) models.DashboardStats {
	today := timezone.Today(now)
	month := timezone.Month(now)

	stats := models.DashboardStats{
		TotalClients: int64(len(ds.Clients)),
	}

	total := decimal.Zero
	monthly := decimal.Zero

	for _, p := range ds.Payments {
		switch p.Status {
		case models.PaymentPending:
			stats.PendingPayments++
		case models.PaymentOverdue:
			stats.OverduePayments++
		case models.PaymentPaid:
			amount := decimal.NewFromFloat(p.Amount)
			total = total.Add(amount)
			if strings.HasPrefix(p.PaidDate, month) {
				monthly = monthly.Add(amount)
			}
		}
	}

	active := map[uint]struct{}{}
	for _, s := range ds.Sessions {
		if s.Status != models.SessionScheduled {
			continue
		}
		active[s.ClientID] = struct{}{}
		if s.SessionDate >= today {
			stats.UpcomingSessions++
		}
		if s.SessionDate == today {
			stats.TodaySessions++
		}
	}
	stats.ActiveClients = int64(len(active))

	stats.TotalRevenue = RoundMoney(total.InexactFloat64())
	stats.MonthlyRevenue = RoundMoney(monthly.InexactFloat64())

	return stats
}

func SummarizePayments(payments []models.Payment) models.PaymentSummary {
	sum := models.PaymentSummary{Total: len(payments)}
	total, paid := decimal.Zero, decimal.Zero

	for _, p := range payments {
		amount := decimal.NewFromFloat(p.Amount)
		total = total.Add(amount)

		switch p.Status {
		case models.PaymentPaid:
			sum.Paid++
			paid = paid.Add(amount)
		case models.PaymentPending:
			sum.Pending++
		case models.PaymentOverdue:
			sum.Overdue++
		}
	}

	sum.TotalAmount = RoundMoney(total.InexactFloat64())
	sum.PaidAmount = RoundMoney(paid.InexactFloat64())
	return sum
}
