package models

// Estatísticas do painel. Derivadas, nunca persistidas.
type DashboardStats struct {
	TotalClients     int64   `json:"total_clients"`
	ActiveClients    int64   `json:"active_clients"`
	PendingPayments  int64   `json:"pending_payments"`
	OverduePayments  int64   `json:"overdue_payments"`
	TotalRevenue     float64 `json:"total_revenue"`
	MonthlyRevenue   float64 `json:"monthly_revenue"`
	UpcomingSessions int64   `json:"upcoming_sessions"`
	TodaySessions    int64   `json:"today_sessions"`
}

// Dataset é o formato persistido pelo backend chave-valor
// e também o conteúdo de um backup.
type Dataset struct {
	Clients   []Client   `json:"clients"`
	Payments  []Payment  `json:"payments"`
	Sessions  []Session  `json:"sessions"`
	Reminders []Reminder `json:"reminders"`
}

// Resumo da lista de pagamentos (quantidades e valores por status).
type PaymentSummary struct {
	Total       int     `json:"total"`
	Paid        int     `json:"paid"`
	Pending     int     `json:"pending"`
	Overdue     int     `json:"overdue"`
	TotalAmount float64 `json:"total_amount"`
	PaidAmount  float64 `json:"paid_amount"`
}
