package trainer

import (
	"sort"

	"github.com/BruksfildServices01/trainer-manager/internal/models"
)

// Ordenações equivalentes aos ORDER BY do backend relacional.
// Empates são desfeitos pelo id, como a ordem de inserção do SQLite.

func SortClients(list []models.Client) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Name != list[j].Name {
			return list[i].Name < list[j].Name
		}
		return list[i].ID < list[j].ID
	})
}

// pagamentos: vencimento mais recente primeiro
func SortPayments(list []models.Payment) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].DueDate != list[j].DueDate {
			return list[i].DueDate > list[j].DueDate
		}
		return list[i].ID < list[j].ID
	})
}

// pagamentos vencidos: o mais antigo primeiro
func SortPaymentsByDueAsc(list []models.Payment) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].DueDate != list[j].DueDate {
			return list[i].DueDate < list[j].DueDate
		}
		return list[i].ID < list[j].ID
	})
}

func SortSessions(list []models.Session) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.SessionDate != b.SessionDate {
			return a.SessionDate < b.SessionDate
		}
		if a.SessionTime != b.SessionTime {
			return a.SessionTime < b.SessionTime
		}
		return a.ID < b.ID
	})
}

func SortReminders(list []models.Reminder) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.ReminderDate != b.ReminderDate {
			return a.ReminderDate < b.ReminderDate
		}
		if a.ReminderTime != b.ReminderTime {
			return a.ReminderTime < b.ReminderTime
		}
		return a.ID < b.ID
	})
}
