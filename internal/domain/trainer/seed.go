package trainer

import (
	"time"

	"github.com/BruksfildServices01/trainer-manager/internal/models"
	"github.com/BruksfildServices01/trainer-manager/internal/timezone"
)

// SeedDataset devolve os dados de exemplo gravados no primeiro uso
// do backend chave-valor.
func SeedDataset(now time.Time) models.Dataset {
	today := timezone.Today(now)

	return models.Dataset{
		Clients: []models.Client{
			{
				ID:               1,
				Name:             "Juan Pérez",
				Phone:            "+54 9 11 1234-5678",
				Email:            "juan@email.com",
				BirthDate:        "1990-05-15",
				EmergencyContact: "+54 9 11 8765-4321",
				Notes:            "Cliente regular, prefiere entrenamientos matutinos",
				CreatedAt:        now,
				UpdatedAt:        now,
			},
			{
				ID:               2,
				Name:             "María García",
				Phone:            "+54 9 11 2345-6789",
				Email:            "maria@email.com",
				BirthDate:        "1985-08-22",
				EmergencyContact: "+54 9 11 9876-5432",
				Notes:            "Nueva cliente, interesada en pilates",
				CreatedAt:        now,
				UpdatedAt:        now,
			},
		},
		Payments: []models.Payment{
			{
				ID:            1,
				ClientID:      1,
				Amount:        5000,
				DueDate:       "2024-01-15",
				PaidDate:      "2024-01-10",
				Status:        models.PaymentPaid,
				PaymentMethod: "Efectivo",
				Notes:         "Pago adelantado",
				CreatedAt:     now,
			},
			{
				ID:        2,
				ClientID:  2,
				Amount:    4500,
				DueDate:   "2024-01-20",
				Status:    models.PaymentPending,
				Notes:     "Pendiente de pago",
				CreatedAt: now,
			},
		},
		Sessions: []models.Session{
			{
				ID:          1,
				ClientID:    1,
				SessionDate: today,
				SessionTime: "09:00",
				Duration:    60,
				Type:        models.SessionPersonal,
				Status:      models.SessionScheduled,
				Notes:       "Entrenamiento de fuerza",
				CreatedAt:   now,
			},
			{
				ID:          2,
				ClientID:    2,
				SessionDate: today,
				SessionTime: "10:30",
				Duration:    45,
				Type:        models.SessionPersonal,
				Status:      models.SessionScheduled,
				Notes:       "Pilates básico",
				CreatedAt:   now,
			},
		},
		Reminders: []models.Reminder{},
	}
}
