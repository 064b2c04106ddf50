package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/trainer-manager/internal/backup"
	"github.com/BruksfildServices01/trainer-manager/internal/config"
	"github.com/BruksfildServices01/trainer-manager/internal/events"
	"github.com/BruksfildServices01/trainer-manager/internal/handlers"
	"github.com/BruksfildServices01/trainer-manager/internal/middleware"
	"github.com/BruksfildServices01/trainer-manager/internal/settings"
	"github.com/BruksfildServices01/trainer-manager/internal/timezone"
	ucTrainer "github.com/BruksfildServices01/trainer-manager/internal/usecase/trainer"
)

type Deps struct {
	Config   *config.Config
	Service  *ucTrainer.Service
	Settings *settings.Store
	Bus      *events.Bus
	// nil quando o backup em S3 está desligado
	Backup *backup.S3Uploader
	Clock  timezone.Clock
	Logger *slog.Logger
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(d.Logger))
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(d.Config)
	healthHandler := handlers.NewHealthHandler(d.Service)

	clientHandler := handlers.NewClientHandler(d.Service)
	paymentHandler := handlers.NewPaymentHandler(d.Service, d.Clock, d.Logger)
	sessionHandler := handlers.NewSessionHandler(d.Service)
	reminderHandler := handlers.NewReminderHandler(d.Service)
	dashboardHandler := handlers.NewDashboardHandler(d.Service)

	settingsHandler := handlers.NewSettingsHandler(d.Settings)
	eventsHandler := handlers.NewEventsHandler(d.Bus)
	backupHandler := handlers.NewBackupHandler(d.Service, d.Backup, d.Clock, d.Logger)

	r.GET("/health", healthHandler.Get)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(d.Config))
		{
			secured.GET("/dashboard", dashboardHandler.Get)
			secured.GET("/dashboard/stats", dashboardHandler.Stats)

			// ------------------------------
			// CLIENTS
			// ------------------------------
			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)
			secured.GET("/clients/:id", clientHandler.Get)
			secured.PATCH("/clients/:id", clientHandler.Update)
			secured.DELETE("/clients/:id", clientHandler.Delete)
			secured.POST("/clients/:id/message", clientHandler.Message)

			// ------------------------------
			// PAYMENTS
			// ------------------------------
			secured.GET("/payments", paymentHandler.List)
			secured.GET("/payments/overdue", paymentHandler.Overdue)
			secured.GET("/payments/export", paymentHandler.Export)
			secured.POST("/payments", paymentHandler.Create)
			secured.GET("/payments/:id", paymentHandler.Get)
			secured.PATCH("/payments/:id", paymentHandler.Update)
			secured.DELETE("/payments/:id", paymentHandler.Delete)
			secured.POST("/payments/:id/pay", paymentHandler.Pay)
			secured.POST("/payments/:id/remind", paymentHandler.Remind)

			// ------------------------------
			// SESSIONS
			// ------------------------------
			secured.GET("/sessions", sessionHandler.List)
			secured.GET("/sessions/today", sessionHandler.Today)
			secured.POST("/sessions", sessionHandler.Create)
			secured.GET("/sessions/:id", sessionHandler.Get)
			secured.PATCH("/sessions/:id", sessionHandler.Update)
			secured.DELETE("/sessions/:id", sessionHandler.Delete)
			secured.POST("/sessions/:id/remind", sessionHandler.Remind)

			// ------------------------------
			// REMINDERS
			// ------------------------------
			secured.GET("/reminders", reminderHandler.List)
			secured.POST("/reminders", reminderHandler.Create)
			secured.PATCH("/reminders/:id", reminderHandler.Update)
			secured.DELETE("/reminders/:id", reminderHandler.Delete)

			// ------------------------------
			// SETTINGS / EVENTS / BACKUP
			// ------------------------------
			secured.GET("/settings", settingsHandler.Get)
			secured.PUT("/settings", settingsHandler.Put)

			secured.GET("/events", eventsHandler.Stream)

			secured.POST("/backup", backupHandler.Run)
			secured.GET("/backup/export", backupHandler.Export)
		}
	}
}
