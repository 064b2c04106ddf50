package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/trainer-manager/internal/backup"
	"github.com/BruksfildServices01/trainer-manager/internal/checkout"
	"github.com/BruksfildServices01/trainer-manager/internal/config"
	dbpkg "github.com/BruksfildServices01/trainer-manager/internal/db"
	domain "github.com/BruksfildServices01/trainer-manager/internal/domain/trainer"
	"github.com/BruksfildServices01/trainer-manager/internal/events"
	"github.com/BruksfildServices01/trainer-manager/internal/infra/kv"
	"github.com/BruksfildServices01/trainer-manager/internal/infra/repository"
	"github.com/BruksfildServices01/trainer-manager/internal/routes"
	"github.com/BruksfildServices01/trainer-manager/internal/scheduler"
	"github.com/BruksfildServices01/trainer-manager/internal/settings"
	"github.com/BruksfildServices01/trainer-manager/internal/timezone"
	ucTrainer "github.com/BruksfildServices01/trainer-manager/internal/usecase/trainer"
	"github.com/BruksfildServices01/trainer-manager/internal/whatsapp"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	clock := timezone.ClockIn(cfg.Timezone)

	// ======================================================
	// 🔧 STORAGE
	// ======================================================
	kvBackend, err := kv.Open(ctx, cfg)
	if err != nil {
		return err
	}

	store, err := repository.Selector{
		Mode:           cfg.StorageMode,
		OpenRelational: func() (*gorm.DB, error) { return dbpkg.Open(cfg, clock) },
		KV:             kvBackend,
		Clock:          clock,
		Logger:         logger,
	}.Select(ctx)
	if err != nil {
		kvBackend.Close()
		return err
	}
	defer closeStorage(store, kvBackend, logger)
	logger.Info("storage ready", "backend", store.Backend())

	// ======================================================
	// 🧠 SERVICES
	// ======================================================
	bus := events.NewBus(logger)
	defer bus.Close()

	opts := ucTrainer.Options{
		Store:    store,
		Events:   bus,
		Clock:    clock,
		Logger:   logger,
		WhatsApp: whatsapp.NewFormatter(cfg.WhatsAppCountryCode),
	}
	if cfg.MercadoPagoToken != "" {
		mp, err := checkout.NewMercadoPago(cfg.MercadoPagoToken)
		if err != nil {
			return err
		}
		opts.Checkout = mp
	}
	svc := ucTrainer.NewService(opts)

	settingsStore := settings.NewStore(kvBackend, bus, clock)

	var uploader *backup.S3Uploader
	if cfg.BackupEnabled() {
		uploader = backup.NewS3Uploader(backup.NewS3Client(cfg), cfg.BackupBucket, clock)
	}

	// ======================================================
	// ⏰ JOBS
	// ======================================================
	sched := scheduler.New(timezone.Location(cfg.Timezone), logger)
	if err := sched.AddSweep(cfg.SweepSchedule, svc); err != nil {
		return err
	}
	if uploader != nil {
		if err := sched.AddBackup(cfg.BackupSchedule, uploader, svc); err != nil {
			return err
		}
	}
	sched.Start()
	logger.Info("scheduler started", "jobs", sched.Len())
	defer sched.Stop(context.Background())

	// ======================================================
	// 🌐 HTTP
	// ======================================================
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		Config:   cfg,
		Service:  svc,
		Settings: settingsStore,
		Bus:      bus,
		Backup:   uploader,
		Clock:    clock,
		Logger:   logger,
	})

	srv := newServer(cfg.Addr(), r)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server running", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newServer monta o servidor HTTP. Os contextos das requisições são
// cancelados quando o Shutdown começa, para que streams SSE abertos terminem
// em vez de segurar o desligamento até o timeout.
func newServer(addr string, handler http.Handler) *http.Server {
	base, cancel := context.WithCancel(context.Background())

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return base },
	}
	srv.RegisterOnShutdown(cancel)
	return srv
}

// closeStorage fecha o store; o chave-valor é fechado à parte quando o store
// relacional foi o escolhido, pois as configurações continuam usando ele.
func closeStorage(store domain.Store, backend kv.Backend, logger *slog.Logger) {
	if err := store.Close(); err != nil {
		logger.Error("closing store", "error", err)
	}
	if store.Backend() == domain.BackendRelational {
		if err := backend.Close(); err != nil {
			logger.Error("closing key-value backend", "error", err)
		}
	}
}
