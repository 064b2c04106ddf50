package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/BruksfildServices01/trainer-manager/internal/backup"
)

const jobTimeout = 4 * time.Minute

type Sweeper interface {
	SweepOverdue(ctx context.Context) (int64, error)
}

type Backuper interface {
	Backup(ctx context.Context, src backup.Snapshotter) (string, error)
}

// Scheduler roda os jobs periódicos no fuso do treinador.
type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
}

func New(loc *time.Location, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	if loc == nil {
		loc = time.UTC
	}

	cl := cronLogger{logger: logger}
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		logger: logger,
	}
}

// AddSweep agenda a varredura de pagamentos vencidos.
func (s *Scheduler) AddSweep(spec string, sweeper Sweeper) error {
	_, err := s.cron.AddFunc(spec, s.SweepJob(sweeper))
	if err != nil {
		return err
	}
	s.logger.Info("overdue sweep scheduled", "schedule", spec)
	return nil
}

func (s *Scheduler) SweepJob(sweeper Sweeper) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		flipped, err := sweeper.SweepOverdue(ctx)
		if err != nil {
			s.logger.Error("overdue sweep failed", "error", err)
			return
		}
		s.logger.Info("overdue sweep done", "flipped", flipped)
	}
}

// AddBackup agenda o backup noturno do dataset.
func (s *Scheduler) AddBackup(spec string, uploader Backuper, src backup.Snapshotter) error {
	_, err := s.cron.AddFunc(spec, s.BackupJob(uploader, src))
	if err != nil {
		return err
	}
	s.logger.Info("backup scheduled", "schedule", spec)
	return nil
}

func (s *Scheduler) BackupJob(uploader Backuper, src backup.Snapshotter) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		key, err := uploader.Backup(ctx, src)
		if err != nil {
			s.logger.Error("backup failed", "error", err)
			return
		}
		s.logger.Info("backup uploaded", "key", key)
	}
}

func (s *Scheduler) Len() int {
	return len(s.cron.Entries())
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop para o agendador e espera os jobs em andamento.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.logger.Warn("scheduler stop timed out")
	}
}

// cronLogger adapta o slog para a interface de log do cron.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
