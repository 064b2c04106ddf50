package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/trainer-manager/internal/backup"
	"github.com/BruksfildServices01/trainer-manager/internal/models"
)

type countingSweeper struct {
	calls int
	err   error
}

func (c *countingSweeper) SweepOverdue(ctx context.Context) (int64, error) {
	c.calls++
	if _, ok := ctx.Deadline(); !ok {
		return 0, errors.New("job context without deadline")
	}
	return 1, c.err
}

type fakeBackuper struct {
	calls int
}

func (f *fakeBackuper) Backup(ctx context.Context, src backup.Snapshotter) (string, error) {
	f.calls++
	if _, err := src.Snapshot(ctx); err != nil {
		return "", err
	}
	return "backups/x.json", nil
}

type emptySnapshot struct{}

func (emptySnapshot) Snapshot(context.Context) (*models.Dataset, error) {
	return &models.Dataset{}, nil
}

func TestAddJobs(t *testing.T) {
	s := New(time.UTC, nil)

	require.NoError(t, s.AddSweep("5 0 * * *", &countingSweeper{}))
	require.NoError(t, s.AddBackup("30 2 * * *", &fakeBackuper{}, emptySnapshot{}))
	assert.Equal(t, 2, s.Len())

	assert.Error(t, s.AddSweep("every minute", &countingSweeper{}))
	assert.Equal(t, 2, s.Len())
}

func TestJobsRun(t *testing.T) {
	s := New(nil, nil)

	sweeper := &countingSweeper{}
	s.SweepJob(sweeper)()
	assert.Equal(t, 1, sweeper.calls)

	// erro só é logado
	failing := &countingSweeper{err: errors.New("db locked")}
	s.SweepJob(failing)()
	assert.Equal(t, 1, failing.calls)

	b := &fakeBackuper{}
	s.BackupJob(b, emptySnapshot{})()
	assert.Equal(t, 1, b.calls)
}

func TestStartStop(t *testing.T) {
	s := New(time.UTC, nil)
	require.NoError(t, s.AddSweep("@every 1h", &countingSweeper{}))

	s.Start()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Stop(ctx)
}
