package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	domain "github.com/BruksfildServices01/trainer-manager/internal/domain/trainer"
	"github.com/BruksfildServices01/trainer-manager/internal/infra/kv"
	"github.com/BruksfildServices01/trainer-manager/internal/timezone"
)

// relógio fixo usado em todos os testes do pacote
var testNow = time.Date(2026, 10, 17, 15, 0, 0, 0, time.UTC)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
		NowFunc:        func() time.Time { return testNow },
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, gdb.Exec("PRAGMA foreign_keys = ON").Error)
	return gdb
}

func newGormStore(t *testing.T) *TrainerGormRepository {
	t.Helper()

	store := NewTrainerGormRepository(openTestDB(t), timezone.Fixed(testNow))
	require.NoError(t, store.Init(t.Context()))
	return store
}

// fallback sem seed: começa vazio como o relacional
func newKVStore(t *testing.T) (*TrainerKVRepository, *kv.Memory) {
	t.Helper()

	mem := kv.NewMemory()
	return NewTrainerKVRepository(mem, timezone.Fixed(testNow), nil), mem
}

// forEachBackend roda o mesmo cenário contra os dois backends.
func forEachBackend(t *testing.T, fn func(t *testing.T, store domain.Store)) {
	t.Run("relational", func(t *testing.T) {
		fn(t, newGormStore(t))
	})
	t.Run("fallback", func(t *testing.T) {
		store, _ := newKVStore(t)
		fn(t, store)
	})
}
