// Package kv holds the key-value backends used by the fallback store and by
// the trainer settings. Values are opaque byte slices, usually JSON documents.
package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/BruksfildServices01/trainer-manager/internal/config"
)

var ErrNotFound = errors.New("kv: key not found")

type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Open builds the backend selected by KV_DRIVER.
func Open(ctx context.Context, cfg *config.Config) (Backend, error) {
	switch cfg.KVDriver {
	case "memory":
		return NewMemory(), nil
	case "file", "":
		return NewFile(cfg.KVPath)
	case "redis":
		return NewRedis(ctx, cfg.RedisAddr)
	default:
		return nil, fmt.Errorf("unsupported KV_DRIVER %q", cfg.KVDriver)
	}
}
