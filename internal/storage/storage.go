// Package storage holds the key-value collaborator the stores persist through.
// A collection is serialized as a whole, as one JSON value under a fixed key.
package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("key not found")

// KV is a minimal key-value store. Values are opaque bytes.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

type Backend string

const (
	BackendMemory   Backend = "memory"
	BackendDisk     Backend = "disk"
	BackendSQLite   Backend = "sqlite"
	BackendRedis    Backend = "redis"
	BackendPostgres Backend = "postgres"
)

func (b Backend) String() string {
	return string(b)
}

func (b Backend) IsValid() bool {
	switch b {
	case BackendMemory,
		BackendDisk,
		BackendSQLite,
		BackendRedis,
		BackendPostgres:
		return true
	default:
		return false
	}
}
