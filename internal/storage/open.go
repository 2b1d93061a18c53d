package storage

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymroutines/internal/db"
	"github.com/2beens/gymroutines/internal/telemetry/metrics"
)

type OpenParams struct {
	Backend         Backend
	MemoryCacheSize int
	DiskRootPath    string
	SQLitePath      string
	Redis           NewRedisClientParams
	Postgres        db.NewDBPoolParams
	MetricsManager  *metrics.Manager
}

// Open builds the configured backend and wraps it with metrics and tracing.
// The memory backend rejects values above a quarter of MemoryCacheSize with
// ErrValueTooLarge and reports evicted values with ErrValueEvicted.
func Open(ctx context.Context, params OpenParams) (KV, error) {
	var (
		kv  KV
		err error
	)

	switch params.Backend {
	case BackendMemory:
		kv = NewMemoryKV(params.MemoryCacheSize)
	case BackendDisk:
		kv, err = NewDiskKV(params.DiskRootPath)
	case BackendSQLite:
		kv, err = NewSQLiteKV(ctx, params.SQLitePath)
	case BackendRedis:
		rdb := NewRedisClient(params.Redis)
		if pingErr := rdb.Ping(ctx).Err(); pingErr != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("redis ping: %w", pingErr)
		}
		kv = NewRedisKV(rdb)
	case BackendPostgres:
		pool, poolErr := db.NewDBPool(ctx, params.Postgres)
		if poolErr != nil {
			return nil, fmt.Errorf("postgres pool: %w", poolErr)
		}
		kv, err = NewPostgresKV(ctx, pool)
		if err != nil {
			pool.Close()
		}
	default:
		return nil, fmt.Errorf("unknown storage backend: [%s]", params.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s storage: %w", params.Backend, err)
	}

	log.Debugf("storage backend [%s] ready", params.Backend)

	return NewInstrumentedKV(kv, params.Backend, params.MetricsManager), nil
}
