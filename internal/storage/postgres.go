package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

var _ KV = (*PostgresKV)(nil)

type PostgresKV struct {
	db *pgxpool.Pool
}

// NewPostgresKV runs the kv_entry migration and returns the store.
// The pool is owned by the store from here on and closed by Close.
func NewPostgresKV(ctx context.Context, db *pgxpool.Pool) (*PostgresKV, error) {
	sqlDB := stdlib.OpenDBFromPool(db)
	defer func() {
		_ = sqlDB.Close()
	}()

	if err := migrate(ctx, sqlDB, goose.DialectPostgres); err != nil {
		return nil, fmt.Errorf("postgres kv: %w", err)
	}

	return &PostgresKV{
		db: db,
	}, nil
}

func (p *PostgresKV) Pool() *pgxpool.Pool {
	return p.db
}

func (p *PostgresKV) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := p.db.QueryRow(
		ctx,
		`SELECT value FROM kv_entry WHERE key = $1`,
		key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("kv entry [query row]: %w", err)
	}
	return []byte(value), nil
}

func (p *PostgresKV) Set(ctx context.Context, key string, value []byte) error {
	_, err := p.db.Exec(
		ctx,
		`
			INSERT INTO kv_entry (key, value, updated_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (key) DO UPDATE
			SET value = excluded.value, updated_at = excluded.updated_at
		`,
		key,
		string(value),
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("kv entry [upsert]: %w", err)
	}
	return nil
}

func (p *PostgresKV) Close() error {
	p.db.Close()
	return nil
}
