package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

var _ KV = (*SQLiteKV)(nil)

type SQLiteKV struct {
	db *sql.DB
}

func NewSQLiteKV(ctx context.Context, path string) (*SQLiteKV, error) {
	if path == "" {
		return nil, errors.New("sqlite path empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create sqlite data dir: %w", err)
	}

	db, err := sql.Open("sqlite", "file:"+path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	if err := migrate(ctx, db, goose.DialectSQLite3); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite kv: %w", err)
	}

	return &SQLiteKV{
		db: db,
	}, nil
}

func (s *SQLiteKV) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.db.QueryRowContext(
		ctx,
		`SELECT value FROM kv_entry WHERE key = ?`,
		key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("kv entry [query row]: %w", err)
	}
	return []byte(value), nil
}

func (s *SQLiteKV) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(
		ctx,
		`
			INSERT INTO kv_entry (key, value, updated_at)
			VALUES (?, ?, ?)
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

func (s *SQLiteKV) Close() error {
	return s.db.Close()
}
