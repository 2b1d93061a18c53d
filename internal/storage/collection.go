package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrCorrupt = errors.New("stored value is corrupt")

// Collection persists a whole slice of T as a single JSON array under one key.
type Collection[T any] struct {
	kv  KV
	key string
}

func NewCollection[T any](kv KV, key string) *Collection[T] {
	return &Collection[T]{
		kv:  kv,
		key: key,
	}
}

func (c *Collection[T]) Key() string {
	return c.key
}

// Load returns ErrNotFound when nothing was stored yet, and ErrCorrupt when
// the stored value cannot be decoded. Callers treat both as a first run.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	raw, err := c.kv.Get(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("collection [%s] get: %w", c.key, err)
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("collection [%s] unmarshal: %w: %w", c.key, ErrCorrupt, err)
	}
	if items == nil {
		items = []T{}
	}

	return items, nil
}

func (c *Collection[T]) Save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("collection [%s] marshal: %w", c.key, err)
	}

	if err := c.kv.Set(ctx, c.key, raw); err != nil {
		return fmt.Errorf("collection [%s] set: %w", c.key, err)
	}

	return nil
}
