package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/coocood/freecache"
)

const (
	DefaultMemoryCacheSize = 128 * 1024 * 1024
	// freecache raises smaller sizes to this
	minMemoryCacheSize = 512 * 1024
	// per entry bookkeeping freecache counts against the entry ceiling
	freecacheEntryHeader = 24
	chunkSuffixReserve   = 12
)

var (
	// ErrValueTooLarge is returned by MemoryKV.Set for values above a quarter of the cache size.
	ErrValueTooLarge = errors.New("value too large for memory storage")
	// ErrValueEvicted is returned by MemoryKV.Get when part of a value was evicted by the cache.
	ErrValueEvicted = errors.New("value evicted from memory storage")
)

var _ KV = (*MemoryKV)(nil)

// MemoryKV keeps values in a freecache instance. Nothing survives a restart.
// freecache caps one entry at 1/1024 of the cache size, so a value is split into
// chunks stored under "<key>#<n>", with the chunk count stored under the key itself.
type MemoryKV struct {
	mu        sync.RWMutex
	cache     *freecache.Cache
	cacheSize int
}

func NewMemoryKV(cacheSize int) *MemoryKV {
	if cacheSize <= 0 {
		cacheSize = DefaultMemoryCacheSize
	}
	if cacheSize < minMemoryCacheSize {
		cacheSize = minMemoryCacheSize
	}
	return &MemoryKV{
		cache:     freecache.NewCache(cacheSize),
		cacheSize: cacheSize,
	}
}

// MaxValueSize is the largest value Set accepts.
func (m *MemoryKV) MaxValueSize() int {
	return m.cacheSize / 4
}

func (m *MemoryKV) chunkSize(key string) int {
	return m.cacheSize/1024 - freecacheEntryHeader - len(key) - chunkSuffixReserve
}

func chunkKey(key string, i int) []byte {
	return []byte(key + "#" + strconv.Itoa(i))
}

func (m *MemoryKV) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count, err := m.chunkCount(key)
	if err != nil {
		return nil, err
	}

	value := make([]byte, 0, count*m.chunkSize(key))
	for i := 0; i < count; i++ {
		chunk, err := m.cache.Get(chunkKey(key, i))
		if err != nil {
			if errors.Is(err, freecache.ErrNotFound) {
				return nil, fmt.Errorf("memory get [%s] chunk %d: %w", key, i, ErrValueEvicted)
			}
			return nil, fmt.Errorf("memory get [%s] chunk %d: %w", key, i, err)
		}
		value = append(value, chunk...)
	}
	return value, nil
}

func (m *MemoryKV) chunkCount(key string) (int, error) {
	raw, err := m.cache.Get([]byte(key))
	if err != nil {
		if errors.Is(err, freecache.ErrNotFound) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("memory get [%s]: %w", key, err)
	}
	count, err := strconv.Atoi(string(raw))
	if err != nil || count < 0 {
		return 0, fmt.Errorf("memory get [%s]: invalid chunk count [%s]", key, raw)
	}
	return count, nil
}

func (m *MemoryKV) Set(_ context.Context, key string, value []byte) error {
	if len(value) > m.MaxValueSize() {
		return fmt.Errorf("memory set [%s]: %d bytes, max %d: %w", key, len(value), m.MaxValueSize(), ErrValueTooLarge)
	}
	size := m.chunkSize(key)
	if size <= 0 {
		return fmt.Errorf("memory set [%s]: key too long", key)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	prevCount, err := m.chunkCount(key)
	if err != nil && !errors.Is(err, ErrNotFound) {
		prevCount = 0
	}

	count := 0
	for start := 0; start < len(value); start += size {
		end := min(start+size, len(value))
		// no expiration
		if err := m.cache.Set(chunkKey(key, count), value[start:end], 0); err != nil {
			return fmt.Errorf("memory set [%s] chunk %d: %w", key, count, err)
		}
		count++
	}
	if err := m.cache.Set([]byte(key), []byte(strconv.Itoa(count)), 0); err != nil {
		return fmt.Errorf("memory set [%s]: %w", key, err)
	}

	for i := count; i < prevCount; i++ {
		m.cache.Del(chunkKey(key, i))
	}
	return nil
}

func (m *MemoryKV) Close() error {
	m.cache.Clear()
	return nil
}
