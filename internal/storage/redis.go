package storage

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
)

const defaultRedisKeyPrefix = "gymroutines||"

var _ KV = (*RedisKV)(nil)

type RedisKV struct {
	client    *redis.Client
	keyPrefix string
}

type NewRedisClientParams struct {
	Host           string
	Port           string
	Password       string
	TracingEnabled bool
}

func NewRedisClient(params NewRedisClientParams) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Host, params.Port),
		Password: params.Password,
		DB:       0, // use default DB
	})
	if params.TracingEnabled {
		rdb.AddHook(redisotel.NewTracingHook())
	}
	return rdb
}

func NewRedisKV(client *redis.Client) *RedisKV {
	return &RedisKV{
		client:    client,
		keyPrefix: defaultRedisKeyPrefix,
	}
}

func (r *RedisKV) Client() *redis.Client {
	return r.client
}

func (r *RedisKV) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.Get(ctx, r.keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("redis get [%s]: %w", key, err)
	}
	return value, nil
}

func (r *RedisKV) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, r.keyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set [%s]: %w", key, err)
	}
	return nil
}

func (r *RedisKV) Close() error {
	return r.client.Close()
}
