package db

import (
	"context"
	"fmt"
	"net/url"

	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultDBUser = "postgres"

type NewDBPoolParams struct {
	DBHost         string
	DBPort         string
	DBName         string
	DBUser         string
	DBPassword     string
	DisableSSL     bool
	MaxConns       int32
	TracingEnabled bool
}

func (p NewDBPoolParams) ConnString() string {
	user := p.DBUser
	if user == "" {
		user = defaultDBUser
	}
	userInfo := url.User(user)
	if p.DBPassword != "" {
		userInfo = url.UserPassword(user, p.DBPassword)
	}

	connURL := url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   p.DBHost + ":" + p.DBPort,
		Path:   "/" + p.DBName,
	}
	if p.DisableSSL {
		connURL.RawQuery = "sslmode=disable"
	}

	return connURL.String()
}

func NewDBPool(ctx context.Context, params NewDBPoolParams) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(params.ConnString())
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}

	if params.MaxConns > 0 {
		poolConfig.MaxConns = params.MaxConns
	}
	if params.TracingEnabled {
		poolConfig.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	return db, nil
}
