package config

import (
	"os"

	"github.com/2beens/gymroutines/internal/db"
	"github.com/2beens/gymroutines/internal/storage"
	"github.com/2beens/gymroutines/internal/telemetry/metrics"
)

const (
	EnvRedisPassword    = "GYMROUTINES_REDIS_PASS"
	EnvPostgresUser     = "GYMROUTINES_POSTGRES_USER"
	EnvPostgresPassword = "GYMROUTINES_POSTGRES_PASS"
	EnvHoneycombEnabled = "HONEYCOMB_ENABLED"
	EnvSentryDSN        = "SENTRY_DSN"
)

// Secrets are the settings kept out of config.toml.
type Secrets struct {
	RedisPassword    string
	PostgresUser     string
	PostgresPassword string
	SentryDSN        string
	HoneycombEnabled bool
}

func SecretsFromEnv() Secrets {
	return Secrets{
		RedisPassword:    os.Getenv(EnvRedisPassword),
		PostgresUser:     os.Getenv(EnvPostgresUser),
		PostgresPassword: os.Getenv(EnvPostgresPassword),
		SentryDSN:        os.Getenv(EnvSentryDSN),
		HoneycombEnabled: os.Getenv(EnvHoneycombEnabled) == "true",
	}
}

func (c *Config) RedisParams(secrets Secrets) storage.NewRedisClientParams {
	return storage.NewRedisClientParams{
		Host:           c.RedisHost,
		Port:           c.RedisPort,
		Password:       secrets.RedisPassword,
		TracingEnabled: secrets.HoneycombEnabled,
	}
}

// StorageParams maps the storage section of the config onto storage.Open params.
// metricsManager may be nil.
func (c *Config) StorageParams(secrets Secrets, metricsManager *metrics.Manager) storage.OpenParams {
	return storage.OpenParams{
		Backend:         storage.Backend(c.StorageBackend),
		MemoryCacheSize: c.MemoryCacheSizeMB * 1024 * 1024,
		DiskRootPath:    c.DiskRootPath,
		SQLitePath:      c.SQLitePath,
		Redis:           c.RedisParams(secrets),
		Postgres: db.NewDBPoolParams{
			DBHost:         c.PostgresHost,
			DBPort:         c.PostgresPort,
			DBName:         c.PostgresDBName,
			DBUser:         secrets.PostgresUser,
			DBPassword:     secrets.PostgresPassword,
			DisableSSL:     c.PostgresDisableSSL,
			MaxConns:       c.PostgresMaxConns,
			TracingEnabled: secrets.HoneycombEnabled,
		},
		MetricsManager: metricsManager,
	}
}
