package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/2beens/gymroutines/internal/storage"
)

const (
	defaultPort                  = 9000
	defaultPrometheusMetricsPort = 2112
	defaultRateLimitPerMin       = 60
)

type Config struct {
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	Environment string `toml:"environment"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// storage
	StorageBackend     string `toml:"storage_backend"`
	MemoryCacheSizeMB  int    `toml:"memory_cache_size_mb"`
	DiskRootPath       string `toml:"disk_root_path"`
	SQLitePath         string `toml:"sqlite_path"`
	RedisHost          string `toml:"redis_host"`
	RedisPort          string `toml:"redis_port"`
	PostgresHost       string `toml:"postgres_host"`
	PostgresPort       string `toml:"postgres_port"`
	PostgresDBName     string `toml:"postgres_db_name"`
	PostgresDisableSSL bool   `toml:"postgres_disable_ssl"`
	PostgresMaxConns   int32  `toml:"postgres_max_conns"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// gymroutines
	RateLimitPerMin    int      `toml:"rate_limit_per_min"`
	SessionIdleTimeout Duration `toml:"session_idle_timeout"`
	StatsTimezone      string   `toml:"stats_timezone"`
}

// Duration decodes TOML strings like "3h" or "90m".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the TOML file at path and returns the config of the given env,
// with defaults filled in.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config [%s]: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] missing in [%s]", env, path)
	}

	cfg.setDefaults(env)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) setDefaults(env string) {
	if c.Port == 0 {
		c.Port = defaultPort
	}
	if c.Environment == "" {
		c.Environment = strings.ToLower(env)
	}
	if c.StorageBackend == "" {
		c.StorageBackend = storage.BackendDisk.String()
	}
	if c.PrometheusMetricsPort == "" {
		c.PrometheusMetricsPort = fmt.Sprintf("%d", defaultPrometheusMetricsPort)
	}
	if c.RateLimitPerMin == 0 {
		c.RateLimitPerMin = defaultRateLimitPerMin
	}
	if c.StatsTimezone == "" {
		c.StatsTimezone = "UTC"
	}
}

func (c *Config) Validate() error {
	backend := storage.Backend(c.StorageBackend)
	if !backend.IsValid() {
		return fmt.Errorf("invalid storage backend: %s", c.StorageBackend)
	}
	switch backend {
	case storage.BackendDisk:
		if c.DiskRootPath == "" {
			return errors.New("disk_root_path must be set for the disk storage backend")
		}
	case storage.BackendSQLite:
		if c.SQLitePath == "" {
			return errors.New("sqlite_path must be set for the sqlite storage backend")
		}
	case storage.BackendRedis:
		if c.RedisHost == "" || c.RedisPort == "" {
			return errors.New("redis_host and redis_port must be set for the redis storage backend")
		}
	case storage.BackendPostgres:
		if c.PostgresHost == "" || c.PostgresDBName == "" {
			return errors.New("postgres_host and postgres_db_name must be set for the postgres storage backend")
		}
	}
	if c.SessionIdleTimeout.Duration < 0 {
		return errors.New("session_idle_timeout must not be negative")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location is the time zone workouts are bucketed into weekdays in.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.StatsTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid stats_timezone [%s]: %w", c.StatsTimezone, err)
	}
	return loc, nil
}
