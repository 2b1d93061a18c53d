//go:build integration

package integration_testing

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"github.com/2beens/gymroutines/internal"
	"github.com/2beens/gymroutines/internal/config"
)

const (
	serverPort  = 9000
	serverHost  = "localhost"
	metricsPort = "9002"
	dbName      = "gymroutines"
)

var serverEndpoint = fmt.Sprintf("http://%s:%d", serverHost, serverPort)

type Suite struct {
	DB         *sql.DB
	dockerPool *dockertest.Pool
	server     *internal.Server
	cfg        *config.Config
	teardown   []func()
}

func newSuite(ctx context.Context) (_ *Suite) {
	var err error
	suite := &Suite{
		teardown: make([]func(), 0),
	}

	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	suite.dockerPool, err = dockertest.NewPool("")
	if err != nil {
		log.Fatalf("could not create new dockertest pool: %s", err)
	}

	// uses pool to try to connect to Docker
	if err = suite.dockerPool.Client.Ping(); err != nil {
		log.Fatalf("could not ping dockertest pool: %s", err)
	}

	redisPort, err := suite.redisSetup()
	if err != nil {
		suite.cleanup()
		log.Fatalf("failed to setup redis: %s", err.Error())
	}

	pgPort, err := suite.postgresSetup()
	if err != nil {
		suite.cleanup()
		log.Fatalf("failed to setup postgres: %s", err)
	}

	suite.cfg = getTestConfig(redisPort, pgPort)
	if err := suite.startServer(ctx); err != nil {
		suite.cleanup()
		log.Fatalf("start server: %s", err)
	}

	return suite
}

// startServer builds a server on the suite's postgres and redis, and waits
// until it answers.
func (s *Suite) startServer(ctx context.Context) error {
	server, err := internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config: s.cfg,
			Secrets: config.Secrets{
				PostgresUser: "postgres",
			},
			VersionInfo: "test-version-info",
		},
	)
	if err != nil {
		return fmt.Errorf("new server: %w", err)
	}

	server.Serve(ctx, s.cfg.Host, s.cfg.Port)
	s.server = server

	return s.dockerPool.Retry(func() error {
		resp, err := http.Get(serverEndpoint + "/")
		if err != nil {
			return err
		}
		_ = resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("server not ready: %d", resp.StatusCode)
		}
		return nil
	})
}

// restartServer shuts the running server down and starts a fresh one on the
// same storage.
func (s *Suite) restartServer(ctx context.Context) error {
	if err := s.server.GracefulShutdown(); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.server = nil
	return s.startServer(ctx)
}

func (s *Suite) cleanup() {
	if s.server != nil {
		if err := s.server.GracefulShutdown(); err != nil {
			log.Printf("graceful shutdown: %s", err)
		}
	}
	if s.DB != nil {
		s.DB.Close()
	}
	for _, teardown := range s.teardown {
		teardown()
	}
}

func getTestConfig(redisPort, postgresPort string) *config.Config {
	return &config.Config{
		Host:                  serverHost,
		Port:                  serverPort,
		Environment:           "test",
		StorageBackend:        "postgres",
		RedisHost:             "localhost",
		RedisPort:             redisPort,
		PostgresPort:          postgresPort,
		PostgresHost:          "localhost",
		PostgresDBName:        dbName,
		PostgresDisableSSL:    true,
		PostgresMaxConns:      4,
		PrometheusMetricsHost: serverHost,
		PrometheusMetricsPort: metricsPort,
		RateLimitPerMin:       1000,
		SessionIdleTimeout:    config.Duration{Duration: time.Hour},
		StatsTimezone:         "UTC",
	}
}

func (s *Suite) redisSetup() (string, error) {
	redisResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		return "", fmt.Errorf("run redis: %s", err)
	}

	s.teardown = append(s.teardown, func() {
		redisResource.Close()
	})

	redisPort := redisResource.GetPort("6379/tcp")
	return redisPort, nil
}

func (s *Suite) postgresSetup() (string, error) {
	pgResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=" + dbName,
			"POSTGRES_HOST_AUTH_METHOD=trust",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return "", fmt.Errorf("dockerpool run postgres: %s", err)
	}

	s.teardown = append(s.teardown, func() {
		pgResource.Close()
	})

	pgPort := pgResource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://postgres@localhost:%s/%s?sslmode=disable", pgPort, dbName)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return "", fmt.Errorf("open db conn: %s", err)
	}
	s.DB = db

	if err := s.dockerPool.Retry(db.Ping); err != nil {
		return "", fmt.Errorf("ping db: %s", err)
	}

	return pgPort, nil
}
