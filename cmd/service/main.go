package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymroutines/internal"
	"github.com/2beens/gymroutines/internal/config"
	"github.com/2beens/gymroutines/internal/logging"
	"github.com/2beens/gymroutines/internal/storage"
	"github.com/2beens/gymroutines/pkg"
)

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	dotEnvPath := flag.String("dotenv", ".env", "optional .env file with secrets")
	flag.Parse()

	if err := godotenv.Load(*dotEnvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Errorf("load %s: %s", *dotEnvPath, err)
	}

	log.Warnf("---->> running in [%s] environment", *env)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	secrets := config.SecretsFromEnv()
	versionInfo, versionErr := tryGetLastCommitHash()
	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        secrets.SentryDSN,
		Release:          versionInfo,
		SentryServerName: "gymroutines-service",
	})

	if versionErr != nil {
		log.Tracef("failed to get last commit hash / version info: %s", versionErr)
	} else {
		log.Tracef("running version: %s", versionInfo)
	}

	log.Debugf("using port: %d", cfg.Port)
	log.Debugf("using server logs path: [%s]", cfg.LogsPath)
	log.Debugf("using storage backend: [%s]", cfg.StorageBackend)

	switch storage.Backend(cfg.StorageBackend) {
	case storage.BackendRedis:
		if secrets.RedisPassword == "" {
			log.Errorf("redis password not set. use %s", config.EnvRedisPassword)
		}
	case storage.BackendPostgres:
		if secrets.PostgresUser == "" || secrets.PostgresPassword == "" {
			log.Errorf("postgres credentials not set. use %s and %s", config.EnvPostgresUser, config.EnvPostgresPassword)
		}
	case storage.BackendDisk:
		dirExists, err := pkg.PathExists(cfg.DiskRootPath, true)
		if err != nil {
			log.Fatalf("check disk storage root dir: %s", err)
		}
		if !dirExists {
			log.Printf("disk storage root dir [%s] will be created", cfg.DiskRootPath)
		}
	}

	if otelServiceName := os.Getenv("OTEL_SERVICE_NAME"); otelServiceName == "" {
		log.Warnln("OTEL_SERVICE_NAME env var not set")
	}
	if secrets.HoneycombEnabled {
		if honeycombApiKey := os.Getenv("HONEYCOMB_API_KEY"); honeycombApiKey == "" {
			log.Warnln("HONEYCOMB_API_KEY env var not set")
		}
	} else {
		log.Debugln("honeycomb tracing disabled")
	}

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())

	server, err := internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:      cfg,
			Secrets:     secrets,
			VersionInfo: versionInfo,
		},
	)
	if err != nil {
		log.Fatalf("new server: %s", err)
	}

	server.Serve(ctx, cfg.Host, cfg.Port)

	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, killing everything ...", receivedSig)
	cancel()

	if err := server.GracefulShutdown(); err != nil {
		log.Errorf("graceful shutdown: %s", err)
	}
}

// tryGetLastCommitHash will try to get the last commit hash
// assumes that the built main executable is in project root
func tryGetLastCommitHash() (string, error) {
	cmd := exec.Command("/usr/bin/git", "rev-parse", "HEAD")
	stdout, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(pkg.BytesToString(stdout)), nil
}
