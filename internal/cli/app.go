package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/gymroutines/internal/config"
	"github.com/2beens/gymroutines/internal/gymstats/routines"
	"github.com/2beens/gymroutines/internal/gymstats/stats"
	"github.com/2beens/gymroutines/internal/gymstats/workoutlogs"
	"github.com/2beens/gymroutines/internal/storage"
)

type configKey struct{}

func withConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

func mustConfigFrom(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok && cfg != nil {
		return cfg
	}
	panic("gymctl config missing from context")
}

// app holds the stores a command works on, opened on the configured backend.
type app struct {
	kv       storage.KV
	routines *routines.Store
	logs     *workoutlogs.Store
	location *time.Location
}

func openApp(ctx context.Context) (*app, error) {
	cfg := mustConfigFrom(ctx)

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	secrets := config.SecretsFromEnv()
	secrets.HoneycombEnabled = false
	kv, err := storage.Open(ctx, cfg.StorageParams(secrets, nil))
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	return &app{
		kv:       kv,
		routines: routines.NewStore(ctx, kv),
		logs:     workoutlogs.NewStore(ctx, kv),
		location: loc,
	}, nil
}

func (a *app) Close() error {
	return a.kv.Close()
}

func (a *app) routineName(routineID string) string {
	if r, ok := a.routines.FindByID(routineID); ok {
		return r.Name
	}
	return stats.UnknownRoutineName
}
