package storage

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	log "github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// migrate applies the embedded migrations. Both SQL backends share the same
// schema, only the goose dialect differs.
func migrate(ctx context.Context, db *sql.DB, dialect goose.Dialect) error {
	migrationsDir, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("migrations dir: %w", err)
	}

	provider, err := goose.NewProvider(dialect, db, migrationsDir)
	if err != nil {
		return fmt.Errorf("new goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("migrations up: %w", err)
	}
	for _, r := range results {
		log.Debugf("migration applied [%s]: %s", dialect, r)
	}

	return nil
}
