// Package integration exercises the PostgreSQL drivers against a real database.
// The tests are skipped unless INTEGRATION_DATABASE_URL is set.
package integration

import (
	"context"
	"fmt"
	"os"
	"time"

	"rental-frontend/app/config"
	"rental-frontend/app/driver/postgres"
	"rental-frontend/app/utils/database"
	"rental-frontend/app/utils/logger"
	"rental-frontend/app/utils/migration"
)

const (
	// DatabaseURLEnv names the variable holding the test database DSN
	DatabaseURLEnv = "INTEGRATION_DATABASE_URL"

	migrationsDir = "../../app/cmd/migrate/migrations"
)

// TestConfig builds an application config pointing at the integration database
func TestConfig() (*config.Config, bool) {
	dsn := os.Getenv(DatabaseURLEnv)
	if dsn == "" {
		return nil, false
	}

	return &config.Config{
		Port:        "9500",
		Host:        "127.0.0.1",
		LogLevel:    "debug",
		DatabaseURL: dsn,
	}, true
}

// Migrate applies every pending migration with the migrate command's runner
func Migrate(ctx context.Context, cfg *config.Config) error {
	conn, err := database.NewConnection(ctx, database.ConfigFromApp(cfg), logger.Discard())
	if err != nil {
		return err
	}
	defer conn.Close()

	migrator := migration.NewMigrator(conn.DB(), logger.Discard(), os.DirFS(migrationsDir))
	return migrator.Up(ctx)
}

// WaitForDatabase retries the pgx pool until the database answers or ctx expires
func WaitForDatabase(ctx context.Context, cfg *config.Config) (*postgres.DB, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		db, err := postgres.NewConnection(ctx, cfg, logger.Discard())
		if err == nil {
			return db, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("database not ready: %w", err)
		case <-ticker.C:
		}
	}
}
