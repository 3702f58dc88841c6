package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"rental-frontend/app/config"
)

// Connection pool configuration constants. One end user per process keeps
// the pool small.
const (
	maxConns        = int32(8)
	minConns        = int32(1)
	maxConnLifetime = time.Hour
	maxConnIdleTime = 30 * time.Minute
	connectTimeout  = 30 * time.Second
	healthTimeout   = 5 * time.Second
	applicationName = "rental-frontend"
)

// requiredTables must exist before the process reports ready; they are created by cmd/migrate.
var requiredTables = []string{
	"users",
	"listings",
	"saved_listings",
	"messages",
	"notifications",
	"search_preferences",
}

// DB owns the pgx pool shared by all repositories
type DB struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewConnection opens the pool and verifies the database answers
func NewConnection(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*DB, error) {
	poolConfig, err := newPoolConfig(cfg)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger = logger.With("component", "database")
	logger.Info("database connection established",
		"host", poolConfig.ConnConfig.Host,
		"database", poolConfig.ConnConfig.Database,
		"max_conns", poolConfig.MaxConns)

	return &DB{
		pool:   pool,
		logger: logger,
	}, nil
}

func newPoolConfig(cfg *config.Config) (*pgxpool.Config, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = maxConns
	poolConfig.MinConns = minConns
	poolConfig.MaxConnLifetime = maxConnLifetime
	poolConfig.MaxConnIdleTime = maxConnIdleTime
	if _, ok := poolConfig.ConnConfig.RuntimeParams["application_name"]; !ok {
		poolConfig.ConnConfig.RuntimeParams["application_name"] = applicationName
	}

	return poolConfig, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
		db.logger.Info("database connection closed")
	}
}

// Pool returns the pool the repositories are built on
func (db *DB) Pool() *pgxpool.Pool {
	return db.pool
}

// HealthCheck pings the database and checks the marketplace schema is migrated
func (db *DB) HealthCheck(ctx context.Context) error {
	if db.pool == nil {
		return errors.New("database connection is not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	if err := db.pool.Ping(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return checkSchema(ctx, db.pool)
}

func checkSchema(ctx context.Context, q DatabaseIface) error {
	var missing []string
	err := q.QueryRow(ctx,
		`SELECT coalesce(array_agg(t.name), '{}') FROM unnest($1::text[]) AS t(name) WHERE to_regclass(t.name) IS NULL`,
		requiredTables,
	).Scan(&missing)
	if err != nil {
		return fmt.Errorf("schema check failed: %w", err)
	}

	if len(missing) > 0 {
		return fmt.Errorf("database schema not migrated, missing tables: %v", missing)
	}
	return nil
}
