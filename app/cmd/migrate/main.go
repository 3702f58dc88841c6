package main

import (
	"context"
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"rental-frontend/app/config"
	"rental-frontend/app/utils/database"
	"rental-frontend/app/utils/logger"
	"rental-frontend/app/utils/migration"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func main() {
	var (
		command = flag.String("command", "up", "Migration command (up, down, status)")
		steps   = flag.Int("steps", 1, "Number of steps for down migration")
		verbose = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Could not load .env file", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logLevel := cfg.LogLevel
	if *verbose {
		logLevel = "debug"
	}

	appLogger, err := logger.New(logLevel)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *command, *steps, cfg, appLogger); err != nil {
		appLogger.Error("Migration failed", "command", *command, "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, command string, steps int, cfg *config.Config, appLogger *slog.Logger) error {
	files, err := embeddedMigrations()
	if err != nil {
		return err
	}

	dbConn, err := database.NewConnection(ctx, database.ConfigFromApp(cfg), appLogger)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	migrator := migration.NewMigrator(dbConn.DB(), appLogger, files)

	switch command {
	case "up":
		if err := migrator.Up(ctx); err != nil {
			return err
		}
		appLogger.Info("All migrations applied successfully")

	case "down":
		if steps <= 0 {
			steps = 1
		}
		for i := 0; i < steps; i++ {
			if err := migrator.Down(ctx); err != nil {
				return fmt.Errorf("step %d: %w", i+1, err)
			}
		}
		appLogger.Info("Migrations rolled back successfully", "steps", steps)

	case "status":
		entries, err := migrator.Status(ctx)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			state := "pending"
			if entry.Applied {
				state = "applied " + entry.AppliedAt.Format(time.RFC3339)
			}
			if entry.Modified {
				state += " (modified)"
			}
			fmt.Printf("%03d %-24s %s\n", entry.Version, entry.Name, state)
		}

	default:
		return fmt.Errorf("unknown command %q (available: up, down, status)", command)
	}

	return nil
}

func embeddedMigrations() (fs.FS, error) {
	return fs.Sub(migrationsFS, "migrations")
}
