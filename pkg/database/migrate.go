package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/bill_tracker/migrations"
	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// Migrator applies the embedded migrations to an already open handle. It
// never closes that handle; the caller keeps ownership of db.
type Migrator struct {
	*migrate.Migrate
	release func() error
}

// NewMigrator prepares a golang-migrate instance for driver over db.
func NewMigrator(ctx context.Context, db *sql.DB, driver string) (*Migrator, error) {
	src, err := iofs.New(migrations.FS, driver)
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations for %s: %w", driver, err)
	}

	switch driver {
	case DriverPostgres:
		// A dedicated connection keeps the advisory lock on one session and
		// goes back to the pool on Close.
		conn, err := db.Conn(ctx)
		if err != nil {
			_ = src.Close()
			return nil, fmt.Errorf("failed to acquire connection for migrations: %w", err)
		}
		dbDriver, err := postgres.WithConnection(ctx, conn, &postgres.Config{})
		if err != nil {
			_ = conn.Close()
			_ = src.Close()
			return nil, fmt.Errorf("could not create postgres driver instance for migrations: %w", err)
		}
		m, err := migrate.NewWithInstance("iofs", src, "postgres", dbDriver)
		if err != nil {
			_ = dbDriver.Close()
			_ = src.Close()
			return nil, fmt.Errorf("could not create migrate instance: %w", err)
		}
		return &Migrator{Migrate: m, release: func() error {
			srcErr, dbErr := m.Close()
			return errors.Join(srcErr, dbErr)
		}}, nil

	case DriverSQLite:
		dbDriver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
		if err != nil {
			_ = src.Close()
			return nil, fmt.Errorf("could not create sqlite3 driver instance for migrations: %w", err)
		}
		m, err := migrate.NewWithInstance("iofs", src, "sqlite3", dbDriver)
		if err != nil {
			_ = src.Close()
			return nil, fmt.Errorf("could not create migrate instance: %w", err)
		}
		// Closing the sqlite3 driver would close the shared *sql.DB.
		return &Migrator{Migrate: m, release: src.Close}, nil

	default:
		_ = src.Close()
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Close releases the migration source and any dedicated connection.
func (m *Migrator) Close() error {
	return m.release()
}

// MigrateUp applies all pending up migrations.
func MigrateUp(ctx context.Context, db *sql.DB, driver string, logger *slog.Logger) error {
	m, err := NewMigrator(ctx, db, driver)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := m.Close(); cerr != nil {
			logger.Error("Error closing migrator", slog.String("error", cerr.Error()))
		}
	}()

	logger.Info("Running database migrations...", slog.String("driver", driver))
	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	logger.Info("Database migrations applied successfully.")
	return nil
}
