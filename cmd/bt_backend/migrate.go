package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/bill_tracker/pkg/database"
	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}
	cmd.AddCommand(newMigrateUpCommand(), newMigrateDownCommand(), newMigrateVersionCommand())
	return cmd
}

func newMigrateUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(cmd.Context(), func(m *database.Migrator, logger *slog.Logger) error {
				err := m.Up()
				if errors.Is(err, migrate.ErrNoChange) {
					logger.Info("No new migrations to apply.")
					return nil
				}
				if err != nil {
					return fmt.Errorf("failed to apply migrations: %w", err)
				}
				logger.Info("Database migrations applied successfully.")
				return nil
			})
		},
	}
}

func newMigrateDownCommand() *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps < 1 {
				return fmt.Errorf("--steps must be at least 1")
			}
			return withMigrator(cmd.Context(), func(m *database.Migrator, logger *slog.Logger) error {
				err := m.Steps(-steps)
				if errors.Is(err, migrate.ErrNoChange) {
					logger.Info("Nothing to roll back.")
					return nil
				}
				if err != nil {
					return fmt.Errorf("failed to roll back migrations: %w", err)
				}
				logger.Info("Rolled back migrations.", slog.Int("steps", steps))
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")
	return cmd
}

func newMigrateVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(cmd.Context(), func(m *database.Migrator, logger *slog.Logger) error {
				version, dirty, err := m.Version()
				if errors.Is(err, migrate.ErrNilVersion) {
					cmd.Println("no migrations applied")
					return nil
				}
				if err != nil {
					return fmt.Errorf("failed to read schema version: %w", err)
				}
				cmd.Printf("version %d (dirty: %t)\n", version, dirty)
				return nil
			})
		},
	}
}

// withMigrator opens the configured database, runs fn and releases everything.
func withMigrator(ctx context.Context, fn func(*database.Migrator, *slog.Logger) error) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	db, closeDB, err := database.Open(ctx, cfg.DatabaseOptions())
	if err != nil {
		return err
	}
	defer closeDB()

	m, err := database.NewMigrator(ctx, db, cfg.DBDriver)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := m.Close(); cerr != nil {
			logger.Error("Error closing migrator", slog.String("error", cerr.Error()))
		}
	}()

	return fn(m, logger)
}
