package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

// NewPgxPool creates a new PostgreSQL connection pool.
func NewPgxPool(ctx context.Context, databaseURL string, maxConns int32) (*pgxpool.Pool, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL cannot be empty")
	}

	// pgxpool.ParseConfig automatically reads environment variables like PGHOST, PGUSER, etc.
	// but we can also force the use of the URL.
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config from URL: %w", err)
	}
	if maxConns > 0 {
		config.MaxConns = maxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Test the connection
	err = pool.Ping(ctx)
	if err != nil {
		pool.Close() // Close the pool if ping fails
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	slog.Info("Successfully connected to PostgreSQL database.")
	return pool, nil
}

// OpenPostgres exposes a pgx pool through database/sql so the shared SQL
// store and golang-migrate can use it. The returned close func releases
// both the *sql.DB and the pool.
func OpenPostgres(ctx context.Context, databaseURL string, maxConns int32) (*sql.DB, func(), error) {
	pool, err := NewPgxPool(ctx, databaseURL, maxConns)
	if err != nil {
		return nil, nil, err
	}
	db := stdlib.OpenDBFromPool(pool)

	closeFn := func() {
		if err := db.Close(); err != nil {
			slog.Error("Error closing PostgreSQL handle", slog.String("error", err.Error()))
		}
		pool.Close()
		slog.Info("PostgreSQL connection pool closed.")
	}
	return db, closeFn, nil
}
