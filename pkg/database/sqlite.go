package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/mattn/go-sqlite3"
)

// MemoryPath opens a private in-memory SQLite database.
const MemoryPath = ":memory:"

// OpenSQLite opens a SQLite database with foreign keys enforced. A single
// connection is used so that an in-memory database survives between calls.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, func(), error) {
	if path == "" {
		return nil, nil, fmt.Errorf("sqlite path cannot be empty")
	}
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	closeFn := func() {
		if err := db.Close(); err != nil {
			slog.Error("Error closing SQLite database", slog.String("error", err.Error()))
		}
	}
	return db, closeFn, nil
}
