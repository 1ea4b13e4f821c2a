package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Supported values of the DB_DRIVER setting.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Options selects and configures the storage backend.
type Options struct {
	Driver      string
	PostgresURL string
	SQLitePath  string
	MaxConns    int32
}

// Open connects to the configured backend.
func Open(ctx context.Context, opts Options) (*sql.DB, func(), error) {
	switch opts.Driver {
	case DriverPostgres:
		return OpenPostgres(ctx, opts.PostgresURL, opts.MaxConns)
	case DriverSQLite:
		return OpenSQLite(ctx, opts.SQLitePath)
	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", opts.Driver)
	}
}
