package sqlstore

import (
	"errors"
	"fmt"

	"github.com/SscSPs/bill_tracker/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// PostgreSQL SQLSTATE codes for constraint failures.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
	pgNumericOutOfRange   = "22003"
	pgStringTooLong       = "22001"
)

// integrityDetail is the client-facing text of every constraint failure; the
// driver message stays in the wrapped error for the logs.
const integrityDetail = "The request conflicts with a database constraint."

// translate turns constraint failures into integrity errors and wraps
// everything else with the failed action.
func (d *Database) translate(err error, action string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation, pgForeignKeyViolation, pgNotNullViolation,
			pgCheckViolation, pgNumericOutOfRange, pgStringTooLong:
			cause := err
			if pgErr.ConstraintName != "" {
				cause = fmt.Errorf("constraint %s: %w", pgErr.ConstraintName, err)
			}
			return apperrors.NewIntegrityError(integrityDetail, cause)
		}
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return apperrors.NewIntegrityError(integrityDetail, err)
	}

	return fmt.Errorf("failed to %s: %w", action, err)
}

func (d *Database) isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}
	return false
}
