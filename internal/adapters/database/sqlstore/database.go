package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/SscSPs/bill_tracker/internal/apperrors"
	"github.com/SscSPs/bill_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/bill_tracker/internal/core/ports/repositories"
)

// Dialect selects placeholder syntax and error classification.
type Dialect int

const (
	Postgres Dialect = iota
	SQLite
)

// DialectFor maps a configured driver name to its dialect.
func DialectFor(driver string) (Dialect, error) {
	switch strings.ToLower(driver) {
	case "postgres", "postgresql", "pgx":
		return Postgres, nil
	case "sqlite", "sqlite3":
		return SQLite, nil
	default:
		return 0, fmt.Errorf("unsupported database driver %q", driver)
	}
}

func (d Dialect) placeholder(n int) string {
	if d == Postgres {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

// Database is the shared handle behind every table repository.
type Database struct {
	DB      *sql.DB
	Dialect Dialect
}

// New wraps an open *sql.DB.
func New(db *sql.DB, dialect Dialect) *Database {
	return &Database{DB: db, Dialect: dialect}
}

// Ensure implementation matches interface
var _ portsrepo.ReferenceChecker = (*Database)(nil)

// WithTx runs fn in a transaction, committing on nil and rolling back otherwise.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return errors.Join(err, fmt.Errorf("failed to rollback transaction: %w", rbErr))
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return d.translate(err, "commit transaction")
	}
	return nil
}

// Exists reports whether table has a row with the given id.
func (d *Database) Exists(ctx context.Context, table string, id int64) (bool, error) {
	if !domain.IsTable(table) {
		return false, fmt.Errorf("unknown table %q", table)
	}
	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE id = %s)", table, d.Dialect.placeholder(1))

	var exists bool
	if err := d.DB.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check %s %d: %w", table, id, err)
	}
	return exists, nil
}

// NameTaken reports whether a row other than exceptID already uses name.
func (d *Database) NameTaken(ctx context.Context, table, name string, exceptID int64) (bool, error) {
	if !domain.IsTable(table) {
		return false, fmt.Errorf("unknown table %q", table)
	}
	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE name = %s AND id <> %s)",
		table, d.Dialect.placeholder(1), d.Dialect.placeholder(2))

	var taken bool
	if err := d.DB.QueryRowContext(ctx, query, name, exceptID).Scan(&taken); err != nil {
		return false, fmt.Errorf("failed to check %s name uniqueness: %w", table, err)
	}
	return taken, nil
}

// deleteRow applies every inbound relation's policy and then deletes the
// row. Protect relations are checked before anything is modified; the
// surrounding transaction undoes partial work if a cascaded child is blocked.
func (d *Database) deleteRow(ctx context.Context, tx *sql.Tx, table string, id int64) error {
	ph := d.Dialect.placeholder(1)

	for _, rel := range domain.InboundRelations(table) {
		slog.DebugContext(ctx, "Applying delete policy",
			slog.String("parent", table), slog.Int64("id", id),
			slog.String("child", rel.Table+"."+rel.Column), slog.String("policy", rel.OnDelete.String()))

		switch rel.OnDelete {
		case domain.Protect:
			var count int64
			query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = %s", rel.Table, rel.Column, ph)
			if err := tx.QueryRowContext(ctx, query, id).Scan(&count); err != nil {
				return fmt.Errorf("failed to count %s referencing %s %d: %w", rel.Table, table, id, err)
			}
			if count > 0 {
				return apperrors.NewConflictError(fmt.Sprintf(
					"Cannot delete %s %d: referenced by %d %s row(s) through protected foreign key %s.%s",
					table, id, count, rel.Table, rel.Table, rel.Column))
			}

		case domain.SetNull:
			query := fmt.Sprintf("UPDATE %s SET %s = NULL WHERE %s = %s", rel.Table, rel.Column, rel.Column, ph)
			if _, err := tx.ExecContext(ctx, query, id); err != nil {
				return d.translate(err, "clear "+rel.Table+"."+rel.Column)
			}

		case domain.Cascade:
			childIDs, err := d.childIDs(ctx, tx, rel, id)
			if err != nil {
				return err
			}
			for _, childID := range childIDs {
				if err := d.deleteRow(ctx, tx, rel.Table, childID); err != nil {
					return err
				}
			}
		}
	}

	res, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = %s", table, ph), id)
	if err != nil {
		if d.isForeignKeyViolation(err) {
			return apperrors.NewConflictError(fmt.Sprintf("Cannot delete %s %d: it is still referenced", table, id))
		}
		return d.translate(err, "delete from "+table)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected deleting %s %d: %w", table, id, err)
	}
	if affected == 0 {
		return apperrors.NewNotFoundError("Not found.")
	}
	return nil
}

func (d *Database) childIDs(ctx context.Context, tx *sql.Tx, rel domain.Relation, parentID int64) ([]int64, error) {
	query := fmt.Sprintf("SELECT id FROM %s WHERE %s = %s", rel.Table, rel.Column, d.Dialect.placeholder(1))
	rows, err := tx.QueryContext(ctx, query, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s children: %w", rel.Table, err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan %s id: %w", rel.Table, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s children: %w", rel.Table, err)
	}
	return ids, nil
}
