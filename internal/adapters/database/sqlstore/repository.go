package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/bill_tracker/internal/apperrors"
	"github.com/SscSPs/bill_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/bill_tracker/internal/core/ports/repositories"
)

// table describes how one entity maps onto its SQL table.
type table[T any] struct {
	name    string
	columns []string // every column except id, in values order
	orderBy string
	values  func(item *T) []any
	fields  func(item *T) []any // scan targets: id first, then columns
}

// Repository is the generic CRUD repository for one table.
type Repository[T any, P domain.Entity[T]] struct {
	db *Database
	t  table[T]
}

func newRepository[T any, P domain.Entity[T]](db *Database, t table[T]) *Repository[T, P] {
	return &Repository[T, P]{db: db, t: t}
}

// Ensure implementation matches interface
var _ portsrepo.RepositoryFacade[domain.Recurrence] = (*Repository[domain.Recurrence, *domain.Recurrence])(nil)

func (r *Repository[T, P]) selectSQL() string {
	return fmt.Sprintf("SELECT id, %s FROM %s", strings.Join(r.t.columns, ", "), r.t.name)
}

// List returns all rows in the table's default order.
func (r *Repository[T, P]) List(ctx context.Context) ([]T, error) {
	query := r.selectSQL() + " ORDER BY " + r.t.orderBy

	rows, err := r.db.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", r.t.name, err)
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		var item T
		if err := rows.Scan(r.t.fields(&item)...); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", r.t.name, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s rows: %w", r.t.name, err)
	}
	return items, nil
}

// FindByID returns the row with id.
func (r *Repository[T, P]) FindByID(ctx context.Context, id int64) (*T, error) {
	query := r.selectSQL() + " WHERE id = " + r.db.Dialect.placeholder(1)

	var item T
	err := r.db.DB.QueryRowContext(ctx, query, id).Scan(r.t.fields(&item)...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("Not found.")
		}
		return nil, fmt.Errorf("failed to find %s %d: %w", r.t.name, id, err)
	}
	return &item, nil
}

// Create inserts item and stores the assigned id on it.
func (r *Repository[T, P]) Create(ctx context.Context, item *T) error {
	placeholders := make([]string, len(r.t.columns))
	for i := range placeholders {
		placeholders[i] = r.db.Dialect.placeholder(i + 1)
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		r.t.name, strings.Join(r.t.columns, ", "), strings.Join(placeholders, ", "))

	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		var id int64
		if err := tx.QueryRowContext(ctx, query, r.t.values(item)...).Scan(&id); err != nil {
			return r.db.translate(err, "insert into "+r.t.name)
		}
		P(item).SetID(id)
		return nil
	})
}

// Update overwrites every column of the row identified by item's id.
func (r *Repository[T, P]) Update(ctx context.Context, item *T) error {
	assignments := make([]string, len(r.t.columns))
	for i, col := range r.t.columns {
		assignments[i] = col + " = " + r.db.Dialect.placeholder(i+1)
	}
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = %s",
		r.t.name, strings.Join(assignments, ", "), r.db.Dialect.placeholder(len(r.t.columns)+1))
	args := append(r.t.values(item), P(item).GetID())

	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return r.db.translate(err, "update "+r.t.name)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read rows affected updating %s: %w", r.t.name, err)
		}
		if affected == 0 {
			return apperrors.NewNotFoundError("Not found.")
		}
		return nil
	})
}

// Delete removes the row and applies the delete policies of its dependents.
func (r *Repository[T, P]) Delete(ctx context.Context, id int64) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		return r.db.deleteRow(ctx, tx, r.t.name, id)
	})
}
