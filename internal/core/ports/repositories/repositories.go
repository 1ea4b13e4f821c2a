package repositories

import (
	"context"

	"github.com/SscSPs/bill_tracker/internal/core/domain"
)

// Reader defines read operations for one entity table.
type Reader[T any] interface {
	// List returns every row in the table's default order.
	List(ctx context.Context) ([]T, error)

	// FindByID returns the row with id or apperrors.ErrNotFound.
	FindByID(ctx context.Context, id int64) (*T, error)
}

// Writer defines write operations for one entity table. Each call runs in
// its own transaction.
type Writer[T any] interface {
	// Create inserts item and stores the assigned id on it.
	Create(ctx context.Context, item *T) error

	// Update overwrites every column of the row identified by item's id.
	Update(ctx context.Context, item *T) error

	// Delete removes the row, applying the delete policy of every relation
	// that references it.
	Delete(ctx context.Context, id int64) error
}

// RepositoryFacade combines the read and write operations of one table.
type RepositoryFacade[T any] interface {
	Reader[T]
	Writer[T]
}

// RepositoryProvider holds all repository interfaces needed by services.
type RepositoryProvider struct {
	RecurrenceRepo          RepositoryFacade[domain.Recurrence]
	BillStatusRepo          RepositoryFacade[domain.BillStatus]
	BankAccountRepo         RepositoryFacade[domain.BankAccount]
	BillRepo                RepositoryFacade[domain.Bill]
	DueBillRepo             RepositoryFacade[domain.DueBill]
	BankAccountInstanceRepo RepositoryFacade[domain.BankAccountInstance]
	References              ReferenceChecker
}
