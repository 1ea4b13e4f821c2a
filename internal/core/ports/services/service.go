package services

import (
	"context"

	"github.com/SscSPs/bill_tracker/internal/core/domain"
)

// CRUDReaderSvc defines read operations for one resource.
type CRUDReaderSvc[T any] interface {
	// List returns all rows in the resource's default order.
	List(ctx context.Context) ([]T, error)

	// Get returns a single row or apperrors.ErrNotFound.
	Get(ctx context.Context, id int64) (*T, error)
}

// CRUDWriterSvc defines write operations for one resource.
type CRUDWriterSvc[T any] interface {
	// Create validates and persists item, returning it with its assigned id.
	Create(ctx context.Context, item T) (*T, error)

	// Update validates and replaces the row identified by id.
	Update(ctx context.Context, id int64, item T) (*T, error)

	// Delete removes the row identified by id.
	Delete(ctx context.Context, id int64) error
}

// CRUDSvcFacade combines all operations of one resource.
type CRUDSvcFacade[T any] interface {
	CRUDReaderSvc[T]
	CRUDWriterSvc[T]
}

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Recurrence          CRUDSvcFacade[domain.Recurrence]
	BillStatus          CRUDSvcFacade[domain.BillStatus]
	BankAccount         CRUDSvcFacade[domain.BankAccount]
	Bill                CRUDSvcFacade[domain.Bill]
	DueBill             CRUDSvcFacade[domain.DueBill]
	BankAccountInstance CRUDSvcFacade[domain.BankAccountInstance]
}
