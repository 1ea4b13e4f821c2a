package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/bill_tracker/internal/apperrors"
	"github.com/SscSPs/bill_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/bill_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bill_tracker/internal/core/ports/services"
)

// Validator checks the rules of one entity that need the database, such as
// foreign key existence and name uniqueness. It returns field errors for
// bad input and a plain error only when a lookup itself fails.
type Validator[T any] func(ctx context.Context, refs portsrepo.ReferenceChecker, item *T) (apperrors.FieldErrors, error)

// crudService implements the list/get/create/update/delete operations
// shared by every resource.
type crudService[T any, P domain.Entity[T]] struct {
	BaseService
	resource string
	repo     portsrepo.RepositoryFacade[T]
	refs     portsrepo.ReferenceChecker
	validate Validator[T]
}

// NewCRUDService creates the service for one resource. resource is only
// used in log lines.
func NewCRUDService[T any, P domain.Entity[T]](
	resource string,
	repo portsrepo.RepositoryFacade[T],
	refs portsrepo.ReferenceChecker,
	validate Validator[T],
) portssvc.CRUDSvcFacade[T] {
	return &crudService[T, P]{
		resource: resource,
		repo:     repo,
		refs:     refs,
		validate: validate,
	}
}

func (s *crudService[T, P]) List(ctx context.Context) ([]T, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		s.logFailure(ctx, err, "Failed to list "+s.resource)
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	s.LogDebug(ctx, "Listed "+s.resource, slog.Int("count", len(items)))
	return items, nil
}

func (s *crudService[T, P]) Get(ctx context.Context, id int64) (*T, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logFailure(ctx, err, "Failed to get "+s.resource, slog.Int64("id", id))
		return nil, err
	}
	return item, nil
}

func (s *crudService[T, P]) Create(ctx context.Context, item T) (*T, error) {
	// ids are always assigned by storage
	P(&item).SetID(0)

	if err := s.check(ctx, &item); err != nil {
		s.logFailure(ctx, err, "Rejected "+s.resource+" create")
		return nil, err
	}
	if err := s.repo.Create(ctx, &item); err != nil {
		s.logFailure(ctx, err, "Failed to create "+s.resource)
		return nil, err
	}

	s.LogInfo(ctx, "Created "+s.resource, slog.Int64("id", P(&item).GetID()))
	return &item, nil
}

func (s *crudService[T, P]) Update(ctx context.Context, id int64, item T) (*T, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		s.logFailure(ctx, err, "Failed to load "+s.resource+" for update", slog.Int64("id", id))
		return nil, err
	}

	P(&item).SetID(id)
	if err := s.check(ctx, &item); err != nil {
		s.logFailure(ctx, err, "Rejected "+s.resource+" update", slog.Int64("id", id))
		return nil, err
	}
	if err := s.repo.Update(ctx, &item); err != nil {
		s.logFailure(ctx, err, "Failed to update "+s.resource, slog.Int64("id", id))
		return nil, err
	}

	s.LogInfo(ctx, "Updated "+s.resource, slog.Int64("id", id))
	return &item, nil
}

func (s *crudService[T, P]) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logFailure(ctx, err, "Failed to delete "+s.resource, slog.Int64("id", id))
		return err
	}
	s.LogInfo(ctx, "Deleted "+s.resource, slog.Int64("id", id))
	return nil
}

func (s *crudService[T, P]) check(ctx context.Context, item *T) error {
	if s.validate == nil {
		return nil
	}
	fields, err := s.validate(ctx, s.refs, item)
	if err != nil {
		return err
	}
	if len(fields) > 0 {
		return apperrors.NewValidationError(fields)
	}
	return nil
}
