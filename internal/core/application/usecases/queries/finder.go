package queries

import (
	"context"
	"strings"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"
)

// finder is the Find family every repository port exposes.
type finder[T any] interface {
	Find(ctx context.Context, q ports.ListQuery) ([]T, int64, error)
	FindIncludingDeleted(ctx context.Context, q ports.ListQuery) ([]T, int64, error)
	FindOnlyDeleted(ctx context.Context, q ports.ListQuery) ([]T, int64, error)
}

// find runs q in the scope the criteria ask for. Only admins see deleted
// rows.
func find[T any](
	ctx context.Context,
	repo finder[T],
	actor kernel.Actor,
	c Criteria,
	filters []ports.Filter,
) (PaginatedResponse[T], error) {
	q := c.listQuery(filters)

	var (
		items []T
		total int64
		err   error
	)
	switch c.Scope {
	case ports.IncludeDeleted:
		if err = requireAdmin(actor); err != nil {
			return PaginatedResponse[T]{}, err
		}
		items, total, err = repo.FindIncludingDeleted(ctx, q)
	case ports.OnlyDeleted:
		if err = requireAdmin(actor); err != nil {
			return PaginatedResponse[T]{}, err
		}
		items, total, err = repo.FindOnlyDeleted(ctx, q)
	default:
		items, total, err = repo.Find(ctx, q)
	}
	if err != nil {
		return PaginatedResponse[T]{}, err
	}

	return NewPaginatedResponse(items, total, c), nil
}

// getter is the Get family every repository port exposes.
type getter[T any] interface {
	Get(ctx context.Context, id kernel.UUID) (T, error)
	GetIncludingDeleted(ctx context.Context, id kernel.UUID) (T, error)
}

// GetQuery identifies one entity. IncludeDeleted is honored for admins only.
type GetQuery struct {
	ID             string
	IncludeDeleted bool
}

func get[T any](ctx context.Context, repo getter[T], actor kernel.Actor, q GetQuery) (T, error) {
	var zero T
	id, err := kernel.UUIDFromString(q.ID)
	if err != nil {
		return zero, errs.NewValidationErrorWithCause("id is invalid", err)
	}
	if q.IncludeDeleted {
		if err = requireAdmin(actor); err != nil {
			return zero, err
		}
		return repo.GetIncludingDeleted(ctx, id)
	}
	return repo.Get(ctx, id)
}

func requireAdmin(actor kernel.Actor) error {
	if !actor.IsAdmin {
		return errs.NewForbiddenError("only administrators can see deleted records")
	}
	return nil
}

func ensureValid(messages []string) error {
	if len(messages) == 0 {
		return nil
	}
	return errs.NewValidationError(strings.Join(messages, ", ")).
		WithDetails(map[string]any{"errors": messages})
}

// uuidFilter appends an equality filter on field when raw is set. The value
// is the parsed identifier.
func uuidFilter(filters []ports.Filter, field string, raw *string) []ports.Filter {
	if raw == nil {
		return filters
	}
	id, err := kernel.UUIDFromString(*raw)
	if err != nil {
		return filters
	}
	return append(filters, ports.Filter{Field: field, Operator: ports.OpEqual, Value: id.Bytes()})
}

func checkUUID(messages []string, field string, raw *string) []string {
	if raw == nil {
		return messages
	}
	if _, err := kernel.UUIDFromString(*raw); err != nil {
		return append(messages, field+" is invalid")
	}
	return messages
}
