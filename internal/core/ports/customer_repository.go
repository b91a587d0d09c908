package ports

import (
	"context"

	"backoffice/internal/core/domain/model/customer"
	"backoffice/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer aggregates.
// Get and Find skip soft-deleted customers; the IncludingDeleted and
// OnlyDeleted variants are the explicit way to reach them.
type CustomerRepository interface {
	// Add persists a new customer. A duplicate email is reported as a
	// conflict.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer, including soft
	// deletion.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a live customer by ID.
	// Returns errs.ObjectNotFoundError when absent or deleted.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetIncludingDeleted retrieves a customer by ID regardless of deletion.
	GetIncludingDeleted(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetByEmail retrieves a live customer by email, used for sign-in.
	GetByEmail(ctx context.Context, email kernel.Email) (*customer.Customer, error)

	// Find returns one page of live customers and the total count matching
	// the filters.
	Find(ctx context.Context, q ListQuery) ([]*customer.Customer, int64, error)
	FindIncludingDeleted(ctx context.Context, q ListQuery) ([]*customer.Customer, int64, error)
	FindOnlyDeleted(ctx context.Context, q ListQuery) ([]*customer.Customer, int64, error)
}
