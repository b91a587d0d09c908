package ports

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	Add(ctx context.Context, aggregate *product.Product) error
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a live product by ID.
	// Returns errs.ObjectNotFoundError when absent or deleted.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)
	GetIncludingDeleted(ctx context.Context, id kernel.UUID) (*product.Product, error)

	Find(ctx context.Context, q ListQuery) ([]*product.Product, int64, error)
	FindIncludingDeleted(ctx context.Context, q ListQuery) ([]*product.Product, int64, error)
	FindOnlyDeleted(ctx context.Context, q ListQuery) ([]*product.Product, int64, error)
}
