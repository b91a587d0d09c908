package ports

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are always loaded together with their details.
type OrderRepository interface {
	// Add persists a new order row. Details are added through
	// OrderDetailRepository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the order row and upserts its details, so the stored
	// total and lines move together.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves a live order with its details.
	// Returns errs.ObjectNotFoundError when absent or deleted.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
	GetIncludingDeleted(ctx context.Context, id kernel.UUID) (*order.Order, error)

	Find(ctx context.Context, q ListQuery) ([]*order.Order, int64, error)
	FindIncludingDeleted(ctx context.Context, q ListQuery) ([]*order.Order, int64, error)
	FindOnlyDeleted(ctx context.Context, q ListQuery) ([]*order.Order, int64, error)
}

// OrderDetailRepository persists and lists order lines.
type OrderDetailRepository interface {
	Add(ctx context.Context, detail *order.Detail) error

	// Find lists live lines; the "order_id" filter scopes them to one order.
	Find(ctx context.Context, q ListQuery) ([]*order.Detail, int64, error)
}
