package ports

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/orderstatus"
)

// OrderStatusRepository defines the persistence contract for order statuses.
type OrderStatusRepository interface {
	Add(ctx context.Context, aggregate *orderstatus.OrderStatus) error
	Update(ctx context.Context, aggregate *orderstatus.OrderStatus) error
	Get(ctx context.Context, id kernel.UUID) (*orderstatus.OrderStatus, error)
	GetIncludingDeleted(ctx context.Context, id kernel.UUID) (*orderstatus.OrderStatus, error)

	// GetInitial returns the status assigned to new orders: the oldest live
	// status. Returns errs.ObjectNotFoundError when no status exists.
	GetInitial(ctx context.Context) (*orderstatus.OrderStatus, error)

	Find(ctx context.Context, q ListQuery) ([]*orderstatus.OrderStatus, int64, error)
	FindIncludingDeleted(ctx context.Context, q ListQuery) ([]*orderstatus.OrderStatus, int64, error)
	FindOnlyDeleted(ctx context.Context, q ListQuery) ([]*orderstatus.OrderStatus, int64, error)
}
