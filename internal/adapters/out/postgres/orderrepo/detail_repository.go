package orderrepo

import (
	"context"

	"backoffice/internal/adapters/out/postgres/pgutil"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/ports"

	"gorm.io/gorm"
)

var detailListing = pgutil.Listing{
	Table: "order_details",
	Columns: pgutil.Columns{
		"id":          "order_details.id",
		"order_id":    "order_details.order_id",
		"product_id":  "order_details.product_id",
		"customer_id": "orders.customer_id",
		"quantity":    "order_details.quantity",
		"subtotal":    "order_details.subtotal",
		"created_at":  "order_details.created_at",
	},
	Joins: []string{
		"JOIN orders ON orders.id = order_details.order_id",
		"JOIN products ON products.id = order_details.product_id",
	},
	Select: detailSelect,
}

// GormOrderDetailRepository implements ports.OrderDetailRepository using
// GORM.
type GormOrderDetailRepository struct {
	db *gorm.DB
}

func NewGormOrderDetailRepository(db *gorm.DB) *GormOrderDetailRepository {
	return &GormOrderDetailRepository{db: db}
}

func (r *GormOrderDetailRepository) Add(ctx context.Context, detail *order.Detail) error {
	if err := detail.Validate(); err != nil {
		return err
	}

	dto := detailFromDomain(detail)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgutil.TranslateError(err, "order detail")
	}
	return nil
}

// Find lists live lines. The customer_id filter goes through the owning
// order.
func (r *GormOrderDetailRepository) Find(ctx context.Context, q ports.ListQuery) ([]*order.Detail, int64, error) {
	dtos, total, err := pgutil.Find[DetailDTO](ctx, r.db, detailListing, q, ports.ExcludeDeleted)
	if err != nil {
		return nil, 0, err
	}

	details := make([]*order.Detail, 0, len(dtos))
	for _, dto := range dtos {
		d, err := detailToDomain(dto)
		if err != nil {
			return nil, 0, err
		}
		details = append(details, d)
	}
	return details, total, nil
}
