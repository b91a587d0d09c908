package orderrepo

import (
	"context"

	"backoffice/internal/adapters/out/postgres/pgutil"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	orderSelect  = "orders.*, customers.name AS customer_name, order_statuses.name AS status_name"
	detailSelect = "order_details.*, products.name AS product_name"
)

var (
	orderJoins = []string{
		"JOIN customers ON customers.id = orders.customer_id",
		"JOIN order_statuses ON order_statuses.id = orders.status_id",
	}

	orderListing = pgutil.Listing{
		Table: "orders",
		Columns: pgutil.Columns{
			"id":          "orders.id",
			"customer_id": "orders.customer_id",
			"status_id":   "orders.status_id",
			"total":       "orders.total",
			"created_at":  "orders.created_at",
			"updated_at":  "orders.updated_at",
		},
		Joins:   orderJoins,
		Select:  orderSelect,
		Prepare: withDetails,
	}
)

// withDetails preloads every line of the order, deleted ones included, so
// the aggregate is always complete.
func withDetails(db *gorm.DB) *gorm.DB {
	return db.Preload("Details", func(db *gorm.DB) *gorm.DB {
		return db.Unscoped().
			Select(detailSelect).
			Joins("JOIN products ON products.id = order_details.product_id").
			Order("order_details.created_at ASC").
			Order("order_details.id ASC")
	})
}

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository. tracker may be
// nil.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormOrderRepository) track(o *order.Order) {
	if r.tracker != nil {
		r.tracker.TrackAggregate(o.ID(), o)
	}
}

// Add saves the order row. Lines are written by the detail repository or by
// Update.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return pgutil.TranslateError(err, "order")
	}

	r.track(aggregate)
	return nil
}

// Update saves the order row and upserts every line.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Unscoped().
		Model(&OrderDTO{ID: dto.ID}).
		Select("*").
		Omit(clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return pgutil.TranslateError(result.Error, "order")
	}
	if result.RowsAffected == 0 {
		return pgutil.NotFound(gorm.ErrRecordNotFound, "order", aggregate.ID().String())
	}

	if err := r.upsertDetails(ctx, dto.Details); err != nil {
		return err
	}

	r.track(aggregate)
	return nil
}

// upsertDetails writes every line of the order. It starts its own chain:
// the statement used for the order row still carries the orders model.
func (r *GormOrderRepository) upsertDetails(ctx context.Context, details []DetailDTO) error {
	if len(details) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).Unscoped().
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&details).Error
	if err != nil {
		return pgutil.TranslateError(err, "order detail")
	}
	return nil
}

// Get retrieves a live order with its lines.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, r.db, id)
}

func (r *GormOrderRepository) GetIncludingDeleted(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, r.db.Unscoped(), id)
}

func (r *GormOrderRepository) get(ctx context.Context, db *gorm.DB, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	q := db.WithContext(ctx).Select(orderSelect)
	for _, join := range orderJoins {
		q = q.Joins(join)
	}

	var dto OrderDTO
	if err := withDetails(q).First(&dto, "orders.id = ?", id.Bytes()).Error; err != nil {
		return nil, pgutil.NotFound(err, "order", id.String())
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) Find(ctx context.Context, q ports.ListQuery) ([]*order.Order, int64, error) {
	return r.find(ctx, q, ports.ExcludeDeleted)
}

func (r *GormOrderRepository) FindIncludingDeleted(
	ctx context.Context,
	q ports.ListQuery,
) ([]*order.Order, int64, error) {
	return r.find(ctx, q, ports.IncludeDeleted)
}

func (r *GormOrderRepository) FindOnlyDeleted(
	ctx context.Context,
	q ports.ListQuery,
) ([]*order.Order, int64, error) {
	return r.find(ctx, q, ports.OnlyDeleted)
}

func (r *GormOrderRepository) find(
	ctx context.Context,
	q ports.ListQuery,
	scope ports.DeletedScope,
) ([]*order.Order, int64, error) {
	dtos, total, err := pgutil.Find[OrderDTO](ctx, r.db, orderListing, q, scope)
	if err != nil {
		return nil, 0, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}
	return orders, total, nil
}
