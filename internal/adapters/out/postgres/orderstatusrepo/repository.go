package orderstatusrepo

import (
	"context"

	"backoffice/internal/adapters/out/postgres/pgutil"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/orderstatus"
	"backoffice/internal/core/ports"

	"gorm.io/gorm"
)

var listing = pgutil.Listing{
	Table: "order_statuses",
	Columns: pgutil.Columns{
		"id":         "order_statuses.id",
		"name":       "order_statuses.name",
		"created_at": "order_statuses.created_at",
		"updated_at": "order_statuses.updated_at",
	},
}

// GormOrderStatusRepository implements ports.OrderStatusRepository using GORM.
type GormOrderStatusRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormOrderStatusRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderStatusRepository {
	return &GormOrderStatusRepository{db: db, tracker: tracker}
}

func (r *GormOrderStatusRepository) track(s *orderstatus.OrderStatus) {
	if r.tracker != nil {
		r.tracker.TrackAggregate(s.ID(), s)
	}
}

func (r *GormOrderStatusRepository) Add(ctx context.Context, aggregate *orderstatus.OrderStatus) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgutil.TranslateError(err, "order status")
	}

	r.track(aggregate)
	return nil
}

func (r *GormOrderStatusRepository) Update(ctx context.Context, aggregate *orderstatus.OrderStatus) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Unscoped().Model(&OrderStatusDTO{ID: dto.ID}).Select("*").Updates(&dto)
	if result.Error != nil {
		return pgutil.TranslateError(result.Error, "order status")
	}
	if result.RowsAffected == 0 {
		return pgutil.NotFound(gorm.ErrRecordNotFound, "order status", aggregate.ID().String())
	}

	r.track(aggregate)
	return nil
}

func (r *GormOrderStatusRepository) Get(ctx context.Context, id kernel.UUID) (*orderstatus.OrderStatus, error) {
	return r.get(ctx, r.db, id)
}

func (r *GormOrderStatusRepository) GetIncludingDeleted(
	ctx context.Context,
	id kernel.UUID,
) (*orderstatus.OrderStatus, error) {
	return r.get(ctx, r.db.Unscoped(), id)
}

func (r *GormOrderStatusRepository) get(
	ctx context.Context,
	db *gorm.DB,
	id kernel.UUID,
) (*orderstatus.OrderStatus, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderStatusDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgutil.NotFound(err, "order status", id.String())
	}

	return toDomain(dto)
}

// GetInitial returns the oldest live status.
func (r *GormOrderStatusRepository) GetInitial(ctx context.Context) (*orderstatus.OrderStatus, error) {
	var dto OrderStatusDTO
	err := r.db.WithContext(ctx).Order("created_at ASC").Order("id ASC").First(&dto).Error
	if err != nil {
		return nil, pgutil.NotFound(err, "order status", "initial")
	}

	return toDomain(dto)
}

func (r *GormOrderStatusRepository) Find(
	ctx context.Context,
	q ports.ListQuery,
) ([]*orderstatus.OrderStatus, int64, error) {
	return r.find(ctx, q, ports.ExcludeDeleted)
}

func (r *GormOrderStatusRepository) FindIncludingDeleted(
	ctx context.Context,
	q ports.ListQuery,
) ([]*orderstatus.OrderStatus, int64, error) {
	return r.find(ctx, q, ports.IncludeDeleted)
}

func (r *GormOrderStatusRepository) FindOnlyDeleted(
	ctx context.Context,
	q ports.ListQuery,
) ([]*orderstatus.OrderStatus, int64, error) {
	return r.find(ctx, q, ports.OnlyDeleted)
}

func (r *GormOrderStatusRepository) find(
	ctx context.Context,
	q ports.ListQuery,
	scope ports.DeletedScope,
) ([]*orderstatus.OrderStatus, int64, error) {
	dtos, total, err := pgutil.Find[OrderStatusDTO](ctx, r.db, listing, q, scope)
	if err != nil {
		return nil, 0, err
	}

	statuses := make([]*orderstatus.OrderStatus, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, 0, err
		}
		statuses = append(statuses, s)
	}
	return statuses, total, nil
}
