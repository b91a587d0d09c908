package productrepo

import (
	"context"

	"backoffice/internal/adapters/out/postgres/pgutil"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/product"
	"backoffice/internal/core/ports"

	"gorm.io/gorm"
)

var listing = pgutil.Listing{
	Table: "products",
	Columns: pgutil.Columns{
		"id":         "products.id",
		"name":       "products.name",
		"price":      "products.price",
		"available":  "products.available",
		"created_at": "products.created_at",
		"updated_at": "products.updated_at",
	},
}

// GormProductRepository implements ports.ProductRepository using GORM.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProductRepository creates the repository. tracker may be nil.
func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{db: db, tracker: tracker}
}

func (r *GormProductRepository) track(p *product.Product) {
	if r.tracker != nil {
		r.tracker.TrackAggregate(p.ID(), p)
	}
}

func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgutil.TranslateError(err, "product")
	}

	r.track(aggregate)
	return nil
}

func (r *GormProductRepository) Update(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Unscoped().Model(&ProductDTO{ID: dto.ID}).Select("*").Updates(&dto)
	if result.Error != nil {
		return pgutil.TranslateError(result.Error, "product")
	}
	if result.RowsAffected == 0 {
		return pgutil.NotFound(gorm.ErrRecordNotFound, "product", aggregate.ID().String())
	}

	r.track(aggregate)
	return nil
}

func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	return r.get(ctx, r.db, id)
}

func (r *GormProductRepository) GetIncludingDeleted(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	return r.get(ctx, r.db.Unscoped(), id)
}

func (r *GormProductRepository) get(ctx context.Context, db *gorm.DB, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgutil.NotFound(err, "product", id.String())
	}

	return toDomain(dto)
}

func (r *GormProductRepository) Find(ctx context.Context, q ports.ListQuery) ([]*product.Product, int64, error) {
	return r.find(ctx, q, ports.ExcludeDeleted)
}

func (r *GormProductRepository) FindIncludingDeleted(
	ctx context.Context,
	q ports.ListQuery,
) ([]*product.Product, int64, error) {
	return r.find(ctx, q, ports.IncludeDeleted)
}

func (r *GormProductRepository) FindOnlyDeleted(
	ctx context.Context,
	q ports.ListQuery,
) ([]*product.Product, int64, error) {
	return r.find(ctx, q, ports.OnlyDeleted)
}

func (r *GormProductRepository) find(
	ctx context.Context,
	q ports.ListQuery,
	scope ports.DeletedScope,
) ([]*product.Product, int64, error) {
	dtos, total, err := pgutil.Find[ProductDTO](ctx, r.db, listing, q, scope)
	if err != nil {
		return nil, 0, err
	}
	products, err := toDomainList(dtos)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}
