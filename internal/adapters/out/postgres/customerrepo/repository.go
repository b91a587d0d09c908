package customerrepo

import (
	"context"

	"backoffice/internal/adapters/out/postgres/pgutil"
	"backoffice/internal/core/domain/model/customer"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/ports"

	"gorm.io/gorm"
)

var listing = pgutil.Listing{
	Table: "customers",
	Columns: pgutil.Columns{
		"id":         "customers.id",
		"name":       "customers.name",
		"email":      "customers.email",
		"is_admin":   "customers.is_admin",
		"created_at": "customers.created_at",
		"updated_at": "customers.updated_at",
	},
}

// GormCustomerRepository implements ports.CustomerRepository using GORM.
type GormCustomerRepository struct {
	db      *gorm.DB
	cipher  *kernel.PasswordCipher
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCustomerRepository creates the repository. cipher decrypts stored
// passwords on load; tracker may be nil.
func NewGormCustomerRepository(
	db *gorm.DB,
	cipher *kernel.PasswordCipher,
	tracker aggregateTracker,
) *GormCustomerRepository {
	return &GormCustomerRepository{db: db, cipher: cipher, tracker: tracker}
}

func (r *GormCustomerRepository) track(c *customer.Customer) {
	if r.tracker != nil {
		r.tracker.TrackAggregate(c.ID(), c)
	}
}

func (r *GormCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgutil.TranslateError(err, "customer with this email")
	}

	r.track(aggregate)
	return nil
}

func (r *GormCustomerRepository) Update(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Unscoped().Model(&CustomerDTO{ID: dto.ID}).Select("*").Updates(&dto)
	if result.Error != nil {
		return pgutil.TranslateError(result.Error, "customer with this email")
	}
	if result.RowsAffected == 0 {
		return pgutil.NotFound(gorm.ErrRecordNotFound, "customer", aggregate.ID().String())
	}

	r.track(aggregate)
	return nil
}

func (r *GormCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	return r.get(ctx, r.db, id)
}

func (r *GormCustomerRepository) GetIncludingDeleted(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	return r.get(ctx, r.db.Unscoped(), id)
}

func (r *GormCustomerRepository) get(ctx context.Context, db *gorm.DB, id kernel.UUID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgutil.NotFound(err, "customer", id.String())
	}

	return toDomain(dto, r.cipher)
}

// GetByEmail looks up a live customer by exact email.
func (r *GormCustomerRepository) GetByEmail(ctx context.Context, email kernel.Email) (*customer.Customer, error) {
	if err := email.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email.String()).Error; err != nil {
		return nil, pgutil.NotFound(err, "customer", email.String())
	}

	return toDomain(dto, r.cipher)
}

func (r *GormCustomerRepository) Find(ctx context.Context, q ports.ListQuery) ([]*customer.Customer, int64, error) {
	return r.find(ctx, q, ports.ExcludeDeleted)
}

func (r *GormCustomerRepository) FindIncludingDeleted(
	ctx context.Context,
	q ports.ListQuery,
) ([]*customer.Customer, int64, error) {
	return r.find(ctx, q, ports.IncludeDeleted)
}

func (r *GormCustomerRepository) FindOnlyDeleted(
	ctx context.Context,
	q ports.ListQuery,
) ([]*customer.Customer, int64, error) {
	return r.find(ctx, q, ports.OnlyDeleted)
}

func (r *GormCustomerRepository) find(
	ctx context.Context,
	q ports.ListQuery,
	scope ports.DeletedScope,
) ([]*customer.Customer, int64, error) {
	dtos, total, err := pgutil.Find[CustomerDTO](ctx, r.db, listing, q, scope)
	if err != nil {
		return nil, 0, err
	}

	customers := make([]*customer.Customer, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto, r.cipher)
		if err != nil {
			return nil, 0, err
		}
		customers = append(customers, c)
	}
	return customers, total, nil
}
