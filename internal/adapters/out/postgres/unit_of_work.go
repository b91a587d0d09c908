// Package postgres provides the GORM implementation of the Unit of Work.
// A unit of work hands out repositories bound to its transaction, so every
// write of a business operation commits or rolls back together.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//	if err := uow.OrderDetailRepository().Add(ctx, d); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Rollback after a successful Commit returns gorm.ErrInvalidTransaction and
// changes nothing, which is what makes the deferred call above safe.
//
// Each UnitOfWork is single-goroutine; concurrent operations create their
// own instance from the factory.
package postgres

import (
	"context"

	"backoffice/internal/adapters/out/postgres/auditrepo"
	"backoffice/internal/adapters/out/postgres/customerrepo"
	"backoffice/internal/adapters/out/postgres/orderrepo"
	"backoffice/internal/adapters/out/postgres/orderstatusrepo"
	"backoffice/internal/adapters/out/postgres/productrepo"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection
// pool.
type GormUnitOfWorkFactory struct {
	db     *gorm.DB
	cipher *kernel.PasswordCipher
}

// NewGormUnitOfWorkFactory creates the factory. cipher is handed to the
// customer repository to restore stored passwords.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db, cipher)
func NewGormUnitOfWorkFactory(db *gorm.DB, cipher *kernel.PasswordCipher) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, cipher: cipher}
}

// Create produces a new UnitOfWork with no transaction started.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return f.create()
}

func (f *GormUnitOfWorkFactory) create() *GormUnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		cipher:            f.cipher,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and records the
// aggregates written within it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	cipher            *kernel.PasswordCipher
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling it again while a transaction is open
// does nothing.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the transaction. Returns gorm.ErrInvalidTransaction when
// none is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. Returns gorm.ErrInvalidTransaction when
// none is open.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// conn is the open transaction, or the pool when none is open.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) CustomerRepository() ports.CustomerRepository {
	return customerrepo.NewGormCustomerRepository(uow.conn(), uow.cipher, uow)
}

func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return productrepo.NewGormProductRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) OrderStatusRepository() ports.OrderStatusRepository {
	return orderstatusrepo.NewGormOrderStatusRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) OrderDetailRepository() ports.OrderDetailRepository {
	return orderrepo.NewGormOrderDetailRepository(uow.conn())
}

func (uow *GormUnitOfWork) AuditLog() ports.AuditLog {
	return auditrepo.NewGormAuditLog(uow.conn())
}

// TrackAggregate registers an aggregate written within this unit of work.
// Repositories call it after every successful Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedCount is the number of aggregate writes recorded so far.
func (uow *GormUnitOfWork) TrackedCount() int {
	return len(uow.trackedAggregates)
}

// Migrate creates or updates every table the repositories use.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&productrepo.ProductDTO{},
		&orderstatusrepo.OrderStatusDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.DetailDTO{},
		&auditrepo.AuditEntryDTO{},
	)
}
