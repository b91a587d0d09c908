package ports

import (
	"context"
)

// UnitOfWorkFactory hands out a fresh UnitOfWork per command. Instances are
// not shared between goroutines.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork scopes every repository it returns to one database transaction.
// Writes made through the repositories become visible only after Commit.
//
// Handlers call Begin, defer Rollback, and Commit on success. Rollback after a
// successful Commit is a no-op error the caller discards.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	CustomerRepository() CustomerRepository
	ProductRepository() ProductRepository
	OrderStatusRepository() OrderStatusRepository
	OrderRepository() OrderRepository
	OrderDetailRepository() OrderDetailRepository

	// AuditLog records one entry per mutation inside the same transaction.
	AuditLog() AuditLog
}
