// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All handlers follow a consistent pattern: authorization, validation,
// transaction management, persistence and an audit entry for updates.
package commands

import (
	"context"

	"backoffice/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	OrderStatusRepoFactory interface {
		OrderStatusRepository() ports.OrderStatusRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	OrderDetailRepoFactory interface {
		OrderDetailRepository() ports.OrderDetailRepository
	}

	// AuditLogFactory provides the audit log bound to the transaction.
	AuditLogFactory interface {
		AuditLog() ports.AuditLog
	}

	// CustomerUoW manages transactions for customer operations.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
		AuditLogFactory
	}

	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// ProductUoW manages transactions for product operations.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
		AuditLogFactory
	}

	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// OrderStatusUoW manages transactions for order status operations.
	OrderStatusUoW interface {
		TxManager
		OrderStatusRepoFactory
		AuditLogFactory
	}

	OrderStatusUoWFactory interface {
		Create() OrderStatusUoW
	}

	// OrderUoW manages transactions that touch an order together with the
	// aggregates it references.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   status, err := uow.OrderStatusRepository().GetInitial(ctx)
	//   product, err := uow.ProductRepository().Get(ctx, productID)
	//   // ... create the order and its details
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		CustomerRepoFactory
		ProductRepoFactory
		OrderStatusRepoFactory
		OrderRepoFactory
		OrderDetailRepoFactory
		AuditLogFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
