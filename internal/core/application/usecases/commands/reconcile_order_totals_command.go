package commands

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/ports"
)

const defaultReconcileBatchSize = 100

// ReconcileOrderTotalsCommand asks for every live order whose stored total
// differs from the sum of its details to be corrected.
type ReconcileOrderTotalsCommand struct {
	BatchSize int
}

func (c ReconcileOrderTotalsCommand) batchSize() int {
	if c.BatchSize <= 0 {
		return defaultReconcileBatchSize
	}
	return c.BatchSize
}

// ReconcileOrderTotalsCommandHandler scans orders page by page and rewrites
// drifted totals, one transaction per corrected order, as the system actor.
type ReconcileOrderTotalsCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewReconcileOrderTotalsCommandHandler(uowFactory OrderUoWFactory) ReconcileOrderTotalsCommandHandler {
	return ReconcileOrderTotalsCommandHandler{uowFactory: uowFactory}
}

// Handle returns the number of orders corrected.
func (h *ReconcileOrderTotalsCommandHandler) Handle(ctx context.Context, cmd ReconcileOrderTotalsCommand) (int, error) {
	reader := h.uowFactory.Create().OrderRepository()
	limit := cmd.batchSize()
	fixed := 0

	for offset := 0; ; offset += limit {
		orders, _, err := reader.Find(ctx, ports.ListQuery{Offset: offset, Limit: limit, OrderBy: "created_at"})
		if err != nil {
			return fixed, err
		}

		for _, o := range orders {
			drift, driftErr := o.HasTotalDrift()
			if driftErr != nil {
				return fixed, driftErr
			}
			if !drift {
				continue
			}
			if err = h.fix(ctx, o.ID()); err != nil {
				return fixed, err
			}
			fixed++
		}

		if len(orders) < limit {
			return fixed, nil
		}
	}
}

func (h *ReconcileOrderTotalsCommandHandler) fix(ctx context.Context, id kernel.UUID) error {
	actor := kernel.SystemActor()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}

	before := o.Clone()
	if err = o.RecomputeTotal(actor); err != nil {
		return err
	}

	if err = repo.Update(ctx, o); err != nil {
		return err
	}
	if err = recordChanges(ctx, uow.AuditLog(), "order", o.ID(), actor, order.Diff(before, o)); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
