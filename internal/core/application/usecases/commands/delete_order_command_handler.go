package commands

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"
)

// DeleteOrderCommandHandler soft-deletes an order and its details. Admins
// may delete any order, customers only their own.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{uowFactory: uowFactory}
}

func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, actor kernel.Actor, cmd DeleteCommand) error {
	if err := ensureValid(cmd.Validate()); err != nil {
		return err
	}

	id, err := parseID(cmd.ID)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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
	if !actor.IsAdmin && !o.IsOwnedBy(actor) {
		return errs.NewForbiddenError("customers can only delete their own orders")
	}

	before := o.Clone()
	o.Delete(actor)

	if err = repo.Update(ctx, o); err != nil {
		return err
	}
	if err = recordChanges(ctx, uow.AuditLog(), "order", o.ID(), actor, order.Diff(before, o)); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
