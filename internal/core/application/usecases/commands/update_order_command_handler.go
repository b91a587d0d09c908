package commands

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"
)

// UpdateOrderCommandHandler changes an order's status or delivery location.
// Only admins change statuses; the owner may change the delivery location.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{uowFactory: uowFactory}
}

func (h *UpdateOrderCommandHandler) Handle(
	ctx context.Context,
	actor kernel.Actor,
	cmd UpdateOrderCommand,
) (*order.Order, error) {
	if err := cmd.ensurePatch(); err != nil {
		return nil, err
	}
	if err := ensureValid(cmd.Validate()); err != nil {
		return nil, err
	}
	if cmd.StatusID != nil {
		if err := requireAdmin(actor, "change order statuses"); err != nil {
			return nil, err
		}
	}

	id, err := parseID(cmd.ID)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin && !o.IsOwnedBy(actor) {
		return nil, errs.NewForbiddenError("customers can only update their own orders")
	}

	before := o.Clone()
	if cmd.StatusID != nil {
		if err = h.changeStatus(ctx, uow, o, *cmd.StatusID, actor); err != nil {
			return nil, err
		}
	}
	if cmd.DeliveryLocation != nil {
		location, locationErr := order.NewDeliveryLocation(*cmd.DeliveryLocation)
		if locationErr != nil {
			return nil, locationErr
		}
		if err = o.ChangeDeliveryLocation(location, actor); err != nil {
			return nil, err
		}
	}

	changes := order.Diff(before, o)
	if len(changes) == 0 {
		return before, nil
	}

	if err = repo.Update(ctx, o); err != nil {
		return nil, err
	}
	if err = recordChanges(ctx, uow.AuditLog(), "order", o.ID(), actor, changes); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

func (h *UpdateOrderCommandHandler) changeStatus(
	ctx context.Context,
	uow OrderUoW,
	o *order.Order,
	rawStatusID string,
	actor kernel.Actor,
) error {
	statusID, err := parseID(rawStatusID)
	if err != nil {
		return err
	}
	s, err := uow.OrderStatusRepository().Get(ctx, statusID)
	if err != nil {
		return err
	}
	ref, err := order.NewReference(s.ID(), s.Name())
	if err != nil {
		return err
	}
	return o.ChangeStatus(ref, actor)
}
