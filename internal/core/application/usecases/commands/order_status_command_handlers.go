package commands

import (
	"context"
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/orderstatus"
)

// CreateOrderStatusCommandHandler adds an order status. Admin only.
type CreateOrderStatusCommandHandler struct {
	uowFactory OrderStatusUoWFactory
}

func NewCreateOrderStatusCommandHandler(uowFactory OrderStatusUoWFactory) CreateOrderStatusCommandHandler {
	return CreateOrderStatusCommandHandler{uowFactory: uowFactory}
}

func (h *CreateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	actor kernel.Actor,
	cmd CreateOrderStatusCommand,
) (*orderstatus.OrderStatus, error) {
	if err := requireAdmin(actor, "create order statuses"); err != nil {
		return nil, err
	}
	if err := ensureValid(cmd.Validate()); err != nil {
		return nil, err
	}

	name, nameErr := kernel.NewName(cmd.Name)
	description, descriptionErr := kernel.NewDescription(cmd.Description)
	if err := errors.Join(nameErr, descriptionErr); err != nil {
		return nil, err
	}

	s, err := orderstatus.NewOrderStatus(kernel.NewUUID(), name, description, actor)
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

	if err = uow.OrderStatusRepository().Add(ctx, s); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

// UpdateOrderStatusCommandHandler renames or redescribes a status. Orders
// pick up the new name on their next read. Admin only.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderStatusUoWFactory
}

func NewUpdateOrderStatusCommandHandler(uowFactory OrderStatusUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{uowFactory: uowFactory}
}

func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	actor kernel.Actor,
	cmd UpdateOrderStatusCommand,
) (*orderstatus.OrderStatus, error) {
	if err := requireAdmin(actor, "update order statuses"); err != nil {
		return nil, err
	}
	if err := cmd.ensurePatch(); err != nil {
		return nil, err
	}
	if err := ensureValid(cmd.Validate()); err != nil {
		return nil, err
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

	repo := uow.OrderStatusRepository()
	s, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	before := s.Clone()
	if cmd.Name != nil {
		name, nameErr := kernel.NewName(*cmd.Name)
		if nameErr != nil {
			return nil, nameErr
		}
		if err = s.Rename(name, actor); err != nil {
			return nil, err
		}
	}
	if cmd.Description != nil {
		description, descriptionErr := kernel.NewDescription(*cmd.Description)
		if descriptionErr != nil {
			return nil, descriptionErr
		}
		if err = s.ChangeDescription(description, actor); err != nil {
			return nil, err
		}
	}

	changes := orderstatus.Diff(before, s)
	if len(changes) == 0 {
		return before, nil
	}

	if err = repo.Update(ctx, s); err != nil {
		return nil, err
	}
	if err = recordChanges(ctx, uow.AuditLog(), "order_status", s.ID(), actor, changes); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

// DeleteOrderStatusCommandHandler soft-deletes a status. Admin only.
type DeleteOrderStatusCommandHandler struct {
	uowFactory OrderStatusUoWFactory
}

func NewDeleteOrderStatusCommandHandler(uowFactory OrderStatusUoWFactory) DeleteOrderStatusCommandHandler {
	return DeleteOrderStatusCommandHandler{uowFactory: uowFactory}
}

func (h *DeleteOrderStatusCommandHandler) Handle(ctx context.Context, actor kernel.Actor, cmd DeleteCommand) error {
	if err := requireAdmin(actor, "delete order statuses"); err != nil {
		return err
	}
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

	repo := uow.OrderStatusRepository()
	s, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}

	before := s.Clone()
	s.Delete(actor)

	if err = repo.Update(ctx, s); err != nil {
		return err
	}
	if err = recordChanges(ctx, uow.AuditLog(), "order_status", s.ID(), actor, orderstatus.Diff(before, s)); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
