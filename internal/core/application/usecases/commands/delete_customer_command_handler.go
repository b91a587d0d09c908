package commands

import (
	"context"

	"backoffice/internal/core/domain/model/customer"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
)

// DeleteCustomerCommandHandler soft-deletes a customer. Admin only; an admin
// cannot delete their own account.
type DeleteCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewDeleteCustomerCommandHandler(uowFactory CustomerUoWFactory) DeleteCustomerCommandHandler {
	return DeleteCustomerCommandHandler{uowFactory: uowFactory}
}

func (h *DeleteCustomerCommandHandler) Handle(ctx context.Context, actor kernel.Actor, cmd DeleteCommand) error {
	if err := requireAdmin(actor, "delete customers"); err != nil {
		return err
	}
	if err := ensureValid(cmd.Validate()); err != nil {
		return err
	}

	id, err := parseID(cmd.ID)
	if err != nil {
		return err
	}
	if actor.ID.IsEqual(id) {
		return errs.NewConflictError("administrators cannot delete their own account")
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CustomerRepository()
	c, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}

	before := c.Clone()
	c.Delete(actor)

	if err = repo.Update(ctx, c); err != nil {
		return err
	}
	if err = recordChanges(ctx, uow.AuditLog(), "customer", c.ID(), actor, customer.Diff(before, c)); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
