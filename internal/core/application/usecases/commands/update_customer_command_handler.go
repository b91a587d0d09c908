package commands

import (
	"context"

	"backoffice/internal/core/domain/model/customer"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
)

// UpdateCustomerCommandHandler applies a patch to a customer. Customers may
// update their own profile; admins may update anyone and are the only ones
// allowed to change admin rights.
type UpdateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
	cipher     *kernel.PasswordCipher
}

func NewUpdateCustomerCommandHandler(uowFactory CustomerUoWFactory, cipher *kernel.PasswordCipher) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{uowFactory: uowFactory, cipher: cipher}
}

func (h *UpdateCustomerCommandHandler) Handle(
	ctx context.Context,
	actor kernel.Actor,
	cmd UpdateCustomerCommand,
) (*customer.Customer, error) {
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
	if !actor.IsAdmin && (!actor.ID.IsEqual(id) || cmd.IsAdmin != nil) {
		return nil, errs.NewForbiddenError("customers can only update their own profile")
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CustomerRepository()
	c, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	before := c.Clone()
	if err = h.applyPatch(c, cmd, actor); err != nil {
		return nil, err
	}

	changes := customer.Diff(before, c)
	if len(changes) == 0 {
		return before, nil
	}

	if err = repo.Update(ctx, c); err != nil {
		return nil, err
	}
	if err = recordChanges(ctx, uow.AuditLog(), "customer", c.ID(), actor, changes); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}

func (h *UpdateCustomerCommandHandler) applyPatch(c *customer.Customer, cmd UpdateCustomerCommand, actor kernel.Actor) error {
	if cmd.Name != nil {
		name, err := kernel.NewName(*cmd.Name)
		if err != nil {
			return err
		}
		if err = c.Rename(name, actor); err != nil {
			return err
		}
	}
	if cmd.Email != nil {
		email, err := kernel.NewEmail(*cmd.Email)
		if err != nil {
			return err
		}
		if err = c.ChangeEmail(email, actor); err != nil {
			return err
		}
	}
	if cmd.Password != nil {
		password, err := kernel.NewPassword(*cmd.Password, h.cipher)
		if err != nil {
			return err
		}
		if err = c.ChangePassword(password, actor); err != nil {
			return err
		}
	}
	if cmd.Phone != nil {
		phone, err := kernel.NewPhone(*cmd.Phone)
		if err != nil {
			return err
		}
		if err = c.ChangePhone(phone, actor); err != nil {
			return err
		}
	}
	if cmd.IsAdmin != nil {
		c.SetAdmin(*cmd.IsAdmin, actor)
	}
	return nil
}
