package commands

import (
	"context"
	"errors"

	"backoffice/internal/core/domain/model/customer"
	"backoffice/internal/core/domain/model/kernel"
)

// CreateCustomerCommandHandler registers a customer. Admin only.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
	cipher     *kernel.PasswordCipher
}

func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory, cipher *kernel.PasswordCipher) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{uowFactory: uowFactory, cipher: cipher}
}

// Handle returns the stored customer. A duplicate email surfaces as the
// conflict reported by the repository.
func (h *CreateCustomerCommandHandler) Handle(
	ctx context.Context,
	actor kernel.Actor,
	cmd CreateCustomerCommand,
) (*customer.Customer, error) {
	if err := requireAdmin(actor, "create customers"); err != nil {
		return nil, err
	}
	if err := ensureValid(cmd.Validate()); err != nil {
		return nil, err
	}

	c, err := buildCustomer(cmd, h.cipher, actor)
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

	if err = uow.CustomerRepository().Add(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}

func buildCustomer(cmd CreateCustomerCommand, cipher *kernel.PasswordCipher, actor kernel.Actor) (*customer.Customer, error) {
	name, nameErr := kernel.NewName(cmd.Name)
	email, emailErr := kernel.NewEmail(cmd.Email)
	password, passwordErr := kernel.NewPassword(cmd.Password, cipher)
	phone, phoneErr := kernel.NewPhone(cmd.Phone)
	if err := errors.Join(nameErr, emailErr, passwordErr, phoneErr); err != nil {
		return nil, err
	}
	return customer.NewCustomer(kernel.NewUUID(), name, email, password, phone, cmd.IsAdmin, actor)
}
