package commands

import (
	"backoffice/internal/core/domain/model/kernel"
)

// UpdateCustomerCommand patches a customer. Nil fields are left unchanged.
type UpdateCustomerCommand struct {
	ID       string
	Name     *string
	Email    *string
	Password *string
	Phone    *string
	IsAdmin  *bool
}

func (c UpdateCustomerCommand) Validate() []string {
	var v violations
	if v.require(c.ID, "customer id is required") {
		v.checkUUID(c.ID, "customer id is invalid")
	}
	if c.Name != nil {
		_, err := kernel.NewName(*c.Name)
		v.check(err)
	}
	if c.Email != nil {
		_, err := kernel.NewEmail(*c.Email)
		v.check(err)
	}
	if c.Password != nil {
		v.check(kernel.ValidatePasswordPlaintext(*c.Password))
	}
	if c.Phone != nil {
		_, err := kernel.NewPhone(*c.Phone)
		v.check(err)
	}
	return v
}

func (c UpdateCustomerCommand) ensurePatch() error {
	return EnsurePatch(c.ID, c.Name != nil, c.Email != nil, c.Password != nil, c.Phone != nil, c.IsAdmin != nil)
}
