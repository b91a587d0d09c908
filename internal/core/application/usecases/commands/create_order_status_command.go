package commands

import (
	"backoffice/internal/core/domain/model/kernel"
)

type CreateOrderStatusCommand struct {
	Name        string
	Description string
}

func (c CreateOrderStatusCommand) Validate() []string {
	var v violations
	if v.require(c.Name, "name is required") {
		_, err := kernel.NewName(c.Name)
		v.check(err)
	}
	if v.require(c.Description, "description is required") {
		_, err := kernel.NewDescription(c.Description)
		v.check(err)
	}
	return v
}

// UpdateOrderStatusCommand patches an order status. Nil fields are left
// unchanged.
type UpdateOrderStatusCommand struct {
	ID          string
	Name        *string
	Description *string
}

func (c UpdateOrderStatusCommand) Validate() []string {
	var v violations
	if v.require(c.ID, "order status id is required") {
		v.checkUUID(c.ID, "order status id is invalid")
	}
	if c.Name != nil {
		_, err := kernel.NewName(*c.Name)
		v.check(err)
	}
	if c.Description != nil {
		_, err := kernel.NewDescription(*c.Description)
		v.check(err)
	}
	return v
}

func (c UpdateOrderStatusCommand) ensurePatch() error {
	return EnsurePatch(c.ID, c.Name != nil, c.Description != nil)
}
