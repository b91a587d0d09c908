package commands

import (
	"backoffice/internal/core/domain/model/order"
)

// UpdateOrderCommand moves an order to another status or changes where it is
// delivered. Nil fields are left unchanged.
type UpdateOrderCommand struct {
	ID               string
	StatusID         *string
	DeliveryLocation *string
}

// Validate requires the ID only; an update carrying just the ID is valid.
func (c UpdateOrderCommand) Validate() []string {
	var v violations
	if v.require(c.ID, "order id is required") {
		v.checkUUID(c.ID, "order id is invalid")
	}
	if c.StatusID != nil {
		v.checkUUID(*c.StatusID, "status id is invalid")
	}
	if c.DeliveryLocation != nil {
		_, err := order.NewDeliveryLocation(*c.DeliveryLocation)
		v.check(err)
	}
	return v
}

func (c UpdateOrderCommand) ensurePatch() error {
	return EnsurePatch(c.ID, c.StatusID != nil, c.DeliveryLocation != nil)
}
