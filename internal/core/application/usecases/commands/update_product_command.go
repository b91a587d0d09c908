package commands

import (
	"backoffice/internal/core/domain/model/kernel"
)

// UpdateProductCommand patches a product. Nil fields are left unchanged.
type UpdateProductCommand struct {
	ID          string
	Name        *string
	Description *string
	Price       *float64
	Image       *string
	Available   *bool
}

// Validate requires the ID and checks the supplied fields.
func (c UpdateProductCommand) Validate() []string {
	var v violations
	if v.require(c.ID, "product id is required") {
		v.checkUUID(c.ID, "product id is invalid")
	}
	if c.Name != nil {
		_, err := kernel.NewName(*c.Name)
		v.check(err)
	}
	if c.Description != nil {
		_, err := kernel.NewDescription(*c.Description)
		v.check(err)
	}
	if c.Price != nil {
		_, err := kernel.NewPriceFromFloat(*c.Price)
		v.check(err)
	}
	if c.Image != nil {
		_, err := kernel.NewImageURL(*c.Image)
		v.check(err)
	}
	return v
}

// ensurePatch rejects a command carrying neither the ID nor any field.
func (c UpdateProductCommand) ensurePatch() error {
	return EnsurePatch(c.ID, c.Name != nil, c.Description != nil, c.Price != nil, c.Image != nil, c.Available != nil)
}
