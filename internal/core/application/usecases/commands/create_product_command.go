package commands

import (
	"backoffice/internal/core/domain/model/kernel"
)

// CreateProductCommand carries the fields of a new catalogue entry.
// Available defaults to true when omitted.
type CreateProductCommand struct {
	Name        string
	Description string
	Price       *float64
	Image       string
	Available   *bool
}

// Validate returns one message per violated rule.
func (c CreateProductCommand) Validate() []string {
	var v violations
	if v.require(c.Name, "name is required") {
		_, err := kernel.NewName(c.Name)
		v.check(err)
	}
	if v.require(c.Description, "description is required") {
		_, err := kernel.NewDescription(c.Description)
		v.check(err)
	}
	if c.Price == nil {
		v = append(v, "price is required")
	} else {
		_, err := kernel.NewPriceFromFloat(*c.Price)
		v.check(err)
	}
	if v.require(c.Image, "image is required") {
		_, err := kernel.NewImageURL(c.Image)
		v.check(err)
	}
	return v
}

func (c CreateProductCommand) isAvailable() bool {
	return c.Available == nil || *c.Available
}
