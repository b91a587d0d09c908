package commands

import (
	"fmt"
	"strings"

	"backoffice/internal/core/domain/model/order"
)

// OrderLine is one submitted line item. A line with a missing product or
// quantity, or a zero quantity, is skipped.
type OrderLine struct {
	ProductID *string
	Quantity  *int
}

func (l OrderLine) skipped() bool {
	return l.ProductID == nil || strings.TrimSpace(*l.ProductID) == "" || l.Quantity == nil || *l.Quantity == 0
}

// CreateOrderCommand places an order for the acting customer. Unit prices
// are never taken from the caller; they are read from the products.
type CreateOrderCommand struct {
	DeliveryLocation string
	Details          []OrderLine
}

func (c CreateOrderCommand) Validate() []string {
	var v violations
	if v.require(c.DeliveryLocation, "delivery location is required") {
		_, err := order.NewDeliveryLocation(c.DeliveryLocation)
		v.check(err)
	}
	for i, line := range c.Details {
		if line.skipped() {
			continue
		}
		v.checkUUID(*line.ProductID, fmt.Sprintf("details[%d]: product id is invalid", i))
		if *line.Quantity < 0 {
			v = append(v, fmt.Sprintf("details[%d]: quantity must be greater than zero", i))
		}
	}
	return v
}
