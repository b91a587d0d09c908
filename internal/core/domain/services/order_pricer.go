package services

import (
	"errors"
	"fmt"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/model/product"
	"backoffice/internal/pkg/errs"
)

// ErrProductNotOrderable is the cause of the validation error returned for
// unavailable or deleted products.
var ErrProductNotOrderable = errors.New("product is not orderable")

// OrderPricer turns a requested product and quantity into an order line.
//
// Business rules:
//   - only available, live products can be ordered
//   - the unit price is the product's current price, never a caller supplied one
//   - the line is added to the order, which accumulates its total
//
// Example usage:
//
//	pricer := services.NewOrderPricer()
//	detail, err := pricer.AddLine(o, coffee, 2, actor)
//	if errors.Is(err, services.ErrProductNotOrderable) {
//	    // reject the request
//	}
//	// persist detail, then the order with its new total
type OrderPricer struct{}

func NewOrderPricer() OrderPricer {
	return OrderPricer{}
}

// AddLine prices quantity units of p and adds the resulting detail to o.
func (OrderPricer) AddLine(o *order.Order, p *product.Product, quantity int, actor kernel.Actor) (*order.Detail, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if !p.IsOrderable() {
		return nil, errs.NewValidationError(fmt.Sprintf("product %q is not available", p.Name().String())).
			WithCause(ErrProductNotOrderable)
	}

	productRef, err := order.NewReference(p.ID(), p.Name())
	if err != nil {
		return nil, err
	}
	detail, err := order.NewDetail(kernel.NewUUID(), o.ID(), productRef, quantity, p.Price(), actor)
	if err != nil {
		return nil, err
	}

	if err = o.AddDetail(detail, actor); err != nil {
		return nil, err
	}
	return detail, nil
}
