package order

import (
	"errors"
	"math"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
)

var ErrDetailIsNotConstructed = errors.New("Detail must be created via NewDetail or RestoreDetail")

// Detail is one line of an order.
//
// Invariants:
//   - quantity > 0
//   - subtotal == quantity x unitPrice, recomputed on every change
type Detail struct {
	id        kernel.UUID
	orderID   kernel.UUID
	product   Reference
	quantity  int
	unitPrice kernel.Price
	subtotal  kernel.Price
	lifecycle kernel.Lifecycle

	isConstructed bool
}

// NewDetail creates an order line. unitPrice is the product price at the
// moment of ordering.
func NewDetail(
	id kernel.UUID,
	orderID kernel.UUID,
	product Reference,
	quantity int,
	unitPrice kernel.Price,
	actor kernel.Actor,
) (*Detail, error) {
	return RestoreDetail(id, orderID, product, quantity, unitPrice, kernel.NewLifecycle(actor))
}

// RestoreDetail rebuilds a line loaded from storage. The subtotal is derived,
// never read back.
func RestoreDetail(
	id kernel.UUID,
	orderID kernel.UUID,
	product Reference,
	quantity int,
	unitPrice kernel.Price,
	lifecycle kernel.Lifecycle,
) (*Detail, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		product.Validate(),
		unitPrice.Validate(),
		lifecycle.Validate(),
		validateQuantity(quantity),
	); err != nil {
		return nil, err
	}

	subtotal, err := unitPrice.Mul(quantity)
	if err != nil {
		return nil, err
	}

	return &Detail{
		id:            id,
		orderID:       orderID,
		product:       product,
		quantity:      quantity,
		unitPrice:     unitPrice,
		subtotal:      subtotal,
		lifecycle:     lifecycle,
		isConstructed: true,
	}, nil
}

func validateQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, math.MaxInt32)
	}
	return nil
}

func (d *Detail) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDetailIsNotConstructed
	}
	return nil
}

func (d *Detail) ID() kernel.UUID {
	return d.id
}

func (d *Detail) OrderID() kernel.UUID {
	return d.orderID
}

func (d *Detail) Product() Reference {
	return d.product
}

func (d *Detail) Quantity() int {
	return d.quantity
}

func (d *Detail) UnitPrice() kernel.Price {
	return d.unitPrice
}

func (d *Detail) Subtotal() kernel.Price {
	return d.subtotal
}

func (d *Detail) Lifecycle() kernel.Lifecycle {
	return d.lifecycle
}

func (d *Detail) IsDeleted() bool {
	return d.lifecycle.IsDeleted()
}

// ChangeQuantity updates the quantity and the subtotal together. On error the
// line is left untouched.
func (d *Detail) ChangeQuantity(quantity int, actor kernel.Actor) error {
	if err := validateQuantity(quantity); err != nil {
		return err
	}
	subtotal, err := d.unitPrice.Mul(quantity)
	if err != nil {
		return err
	}
	d.quantity = quantity
	d.subtotal = subtotal
	d.lifecycle = d.lifecycle.Touch(actor)
	return nil
}

// ChangeUnitPrice updates the unit price and the subtotal together.
func (d *Detail) ChangeUnitPrice(unitPrice kernel.Price, actor kernel.Actor) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	subtotal, err := unitPrice.Mul(d.quantity)
	if err != nil {
		return err
	}
	d.unitPrice = unitPrice
	d.subtotal = subtotal
	d.lifecycle = d.lifecycle.Touch(actor)
	return nil
}

func (d *Detail) delete(actor kernel.Actor) {
	d.lifecycle = d.lifecycle.MarkDeleted(actor)
}
