package order

import (
	"errors"
	"fmt"
	"strconv"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrDetailBelongsToAnotherOrder is returned when attaching a line whose
	// order ID does not match.
	ErrDetailBelongsToAnotherOrder = errors.New("detail belongs to another order")

	// ErrOrderIsDeleted is returned when changing a soft-deleted order.
	ErrOrderIsDeleted = errors.New("order is deleted")
)

// Order represents a customer order. It is the aggregate root owning the
// order lines.
//
// Order follows these invariants:
//   - Must have a valid unique identifier, customer, status and delivery location
//   - Total equals the sum of the live details' subtotals after every change
//     made through Order methods
//   - Details can only be attached to the order they were created for
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customer placed the order
	customer Reference

	// status is the current stage of the order
	status Reference

	// location is the delivery destination
	location DeliveryLocation

	// total is the sum of the details' subtotals
	total kernel.Price

	// details are the order lines in insertion order
	details []*Detail

	lifecycle kernel.Lifecycle

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates an empty order with a zero total.
//
// Parameters:
//   - id: Unique identifier for the order
//   - customer: The customer placing the order
//   - status: The initial status, normally "Pending"
//   - location: Validated delivery location
//   - actor: Who is creating the order
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
//
// Example:
//
//	location, _ := order.NewDeliveryLocation("221B Baker Street, London")
//	o, err := order.NewOrder(kernel.NewUUID(), customerRef, pendingRef, location, actor)
func NewOrder(
	id kernel.UUID,
	customer Reference,
	status Reference,
	location DeliveryLocation,
	actor kernel.Actor,
) (*Order, error) {
	return RestoreOrder(id, customer, status, location, kernel.ZeroPrice(), nil, kernel.NewLifecycle(actor))
}

// RestoreOrder rebuilds an order loaded from storage. The stored total is
// kept as is so that drift against the details can be detected with
// HasTotalDrift and fixed with RecomputeTotal.
func RestoreOrder(
	id kernel.UUID,
	customer Reference,
	status Reference,
	location DeliveryLocation,
	total kernel.Price,
	details []*Detail,
	lifecycle kernel.Lifecycle,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customer.Validate(),
		status.Validate(),
		location.Validate(),
		total.Validate(),
		lifecycle.Validate(),
	); err != nil {
		return nil, err
	}

	for i, d := range details {
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("detail %d: %w", i, err)
		}
		if !d.orderID.IsEqual(id) {
			return nil, fmt.Errorf("detail %s: %w", d.id, ErrDetailBelongsToAnotherOrder)
		}
	}

	return &Order{
		id:            id,
		customer:      customer,
		status:        status,
		location:      location,
		total:         total,
		details:       append([]*Detail(nil), details...),
		lifecycle:     lifecycle,
		isConstructed: true,
	}, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Customer() Reference {
	return o.customer
}

func (o *Order) Status() Reference {
	return o.status
}

func (o *Order) DeliveryLocation() DeliveryLocation {
	return o.location
}

func (o *Order) Total() kernel.Price {
	return o.total
}

// Details returns the order lines, including soft-deleted ones.
func (o *Order) Details() []*Detail {
	return append([]*Detail(nil), o.details...)
}

func (o *Order) Lifecycle() kernel.Lifecycle {
	return o.lifecycle
}

func (o *Order) IsDeleted() bool {
	return o.lifecycle.IsDeleted()
}

// IsOwnedBy reports whether actor placed the order.
func (o *Order) IsOwnedBy(actor kernel.Actor) bool {
	return o.customer.id.IsEqual(actor.ID)
}

// Clone returns a shallow copy used as the "before" side of Diff. The
// details are shared with the original.
func (o *Order) Clone() *Order {
	cp := *o
	cp.details = append([]*Detail(nil), o.details...)
	return &cp
}

// AddDetail attaches a line created for this order and recomputes the total.
//
// Returns:
//   - error: ErrDetailBelongsToAnotherOrder, ErrOrderIsDeleted, or a range
//     error when the total would exceed the price maximum
func (o *Order) AddDetail(detail *Detail, actor kernel.Actor) error {
	if err := detail.Validate(); err != nil {
		return err
	}
	if o.IsDeleted() {
		return ErrOrderIsDeleted
	}
	if !detail.orderID.IsEqual(o.id) {
		return ErrDetailBelongsToAnotherOrder
	}

	o.details = append(o.details, detail)
	if err := o.RecomputeTotal(actor); err != nil {
		o.details = o.details[:len(o.details)-1]
		return err
	}
	return nil
}

// ChangeDetailQuantity changes the quantity of one line and recomputes the
// total. When the new total is out of range the line and the order are left
// as they were.
func (o *Order) ChangeDetailQuantity(detailID kernel.UUID, quantity int, actor kernel.Actor) error {
	if o.IsDeleted() {
		return ErrOrderIsDeleted
	}
	for _, d := range o.details {
		if !d.id.IsEqual(detailID) || d.IsDeleted() {
			continue
		}
		previous := *d
		if err := d.ChangeQuantity(quantity, actor); err != nil {
			return err
		}
		if err := o.RecomputeTotal(actor); err != nil {
			*d = previous
			return err
		}
		return nil
	}
	return errs.NewObjectNotFoundError("order_detail", detailID.String())
}

// ComputedTotal sums the subtotals of the live details.
func (o *Order) ComputedTotal() (kernel.Price, error) {
	total := kernel.ZeroPrice()
	for _, d := range o.details {
		if d.IsDeleted() {
			continue
		}
		var err error
		if total, err = total.Add(d.subtotal); err != nil {
			return kernel.Price{}, err
		}
	}
	return total, nil
}

// HasTotalDrift reports whether the stored total differs from the sum of the
// details.
func (o *Order) HasTotalDrift() (bool, error) {
	computed, err := o.ComputedTotal()
	if err != nil {
		return false, err
	}
	return !computed.IsEqual(o.total), nil
}

// RecomputeTotal sets the total to the sum of the details' subtotals.
func (o *Order) RecomputeTotal(actor kernel.Actor) error {
	total, err := o.ComputedTotal()
	if err != nil {
		return err
	}
	if total.IsEqual(o.total) {
		return nil
	}
	o.total = total
	o.lifecycle = o.lifecycle.Touch(actor)
	return nil
}

// ChangeStatus moves the order to status. Any status may follow any other;
// the workflow is owned by admins.
func (o *Order) ChangeStatus(status Reference, actor kernel.Actor) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if o.IsDeleted() {
		return ErrOrderIsDeleted
	}
	o.status = status
	o.lifecycle = o.lifecycle.Touch(actor)
	return nil
}

func (o *Order) ChangeDeliveryLocation(location DeliveryLocation, actor kernel.Actor) error {
	if err := location.Validate(); err != nil {
		return err
	}
	if o.IsDeleted() {
		return ErrOrderIsDeleted
	}
	o.location = location
	o.lifecycle = o.lifecycle.Touch(actor)
	return nil
}

// Delete soft-deletes the order together with its lines. The total is kept
// for reporting.
func (o *Order) Delete(actor kernel.Actor) {
	o.lifecycle = o.lifecycle.MarkDeleted(actor)
	for _, d := range o.details {
		d.delete(actor)
	}
}

// Diff lists the audited fields that differ between before and after.
func Diff(before, after *Order) []kernel.FieldChange {
	var changes []kernel.FieldChange
	changes = kernel.AppendChange(changes, "status", before.status.name.String(), after.status.name.String())
	changes = kernel.AppendChange(changes, "delivery_location", before.location.String(), after.location.String())
	changes = kernel.AppendChange(changes, "total", before.total.String(), after.total.String())
	changes = kernel.AppendChange(changes, "deleted", strconv.FormatBool(before.IsDeleted()), strconv.FormatBool(after.IsDeleted()))
	return changes
}
