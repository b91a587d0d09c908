// Package orderstatus holds OrderStatus, the named stage an order is in.
// Statuses are reference data managed by admins; the first status created
// at bootstrap ("Pending") is assigned to every new order.
package orderstatus

import (
	"errors"
	"strconv"

	"backoffice/internal/core/domain/model/kernel"
)

// InitialName is the status assigned to new orders.
const InitialName = "Pending"

var ErrOrderStatusIsNotConstructed = errors.New("OrderStatus must be created via NewOrderStatus or RestoreOrderStatus")

type OrderStatus struct {
	id          kernel.UUID
	name        kernel.Name
	description kernel.Description
	lifecycle   kernel.Lifecycle

	isConstructed bool
}

func NewOrderStatus(id kernel.UUID, name kernel.Name, description kernel.Description, actor kernel.Actor) (*OrderStatus, error) {
	return RestoreOrderStatus(id, name, description, kernel.NewLifecycle(actor))
}

func RestoreOrderStatus(id kernel.UUID, name kernel.Name, description kernel.Description, lifecycle kernel.Lifecycle) (*OrderStatus, error) {
	if err := errors.Join(id.Validate(), name.Validate(), description.Validate(), lifecycle.Validate()); err != nil {
		return nil, err
	}
	return &OrderStatus{
		id:            id,
		name:          name,
		description:   description,
		lifecycle:     lifecycle,
		isConstructed: true,
	}, nil
}

func (s *OrderStatus) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrOrderStatusIsNotConstructed
	}
	return nil
}

func (s *OrderStatus) ID() kernel.UUID {
	return s.id
}

func (s *OrderStatus) Name() kernel.Name {
	return s.name
}

func (s *OrderStatus) Description() kernel.Description {
	return s.description
}

func (s *OrderStatus) Lifecycle() kernel.Lifecycle {
	return s.lifecycle
}

func (s *OrderStatus) IsDeleted() bool {
	return s.lifecycle.IsDeleted()
}

func (s *OrderStatus) Clone() *OrderStatus {
	cp := *s
	return &cp
}

func (s *OrderStatus) Rename(name kernel.Name, actor kernel.Actor) error {
	if err := name.Validate(); err != nil {
		return err
	}
	s.name = name
	s.lifecycle = s.lifecycle.Touch(actor)
	return nil
}

func (s *OrderStatus) ChangeDescription(description kernel.Description, actor kernel.Actor) error {
	if err := description.Validate(); err != nil {
		return err
	}
	s.description = description
	s.lifecycle = s.lifecycle.Touch(actor)
	return nil
}

func (s *OrderStatus) Delete(actor kernel.Actor) {
	s.lifecycle = s.lifecycle.MarkDeleted(actor)
}

// Diff lists the audited fields that differ between before and after.
func Diff(before, after *OrderStatus) []kernel.FieldChange {
	var changes []kernel.FieldChange
	changes = kernel.AppendChange(changes, "name", before.name.String(), after.name.String())
	changes = kernel.AppendChange(changes, "description", before.description.String(), after.description.String())
	changes = kernel.AppendChange(changes, "deleted", strconv.FormatBool(before.IsDeleted()), strconv.FormatBool(after.IsDeleted()))
	return changes
}
