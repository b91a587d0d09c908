// Package customer holds the Customer aggregate: a person who can sign in to
// the back office and place orders. Admin customers may manage the catalogue
// and every order.
package customer

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer")

// Customer is identified by its ID; Email is unique across live and deleted
// customers.
type Customer struct {
	id        kernel.UUID
	name      kernel.Name
	email     kernel.Email
	password  kernel.Password
	phone     kernel.Phone
	isAdmin   bool
	lifecycle kernel.Lifecycle

	isConstructed bool
}

// NewCustomer creates a customer on behalf of actor.
func NewCustomer(
	id kernel.UUID,
	name kernel.Name,
	email kernel.Email,
	password kernel.Password,
	phone kernel.Phone,
	isAdmin bool,
	actor kernel.Actor,
) (*Customer, error) {
	return RestoreCustomer(id, name, email, password, phone, isAdmin, kernel.NewLifecycle(actor))
}

// RestoreCustomer rebuilds a customer loaded from storage.
func RestoreCustomer(
	id kernel.UUID,
	name kernel.Name,
	email kernel.Email,
	password kernel.Password,
	phone kernel.Phone,
	isAdmin bool,
	lifecycle kernel.Lifecycle,
) (*Customer, error) {
	if err := errors.Join(
		id.Validate(),
		name.Validate(),
		email.Validate(),
		password.Validate(),
		phone.Validate(),
		lifecycle.Validate(),
	); err != nil {
		return nil, err
	}

	return &Customer{
		id:            id,
		name:          name,
		email:         email,
		password:      password,
		phone:         phone,
		isAdmin:       isAdmin,
		lifecycle:     lifecycle,
		isConstructed: true,
	}, nil
}

func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

func (c *Customer) ID() kernel.UUID {
	return c.id
}

func (c *Customer) Name() kernel.Name {
	return c.name
}

func (c *Customer) Email() kernel.Email {
	return c.email
}

func (c *Customer) Password() kernel.Password {
	return c.password
}

func (c *Customer) Phone() kernel.Phone {
	return c.phone
}

func (c *Customer) IsAdmin() bool {
	return c.isAdmin
}

func (c *Customer) Lifecycle() kernel.Lifecycle {
	return c.lifecycle
}

func (c *Customer) IsDeleted() bool {
	return c.lifecycle.IsDeleted()
}

// Actor returns the identity the customer acts with inside use cases.
func (c *Customer) Actor() kernel.Actor {
	return kernel.NewActor(c.id, c.name.String(), c.isAdmin)
}

// CheckPassword reports whether plaintext matches and the account is live.
func (c *Customer) CheckPassword(plaintext string) bool {
	return !c.IsDeleted() && c.password.Verify(plaintext)
}

func (c *Customer) Clone() *Customer {
	cp := *c
	return &cp
}

func (c *Customer) Rename(name kernel.Name, actor kernel.Actor) error {
	if err := name.Validate(); err != nil {
		return err
	}
	c.name = name
	c.lifecycle = c.lifecycle.Touch(actor)
	return nil
}

func (c *Customer) ChangeEmail(email kernel.Email, actor kernel.Actor) error {
	if err := email.Validate(); err != nil {
		return err
	}
	c.email = email
	c.lifecycle = c.lifecycle.Touch(actor)
	return nil
}

func (c *Customer) ChangePassword(password kernel.Password, actor kernel.Actor) error {
	if err := password.Validate(); err != nil {
		return err
	}
	c.password = password
	c.lifecycle = c.lifecycle.Touch(actor)
	return nil
}

func (c *Customer) ChangePhone(phone kernel.Phone, actor kernel.Actor) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	c.phone = phone
	c.lifecycle = c.lifecycle.Touch(actor)
	return nil
}

// SetAdmin grants or revokes admin rights.
func (c *Customer) SetAdmin(isAdmin bool, actor kernel.Actor) {
	c.isAdmin = isAdmin
	c.lifecycle = c.lifecycle.Touch(actor)
}

func (c *Customer) Delete(actor kernel.Actor) {
	c.lifecycle = c.lifecycle.MarkDeleted(actor)
}
