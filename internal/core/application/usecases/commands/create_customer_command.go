package commands

import (
	"backoffice/internal/core/domain/model/kernel"
)

// CreateCustomerCommand registers a customer. Password is the plaintext; it
// is encrypted before it leaves the handler.
type CreateCustomerCommand struct {
	Name     string
	Email    string
	Password string
	Phone    string
	IsAdmin  bool
}

func (c CreateCustomerCommand) Validate() []string {
	var v violations
	if v.require(c.Name, "name is required") {
		_, err := kernel.NewName(c.Name)
		v.check(err)
	}
	if v.require(c.Email, "email is required") {
		_, err := kernel.NewEmail(c.Email)
		v.check(err)
	}
	if v.require(c.Password, "password is required") {
		v.check(kernel.ValidatePasswordPlaintext(c.Password))
	}
	if v.require(c.Phone, "phone is required") {
		_, err := kernel.NewPhone(c.Phone)
		v.check(err)
	}
	return v
}
