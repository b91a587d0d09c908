// Package guard holds the construction guard shared by value objects, entities
// and commands. A guarded type can tell a value built by its constructor apart
// from a zero value declared with `var x T` or `T{}`.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as built by its constructor. The zero value is
// "not constructed", so embedding it in a struct makes `T{}` fail validation.
//
// Example:
//
//	var ErrPriceIsNotConstructed = errors.New("Price must be created via NewPrice")
//
//	type Price struct {
//	    amount decimal.Decimal
//	    guard  guard.ConstructorGuard
//	}
//
//	func (p Price) Validate() error {
//	    return p.guard.Validate(ErrPriceIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state. Call it only
// from a constructor, after every field has passed validation.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero guard it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
