// Package product holds the Product aggregate: an item of the catalogue that
// customers reference from order lines.
package product

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

// Product is a catalogue entry. The price recorded on order lines is always
// read from Price at the moment the order is placed.
//
// Invariants:
//   - every field is a constructed value object
//   - the lifecycle keeps created <= updated and deleted >= created
type Product struct {
	id          kernel.UUID
	name        kernel.Name
	description kernel.Description
	price       kernel.Price
	image       kernel.ImageURL
	available   kernel.Boolean
	lifecycle   kernel.Lifecycle

	isConstructed bool
}

// NewProduct creates a product on behalf of actor.
//
// Example:
//
//	name, _ := kernel.NewName("Coffee Beans")
//	description, _ := kernel.NewDescription("Arabica, 1kg")
//	price, _ := kernel.NewPriceFromString("10.00")
//	image, _ := kernel.NewImageURL("https://cdn.example.com/coffee.jpg")
//	p, err := product.NewProduct(kernel.NewUUID(), name, description, price, image, true, actor)
func NewProduct(
	id kernel.UUID,
	name kernel.Name,
	description kernel.Description,
	price kernel.Price,
	image kernel.ImageURL,
	available bool,
	actor kernel.Actor,
) (*Product, error) {
	return RestoreProduct(id, name, description, price, image, available, kernel.NewLifecycle(actor))
}

// RestoreProduct rebuilds a product loaded from storage.
func RestoreProduct(
	id kernel.UUID,
	name kernel.Name,
	description kernel.Description,
	price kernel.Price,
	image kernel.ImageURL,
	available bool,
	lifecycle kernel.Lifecycle,
) (*Product, error) {
	if err := errors.Join(
		id.Validate(),
		name.Validate(),
		description.Validate(),
		price.Validate(),
		image.Validate(),
		lifecycle.Validate(),
	); err != nil {
		return nil, err
	}

	return &Product{
		id:            id,
		name:          name,
		description:   description,
		price:         price,
		image:         image,
		available:     kernel.NewBoolean(available),
		lifecycle:     lifecycle,
		isConstructed: true,
	}, nil
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.UUID { return p.id }
func (p *Product) Name() kernel.Name { return p.name }
func (p *Product) Description() kernel.Description { return p.description }
func (p *Product) Price() kernel.Price { return p.price }
func (p *Product) Image() kernel.ImageURL { return p.image }
func (p *Product) Available() bool { return p.available.Value() }
func (p *Product) Lifecycle() kernel.Lifecycle { return p.lifecycle }
func (p *Product) IsDeleted() bool { return p.lifecycle.IsDeleted() }
func (p *Product) IsEqual(other *Product) bool { return other != nil && p.id.IsEqual(other.id) }

// IsOrderable reports whether new order lines may reference the product.
func (p *Product) IsOrderable() bool {
	return p.Available() && !p.IsDeleted()
}

// Clone returns a copy used as the "before" side of Diff.
func (p *Product) Clone() *Product {
	cp := *p
	return &cp
}

func (p *Product) Rename(name kernel.Name, actor kernel.Actor) error {
	if err := name.Validate(); err != nil {
		return err
	}
	p.name = name
	p.lifecycle = p.lifecycle.Touch(actor)
	return nil
}

func (p *Product) ChangeDescription(description kernel.Description, actor kernel.Actor) error {
	if err := description.Validate(); err != nil {
		return err
	}
	p.description = description
	p.lifecycle = p.lifecycle.Touch(actor)
	return nil
}

// ChangePrice sets the price used by orders placed from now on. Existing
// order lines keep the unit price they were created with.
func (p *Product) ChangePrice(price kernel.Price, actor kernel.Actor) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	p.lifecycle = p.lifecycle.Touch(actor)
	return nil
}

func (p *Product) ChangeImage(image kernel.ImageURL, actor kernel.Actor) error {
	if err := image.Validate(); err != nil {
		return err
	}
	p.image = image
	p.lifecycle = p.lifecycle.Touch(actor)
	return nil
}

func (p *Product) SetAvailable(available bool, actor kernel.Actor) {
	p.available = kernel.NewBoolean(available)
	p.lifecycle = p.lifecycle.Touch(actor)
}

// Delete soft-deletes the product.
func (p *Product) Delete(actor kernel.Actor) {
	p.lifecycle = p.lifecycle.MarkDeleted(actor)
}
