package commands

import (
	"context"
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/product"
)

// CreateProductCommandHandler adds a product to the catalogue. Admin only.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{uowFactory: uowFactory}
}

func (h *CreateProductCommandHandler) Handle(
	ctx context.Context,
	actor kernel.Actor,
	cmd CreateProductCommand,
) (*product.Product, error) {
	if err := requireAdmin(actor, "create products"); err != nil {
		return nil, err
	}
	if err := ensureValid(cmd.Validate()); err != nil {
		return nil, err
	}

	name, nameErr := kernel.NewName(cmd.Name)
	description, descriptionErr := kernel.NewDescription(cmd.Description)
	price, priceErr := kernel.NewPriceFromFloat(*cmd.Price)
	image, imageErr := kernel.NewImageURL(cmd.Image)
	if err := errors.Join(nameErr, descriptionErr, priceErr, imageErr); err != nil {
		return nil, err
	}

	p, err := product.NewProduct(kernel.NewUUID(), name, description, price, image, cmd.isAvailable(), actor)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProductRepository().Add(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
