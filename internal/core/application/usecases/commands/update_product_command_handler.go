package commands

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/product"
)

// UpdateProductCommandHandler applies a patch to a product and records the
// changed fields in the audit log. Admin only.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{uowFactory: uowFactory}
}

// Handle returns the product as stored after the update. A patch that
// changes nothing writes nothing.
func (h *UpdateProductCommandHandler) Handle(
	ctx context.Context,
	actor kernel.Actor,
	cmd UpdateProductCommand,
) (*product.Product, error) {
	if err := requireAdmin(actor, "update products"); err != nil {
		return nil, err
	}
	if err := cmd.ensurePatch(); err != nil {
		return nil, err
	}
	if err := ensureValid(cmd.Validate()); err != nil {
		return nil, err
	}

	id, err := parseID(cmd.ID)
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

	repo := uow.ProductRepository()
	p, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	before := p.Clone()
	if err = applyProductPatch(p, cmd, actor); err != nil {
		return nil, err
	}

	changes := product.Diff(before, p)
	if len(changes) == 0 {
		return before, nil
	}

	if err = repo.Update(ctx, p); err != nil {
		return nil, err
	}
	if err = recordChanges(ctx, uow.AuditLog(), "product", p.ID(), actor, changes); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}

func applyProductPatch(p *product.Product, cmd UpdateProductCommand, actor kernel.Actor) error {
	if cmd.Name != nil {
		name, err := kernel.NewName(*cmd.Name)
		if err != nil {
			return err
		}
		if err = p.Rename(name, actor); err != nil {
			return err
		}
	}
	if cmd.Description != nil {
		description, err := kernel.NewDescription(*cmd.Description)
		if err != nil {
			return err
		}
		if err = p.ChangeDescription(description, actor); err != nil {
			return err
		}
	}
	if cmd.Price != nil {
		price, err := kernel.NewPriceFromFloat(*cmd.Price)
		if err != nil {
			return err
		}
		if err = p.ChangePrice(price, actor); err != nil {
			return err
		}
	}
	if cmd.Image != nil {
		image, err := kernel.NewImageURL(*cmd.Image)
		if err != nil {
			return err
		}
		if err = p.ChangeImage(image, actor); err != nil {
			return err
		}
	}
	if cmd.Available != nil {
		p.SetAvailable(*cmd.Available, actor)
	}
	return nil
}
