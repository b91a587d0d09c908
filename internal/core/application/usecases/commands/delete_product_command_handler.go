package commands

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/product"
)

// DeleteProductCommandHandler soft-deletes a product. Existing order lines
// keep pointing at it. Admin only.
type DeleteProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

func NewDeleteProductCommandHandler(uowFactory ProductUoWFactory) DeleteProductCommandHandler {
	return DeleteProductCommandHandler{uowFactory: uowFactory}
}

func (h *DeleteProductCommandHandler) Handle(ctx context.Context, actor kernel.Actor, cmd DeleteCommand) error {
	if err := requireAdmin(actor, "delete products"); err != nil {
		return err
	}
	if err := ensureValid(cmd.Validate()); err != nil {
		return err
	}

	id, err := parseID(cmd.ID)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ProductRepository()
	p, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}

	before := p.Clone()
	p.Delete(actor)

	if err = repo.Update(ctx, p); err != nil {
		return err
	}
	if err = recordChanges(ctx, uow.AuditLog(), "product", p.ID(), actor, product.Diff(before, p)); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
