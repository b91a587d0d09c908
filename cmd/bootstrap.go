package cmd

import (
	"context"
	"errors"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"
)

// defaultOrderStatuses are created on an empty database. The first one is
// the status new orders start in.
var defaultOrderStatuses = []commands.CreateOrderStatusCommand{
	{Name: "Pending", Description: "Order received and waiting to be prepared"},
	{Name: "Processing", Description: "Order is being prepared"},
	{Name: "Shipped", Description: "Order left the warehouse"},
	{Name: "Delivered", Description: "Order reached the delivery location"},
	{Name: "Cancelled", Description: "Order will not be delivered"},
}

// Bootstrap seeds what the API cannot create for itself: the order statuses
// when none exist, and the configured administrator when no live customer
// has that email. Running it again changes nothing.
func (c *CompositionRoot) Bootstrap(ctx context.Context) error {
	if err := c.bootstrapOrderStatuses(ctx); err != nil {
		return err
	}
	if !c.config.BootstrapAdmin() {
		c.logger.Info("No administrator configured, skipping")
		return nil
	}
	return c.bootstrapAdmin(ctx)
}

func (c *CompositionRoot) bootstrapOrderStatuses(ctx context.Context) error {
	repo := c.uowFactory.Create().OrderStatusRepository()
	_, total, err := repo.FindIncludingDeleted(ctx, ports.ListQuery{Limit: 1, OrderBy: "created_at"})
	if err != nil {
		return err
	}
	if total > 0 {
		c.logger.WithField("statuses", total).Debug("Order statuses already present")
		return nil
	}

	handler := c.CreateCreateOrderStatusCommandHandler()
	for _, cmd := range defaultOrderStatuses {
		if _, err = handler.Handle(ctx, kernel.SystemActor(), cmd); err != nil {
			return err
		}
		c.logger.WithField("status", cmd.Name).Info("Order status created")
	}
	return nil
}

func (c *CompositionRoot) bootstrapAdmin(ctx context.Context) error {
	email, err := kernel.NewEmail(c.config.AdminEmail)
	if err != nil {
		return err
	}

	_, err = c.uowFactory.Create().CustomerRepository().GetByEmail(ctx, email)
	if err == nil {
		c.logger.WithField("email", email.String()).Debug("Administrator already present")
		return nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	handler := c.CreateCreateCustomerCommandHandler()
	admin, err := handler.Handle(ctx, kernel.SystemActor(), commands.CreateCustomerCommand{
		Name:     c.config.AdminName,
		Email:    c.config.AdminEmail,
		Password: c.config.AdminPassword,
		Phone:    c.config.AdminPhone,
		IsAdmin:  true,
	})
	if errors.Is(err, errs.ErrConflict) {
		// A deleted customer still holds the email.
		c.logger.WithField("email", email.String()).Warn("Administrator email belongs to a deleted customer")
		return nil
	}
	if err != nil {
		return err
	}

	c.logger.WithField("customer_id", admin.ID().String()).Info("Administrator created")
	return nil
}
