package commands

import (
	"context"
	"fmt"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/services"
	"backoffice/internal/pkg/errs"

	"github.com/sirupsen/logrus"
)

// CreateOrderCommandHandler places an order in one transaction: the order
// row, every detail and the final total are committed together or not at
// all.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, logger)
//	quantity := 3
//	productID := productUUID.String()
//	o, err := handler.Handle(ctx, actor, CreateOrderCommand{
//	    DeliveryLocation: "221B Baker Street, London",
//	    Details:          []OrderLine{{ProductID: &productID, Quantity: &quantity}},
//	})
//	// o.Total() is 3 x the current product price
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	pricer     services.OrderPricer
	log        logrus.FieldLogger
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, log logrus.FieldLogger) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pricer:     services.NewOrderPricer(),
		log:        log,
	}
}

// Handle processes the order creation command:
//  1. resolves the initial status
//  2. adds the order with a zero total, owned by actor
//  3. adds one detail per line priced at the product's current price
//  4. writes the accumulated total back
//
// Any failure rolls the transaction back and is returned with its own kind:
// a missing product is NotFound, an unavailable one is Validation.
func (h *CreateOrderCommandHandler) Handle(
	ctx context.Context,
	actor kernel.Actor,
	cmd CreateOrderCommand,
) (*order.Order, error) {
	if actor.IsSystem() {
		return nil, errs.NewUnauthorizedError("orders can only be placed by a signed-in customer")
	}
	if err := ensureValid(cmd.Validate()); err != nil {
		return nil, err
	}

	location, err := order.NewDeliveryLocation(cmd.DeliveryLocation)
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

	owner, err := uow.CustomerRepository().Get(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	initial, err := uow.OrderStatusRepository().GetInitial(ctx)
	if err != nil {
		return nil, err
	}

	customerRef, err := order.NewReference(owner.ID(), owner.Name())
	if err != nil {
		return nil, err
	}
	statusRef, err := order.NewReference(initial.ID(), initial.Name())
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(kernel.NewUUID(), customerRef, statusRef, location, actor)
	if err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	if err = orderRepo.Add(ctx, o); err != nil {
		return nil, err
	}

	for i, line := range cmd.Details {
		if line.skipped() {
			continue
		}
		if err = h.addLine(ctx, uow, o, line, actor); err != nil {
			return nil, fmt.Errorf("details[%d]: %w", i, err)
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.log.WithFields(logrus.Fields{
		"order_id":    o.ID().String(),
		"customer_id": owner.ID().String(),
		"lines":       len(o.Details()),
		"total":       o.Total().String(),
	}).Info("order created")

	return o, nil
}

func (h *CreateOrderCommandHandler) addLine(
	ctx context.Context,
	uow OrderUoW,
	o *order.Order,
	line OrderLine,
	actor kernel.Actor,
) error {
	productID, err := parseID(*line.ProductID)
	if err != nil {
		return err
	}

	p, err := uow.ProductRepository().Get(ctx, productID)
	if err != nil {
		return err
	}

	detail, err := h.pricer.AddLine(o, p, *line.Quantity, actor)
	if err != nil {
		return err
	}
	return uow.OrderDetailRepository().Add(ctx, detail)
}
