package http

import (
	"net/http"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// ListOrders handles GET /api/orders. Customers only see their own orders.
func (s *Server) ListOrders(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	criteria, err := orderCriteria(c)
	if err != nil {
		return err
	}

	page, err := s.queries.FindOrders.Handle(c.Request().Context(), actor, criteria)
	if err != nil {
		return err
	}

	pageHeaders(c, page)
	return respond(c, http.StatusOK, "Orders retrieved successfully", toPage(page, toOrderResponse))
}

// GetOrder handles GET /api/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	withDeleted, err := includeDeleted(c)
	if err != nil {
		return err
	}

	o, err := s.queries.GetOrder.Handle(c.Request().Context(), actor, queries.GetQuery{
		ID:             c.Param("id"),
		IncludeDeleted: withDeleted,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Order retrieved successfully", toOrderResponse(o))
}

// CreateOrder handles POST /api/orders. The order, its details and its
// total are written in one transaction; lines with no product or a zero
// quantity are skipped.
func (s *Server) CreateOrder(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req CreateOrderRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	o, err := s.commands.CreateOrder.Handle(c.Request().Context(), actor, req.command())
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "Order created successfully", toOrderResponse(o))
}

// PatchOrder handles PATCH /api/orders/:id.
func (s *Server) PatchOrder(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req UpdateOrderRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	o, err := s.commands.UpdateOrder.Handle(c.Request().Context(), actor, commands.UpdateOrderCommand{
		ID:               c.Param("id"),
		StatusID:         req.Status,
		DeliveryLocation: req.DeliveryLocation,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Order updated successfully", toOrderResponse(o))
}

// DeleteOrder handles DELETE /api/orders/:id.
func (s *Server) DeleteOrder(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	err = s.commands.DeleteOrder.Handle(c.Request().Context(), actor, commands.DeleteCommand{ID: c.Param("id")})
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListOrderDetails handles GET /api/order-details.
func (s *Server) ListOrderDetails(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	criteria, err := orderDetailCriteria(c)
	if err != nil {
		return err
	}

	page, err := s.queries.FindOrderDetails.Handle(c.Request().Context(), actor, criteria)
	if err != nil {
		return err
	}

	pageHeaders(c, page)
	return respond(c, http.StatusOK, "Order details retrieved successfully", toPage(page, toOrderDetailResponse))
}
