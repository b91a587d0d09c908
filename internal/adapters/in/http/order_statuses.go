package http

import (
	"net/http"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

func (s *Server) ListOrderStatuses(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	criteria, err := orderStatusCriteria(c)
	if err != nil {
		return err
	}

	page, err := s.queries.FindOrderStatuses.Handle(c.Request().Context(), actor, criteria)
	if err != nil {
		return err
	}

	pageHeaders(c, page)
	return respond(c, http.StatusOK, "Order statuses retrieved successfully", toPage(page, toOrderStatusResponse))
}

func (s *Server) GetOrderStatus(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	withDeleted, err := includeDeleted(c)
	if err != nil {
		return err
	}

	status, err := s.queries.GetOrderStatus.Handle(c.Request().Context(), actor, queries.GetQuery{
		ID:             c.Param("id"),
		IncludeDeleted: withDeleted,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Order status retrieved successfully", toOrderStatusResponse(status))
}

func (s *Server) CreateOrderStatus(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req CreateOrderStatusRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	status, err := s.commands.CreateOrderStatus.Handle(c.Request().Context(), actor, commands.CreateOrderStatusCommand{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "Order status created successfully", toOrderStatusResponse(status))
}

func (s *Server) PatchOrderStatus(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req UpdateOrderStatusRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	status, err := s.commands.UpdateOrderStatus.Handle(c.Request().Context(), actor, commands.UpdateOrderStatusCommand{
		ID:          c.Param("id"),
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Order status updated successfully", toOrderStatusResponse(status))
}

func (s *Server) DeleteOrderStatus(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	err = s.commands.DeleteOrderStatus.Handle(c.Request().Context(), actor, commands.DeleteCommand{ID: c.Param("id")})
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
