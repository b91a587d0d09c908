package http

import (
	"net/http"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

func (s *Server) ListCustomers(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	criteria, err := customerCriteria(c)
	if err != nil {
		return err
	}

	page, err := s.queries.FindCustomers.Handle(c.Request().Context(), actor, criteria)
	if err != nil {
		return err
	}

	pageHeaders(c, page)
	return respond(c, http.StatusOK, "Customers retrieved successfully", toPage(page, toCustomerResponse))
}

func (s *Server) GetCustomer(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	withDeleted, err := includeDeleted(c)
	if err != nil {
		return err
	}

	found, err := s.queries.GetCustomer.Handle(c.Request().Context(), actor, queries.GetQuery{
		ID:             c.Param("id"),
		IncludeDeleted: withDeleted,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Customer retrieved successfully", toCustomerResponse(found))
}

func (s *Server) CreateCustomer(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req CreateCustomerRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	created, err := s.commands.CreateCustomer.Handle(c.Request().Context(), actor, req.command())
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "Customer created successfully", toCustomerResponse(created))
}

func (s *Server) PatchCustomer(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req UpdateCustomerRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	updated, err := s.commands.UpdateCustomer.Handle(c.Request().Context(), actor, req.command(c.Param("id")))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Customer updated successfully", toCustomerResponse(updated))
}

func (s *Server) DeleteCustomer(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	err = s.commands.DeleteCustomer.Handle(c.Request().Context(), actor, commands.DeleteCommand{ID: c.Param("id")})
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
