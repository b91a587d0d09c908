package http

import (
	"net/http"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// ListProducts handles GET /api/products.
func (s *Server) ListProducts(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	criteria, err := productCriteria(c)
	if err != nil {
		return err
	}

	page, err := s.queries.FindProducts.Handle(c.Request().Context(), actor, criteria)
	if err != nil {
		return err
	}

	pageHeaders(c, page)
	return respond(c, http.StatusOK, "Products retrieved successfully", toPage(page, toProductResponse))
}

// GetProduct handles GET /api/products/:id.
func (s *Server) GetProduct(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	withDeleted, err := includeDeleted(c)
	if err != nil {
		return err
	}

	p, err := s.queries.GetProduct.Handle(c.Request().Context(), actor, queries.GetQuery{
		ID:             c.Param("id"),
		IncludeDeleted: withDeleted,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Product retrieved successfully", toProductResponse(p))
}

// CreateProduct handles POST /api/products.
func (s *Server) CreateProduct(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req CreateProductRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	p, err := s.commands.CreateProduct.Handle(c.Request().Context(), actor, req.command())
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "Product created successfully", toProductResponse(p))
}

// PatchProduct handles PATCH /api/products/:id.
func (s *Server) PatchProduct(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req UpdateProductRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	p, err := s.commands.UpdateProduct.Handle(c.Request().Context(), actor, req.command(c.Param("id")))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Product updated successfully", toProductResponse(p))
}

// DeleteProduct handles DELETE /api/products/:id. The product is soft
// deleted.
func (s *Server) DeleteProduct(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	err = s.commands.DeleteProduct.Handle(c.Request().Context(), actor, commands.DeleteCommand{ID: c.Param("id")})
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
