package http

import (
	"net/http"

	"backoffice/internal/core/application/usecases/commands"

	"github.com/labstack/echo/v4"
)

// ObtainToken handles POST /api/token/.
func (s *Server) ObtainToken(c echo.Context) error {
	var req ObtainTokenRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	pair, err := s.commands.ObtainToken.Handle(c.Request().Context(), commands.ObtainTokenCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Token obtained successfully", toTokenResponse(pair))
}

// RefreshToken handles POST /api/token/refresh/.
func (s *Server) RefreshToken(c echo.Context) error {
	var req RefreshTokenRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	pair, err := s.commands.RefreshToken.Handle(c.Request().Context(), commands.RefreshTokenCommand{Refresh: req.Refresh})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Token refreshed successfully", toTokenResponse(pair))
}
