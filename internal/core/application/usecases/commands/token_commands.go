package commands

import (
	"context"
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"
)

const invalidCredentialsMessage = "no active account found with the given credentials"

// ObtainTokenCommand signs a customer in with email and password.
type ObtainTokenCommand struct {
	Email    string
	Password string
}

func (c ObtainTokenCommand) Validate() []string {
	var v violations
	if v.require(c.Email, "email is required") {
		_, err := kernel.NewEmail(c.Email)
		v.check(err)
	}
	v.require(c.Password, "password is required")
	return v
}

// RefreshTokenCommand exchanges a refresh token for a new pair.
type RefreshTokenCommand struct {
	Refresh string
}

func (c RefreshTokenCommand) Validate() []string {
	var v violations
	v.require(c.Refresh, "refresh token is required")
	return v
}

// ObtainTokenCommandHandler checks credentials and issues a token pair.
// Unknown emails, wrong passwords and deleted accounts all yield the same
// Unauthorized error.
type ObtainTokenCommandHandler struct {
	customers ports.CustomerRepository
	issuer    ports.TokenIssuer
}

func NewObtainTokenCommandHandler(customers ports.CustomerRepository, issuer ports.TokenIssuer) ObtainTokenCommandHandler {
	return ObtainTokenCommandHandler{customers: customers, issuer: issuer}
}

func (h *ObtainTokenCommandHandler) Handle(ctx context.Context, cmd ObtainTokenCommand) (ports.TokenPair, error) {
	if err := ensureValid(cmd.Validate()); err != nil {
		return ports.TokenPair{}, err
	}

	email, err := kernel.NewEmail(cmd.Email)
	if err != nil {
		return ports.TokenPair{}, err
	}

	c, err := h.customers.GetByEmail(ctx, email)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ports.TokenPair{}, errs.NewUnauthorizedError(invalidCredentialsMessage)
	}
	if err != nil {
		return ports.TokenPair{}, err
	}
	if !c.CheckPassword(cmd.Password) {
		return ports.TokenPair{}, errs.NewUnauthorizedError(invalidCredentialsMessage)
	}

	return h.issuer.Issue(c.Actor())
}

// RefreshTokenCommandHandler verifies a refresh token and issues a new pair
// for the customer it belongs to, provided the account is still live.
type RefreshTokenCommandHandler struct {
	customers ports.CustomerRepository
	issuer    ports.TokenIssuer
}

func NewRefreshTokenCommandHandler(customers ports.CustomerRepository, issuer ports.TokenIssuer) RefreshTokenCommandHandler {
	return RefreshTokenCommandHandler{customers: customers, issuer: issuer}
}

func (h *RefreshTokenCommandHandler) Handle(ctx context.Context, cmd RefreshTokenCommand) (ports.TokenPair, error) {
	if err := ensureValid(cmd.Validate()); err != nil {
		return ports.TokenPair{}, err
	}

	id, err := h.issuer.ParseRefresh(cmd.Refresh)
	if err != nil {
		return ports.TokenPair{}, errs.NewUnauthorizedError("token is invalid or expired").WithCause(err)
	}

	c, err := h.customers.Get(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ports.TokenPair{}, errs.NewUnauthorizedError(invalidCredentialsMessage)
	}
	if err != nil {
		return ports.TokenPair{}, err
	}

	return h.issuer.Issue(c.Actor())
}
