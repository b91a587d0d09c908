package http

import (
	"strings"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

const actorKey = "actor"

// RequestLogger logs one line per request with its outcome and duration.
func RequestLogger(log logrus.FieldLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				// Let the error handler write the response so the status is known.
				c.Error(err)
			}

			req := c.Request()
			fields := logrus.Fields{
				"method":      req.Method,
				"path":        req.URL.Path,
				"status":      c.Response().Status,
				"duration_ms": time.Since(start).Milliseconds(),
				"remote_ip":   c.RealIP(),
				"bytes_out":   c.Response().Size,
			}
			if id := req.Header.Get(echo.HeaderXRequestID); id != "" {
				fields["request_id"] = id
			} else if id = c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
				fields["request_id"] = id
			}
			if actor, ok := c.Get(actorKey).(kernel.Actor); ok {
				fields["actor_id"] = actor.ID.String()
			}

			entry := log.WithFields(fields)
			switch status := c.Response().Status; {
			case status >= 500:
				entry.Error("request completed")
			case status >= 400:
				entry.Warn("request completed")
			default:
				entry.Info("request completed")
			}
			return nil
		}
	}
}

// Authenticate requires a valid access token in the Authorization header
// and stores the caller as the request actor.
func Authenticate(issuer ports.TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			scheme, raw, ok := strings.Cut(header, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(raw) == "" {
				return errs.NewUnauthorizedError("authentication credentials were not provided")
			}

			actor, err := issuer.ParseAccess(strings.TrimSpace(raw))
			if err != nil {
				return errs.NewUnauthorizedError("token is invalid or expired").WithCause(err)
			}

			c.Set(actorKey, actor)
			return next(c)
		}
	}
}

// actorFrom returns the actor stored by Authenticate.
func actorFrom(c echo.Context) (kernel.Actor, error) {
	actor, ok := c.Get(actorKey).(kernel.Actor)
	if !ok {
		return kernel.Actor{}, errs.NewUnauthorizedError("authentication credentials were not provided")
	}
	return actor, nil
}
