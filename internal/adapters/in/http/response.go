package http

import (
	"errors"
	"net/http"
	"time"

	"backoffice/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// SuccessResponse wraps every successful payload.
type SuccessResponse[T any] struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
	Data    T      `json:"data"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message string    `json:"message"`
	Status  int       `json:"status"`
	Error   ErrorBody `json:"error"`
}

type ErrorBody struct {
	Type      string         `json:"type"`
	Details   map[string]any `json:"details"`
	Timestamp time.Time      `json:"timestamp"`
	Path      string         `json:"path"`
}

func respond[T any](c echo.Context, status int, message string, data T) error {
	return c.JSON(status, SuccessResponse[T]{Message: message, Status: status, Data: data})
}

// NewErrorHandler renders errors in the ErrorResponse shape. Domain errors
// keep their kind; echo errors keep their status; anything else is an
// internal error whose cause is logged, never returned.
func NewErrorHandler(log logrus.FieldLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		body := ErrorResponse{
			Error: ErrorBody{
				Details:   map[string]any{},
				Timestamp: time.Now().UTC(),
				Path:      c.Request().URL.Path,
			},
		}

		var (
			domainErr *errs.DomainError
			httpErr   *echo.HTTPError
		)
		switch {
		case errors.As(err, &domainErr):
			body.Status = domainErr.Kind.Status()
			body.Message = domainErr.Message
			body.Error.Type = domainErr.Kind.String()
			if domainErr.Details != nil {
				body.Error.Details = domainErr.Details
			}
		case errors.As(err, &httpErr):
			body.Status = httpErr.Code
			body.Message = http.StatusText(httpErr.Code)
			if msg, ok := httpErr.Message.(string); ok {
				body.Message = msg
			}
			body.Error.Type = typeForStatus(httpErr.Code)
		default:
			kind := errs.KindOf(err)
			body.Status = kind.Status()
			body.Message = errs.MessageOf(err)
			body.Error.Type = kind.String()
		}

		entry := log.WithFields(logrus.Fields{
			"method": c.Request().Method,
			"path":   body.Error.Path,
			"status": body.Status,
		})
		if body.Status >= http.StatusInternalServerError {
			entry.WithError(err).Error("request failed")
		} else {
			entry.WithError(err).Debug("request rejected")
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(body.Status)
		} else {
			err = c.JSON(body.Status, body)
		}
		if err != nil {
			log.WithError(err).Error("failed to write error response")
		}
	}
}

// typeForStatus names echo's own errors (routing, binding) the way domain
// kinds are named.
func typeForStatus(status int) string {
	switch status {
	case http.StatusNotFound:
		return errs.KindNotFound.String()
	case http.StatusUnauthorized:
		return errs.KindUnauthorized.String()
	case http.StatusForbidden:
		return errs.KindForbidden.String()
	case http.StatusUnprocessableEntity:
		return errs.KindValidation.String()
	case http.StatusConflict:
		return errs.KindConflict.String()
	case http.StatusTooManyRequests:
		return errs.KindRateLimit.String()
	case http.StatusServiceUnavailable:
		return errs.KindServiceUnavailable.String()
	case http.StatusMethodNotAllowed, http.StatusBadRequest, http.StatusRequestEntityTooLarge:
		return errs.KindBadRequest.String()
	default:
		return errs.KindInternal.String()
	}
}
