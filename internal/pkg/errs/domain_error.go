package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for the transport boundary.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindUnauthorized
	KindForbidden
	KindBadRequest
	KindRateLimit
	KindServiceUnavailable
)

// Kind sentinels. A *DomainError unwraps to the sentinel of its kind, so
// errors.Is(err, errs.ErrNotFound) holds for every not-found DomainError.
var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrBadRequest         = errors.New("bad request")
	ErrRateLimit          = errors.New("rate limit exceeded")
	ErrServiceUnavailable = errors.New("service unavailable")
)

var kindInfo = map[Kind]struct {
	name     string
	status   int
	sentinel error
}{
	KindInternal:           {"InternalError", http.StatusInternalServerError, nil},
	KindValidation:         {"ValidationError", http.StatusUnprocessableEntity, ErrValidation},
	KindNotFound:           {"NotFoundError", http.StatusNotFound, ErrNotFound},
	KindConflict:           {"ConflictError", http.StatusConflict, ErrConflict},
	KindUnauthorized:       {"UnauthorizedError", http.StatusUnauthorized, ErrUnauthorized},
	KindForbidden:          {"ForbiddenError", http.StatusForbidden, ErrForbidden},
	KindBadRequest:         {"BadRequestError", http.StatusBadRequest, ErrBadRequest},
	KindRateLimit:          {"RateLimitError", http.StatusTooManyRequests, ErrRateLimit},
	KindServiceUnavailable: {"ServiceUnavailableError", http.StatusServiceUnavailable, ErrServiceUnavailable},
}

// String returns the error type name rendered in API payloads.
func (k Kind) String() string {
	if info, ok := kindInfo[k]; ok {
		return info.name
	}
	return kindInfo[KindInternal].name
}

// Status returns the HTTP status code for the kind.
func (k Kind) Status() int {
	if info, ok := kindInfo[k]; ok {
		return info.status
	}
	return http.StatusInternalServerError
}

// DomainError is an application error with a kind, a human readable message
// and optional structured details.
type DomainError struct {
	Kind    Kind
	Message string
	Details map[string]any
	Cause   error
}

func newDomainError(kind Kind, message string) *DomainError {
	return &DomainError{Kind: kind, Message: message}
}

// NewValidationError creates a 422 error.
func NewValidationError(message string) *DomainError {
	return newDomainError(KindValidation, message)
}

// NewValidationErrorWithCause creates a 422 error wrapping a value object failure.
func NewValidationErrorWithCause(message string, cause error) *DomainError {
	return newDomainError(KindValidation, message).WithCause(cause)
}

// NewNotFoundError creates a 404 error.
func NewNotFoundError(message string) *DomainError {
	return newDomainError(KindNotFound, message)
}

// NewConflictError creates a 409 error.
func NewConflictError(message string) *DomainError {
	return newDomainError(KindConflict, message)
}

// NewUnauthorizedError creates a 401 error.
func NewUnauthorizedError(message string) *DomainError {
	return newDomainError(KindUnauthorized, message)
}

// NewForbiddenError creates a 403 error.
func NewForbiddenError(message string) *DomainError {
	return newDomainError(KindForbidden, message)
}

// NewBadRequestError creates a 400 error.
func NewBadRequestError(message string) *DomainError {
	return newDomainError(KindBadRequest, message)
}

// NewRateLimitError creates a 429 error.
func NewRateLimitError(message string) *DomainError {
	return newDomainError(KindRateLimit, message)
}

// NewServiceUnavailableError creates a 503 error.
func NewServiceUnavailableError(message string) *DomainError {
	return newDomainError(KindServiceUnavailable, message)
}

// WithCause attaches the underlying error and returns e.
func (e *DomainError) WithCause(cause error) *DomainError {
	e.Cause = cause
	return e
}

// WithDetails attaches structured details and returns e.
func (e *DomainError) WithDetails(details map[string]any) *DomainError {
	e.Details = details
	return e
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %v)", e.Kind, e.Message, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", e.Kind, e.Message))
}

// Unwrap exposes both the kind sentinel and the cause.
func (e *DomainError) Unwrap() []error {
	out := make([]error, 0, 2)
	if sentinel := kindInfo[e.Kind].sentinel; sentinel != nil {
		out = append(out, sentinel)
	}
	if e.Cause != nil {
		out = append(out, e.Cause)
	}
	return out
}

// KindOf classifies err. DomainError kinds win; field-level errors count as
// validation failures and ObjectNotFoundError as not found. Anything else is
// internal.
func KindOf(err error) Kind {
	if err == nil {
		return KindInternal
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}

	switch {
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsRequired),
		errors.Is(err, ErrValueIsOutOfRange):
		return KindValidation
	case errors.Is(err, ErrVersionIsInvalid):
		return KindConflict
	}
	return KindInternal
}

// StatusOf returns the HTTP status code for err.
func StatusOf(err error) int {
	return KindOf(err).Status()
}

// MessageOf returns the user facing message of err.
func MessageOf(err error) string {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}
	if KindOf(err) == KindInternal {
		return "internal server error"
	}
	return err.Error()
}
