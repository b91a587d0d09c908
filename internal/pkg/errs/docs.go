// Package errs provides the error types of the back office.
//
// Two families live here:
//
// Field-level errors raised by value objects and entity setters:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value does not match its format
//   - ValueIsOutOfRangeError: a number is outside [min, max]
//   - ObjectNotFoundError: a repository lookup found nothing
//   - VersionIsInvalidError: an optimistic-lock version mismatch
//
// Each of them has a sentinel (ErrValueIsRequired, ...), a struct carrying the
// offending parameter, constructors with and without a cause, and an Unwrap
// method returning the sentinel so that errors.Is works across errors.Join.
//
// Application-level errors raised by use cases and adapters are *DomainError
// values carrying a Kind. Every kind maps to one HTTP status:
//
//	Validation         422
//	NotFound           404
//	Conflict           409
//	Unauthorized       401
//	Forbidden          403
//	BadRequest         400
//	RateLimit          429
//	ServiceUnavailable 503
//
// KindOf classifies any error, including the field-level family, so the HTTP
// boundary needs a single switch to render a response.
package errs
