package kernel

import (
	"errors"
	"fmt"
	"time"

	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var ErrDateIsNotConstructed = errors.New("Date must be created via NewDate")

// Date is a point in time that is not in the future. Values are kept in UTC
// at microsecond precision, which is what PostgreSQL timestamps store, so a
// Date survives a database round trip unchanged.
type Date struct {
	value time.Time
	guard guard.ConstructorGuard
}

// NewDate normalizes t to UTC microseconds and rejects zero or future times.
func NewDate(t time.Time) (Date, error) {
	if t.IsZero() {
		return Date{}, errs.NewValueIsRequiredError("date")
	}

	value := normalizeTime(t)
	if now := normalizeTime(time.Now()); value.After(now) {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date",
			fmt.Errorf("%s is in the future", value.Format(time.RFC3339Nano)))
	}

	return Date{value: value, guard: guard.NewConstructorGuard()}, nil
}

// RestoreDate rebuilds a Date loaded from storage. Only the zero time is
// rejected: a row written by a host whose clock runs ahead stays readable.
func RestoreDate(t time.Time) (Date, error) {
	if t.IsZero() {
		return Date{}, errs.NewValueIsRequiredError("date")
	}
	return Date{value: normalizeTime(t), guard: guard.NewConstructorGuard()}, nil
}

// Now returns the current time as a Date.
func Now() Date {
	return Date{value: normalizeTime(time.Now()), guard: guard.NewConstructorGuard()}
}

func normalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

// Time returns the UTC time value.
func (d Date) Time() time.Time {
	return d.value
}

func (d Date) Before(other Date) bool {
	return d.value.Before(other.value)
}

func (d Date) After(other Date) bool {
	return d.value.After(other.value)
}

// String returns the RFC 3339 representation.
func (d Date) String() string {
	return d.value.Format(time.RFC3339Nano)
}

func (d Date) IsEqual(other Date) bool {
	return d.value.Equal(other.value)
}

func (d Date) Validate() error {
	return d.guard.Validate(ErrDateIsNotConstructed)
}
