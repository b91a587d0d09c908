package kernel

import (
	"errors"
	"regexp"

	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var (
	ErrEmailIsNotConstructed = errors.New("Email must be created via NewEmail")

	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// Email is an address in local@domain.tld form. The value is stored as given;
// it is neither trimmed nor lower-cased.
type Email struct {
	value string
	guard guard.ConstructorGuard
}

// NewEmail validates raw against the address pattern.
func NewEmail(raw string) (Email, error) {
	if raw == "" {
		return Email{}, errs.NewValueIsRequiredError("email")
	}
	if !emailPattern.MatchString(raw) {
		return Email{}, errs.NewValueIsInvalidErrorWithCause("email",
			errors.New("must look like name@domain.tld"))
	}
	return Email{value: raw, guard: guard.NewConstructorGuard()}, nil
}

func (e Email) String() string {
	return e.value
}

func (e Email) IsEqual(other Email) bool {
	return e.value == other.value
}

func (e Email) Validate() error {
	return e.guard.Validate(ErrEmailIsNotConstructed)
}
