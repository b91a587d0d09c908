package kernel

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

const (
	minPhoneLength = 8
	maxPhoneLength = 16
)

var (
	ErrPhoneIsNotConstructed = errors.New("Phone must be created via NewPhone")

	phonePattern = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)
	nonDigits    = regexp.MustCompile(`\D`)
)

// Phone is an international number in E.164 form: a plus sign followed by up
// to fifteen digits, the first of which is not zero.
//
// Example:
//
//	phone, err := kernel.NewPhone("+573128949458")
//	fmt.Println(phone.Anonymized()) // +57xxxxxxxx58
type Phone struct {
	value string
	guard guard.ConstructorGuard
}

// NewPhone validates raw as an E.164 number between 8 and 16 characters long.
func NewPhone(raw string) (Phone, error) {
	if raw == "" {
		return Phone{}, errs.NewValueIsRequiredError("phone")
	}

	if !phonePattern.MatchString(raw) {
		return Phone{}, errs.NewValueIsInvalidErrorWithCause("phone",
			fmt.Errorf("%q must start with '+' followed by country code and number", raw))
	}

	if len(raw) < minPhoneLength || len(raw) > maxPhoneLength {
		return Phone{}, errs.NewValueIsInvalidErrorWithCause("phone",
			fmt.Errorf("length must be between %d and %d characters, got %d", minPhoneLength, maxPhoneLength, len(raw)))
	}

	return Phone{value: raw, guard: guard.NewConstructorGuard()}, nil
}

// NewPhoneFromParts joins a country code and a local number, dropping any
// formatting characters from the number.
func NewPhoneFromParts(countryCode, number string) (Phone, error) {
	code := strings.TrimLeft(strings.TrimPrefix(countryCode, "+"), "0")
	return NewPhone("+" + code + nonDigits.ReplaceAllString(number, ""))
}

func (p Phone) String() string {
	return p.value
}

// Anonymized keeps the first two and last two digits and masks the rest.
func (p Phone) Anonymized() string {
	digits := strings.TrimPrefix(p.value, "+")
	if len(digits) <= 4 {
		return "+" + strings.Repeat("x", len(digits))
	}
	return "+" + digits[:2] + strings.Repeat("x", len(digits)-4) + digits[len(digits)-2:]
}

func (p Phone) IsEqual(other Phone) bool {
	return p.value == other.value
}

func (p Phone) Validate() error {
	return p.guard.Validate(ErrPhoneIsNotConstructed)
}
