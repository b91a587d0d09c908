package order

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

const maxDeliveryLocationLength = 200

var ErrDeliveryLocationIsNotConstructed = errors.New("DeliveryLocation must be created via NewDeliveryLocation")

// DeliveryLocation is a free-text address such as "221B Baker Street, London".
// It must contain at least one comma separating its parts.
type DeliveryLocation struct {
	value string
	guard guard.ConstructorGuard
}

func NewDeliveryLocation(raw string) (DeliveryLocation, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return DeliveryLocation{}, errs.NewValueIsRequiredError("delivery_location")
	}
	if length := utf8.RuneCountInString(value); length > maxDeliveryLocationLength {
		return DeliveryLocation{}, errs.NewValueIsInvalidErrorWithCause("delivery_location",
			fmt.Errorf("must be at most %d characters, got %d", maxDeliveryLocationLength, length))
	}
	if !kernel.FreeTextPattern.MatchString(value) {
		return DeliveryLocation{}, errs.NewValueIsInvalidErrorWithCause("delivery_location",
			errors.New("contains characters outside letters, digits and basic punctuation"))
	}
	if !strings.Contains(value, ",") {
		return DeliveryLocation{}, errs.NewValueIsInvalidErrorWithCause("delivery_location",
			errors.New("must contain a comma between street and city"))
	}
	return DeliveryLocation{value: value, guard: guard.NewConstructorGuard()}, nil
}

func (l DeliveryLocation) String() string {
	return l.value
}

func (l DeliveryLocation) IsEqual(other DeliveryLocation) bool {
	return l.value == other.value
}

func (l DeliveryLocation) Validate() error {
	return l.guard.Validate(ErrDeliveryLocationIsNotConstructed)
}
