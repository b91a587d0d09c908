package kernel

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

const maxDescriptionLength = 500

var (
	ErrDescriptionIsNotConstructed = errors.New("Description must be created via NewDescription")

	// FreeTextPattern is the character set accepted in free text fields:
	// letters, digits, whitespace and common punctuation.
	FreeTextPattern = regexp.MustCompile(`^[A-Za-z0-9\s.,!?;:'"()\-]+$`)
)

// Description is free text of up to 500 characters.
type Description struct {
	value string
	guard guard.ConstructorGuard
}

// NewDescription trims raw and validates its length and character set.
func NewDescription(raw string) (Description, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return Description{}, errs.NewValueIsRequiredError("description")
	}

	if length := utf8.RuneCountInString(value); length > maxDescriptionLength {
		return Description{}, errs.NewValueIsInvalidErrorWithCause("description",
			fmt.Errorf("must be at most %d characters, got %d", maxDescriptionLength, length))
	}

	if !FreeTextPattern.MatchString(value) {
		return Description{}, errs.NewValueIsInvalidErrorWithCause("description",
			errors.New("contains characters outside letters, digits and basic punctuation"))
	}

	return Description{value: value, guard: guard.NewConstructorGuard()}, nil
}

func (d Description) String() string {
	return d.value
}

func (d Description) IsEqual(other Description) bool {
	return d.value == other.value
}

func (d Description) Validate() error {
	return d.guard.Validate(ErrDescriptionIsNotConstructed)
}
