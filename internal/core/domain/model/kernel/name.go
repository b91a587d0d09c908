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

const (
	minNameLength = 2
	maxNameLength = 100
)

var (
	ErrNameIsNotConstructed = errors.New("Name must be created via NewName")

	namePattern = regexp.MustCompile(`^[A-Za-z0-9 ]+$`)
)

// Name is a display name made of ASCII letters, digits and spaces. Leading and
// trailing spaces are dropped, so NewName(" Bob ") equals NewName("Bob").
type Name struct {
	value string
	guard guard.ConstructorGuard
}

// NewName trims raw and checks it holds 2 to 100 allowed characters.
func NewName(raw string) (Name, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return Name{}, errs.NewValueIsRequiredError("name")
	}

	if length := utf8.RuneCountInString(value); length < minNameLength || length > maxNameLength {
		return Name{}, errs.NewValueIsInvalidErrorWithCause("name",
			fmt.Errorf("length must be between %d and %d characters, got %d", minNameLength, maxNameLength, length))
	}

	if !namePattern.MatchString(value) {
		return Name{}, errs.NewValueIsInvalidErrorWithCause("name",
			errors.New("only letters, digits and spaces are allowed"))
	}

	return Name{value: value, guard: guard.NewConstructorGuard()}, nil
}

func (n Name) String() string {
	return n.value
}

func (n Name) IsEqual(other Name) bool {
	return n.value == other.value
}

func (n Name) Validate() error {
	return n.guard.Validate(ErrNameIsNotConstructed)
}
