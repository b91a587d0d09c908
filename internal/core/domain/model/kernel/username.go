package kernel

import (
	"errors"
	"regexp"
	"strings"

	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

const usernameSeparators = "._-"

var (
	ErrUsernameIsNotConstructed = errors.New("Username must be created via NewUsername")

	usernamePattern        = regexp.MustCompile(`^[a-zA-Z0-9._-]{3,30}$`)
	usernameDoubledPattern = regexp.MustCompile(`[._-]{2}`)
)

// Username is a login handle of 3 to 30 characters. Dots, underscores and
// hyphens may separate words but cannot start, end or repeat.
type Username struct {
	value string
	guard guard.ConstructorGuard
}

func NewUsername(raw string) (Username, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return Username{}, errs.NewValueIsRequiredError("username")
	}

	switch {
	case !usernamePattern.MatchString(value):
		return Username{}, errs.NewValueIsInvalidErrorWithCause("username",
			errors.New("must be 3 to 30 letters, digits, dots, underscores or hyphens"))
	case strings.ContainsAny(value[:1], usernameSeparators) ||
		strings.ContainsAny(value[len(value)-1:], usernameSeparators):
		return Username{}, errs.NewValueIsInvalidErrorWithCause("username",
			errors.New("cannot start or end with a separator"))
	case usernameDoubledPattern.MatchString(value):
		return Username{}, errs.NewValueIsInvalidErrorWithCause("username",
			errors.New("separators cannot follow each other"))
	}

	return Username{value: value, guard: guard.NewConstructorGuard()}, nil
}

func (u Username) String() string {
	return u.value
}

func (u Username) IsEqual(other Username) bool {
	return u.value == other.value
}

func (u Username) Validate() error {
	return u.guard.Validate(ErrUsernameIsNotConstructed)
}
