package kernel

import (
	"errors"
	"regexp"
	"strings"

	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var (
	ErrMACIsNotConstructed = errors.New("MAC must be created via NewMAC")

	macPattern = regexp.MustCompile(`^([0-9A-Fa-f]{2}[:-]){5}[0-9A-Fa-f]{2}$`)
)

// MAC is a 48-bit hardware address written as six hex pairs separated by
// colons or hyphens.
type MAC struct {
	value string
	guard guard.ConstructorGuard
}

func NewMAC(raw string) (MAC, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return MAC{}, errs.NewValueIsRequiredError("mac")
	}
	if !macPattern.MatchString(value) {
		return MAC{}, errs.NewValueIsInvalidErrorWithCause("mac", errors.New("expected xx:xx:xx:xx:xx:xx"))
	}
	return MAC{value: value, guard: guard.NewConstructorGuard()}, nil
}

func (m MAC) String() string {
	return m.value
}

// Canonical returns the colon separated form.
func (m MAC) Canonical() string {
	return strings.ReplaceAll(m.value, "-", ":")
}

// IsEqual compares canonical forms, so aa-bb-... equals aa:bb:...
func (m MAC) IsEqual(other MAC) bool {
	return m.Canonical() == other.Canonical()
}

func (m MAC) Validate() error {
	return m.guard.Validate(ErrMACIsNotConstructed)
}
