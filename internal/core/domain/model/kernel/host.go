package kernel

import (
	"errors"
	"fmt"
	"strings"

	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"

	"github.com/go-playground/validator/v10"
)

var (
	ErrHostIsNotConstructed = errors.New("Host must be created via NewHost")

	hostValidator = validator.New()
)

// Host is a DNS name or an IPv4 address, stored lower-cased.
type Host struct {
	value string
	guard guard.ConstructorGuard
}

// NewHost accepts RFC 1123 host names ("db", "api.example.com") and dotted
// IPv4 addresses. Inputs made only of digits and dots must be valid IPv4, so
// "999.1.1.1" is rejected rather than read as a host name.
func NewHost(raw string) (Host, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return Host{}, errs.NewValueIsRequiredError("host")
	}

	rule := "hostname_rfc1123"
	if strings.Trim(value, "0123456789.") == "" {
		rule = "ipv4"
	}

	if err := hostValidator.Var(value, rule); err != nil {
		return Host{}, errs.NewValueIsInvalidErrorWithCause("host", fmt.Errorf("%q is not a valid %s", value, rule))
	}

	return Host{value: value, guard: guard.NewConstructorGuard()}, nil
}

func (h Host) String() string {
	return h.value
}

func (h Host) IsEqual(other Host) bool {
	return h.value == other.value
}

func (h Host) Validate() error {
	return h.guard.Validate(ErrHostIsNotConstructed)
}
