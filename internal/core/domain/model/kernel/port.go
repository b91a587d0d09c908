package kernel

import (
	"errors"
	"strconv"
	"strings"

	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

const (
	minPort = 1
	maxPort = 65535
)

var ErrPortIsNotConstructed = errors.New("Port must be created via NewPort")

// Port is a TCP/UDP port number in [1, 65535].
type Port struct {
	value int
	guard guard.ConstructorGuard
}

func NewPort(value int) (Port, error) {
	if value < minPort || value > maxPort {
		return Port{}, errs.NewValueIsOutOfRangeError("port", value, minPort, maxPort)
	}
	return Port{value: value, guard: guard.NewConstructorGuard()}, nil
}

// NewPortFromString parses a decimal port, as found in environment variables.
func NewPortFromString(raw string) (Port, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Port{}, errs.NewValueIsRequiredError("port")
	}
	value, err := strconv.Atoi(trimmed)
	if err != nil {
		return Port{}, errs.NewValueIsInvalidErrorWithCause("port", err)
	}
	return NewPort(value)
}

func (p Port) Int() int {
	return p.value
}

func (p Port) String() string {
	return strconv.Itoa(p.value)
}

func (p Port) IsEqual(other Port) bool {
	return p.value == other.value
}

func (p Port) Validate() error {
	return p.guard.Validate(ErrPortIsNotConstructed)
}
