package kernel

import (
	"fmt"

	"backoffice/internal/pkg/errs"
)

// Boolean is a strict true/false flag. Decoded payloads must carry a real
// boolean; strings such as "true" or numbers such as 1 are rejected.
type Boolean struct {
	value bool
}

func NewBoolean(value bool) Boolean {
	return Boolean{value: value}
}

// NewBooleanFromAny accepts only bool and *bool values.
func NewBooleanFromAny(raw any) (Boolean, error) {
	switch v := raw.(type) {
	case bool:
		return Boolean{value: v}, nil
	case *bool:
		if v != nil {
			return Boolean{value: *v}, nil
		}
	}
	return Boolean{}, errs.NewValueIsInvalidErrorWithCause("boolean", fmt.Errorf("%T is not a boolean", raw))
}

func (b Boolean) Value() bool {
	return b.value
}

func (b Boolean) IsEqual(other Boolean) bool {
	return b.value == other.value
}
