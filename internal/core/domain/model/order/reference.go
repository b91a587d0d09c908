package order

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
)

// Reference points at another aggregate by ID and carries its display name
// as read when the order was loaded.
type Reference struct {
	id   kernel.UUID
	name kernel.Name
}

func NewReference(id kernel.UUID, name kernel.Name) (Reference, error) {
	if err := errors.Join(id.Validate(), name.Validate()); err != nil {
		return Reference{}, err
	}
	return Reference{id: id, name: name}, nil
}

func (r Reference) ID() kernel.UUID {
	return r.id
}

func (r Reference) Name() kernel.Name {
	return r.name
}

func (r Reference) IsEqual(other Reference) bool {
	return r.id.IsEqual(other.id)
}

func (r Reference) Validate() error {
	return errors.Join(r.id.Validate(), r.name.Validate())
}
