package kernel

// Actor is the authenticated caller of a use case. It is passed explicitly
// into every command handler and stamped onto audit fields.
type Actor struct {
	ID      UUID
	Name    string
	IsAdmin bool
}

// NewActor builds an actor for an authenticated customer.
func NewActor(id UUID, name string, isAdmin bool) Actor {
	return Actor{ID: id, Name: name, IsAdmin: isAdmin}
}

// SystemActor is used by bootstrap and scheduled jobs. It has no identifier,
// so audit fields written by it stay empty.
func SystemActor() Actor {
	return Actor{Name: "system", IsAdmin: true}
}

// IsSystem reports whether the actor has no customer behind it.
func (a Actor) IsSystem() bool {
	return a.ID.Validate() != nil
}

func (a Actor) reference() *UUID {
	if a.IsSystem() {
		return nil
	}
	id := a.ID
	return &id
}
