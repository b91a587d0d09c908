package commands

// DeleteCommand identifies the entity to soft-delete. It is shared by every
// aggregate's delete handler.
type DeleteCommand struct {
	ID string
}

func (c DeleteCommand) Validate() []string {
	var v violations
	if v.require(c.ID, "id is required") {
		v.checkUUID(c.ID, "id is invalid")
	}
	return v
}
