package kernel

// FieldChange is one entry of an entity diff.
type FieldChange struct {
	Field  string
	Before string
	After  string
}

// AppendChange adds a FieldChange when before and after differ.
func AppendChange(changes []FieldChange, field, before, after string) []FieldChange {
	if before == after {
		return changes
	}
	return append(changes, FieldChange{Field: field, Before: before, After: after})
}
