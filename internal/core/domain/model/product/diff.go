package product

import (
	"strconv"

	"backoffice/internal/core/domain/model/kernel"
)

// Diff lists the audited fields that differ between before and after.
func Diff(before, after *Product) []kernel.FieldChange {
	var changes []kernel.FieldChange
	changes = kernel.AppendChange(changes, "name", before.name.String(), after.name.String())
	changes = kernel.AppendChange(changes, "description", before.description.String(), after.description.String())
	changes = kernel.AppendChange(changes, "price", before.price.String(), after.price.String())
	changes = kernel.AppendChange(changes, "image", before.image.String(), after.image.String())
	changes = kernel.AppendChange(changes, "available",
		strconv.FormatBool(before.Available()), strconv.FormatBool(after.Available()))
	changes = kernel.AppendChange(changes, "deleted", strconv.FormatBool(before.IsDeleted()), strconv.FormatBool(after.IsDeleted()))
	return changes
}
