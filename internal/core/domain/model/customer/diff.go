package customer

import (
	"strconv"

	"backoffice/internal/core/domain/model/kernel"
)

// Diff lists the audited fields that differ between before and after. The
// password is reported masked and the phone anonymized.
func Diff(before, after *Customer) []kernel.FieldChange {
	var changes []kernel.FieldChange
	changes = kernel.AppendChange(changes, "name", before.name.String(), after.name.String())
	changes = kernel.AppendChange(changes, "email", before.email.String(), after.email.String())
	if !before.password.IsEqual(after.password) {
		changes = append(changes, kernel.FieldChange{
			Field:  "password",
			Before: before.password.String(),
			After:  after.password.String(),
		})
	}
	if !before.phone.IsEqual(after.phone) {
		changes = append(changes, kernel.FieldChange{
			Field:  "phone",
			Before: before.phone.Anonymized(),
			After:  after.phone.Anonymized(),
		})
	}
	changes = kernel.AppendChange(changes, "is_admin", strconv.FormatBool(before.isAdmin), strconv.FormatBool(after.isAdmin))
	changes = kernel.AppendChange(changes, "deleted", strconv.FormatBool(before.IsDeleted()), strconv.FormatBool(after.IsDeleted()))
	return changes
}
