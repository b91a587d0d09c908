package commands

import (
	"context"
	"fmt"
	"strings"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"
)

// violations collects the messages returned by the Validate methods.
type violations []string

// require records message when value is blank and reports whether it was
// present.
func (v *violations) require(value, message string) bool {
	if strings.TrimSpace(value) == "" {
		*v = append(*v, message)
		return false
	}
	return true
}

// check records err's message, if any.
func (v *violations) check(err error) {
	if err != nil {
		*v = append(*v, err.Error())
	}
}

// checkUUID records message when raw is not a valid identifier.
func (v *violations) checkUUID(raw, message string) {
	if _, err := kernel.UUIDFromString(raw); err != nil {
		*v = append(*v, message)
	}
}

// ensureValid turns a non-empty message list into a ValidationError whose
// message joins the entries with ", ".
func ensureValid(messages []string) error {
	if len(messages) == 0 {
		return nil
	}
	return errs.NewValidationError(strings.Join(messages, ", ")).
		WithDetails(map[string]any{"errors": messages})
}

// EnsurePatch rejects an update that carries neither an ID nor any field.
// present lists, per optional field, whether the caller supplied it.
func EnsurePatch(id string, present ...bool) error {
	if strings.TrimSpace(id) != "" {
		return nil
	}
	for _, p := range present {
		if p {
			return nil
		}
	}
	return errs.NewBadRequestError("at least one field is required")
}

func requireAdmin(actor kernel.Actor, action string) error {
	if !actor.IsAdmin {
		return errs.NewForbiddenError(fmt.Sprintf("only administrators can %s", action))
	}
	return nil
}

// parseID converts a validated identifier. The command's Validate has
// already rejected malformed values, so an error here is a validation error
// as well.
func parseID(raw string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValidationErrorWithCause("invalid identifier", err)
	}
	return id, nil
}

// recordChanges writes an audit entry when changes is not empty.
func recordChanges(
	ctx context.Context,
	log ports.AuditLog,
	entity string,
	id kernel.UUID,
	actor kernel.Actor,
	changes []kernel.FieldChange,
) error {
	if len(changes) == 0 {
		return nil
	}
	return log.Record(ctx, ports.AuditEntry{
		Entity:   entity,
		EntityID: id,
		Actor:    actor,
		Changes:  changes,
		At:       kernel.Now(),
	})
}

// optionalString returns the value behind p, or "" when p is nil.
func optionalString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
