package ports

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
)

// AuditEntry is the record of one update to an entity.
type AuditEntry struct {
	Entity   string
	EntityID kernel.UUID
	Actor    kernel.Actor
	Changes  []kernel.FieldChange
	At       kernel.Date
}

// AuditLog stores AuditEntry records. Entries are written inside the same
// transaction as the change they describe.
type AuditLog interface {
	Record(ctx context.Context, entry AuditEntry) error
}
