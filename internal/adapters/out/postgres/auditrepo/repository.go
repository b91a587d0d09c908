// Package auditrepo stores audit entries: one row per update with the
// before and after values of every changed field.
package auditrepo

import (
	"context"
	"encoding/json"
	"time"

	"backoffice/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditEntryDTO is the audit_log table row. Changes holds the field diff as
// a JSON array.
type AuditEntryDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Entity    string     `gorm:"size:50;not null;index:idx_audit_entity"`
	EntityID  uuid.UUID  `gorm:"type:uuid;not null;index:idx_audit_entity"`
	ActorID   *uuid.UUID `gorm:"type:uuid"`
	ActorName string     `gorm:"size:100;not null"`
	Changes   []byte     `gorm:"type:jsonb;not null"`
	At        time.Time  `gorm:"not null"`
}

func (AuditEntryDTO) TableName() string {
	return "audit_log"
}

// ChangeDTO is one element of AuditEntryDTO.Changes.
type ChangeDTO struct {
	Field  string `json:"field"`
	Before string `json:"before"`
	After  string `json:"after"`
}

// GormAuditLog implements ports.AuditLog using GORM.
type GormAuditLog struct {
	db *gorm.DB
}

func NewGormAuditLog(db *gorm.DB) *GormAuditLog {
	return &GormAuditLog{db: db}
}

// Record appends entry. An entry without changes is not written.
func (l *GormAuditLog) Record(ctx context.Context, entry ports.AuditEntry) error {
	if len(entry.Changes) == 0 {
		return nil
	}

	changes := make([]ChangeDTO, 0, len(entry.Changes))
	for _, c := range entry.Changes {
		changes = append(changes, ChangeDTO{Field: c.Field, Before: c.Before, After: c.After})
	}
	raw, err := json.Marshal(changes)
	if err != nil {
		return err
	}

	dto := AuditEntryDTO{
		ID:        uuid.New(),
		Entity:    entry.Entity,
		EntityID:  entry.EntityID.Bytes(),
		ActorName: entry.Actor.Name,
		Changes:   raw,
		At:        entry.At.Time(),
	}
	if !entry.Actor.IsSystem() {
		actorID := entry.Actor.ID.Bytes()
		dto.ActorID = &actorID
	}

	return l.db.WithContext(ctx).Create(&dto).Error
}
