// Package pgutil holds the pieces every GORM repository shares: the
// embedded lifecycle columns, translation of ListQuery into SQL and mapping
// of PostgreSQL errors onto the error taxonomy.
package pgutil

import (
	"time"

	"backoffice/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LifecycleDTO is embedded in every table. Timestamps are written by the
// domain, so GORM's automatic time tracking is switched off. DeletedAt makes
// GORM add "deleted_at IS NULL" to every query unless Unscoped is used.
type LifecycleDTO struct {
	CreatedAt time.Time      `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt time.Time      `gorm:"not null;autoUpdateTime:false"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
	CreatedBy *uuid.UUID     `gorm:"type:uuid"`
	UpdatedBy *uuid.UUID     `gorm:"type:uuid"`
}

// FromLifecycle converts the domain audit block to its columns.
func FromLifecycle(l kernel.Lifecycle) LifecycleDTO {
	dto := LifecycleDTO{
		CreatedAt: l.CreatedAt().Time(),
		UpdatedAt: l.UpdatedAt().Time(),
		CreatedBy: rawUUID(l.CreatedBy()),
		UpdatedBy: rawUUID(l.UpdatedBy()),
	}
	if deletedAt := l.DeletedAt(); deletedAt != nil {
		dto.DeletedAt = gorm.DeletedAt{Time: deletedAt.Time(), Valid: true}
	}
	return dto
}

// ToLifecycle rebuilds the domain audit block. Stored timestamps are trusted
// as written, future ones included.
func (dto LifecycleDTO) ToLifecycle() (kernel.Lifecycle, error) {
	createdAt, err := kernel.RestoreDate(dto.CreatedAt)
	if err != nil {
		return kernel.Lifecycle{}, err
	}
	updatedAt, err := kernel.RestoreDate(dto.UpdatedAt)
	if err != nil {
		return kernel.Lifecycle{}, err
	}

	var deletedAt *kernel.Date
	if dto.DeletedAt.Valid {
		d, dateErr := kernel.RestoreDate(dto.DeletedAt.Time)
		if dateErr != nil {
			return kernel.Lifecycle{}, dateErr
		}
		deletedAt = &d
	}

	createdBy, err := domainUUID(dto.CreatedBy)
	if err != nil {
		return kernel.Lifecycle{}, err
	}
	updatedBy, err := domainUUID(dto.UpdatedBy)
	if err != nil {
		return kernel.Lifecycle{}, err
	}

	return kernel.RestoreLifecycle(createdAt, updatedAt, deletedAt, createdBy, updatedBy)
}

func rawUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func domainUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
