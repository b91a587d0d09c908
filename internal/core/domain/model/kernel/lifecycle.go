package kernel

import (
	"errors"

	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var (
	ErrLifecycleIsNotConstructed = errors.New("Lifecycle must be created via NewLifecycle or RestoreLifecycle")

	ErrCreatedAfterUpdated = errs.NewValueIsInvalidErrorWithCause("updated_at",
		errors.New("created date cannot be after updated date"))
	ErrDeletedBeforeCreated = errs.NewValueIsInvalidErrorWithCause("deleted_at",
		errors.New("deleted date cannot be before created date"))
)

// Lifecycle is the audit block embedded in every entity: creation, last update
// and soft deletion timestamps plus the actors behind them.
//
// Invariants:
//   - createdAt <= updatedAt
//   - deletedAt, when set, is not before createdAt
//
// Lifecycle is a value: Touch and MarkDeleted return a new instance.
type Lifecycle struct {
	createdAt Date
	updatedAt Date
	deletedAt *Date
	createdBy *UUID
	updatedBy *UUID
	guard     guard.ConstructorGuard
}

// NewLifecycle starts the audit trail of a new entity created by actor.
func NewLifecycle(actor Actor) Lifecycle {
	now := Now()
	return Lifecycle{
		createdAt: now,
		updatedAt: now,
		createdBy: actor.reference(),
		updatedBy: actor.reference(),
		guard:     guard.NewConstructorGuard(),
	}
}

// RestoreLifecycle rebuilds an audit block loaded from storage and checks its
// ordering invariants.
func RestoreLifecycle(createdAt, updatedAt Date, deletedAt *Date, createdBy, updatedBy *UUID) (Lifecycle, error) {
	if err := errors.Join(createdAt.Validate(), updatedAt.Validate()); err != nil {
		return Lifecycle{}, err
	}
	if createdAt.After(updatedAt) {
		return Lifecycle{}, ErrCreatedAfterUpdated
	}
	if deletedAt != nil {
		if err := deletedAt.Validate(); err != nil {
			return Lifecycle{}, err
		}
		if deletedAt.Before(createdAt) {
			return Lifecycle{}, ErrDeletedBeforeCreated
		}
	}

	return Lifecycle{
		createdAt: createdAt,
		updatedAt: updatedAt,
		deletedAt: deletedAt,
		createdBy: createdBy,
		updatedBy: updatedBy,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Touch records an update by actor.
func (l Lifecycle) Touch(actor Actor) Lifecycle {
	l.updatedAt = l.nowNotBeforeCreation()
	l.updatedBy = actor.reference()
	return l
}

// MarkDeleted records a soft deletion by actor. Deleting twice keeps the
// first deletion time.
func (l Lifecycle) MarkDeleted(actor Actor) Lifecycle {
	if l.deletedAt != nil {
		return l
	}
	now := l.nowNotBeforeCreation()
	l.deletedAt = &now
	l.updatedAt = now
	l.updatedBy = actor.reference()
	return l
}

func (l Lifecycle) nowNotBeforeCreation() Date {
	now := Now()
	if now.Before(l.createdAt) {
		return l.createdAt
	}
	return now
}

func (l Lifecycle) CreatedAt() Date {
	return l.createdAt
}

func (l Lifecycle) UpdatedAt() Date {
	return l.updatedAt
}

// DeletedAt returns the soft deletion time, nil while the entity is live.
func (l Lifecycle) DeletedAt() *Date {
	return l.deletedAt
}

func (l Lifecycle) IsDeleted() bool {
	return l.deletedAt != nil
}

// CreatedBy returns the creator, nil for records written by the system actor.
func (l Lifecycle) CreatedBy() *UUID {
	return l.createdBy
}

// UpdatedBy returns the last updater, nil for the system actor.
func (l Lifecycle) UpdatedBy() *UUID {
	return l.updatedBy
}

func (l Lifecycle) Validate() error {
	return l.guard.Validate(ErrLifecycleIsNotConstructed)
}
