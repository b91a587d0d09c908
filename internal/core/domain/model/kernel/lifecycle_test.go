package kernel_test

import (
	"testing"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, ts time.Time) kernel.Date {
	t.Helper()
	d, err := kernel.NewDate(ts)
	require.NoError(t, err)
	return d
}

func TestNewDate(t *testing.T) {
	t.Run("normalizes to utc", func(t *testing.T) {
		loc := time.FixedZone("UTC-5", -5*60*60)
		local := time.Date(2024, 3, 1, 10, 0, 0, 123456789, loc)

		d := mustDate(t, local)

		assert.Equal(t, time.UTC, d.Time().Location())
		assert.Equal(t, 15, d.Time().Hour())
		assert.Equal(t, 123456000, d.Time().Nanosecond())
		assert.True(t, d.IsEqual(mustDate(t, local.UTC())))
	})

	t.Run("rejects the future", func(t *testing.T) {
		_, err := kernel.NewDate(time.Now().Add(time.Hour))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects the zero time", func(t *testing.T) {
		_, err := kernel.NewDate(time.Time{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreDate(t *testing.T) {
	t.Run("accepts a stored future time", func(t *testing.T) {
		ahead := time.Now().Add(90 * time.Second)

		d, err := kernel.RestoreDate(ahead)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.True(t, d.Time().Equal(ahead.UTC().Truncate(time.Microsecond)))
	})

	t.Run("rejects the zero time", func(t *testing.T) {
		_, err := kernel.RestoreDate(time.Time{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestLifecycle_TouchAfterFutureCreation(t *testing.T) {
	created, err := kernel.RestoreDate(time.Now().Add(time.Minute))
	require.NoError(t, err)
	l, err := kernel.RestoreLifecycle(created, created, nil, nil, nil)
	require.NoError(t, err)

	touched := l.Touch(kernel.SystemActor())

	assert.False(t, touched.UpdatedAt().Before(touched.CreatedAt()))
	require.NoError(t, touched.Validate())
}

func TestLifecycle_New(t *testing.T) {
	actor := kernel.NewActor(kernel.NewUUID(), "admin", true)

	l := kernel.NewLifecycle(actor)

	require.NoError(t, l.Validate())
	assert.True(t, l.CreatedAt().IsEqual(l.UpdatedAt()))
	assert.False(t, l.IsDeleted())
	require.NotNil(t, l.CreatedBy())
	assert.True(t, l.CreatedBy().IsEqual(actor.ID))
}

func TestLifecycle_SystemActorLeavesAuthorsEmpty(t *testing.T) {
	l := kernel.NewLifecycle(kernel.SystemActor())

	assert.Nil(t, l.CreatedBy())
	assert.Nil(t, l.UpdatedBy())
}

func TestLifecycle_TouchAndDelete(t *testing.T) {
	creator := kernel.NewActor(kernel.NewUUID(), "creator", true)
	editor := kernel.NewActor(kernel.NewUUID(), "editor", true)
	l := kernel.NewLifecycle(creator)

	touched := l.Touch(editor)
	assert.False(t, touched.UpdatedAt().Before(touched.CreatedAt()))
	assert.True(t, touched.UpdatedBy().IsEqual(editor.ID))
	assert.True(t, touched.CreatedBy().IsEqual(creator.ID))
	assert.True(t, l.UpdatedBy().IsEqual(creator.ID), "original value must not change")

	deleted := touched.MarkDeleted(editor)
	require.True(t, deleted.IsDeleted())
	assert.False(t, deleted.DeletedAt().Before(deleted.CreatedAt()))
	assert.False(t, touched.IsDeleted())

	again := deleted.MarkDeleted(creator)
	assert.True(t, again.DeletedAt().IsEqual(*deleted.DeletedAt()))
}

func TestRestoreLifecycle_Invariants(t *testing.T) {
	earlier := mustDate(t, time.Now().Add(-2*time.Hour))
	later := mustDate(t, time.Now().Add(-time.Hour))

	t.Run("valid", func(t *testing.T) {
		l, err := kernel.RestoreLifecycle(earlier, later, &later, nil, nil)
		require.NoError(t, err)
		assert.True(t, l.IsDeleted())
	})

	t.Run("created after updated", func(t *testing.T) {
		_, err := kernel.RestoreLifecycle(later, earlier, nil, nil, nil)
		require.ErrorIs(t, err, kernel.ErrCreatedAfterUpdated)
		assert.Equal(t, errs.KindValidation, errs.KindOf(err))
	})

	t.Run("deleted before created", func(t *testing.T) {
		_, err := kernel.RestoreLifecycle(later, later, &earlier, nil, nil)
		require.ErrorIs(t, err, kernel.ErrDeletedBeforeCreated)
	})

	t.Run("zero dates", func(t *testing.T) {
		_, err := kernel.RestoreLifecycle(kernel.Date{}, later, nil, nil, nil)
		require.ErrorIs(t, err, kernel.ErrDateIsNotConstructed)
	})
}

func TestAppendChange(t *testing.T) {
	changes := kernel.AppendChange(nil, "name", "Old", "New")
	changes = kernel.AppendChange(changes, "price", "10.00", "10.00")

	require.Len(t, changes, 1)
	assert.Equal(t, kernel.FieldChange{Field: "name", Before: "Old", After: "New"}, changes[0])
}
