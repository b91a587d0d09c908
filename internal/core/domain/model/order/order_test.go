package order_test

import (
	"testing"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustReference(t *testing.T, name string) order.Reference {
	t.Helper()
	n, err := kernel.NewName(name)
	require.NoError(t, err)
	ref, err := order.NewReference(kernel.NewUUID(), n)
	require.NoError(t, err)
	return ref
}

func mustPrice(t *testing.T, amount string) kernel.Price {
	t.Helper()
	p, err := kernel.NewPriceFromString(amount)
	require.NoError(t, err)
	return p
}

func newTestOrder(t *testing.T, actor kernel.Actor) *order.Order {
	t.Helper()
	location, err := order.NewDeliveryLocation("221B Baker Street, London")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), mustReference(t, "Jane Doe"), mustReference(t, "Pending"), location, actor)
	require.NoError(t, err)
	return o
}

func TestNewDeliveryLocation(t *testing.T) {
	t.Run("should trim and accept an address with a comma", func(t *testing.T) {
		l, err := order.NewDeliveryLocation("  Main St 1, Springfield ")

		require.NoError(t, err)
		assert.Equal(t, "Main St 1, Springfield", l.String())
	})

	t.Run("should fail without a comma", func(t *testing.T) {
		_, err := order.NewDeliveryLocation("Main St 1 Springfield")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "comma")
	})

	t.Run("should fail when empty", func(t *testing.T) {
		_, err := order.NewDeliveryLocation("   ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with forbidden characters", func(t *testing.T) {
		_, err := order.NewDeliveryLocation("Main St <1>, Springfield")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewOrder(t *testing.T) {
	actor := kernel.NewActor(kernel.NewUUID(), "Jane Doe", false)

	t.Run("should create valid order with zero total", func(t *testing.T) {
		o := newTestOrder(t, actor)

		require.NoError(t, o.Validate())
		assert.Equal(t, "0.00", o.Total().String())
		assert.Empty(t, o.Details())
		assert.Equal(t, "Pending", o.Status().Name().String())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		location, _ := order.NewDeliveryLocation("Main St 1, Springfield")

		o, err := order.NewOrder(kernel.UUID{}, mustReference(t, "Jane Doe"), mustReference(t, "Pending"), location, actor)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with invalid location", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), mustReference(t, "Jane Doe"), mustReference(t, "Pending"),
			order.DeliveryLocation{}, actor)

		require.ErrorIs(t, err, order.ErrDeliveryLocationIsNotConstructed)
		assert.Nil(t, o)
	})
}

func TestNewDetail(t *testing.T) {
	actor := kernel.SystemActor()

	t.Run("should compute subtotal", func(t *testing.T) {
		d, err := order.NewDetail(kernel.NewUUID(), kernel.NewUUID(), mustReference(t, "Coffee"), 3, mustPrice(t, "10.00"), actor)

		require.NoError(t, err)
		assert.Equal(t, "30.00", d.Subtotal().String())
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		_, err := order.NewDetail(kernel.NewUUID(), kernel.NewUUID(), mustReference(t, "Coffee"), 0, mustPrice(t, "10.00"), actor)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should keep subtotal in step with changes", func(t *testing.T) {
		d, err := order.NewDetail(kernel.NewUUID(), kernel.NewUUID(), mustReference(t, "Coffee"), 2, mustPrice(t, "1.25"), actor)
		require.NoError(t, err)

		require.NoError(t, d.ChangeQuantity(4, actor))
		assert.Equal(t, "5.00", d.Subtotal().String())

		require.NoError(t, d.ChangeUnitPrice(mustPrice(t, "0.10"), actor))
		assert.Equal(t, "0.40", d.Subtotal().String())

		require.Error(t, d.ChangeQuantity(-1, actor))
		assert.Equal(t, 4, d.Quantity())
		assert.Equal(t, "0.40", d.Subtotal().String())
	})
}

func TestOrder_AddDetail(t *testing.T) {
	actor := kernel.NewActor(kernel.NewUUID(), "Jane Doe", false)

	t.Run("should keep total equal to sum of subtotals", func(t *testing.T) {
		o := newTestOrder(t, actor)

		first, err := order.NewDetail(kernel.NewUUID(), o.ID(), mustReference(t, "Coffee"), 3, mustPrice(t, "10.00"), actor)
		require.NoError(t, err)
		second, err := order.NewDetail(kernel.NewUUID(), o.ID(), mustReference(t, "Tea"), 1, mustPrice(t, "4.99"), actor)
		require.NoError(t, err)

		require.NoError(t, o.AddDetail(first, actor))
		assert.Equal(t, "30.00", o.Total().String())
		require.NoError(t, o.AddDetail(second, actor))
		assert.Equal(t, "34.99", o.Total().String())
		assert.Len(t, o.Details(), 2)

		drift, err := o.HasTotalDrift()
		require.NoError(t, err)
		assert.False(t, drift)
	})

	t.Run("should reject detail of another order", func(t *testing.T) {
		o := newTestOrder(t, actor)
		d, err := order.NewDetail(kernel.NewUUID(), kernel.NewUUID(), mustReference(t, "Coffee"), 1, mustPrice(t, "1.00"), actor)
		require.NoError(t, err)

		require.ErrorIs(t, o.AddDetail(d, actor), order.ErrDetailBelongsToAnotherOrder)
		assert.Equal(t, "0.00", o.Total().String())
	})

	t.Run("should roll back when total overflows", func(t *testing.T) {
		o := newTestOrder(t, actor)
		big, err := order.NewDetail(kernel.NewUUID(), o.ID(), mustReference(t, "Coffee"), 1, mustPrice(t, "999999.00"), actor)
		require.NoError(t, err)
		more, err := order.NewDetail(kernel.NewUUID(), o.ID(), mustReference(t, "Tea"), 1, mustPrice(t, "2.00"), actor)
		require.NoError(t, err)

		require.NoError(t, o.AddDetail(big, actor))
		require.ErrorIs(t, o.AddDetail(more, actor), errs.ErrValueIsOutOfRange)
		assert.Len(t, o.Details(), 1)
		assert.Equal(t, "999999.00", o.Total().String())
	})

	t.Run("should recompute total when a quantity changes", func(t *testing.T) {
		o := newTestOrder(t, actor)
		d, err := order.NewDetail(kernel.NewUUID(), o.ID(), mustReference(t, "Coffee"), 1, mustPrice(t, "2.50"), actor)
		require.NoError(t, err)
		require.NoError(t, o.AddDetail(d, actor))

		require.NoError(t, o.ChangeDetailQuantity(d.ID(), 4, actor))

		assert.Equal(t, "10.00", o.Total().String())
		require.ErrorIs(t, o.ChangeDetailQuantity(kernel.NewUUID(), 1, actor), errs.ErrObjectNotFound)
	})

	t.Run("should leave the line untouched when the new total overflows", func(t *testing.T) {
		o := newTestOrder(t, actor)
		small, err := order.NewDetail(kernel.NewUUID(), o.ID(), mustReference(t, "Coffee"), 1, mustPrice(t, "250000.00"), actor)
		require.NoError(t, err)
		large, err := order.NewDetail(kernel.NewUUID(), o.ID(), mustReference(t, "Tea"), 1, mustPrice(t, "500000.00"), actor)
		require.NoError(t, err)
		require.NoError(t, o.AddDetail(small, actor))
		require.NoError(t, o.AddDetail(large, actor))
		lifecycle := small.Lifecycle()

		clerk := kernel.NewActor(kernel.NewUUID(), "Clerk", true)
		require.ErrorIs(t, o.ChangeDetailQuantity(small.ID(), 3, clerk), errs.ErrValueIsOutOfRange)

		assert.Equal(t, 1, small.Quantity())
		assert.Equal(t, "250000.00", small.Subtotal().String())
		assert.Equal(t, lifecycle, small.Lifecycle())
		require.NotNil(t, small.Lifecycle().UpdatedBy())
		assert.True(t, actor.ID.IsEqual(*small.Lifecycle().UpdatedBy()))
		assert.Equal(t, "750000.00", o.Total().String())
	})
}

func TestRestoreOrder_TotalDrift(t *testing.T) {
	actor := kernel.SystemActor()
	id := kernel.NewUUID()
	location, err := order.NewDeliveryLocation("Main St 1, Springfield")
	require.NoError(t, err)
	d, err := order.NewDetail(kernel.NewUUID(), id, mustReference(t, "Coffee"), 2, mustPrice(t, "5.00"), actor)
	require.NoError(t, err)

	o, err := order.RestoreOrder(id, mustReference(t, "Jane Doe"), mustReference(t, "Pending"), location,
		mustPrice(t, "7.00"), []*order.Detail{d}, kernel.NewLifecycle(actor))
	require.NoError(t, err)

	drift, err := o.HasTotalDrift()
	require.NoError(t, err)
	assert.True(t, drift)

	before := o.Clone()
	require.NoError(t, o.RecomputeTotal(actor))
	assert.Equal(t, "10.00", o.Total().String())
	assert.Equal(t, []kernel.FieldChange{{Field: "total", Before: "7.00", After: "10.00"}}, order.Diff(before, o))
}

func TestOrder_ChangesAndDelete(t *testing.T) {
	actor := kernel.NewActor(kernel.NewUUID(), "admin", true)

	t.Run("should change status and location", func(t *testing.T) {
		o := newTestOrder(t, actor)
		before := o.Clone()

		require.NoError(t, o.ChangeStatus(mustReference(t, "Shipped"), actor))
		location, err := order.NewDeliveryLocation("Elm St 5, Shelbyville")
		require.NoError(t, err)
		require.NoError(t, o.ChangeDeliveryLocation(location, actor))

		changes := order.Diff(before, o)
		require.Len(t, changes, 2)
		assert.Equal(t, "status", changes[0].Field)
		assert.Equal(t, "Shipped", changes[0].After)
		assert.Equal(t, "delivery_location", changes[1].Field)
	})

	t.Run("should delete details with the order and refuse further changes", func(t *testing.T) {
		o := newTestOrder(t, actor)
		d, err := order.NewDetail(kernel.NewUUID(), o.ID(), mustReference(t, "Coffee"), 1, mustPrice(t, "1.00"), actor)
		require.NoError(t, err)
		require.NoError(t, o.AddDetail(d, actor))

		o.Delete(actor)

		assert.True(t, o.IsDeleted())
		assert.True(t, d.IsDeleted())
		assert.Equal(t, "1.00", o.Total().String())
		require.ErrorIs(t, o.ChangeStatus(mustReference(t, "Shipped"), actor), order.ErrOrderIsDeleted)
	})

	t.Run("should report ownership", func(t *testing.T) {
		o := newTestOrder(t, actor)
		owner := kernel.NewActor(o.Customer().ID(), "Jane Doe", false)

		assert.True(t, o.IsOwnedBy(owner))
		assert.False(t, o.IsOwnedBy(actor))
	})
}
