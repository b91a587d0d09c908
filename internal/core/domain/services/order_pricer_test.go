package services_test

import (
	"testing"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/model/product"
	"backoffice/internal/core/domain/services"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var buyer = kernel.NewActor(kernel.NewUUID(), "Jane Doe", false)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	name, err := kernel.NewName("Jane Doe")
	require.NoError(t, err)
	customerRef, err := order.NewReference(buyer.ID, name)
	require.NoError(t, err)
	statusName, err := kernel.NewName("Pending")
	require.NoError(t, err)
	statusRef, err := order.NewReference(kernel.NewUUID(), statusName)
	require.NoError(t, err)
	location, err := order.NewDeliveryLocation("221B Baker Street, London")
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), customerRef, statusRef, location, buyer)
	require.NoError(t, err)
	return o
}

func newTestProduct(t *testing.T, name, price string) *product.Product {
	t.Helper()
	n, err := kernel.NewName(name)
	require.NoError(t, err)
	description, err := kernel.NewDescription("Freshly roasted")
	require.NoError(t, err)
	amount, err := kernel.NewPriceFromString(price)
	require.NoError(t, err)
	image, err := kernel.NewImageURL("https://cdn.example.com/item.jpg")
	require.NoError(t, err)

	p, err := product.NewProduct(kernel.NewUUID(), n, description, amount, image, true, kernel.SystemActor())
	require.NoError(t, err)
	return p
}

func TestOrderPricer_AddLine(t *testing.T) {
	pricer := services.NewOrderPricer()

	t.Run("should price the line at the current product price", func(t *testing.T) {
		o := newTestOrder(t)
		coffee := newTestProduct(t, "Coffee Beans", "12.50")
		mug := newTestProduct(t, "Mug", "4.25")

		first, err := pricer.AddLine(o, coffee, 2, buyer)
		require.NoError(t, err)
		_, err = pricer.AddLine(o, mug, 1, buyer)
		require.NoError(t, err)

		assert.True(t, first.OrderID().IsEqual(o.ID()))
		assert.True(t, first.Product().ID().IsEqual(coffee.ID()))
		assert.Equal(t, "Coffee Beans", first.Product().Name().String())
		assert.Equal(t, "12.50", first.UnitPrice().String())
		assert.Equal(t, "25.00", first.Subtotal().String())
		assert.Len(t, o.Details(), 2)
		assert.Equal(t, "29.25", o.Total().String())
	})

	t.Run("should reject an unavailable product", func(t *testing.T) {
		o := newTestOrder(t)
		coffee := newTestProduct(t, "Coffee Beans", "12.50")
		coffee.SetAvailable(false, kernel.SystemActor())

		detail, err := pricer.AddLine(o, coffee, 1, buyer)

		require.ErrorIs(t, err, services.ErrProductNotOrderable)
		assert.Equal(t, errs.KindValidation, errs.KindOf(err))
		assert.Equal(t, `product "Coffee Beans" is not available`, errs.MessageOf(err))
		assert.Nil(t, detail)
		assert.Empty(t, o.Details())
	})

	t.Run("should reject a deleted product", func(t *testing.T) {
		o := newTestOrder(t)
		coffee := newTestProduct(t, "Coffee Beans", "12.50")
		coffee.Delete(kernel.SystemActor())

		_, err := pricer.AddLine(o, coffee, 1, buyer)

		require.ErrorIs(t, err, services.ErrProductNotOrderable)
	})

	t.Run("should reject a non-positive quantity", func(t *testing.T) {
		o := newTestOrder(t)
		coffee := newTestProduct(t, "Coffee Beans", "12.50")

		_, err := pricer.AddLine(o, coffee, 0, buyer)

		require.Error(t, err)
		assert.Equal(t, errs.KindValidation, errs.KindOf(err))
		assert.Empty(t, o.Details())
		assert.Equal(t, "0.00", o.Total().String())
	})

	t.Run("should reject an unconstructed product", func(t *testing.T) {
		_, err := pricer.AddLine(newTestOrder(t), &product.Product{}, 1, buyer)

		require.Error(t, err)
	})
}
