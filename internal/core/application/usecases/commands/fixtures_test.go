package commands_test

import (
	"testing"

	"backoffice/internal/core/domain/model/customer"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/orderstatus"
	"backoffice/internal/core/domain/model/product"

	"github.com/stretchr/testify/require"
)

const testPasswordKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

var (
	admin     = kernel.NewActor(kernel.NewUUID(), "Admin", true)
	customer1 = kernel.NewActor(kernel.NewUUID(), "Jane Doe", false)
)

func ptr[T any](v T) *T {
	return &v
}

func newCipher(t *testing.T) *kernel.PasswordCipher {
	t.Helper()
	c, err := kernel.NewPasswordCipherFromHex(testPasswordKey)
	require.NoError(t, err)
	return c
}

func newProduct(t *testing.T, price string, available bool) *product.Product {
	t.Helper()
	name, err := kernel.NewName("Coffee Beans")
	require.NoError(t, err)
	description, err := kernel.NewDescription("Arabica, 1kg bag.")
	require.NoError(t, err)
	amount, err := kernel.NewPriceFromString(price)
	require.NoError(t, err)
	image, err := kernel.NewImageURL("https://cdn.example.com/coffee.jpg")
	require.NoError(t, err)

	p, err := product.NewProduct(kernel.NewUUID(), name, description, amount, image, available, admin)
	require.NoError(t, err)
	return p
}

func newCustomer(t *testing.T, id kernel.UUID, password string) *customer.Customer {
	t.Helper()
	name, err := kernel.NewName("Jane Doe")
	require.NoError(t, err)
	email, err := kernel.NewEmail("jane@example.com")
	require.NoError(t, err)
	pwd, err := kernel.NewPassword(password, newCipher(t))
	require.NoError(t, err)
	phone, err := kernel.NewPhone("+14155550100")
	require.NoError(t, err)

	c, err := customer.NewCustomer(id, name, email, pwd, phone, false, kernel.SystemActor())
	require.NoError(t, err)
	return c
}

func newStatus(t *testing.T, rawName string) *orderstatus.OrderStatus {
	t.Helper()
	name, err := kernel.NewName(rawName)
	require.NoError(t, err)
	description, err := kernel.NewDescription("Order stage.")
	require.NoError(t, err)
	s, err := orderstatus.NewOrderStatus(kernel.NewUUID(), name, description, kernel.SystemActor())
	require.NoError(t, err)
	return s
}
