package postgres_test

import (
	"context"
	"fmt"
	"time"

	postgres_adapter "backoffice/internal/adapters/out/postgres"
	"backoffice/internal/core/domain/model/customer"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/model/orderstatus"
	"backoffice/internal/core/domain/model/product"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const testCipherKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

const truncateAll = "TRUNCATE TABLE audit_log, order_details, orders, products, order_statuses, customers"

// startPostgres runs a PostgreSQL container and migrates the schema.
func startPostgres(t require.TestingT) (*postgres.PostgresContainer, *gorm.DB) {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, postgres_adapter.Migrate(db))

	return container, db
}

func testCipher(t require.TestingT) *kernel.PasswordCipher {
	c, err := kernel.NewPasswordCipherFromHex(testCipherKey)
	require.NoError(t, err)
	return c
}

var seq int

// uniqueName returns a valid Name that differs on every call.
func uniqueName(t require.TestingT, prefix string) kernel.Name {
	seq++
	name, err := kernel.NewName(fmt.Sprintf("%s %d", prefix, seq))
	require.NoError(t, err)
	return name
}

func createTestCustomer(t require.TestingT, cipher *kernel.PasswordCipher) *customer.Customer {
	seq++
	email, err := kernel.NewEmail(fmt.Sprintf("customer%d@example.com", seq))
	require.NoError(t, err)
	password, err := kernel.NewPassword("secret123", cipher)
	require.NoError(t, err)
	phone, err := kernel.NewPhone("+573128949458")
	require.NoError(t, err)

	c, err := customer.NewCustomer(kernel.NewUUID(), uniqueName(t, "Customer"), email, password, phone, false,
		kernel.SystemActor())
	require.NoError(t, err)
	return c
}

func createTestProduct(t require.TestingT, price string) *product.Product {
	description, err := kernel.NewDescription("Freshly roasted beans.")
	require.NoError(t, err)
	p, err := kernel.NewPriceFromString(price)
	require.NoError(t, err)
	image, err := kernel.NewImageURL("https://cdn.example.com/beans.jpg")
	require.NoError(t, err)

	created, err := product.NewProduct(kernel.NewUUID(), uniqueName(t, "Product"), description, p, image, true,
		kernel.SystemActor())
	require.NoError(t, err)
	return created
}

func createTestStatus(t require.TestingT) *orderstatus.OrderStatus {
	description, err := kernel.NewDescription("Waiting for confirmation.")
	require.NoError(t, err)

	s, err := orderstatus.NewOrderStatus(kernel.NewUUID(), uniqueName(t, "Status"), description, kernel.SystemActor())
	require.NoError(t, err)
	return s
}

func createTestOrder(
	t require.TestingT,
	c *customer.Customer,
	s *orderstatus.OrderStatus,
) *order.Order {
	customerRef, err := order.NewReference(c.ID(), c.Name())
	require.NoError(t, err)
	statusRef, err := order.NewReference(s.ID(), s.Name())
	require.NoError(t, err)
	location, err := order.NewDeliveryLocation("221B Baker Street, London")
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), customerRef, statusRef, location, c.Actor())
	require.NoError(t, err)
	return o
}

func createTestDetail(t require.TestingT, o *order.Order, p *product.Product, quantity int) *order.Detail {
	productRef, err := order.NewReference(p.ID(), p.Name())
	require.NoError(t, err)

	d, err := order.NewDetail(kernel.NewUUID(), o.ID(), productRef, quantity, p.Price(), kernel.SystemActor())
	require.NoError(t, err)
	return d
}
