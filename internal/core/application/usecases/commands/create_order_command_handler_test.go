package commands_test

import (
	"errors"
	"testing"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	uow       *MockUoW
	factory   orderUoWFactory
	customers *MockCustomerRepository
	statuses  *MockOrderStatusRepository
	products  *MockProductRepository
	orders    *MockOrderRepository
	details   *MockOrderDetailRepository
}

func newOrderFixture() orderFixture {
	f := orderFixture{
		uow:       new(MockUoW),
		factory:   orderUoWFactory{new(MockUoWFactory)},
		customers: new(MockCustomerRepository),
		statuses:  new(MockOrderStatusRepository),
		products:  new(MockProductRepository),
		orders:    new(MockOrderRepository),
		details:   new(MockOrderDetailRepository),
	}
	f.factory.On("next").Return(f.uow).Once()
	f.uow.On("CustomerRepository").Return(f.customers).Maybe()
	f.uow.On("OrderStatusRepository").Return(f.statuses).Maybe()
	f.uow.On("ProductRepository").Return(f.products).Maybe()
	f.uow.On("OrderRepository").Return(f.orders).Maybe()
	f.uow.On("OrderDetailRepository").Return(f.details).Maybe()
	return f
}

func (f orderFixture) assertExpectations(t *testing.T) {
	t.Helper()
	f.uow.AssertExpectations(t)
	f.customers.AssertExpectations(t)
	f.statuses.AssertExpectations(t)
	f.products.AssertExpectations(t)
	f.orders.AssertExpectations(t)
	f.details.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	f := newOrderFixture()
	logger, hook := test.NewNullLogger()

	coffee := newProduct(t, "10.00", true)
	pending := newStatus(t, "Pending")
	owner := newCustomer(t, customer1.ID, "secret123")

	cmd := commands.CreateOrderCommand{
		DeliveryLocation: "221B Baker Street, London",
		Details: []commands.OrderLine{
			{ProductID: ptr(coffee.ID().String()), Quantity: ptr(3)},
			{ProductID: ptr(coffee.ID().String())},
		},
	}

	var added *order.Detail
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.customers.On("Get", ctx, customer1.ID).Return(owner, nil).Once(),
		f.statuses.On("GetInitial", ctx).Return(pending, nil).Once(),
		f.orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		f.products.On("Get", ctx, coffee.ID()).Return(coffee, nil).Once(),
		f.details.On("Add", ctx, mock.AnythingOfType("*order.Detail")).
			Run(func(args mock.Arguments) { added = args.Get(1).(*order.Detail) }).
			Return(nil).Once(),
		f.orders.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(f.factory, logger)
	o, err := h.Handle(ctx, customer1, cmd)

	require.NoError(t, err)
	require.NotNil(t, added)
	assert.Equal(t, "10.00", added.UnitPrice().String())
	assert.Equal(t, "30.00", added.Subtotal().String())
	assert.Equal(t, "30.00", o.Total().String())
	assert.Len(t, o.Details(), 1)
	assert.Equal(t, "Pending", o.Status().Name().String())
	assert.True(t, o.IsOwnedBy(customer1))
	f.assertExpectations(t)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)
	assert.Equal(t, "30.00", hook.LastEntry().Data["total"])
}

func TestCreateOrderCommandHandler_Handle_ProductNotFound(t *testing.T) {
	ctx := t.Context()
	f := newOrderFixture()
	logger, hook := test.NewNullLogger()

	missing := newProduct(t, "1.00", true)
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.customers.On("Get", ctx, customer1.ID).Return(newCustomer(t, customer1.ID, "secret123"), nil).Once(),
		f.statuses.On("GetInitial", ctx).Return(newStatus(t, "Pending"), nil).Once(),
		f.orders.On("Add", ctx, mock.Anything).Return(nil).Once(),
		f.products.On("Get", ctx, missing.ID()).
			Return(nil, errs.NewObjectNotFoundError("product", missing.ID().String())).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(f.factory, logger)
	_, err := h.Handle(ctx, customer1, commands.CreateOrderCommand{
		DeliveryLocation: "Main St 1, Springfield",
		Details:          []commands.OrderLine{{ProductID: ptr(missing.ID().String()), Quantity: ptr(1)}},
	})

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	f.uow.AssertNotCalled(t, "Commit", ctx)
	assert.Empty(t, hook.AllEntries())
	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_UnavailableProduct(t *testing.T) {
	ctx := t.Context()
	f := newOrderFixture()
	logger, _ := test.NewNullLogger()

	soldOut := newProduct(t, "1.00", false)
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.customers.On("Get", ctx, customer1.ID).Return(newCustomer(t, customer1.ID, "secret123"), nil).Once(),
		f.statuses.On("GetInitial", ctx).Return(newStatus(t, "Pending"), nil).Once(),
		f.orders.On("Add", ctx, mock.Anything).Return(nil).Once(),
		f.products.On("Get", ctx, soldOut.ID()).Return(soldOut, nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(f.factory, logger)
	_, err := h.Handle(ctx, customer1, commands.CreateOrderCommand{
		DeliveryLocation: "Main St 1, Springfield",
		Details:          []commands.OrderLine{{ProductID: ptr(soldOut.ID().String()), Quantity: ptr(2)}},
	})

	require.ErrorIs(t, err, errs.ErrValidation)
	assert.Contains(t, err.Error(), "details[0]")
	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_DetailAddError(t *testing.T) {
	ctx := t.Context()
	f := newOrderFixture()
	logger, _ := test.NewNullLogger()

	coffee := newProduct(t, "1.00", true)
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.customers.On("Get", ctx, customer1.ID).Return(newCustomer(t, customer1.ID, "secret123"), nil).Once(),
		f.statuses.On("GetInitial", ctx).Return(newStatus(t, "Pending"), nil).Once(),
		f.orders.On("Add", ctx, mock.Anything).Return(nil).Once(),
		f.products.On("Get", ctx, coffee.ID()).Return(coffee, nil).Once(),
		f.details.On("Add", ctx, mock.Anything).Return(errors.New("insert failed")).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(f.factory, logger)
	_, err := h.Handle(ctx, customer1, commands.CreateOrderCommand{
		DeliveryLocation: "Main St 1, Springfield",
		Details:          []commands.OrderLine{{ProductID: ptr(coffee.ID().String()), Quantity: ptr(2)}},
	})

	require.Error(t, err)
	assert.Equal(t, errs.KindInternal, errs.KindOf(err))
	f.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_Rejections(t *testing.T) {
	logger, _ := test.NewNullLogger()
	h := commands.NewCreateOrderCommandHandler(orderUoWFactory{new(MockUoWFactory)}, logger)

	t.Run("system actor is unauthorized", func(t *testing.T) {
		_, err := h.Handle(t.Context(), kernel.SystemActor(), commands.CreateOrderCommand{DeliveryLocation: "A st, B"})

		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("invalid command is a validation error", func(t *testing.T) {
		_, err := h.Handle(t.Context(), customer1, commands.CreateOrderCommand{DeliveryLocation: "no comma"})

		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Equal(t, 422, errs.StatusOf(err))
	})
}
