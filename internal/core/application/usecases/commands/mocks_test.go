package commands_test

import (
	"context"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/domain/model/customer"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/model/orderstatus"
	"backoffice/internal/core/domain/model/product"
	"backoffice/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*product.Product)
	return p, args.Error(1)
}
func (m *MockProductRepository) GetIncludingDeleted(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*product.Product)
	return p, args.Error(1)
}
func (m *MockProductRepository) Find(ctx context.Context, q ports.ListQuery) ([]*product.Product, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]*product.Product)
	return items, args.Get(1).(int64), args.Error(2)
}
func (m *MockProductRepository) FindIncludingDeleted(ctx context.Context, q ports.ListQuery) ([]*product.Product, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]*product.Product)
	return items, args.Get(1).(int64), args.Error(2)
}
func (m *MockProductRepository) FindOnlyDeleted(ctx context.Context, q ports.ListQuery) ([]*product.Product, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]*product.Product)
	return items, args.Get(1).(int64), args.Error(2)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}
func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}
func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}
func (m *MockCustomerRepository) GetIncludingDeleted(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}
func (m *MockCustomerRepository) GetByEmail(ctx context.Context, email kernel.Email) (*customer.Customer, error) {
	args := m.Called(ctx, email)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}
func (m *MockCustomerRepository) Find(_ context.Context, _ ports.ListQuery) ([]*customer.Customer, int64, error) {
	return nil, 0, nil
}
func (m *MockCustomerRepository) FindIncludingDeleted(_ context.Context, _ ports.ListQuery) ([]*customer.Customer, int64, error) {
	return nil, 0, nil
}
func (m *MockCustomerRepository) FindOnlyDeleted(_ context.Context, _ ports.ListQuery) ([]*customer.Customer, int64, error) {
	return nil, 0, nil
}

type MockOrderStatusRepository struct{ mock.Mock }

func (m *MockOrderStatusRepository) Add(ctx context.Context, s *orderstatus.OrderStatus) error {
	return m.Called(ctx, s).Error(0)
}
func (m *MockOrderStatusRepository) Update(ctx context.Context, s *orderstatus.OrderStatus) error {
	return m.Called(ctx, s).Error(0)
}
func (m *MockOrderStatusRepository) Get(ctx context.Context, id kernel.UUID) (*orderstatus.OrderStatus, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*orderstatus.OrderStatus)
	return s, args.Error(1)
}
func (m *MockOrderStatusRepository) GetIncludingDeleted(ctx context.Context, id kernel.UUID) (*orderstatus.OrderStatus, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*orderstatus.OrderStatus)
	return s, args.Error(1)
}
func (m *MockOrderStatusRepository) GetInitial(ctx context.Context) (*orderstatus.OrderStatus, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(*orderstatus.OrderStatus)
	return s, args.Error(1)
}
func (m *MockOrderStatusRepository) Find(_ context.Context, _ ports.ListQuery) ([]*orderstatus.OrderStatus, int64, error) {
	return nil, 0, nil
}
func (m *MockOrderStatusRepository) FindIncludingDeleted(_ context.Context, _ ports.ListQuery) ([]*orderstatus.OrderStatus, int64, error) {
	return nil, 0, nil
}
func (m *MockOrderStatusRepository) FindOnlyDeleted(_ context.Context, _ ports.ListQuery) ([]*orderstatus.OrderStatus, int64, error) {
	return nil, 0, nil
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}
func (m *MockOrderRepository) GetIncludingDeleted(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}
func (m *MockOrderRepository) Find(ctx context.Context, q ports.ListQuery) ([]*order.Order, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]*order.Order)
	return items, args.Get(1).(int64), args.Error(2)
}
func (m *MockOrderRepository) FindIncludingDeleted(_ context.Context, _ ports.ListQuery) ([]*order.Order, int64, error) {
	return nil, 0, nil
}
func (m *MockOrderRepository) FindOnlyDeleted(_ context.Context, _ ports.ListQuery) ([]*order.Order, int64, error) {
	return nil, 0, nil
}

type MockOrderDetailRepository struct{ mock.Mock }

func (m *MockOrderDetailRepository) Add(ctx context.Context, d *order.Detail) error {
	return m.Called(ctx, d).Error(0)
}
func (m *MockOrderDetailRepository) Find(_ context.Context, _ ports.ListQuery) ([]*order.Detail, int64, error) {
	return nil, 0, nil
}

type MockAuditLog struct{ mock.Mock }

func (m *MockAuditLog) Record(ctx context.Context, entry ports.AuditEntry) error {
	return m.Called(ctx, entry).Error(0)
}

// MockUoW satisfies every *UoW interface of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	return m.Called().Get(0).(ports.CustomerRepository)
}
func (m *MockUoW) ProductRepository() ports.ProductRepository {
	return m.Called().Get(0).(ports.ProductRepository)
}
func (m *MockUoW) OrderStatusRepository() ports.OrderStatusRepository {
	return m.Called().Get(0).(ports.OrderStatusRepository)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}
func (m *MockUoW) OrderDetailRepository() ports.OrderDetailRepository {
	return m.Called().Get(0).(ports.OrderDetailRepository)
}
func (m *MockUoW) AuditLog() ports.AuditLog {
	return m.Called().Get(0).(ports.AuditLog)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) next() *MockUoW {
	return m.Called().Get(0).(*MockUoW)
}

type productUoWFactory struct{ *MockUoWFactory }

func (f productUoWFactory) Create() commands.ProductUoW { return f.next() }

type customerUoWFactory struct{ *MockUoWFactory }

func (f customerUoWFactory) Create() commands.CustomerUoW { return f.next() }

type orderStatusUoWFactory struct{ *MockUoWFactory }

func (f orderStatusUoWFactory) Create() commands.OrderStatusUoW { return f.next() }

type orderUoWFactory struct{ *MockUoWFactory }

func (f orderUoWFactory) Create() commands.OrderUoW { return f.next() }

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) Issue(actor kernel.Actor) (ports.TokenPair, error) {
	args := m.Called(actor)
	return args.Get(0).(ports.TokenPair), args.Error(1)
}
func (m *MockTokenIssuer) ParseAccess(token string) (kernel.Actor, error) {
	args := m.Called(token)
	return args.Get(0).(kernel.Actor), args.Error(1)
}
func (m *MockTokenIssuer) ParseRefresh(token string) (kernel.UUID, error) {
	args := m.Called(token)
	return args.Get(0).(kernel.UUID), args.Error(1)
}
