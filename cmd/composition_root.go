package cmd

import (
	"backoffice/internal/adapters/in/http"
	"backoffice/internal/adapters/out/postgres"
	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/jobs"
	"backoffice/internal/pkg/token"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	cipher     *kernel.PasswordCipher
	tokens     *token.JWTManager
	logger     *logrus.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *logrus.Logger) (CompositionRoot, error) {
	cipher, err := kernel.NewPasswordCipherFromHex(config.PasswordSecretKey)
	if err != nil {
		return CompositionRoot{}, err
	}
	tokens, err := token.NewJWTManager(
		config.JWTAccessSecret,
		config.JWTRefreshSecret,
		config.JWTAccessTTL,
		config.JWTRefreshTTL,
	)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, cipher),
		cipher:     cipher,
		tokens:     tokens,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderStatusUoWFactory() commands.OrderStatusUoWFactory {
	return FuncOrderStatusUoWFactory(func() commands.OrderStatusUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCommandHandlers() http.CommandHandlers {
	// Sign-in reads outside any transaction.
	reader := c.uowFactory.Create()

	return http.CommandHandlers{
		CreateProduct:     commands.NewCreateProductCommandHandler(c.productUoWFactory()),
		UpdateProduct:     commands.NewUpdateProductCommandHandler(c.productUoWFactory()),
		DeleteProduct:     commands.NewDeleteProductCommandHandler(c.productUoWFactory()),
		CreateCustomer:    c.CreateCreateCustomerCommandHandler(),
		UpdateCustomer:    commands.NewUpdateCustomerCommandHandler(c.customerUoWFactory(), c.cipher),
		DeleteCustomer:    commands.NewDeleteCustomerCommandHandler(c.customerUoWFactory()),
		CreateOrderStatus: c.CreateCreateOrderStatusCommandHandler(),
		UpdateOrderStatus: commands.NewUpdateOrderStatusCommandHandler(c.orderStatusUoWFactory()),
		DeleteOrderStatus: commands.NewDeleteOrderStatusCommandHandler(c.orderStatusUoWFactory()),
		CreateOrder:       commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.logger),
		UpdateOrder:       commands.NewUpdateOrderCommandHandler(c.orderUoWFactory()),
		DeleteOrder:       commands.NewDeleteOrderCommandHandler(c.orderUoWFactory()),
		ObtainToken:       commands.NewObtainTokenCommandHandler(reader.CustomerRepository(), c.tokens),
		RefreshToken:      commands.NewRefreshTokenCommandHandler(reader.CustomerRepository(), c.tokens),
	}
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	return commands.NewCreateCustomerCommandHandler(c.customerUoWFactory(), c.cipher)
}

func (c *CompositionRoot) CreateCreateOrderStatusCommandHandler() commands.CreateOrderStatusCommandHandler {
	return commands.NewCreateOrderStatusCommandHandler(c.orderStatusUoWFactory())
}

func (c *CompositionRoot) CreateReconcileOrderTotalsCommandHandler() commands.ReconcileOrderTotalsCommandHandler {
	return commands.NewReconcileOrderTotalsCommandHandler(c.orderUoWFactory())
}

// CreateQueryHandlers wires the read side to repositories that are not bound
// to a transaction.
func (c *CompositionRoot) CreateQueryHandlers() http.QueryHandlers {
	reader := c.uowFactory.Create()

	return http.QueryHandlers{
		FindProducts:      queries.NewFindProductsQueryHandler(reader.ProductRepository()),
		GetProduct:        queries.NewGetProductQueryHandler(reader.ProductRepository()),
		FindCustomers:     queries.NewFindCustomersQueryHandler(reader.CustomerRepository()),
		GetCustomer:       queries.NewGetCustomerQueryHandler(reader.CustomerRepository()),
		FindOrderStatuses: queries.NewFindOrderStatusesQueryHandler(reader.OrderStatusRepository()),
		GetOrderStatus:    queries.NewGetOrderStatusQueryHandler(reader.OrderStatusRepository()),
		FindOrders:        queries.NewFindOrdersQueryHandler(reader.OrderRepository()),
		GetOrder:          queries.NewGetOrderQueryHandler(reader.OrderRepository()),
		FindOrderDetails:  queries.NewFindOrderDetailsQueryHandler(reader.OrderDetailRepository()),
	}
}

func (c *CompositionRoot) CreateServer() (*http.Server, error) {
	openAPI, err := http.LoadOpenAPI()
	if err != nil {
		return nil, err
	}
	return http.NewServer(
		c.CreateCommandHandlers(),
		c.CreateQueryHandlers(),
		c.tokens,
		openAPI,
		c.logger,
	), nil
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	handler := c.CreateReconcileOrderTotalsCommandHandler()
	return jobs.NewJobManager(
		jobs.NewOrderTotalsJob(&handler, c.config.ReconcileSchedule, c.logger),
	)
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncOrderStatusUoWFactory func() commands.OrderStatusUoW

func (f FuncOrderStatusUoWFactory) Create() commands.OrderStatusUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
