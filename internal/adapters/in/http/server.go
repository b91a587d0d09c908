package http

import (
	"net/http"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// CommandHandlers groups the write side of the API.
type CommandHandlers struct {
	CreateProduct     commands.CreateProductCommandHandler
	UpdateProduct     commands.UpdateProductCommandHandler
	DeleteProduct     commands.DeleteProductCommandHandler
	CreateCustomer    commands.CreateCustomerCommandHandler
	UpdateCustomer    commands.UpdateCustomerCommandHandler
	DeleteCustomer    commands.DeleteCustomerCommandHandler
	CreateOrderStatus commands.CreateOrderStatusCommandHandler
	UpdateOrderStatus commands.UpdateOrderStatusCommandHandler
	DeleteOrderStatus commands.DeleteOrderStatusCommandHandler
	CreateOrder       commands.CreateOrderCommandHandler
	UpdateOrder       commands.UpdateOrderCommandHandler
	DeleteOrder       commands.DeleteOrderCommandHandler
	ObtainToken       commands.ObtainTokenCommandHandler
	RefreshToken      commands.RefreshTokenCommandHandler
}

// QueryHandlers groups the read side of the API.
type QueryHandlers struct {
	FindProducts      queries.FindProductsQueryHandler
	GetProduct        queries.GetProductQueryHandler
	FindCustomers     queries.FindCustomersQueryHandler
	GetCustomer       queries.GetCustomerQueryHandler
	FindOrderStatuses queries.FindOrderStatusesQueryHandler
	GetOrderStatus    queries.GetOrderStatusQueryHandler
	FindOrders        queries.FindOrdersQueryHandler
	GetOrder          queries.GetOrderQueryHandler
	FindOrderDetails  queries.FindOrderDetailsQueryHandler
}

// Server exposes the back office over REST.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
	issuer   ports.TokenIssuer
	openAPI  *OpenAPI
	log      logrus.FieldLogger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	cmds CommandHandlers,
	qs QueryHandlers,
	issuer ports.TokenIssuer,
	openAPI *OpenAPI,
	log logrus.FieldLogger,
) *Server {
	return &Server{
		commands: cmds,
		queries:  qs,
		issuer:   issuer,
		openAPI:  openAPI,
		log:      log,
	}
}

// Register installs middleware, the error handler and every route on e.
// Trailing slashes are stripped before routing, so /api/token/ and
// /api/token reach the same handler.
func (s *Server) Register(e *echo.Echo) {
	e.HTTPErrorHandler = NewErrorHandler(s.log)
	e.Validator = NewRequestValidator()

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.RequestID())
	e.Use(RequestLogger(s.log))
	e.Use(middleware.Recover())

	e.GET("/health", s.Health)
	e.GET("/openapi.json", s.OpenAPIDocument)
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("/openapi.json")))

	validate := s.openAPI.ValidateRequests()
	api := e.Group("/api")

	api.POST("/token", s.ObtainToken, validate)
	api.POST("/token/refresh", s.RefreshToken, validate)

	secured := api.Group("", Authenticate(s.issuer), validate)

	secured.GET("/products", s.ListProducts)
	secured.POST("/products", s.CreateProduct)
	secured.GET("/products/:id", s.GetProduct)
	secured.PATCH("/products/:id", s.PatchProduct)
	secured.DELETE("/products/:id", s.DeleteProduct)

	secured.GET("/customers", s.ListCustomers)
	secured.POST("/customers", s.CreateCustomer)
	secured.GET("/customers/:id", s.GetCustomer)
	secured.PATCH("/customers/:id", s.PatchCustomer)
	secured.DELETE("/customers/:id", s.DeleteCustomer)

	secured.GET("/order-status", s.ListOrderStatuses)
	secured.POST("/order-status", s.CreateOrderStatus)
	secured.GET("/order-status/:id", s.GetOrderStatus)
	secured.PATCH("/order-status/:id", s.PatchOrderStatus)
	secured.DELETE("/order-status/:id", s.DeleteOrderStatus)

	secured.GET("/orders", s.ListOrders)
	secured.POST("/orders", s.CreateOrder)
	secured.GET("/orders/:id", s.GetOrder)
	secured.PATCH("/orders/:id", s.PatchOrder)
	secured.DELETE("/orders/:id", s.DeleteOrder)

	secured.GET("/order-details", s.ListOrderDetails)
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// bindBody decodes and validates the JSON body into dest.
func bindBody(c echo.Context, dest any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, dest); err != nil {
		return err
	}
	return c.Validate(dest)
}
