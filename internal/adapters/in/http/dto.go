package http

import (
	"time"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/customer"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/model/orderstatus"
	"backoffice/internal/core/domain/model/product"
	"backoffice/internal/core/ports"
)

// Requests. Tags cover the shape of the payload; value rules are enforced
// by the commands.

type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       *float64 `json:"price" validate:"required"`
	Image       string   `json:"image" validate:"required,url"`
	Available   *bool    `json:"available"`
}

func (r CreateProductRequest) command() commands.CreateProductCommand {
	return commands.CreateProductCommand{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Image:       r.Image,
		Available:   r.Available,
	}
}

type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Image       *string  `json:"image" validate:"omitnil,url"`
	Available   *bool    `json:"available"`
}

func (r UpdateProductRequest) command(id string) commands.UpdateProductCommand {
	return commands.UpdateProductCommand{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Image:       r.Image,
		Available:   r.Available,
	}
}

type CreateCustomerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Phone    string `json:"phone" validate:"required,e164"`
	IsAdmin  bool   `json:"is_admin"`
}

func (r CreateCustomerRequest) command() commands.CreateCustomerCommand {
	return commands.CreateCustomerCommand{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Phone:    r.Phone,
		IsAdmin:  r.IsAdmin,
	}
}

type UpdateCustomerRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" validate:"omitnil,email"`
	Password *string `json:"password"`
	Phone    *string `json:"phone" validate:"omitnil,e164"`
	IsAdmin  *bool   `json:"is_admin"`
}

func (r UpdateCustomerRequest) command(id string) commands.UpdateCustomerCommand {
	return commands.UpdateCustomerCommand{
		ID:       id,
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Phone:    r.Phone,
		IsAdmin:  r.IsAdmin,
	}
}

type CreateOrderStatusRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type UpdateOrderStatusRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type OrderLineRequest struct {
	Product  *string `json:"product" validate:"omitnil,uuid"`
	Quantity *int    `json:"quantity" validate:"omitnil,gte=0"`
}

type CreateOrderRequest struct {
	DeliveryLocation string             `json:"delivery_location" validate:"required"`
	Details          []OrderLineRequest `json:"details" validate:"dive"`
}

func (r CreateOrderRequest) command() commands.CreateOrderCommand {
	lines := make([]commands.OrderLine, 0, len(r.Details))
	for _, d := range r.Details {
		lines = append(lines, commands.OrderLine{ProductID: d.Product, Quantity: d.Quantity})
	}
	return commands.CreateOrderCommand{DeliveryLocation: r.DeliveryLocation, Details: lines}
}

type UpdateOrderRequest struct {
	Status           *string `json:"status" validate:"omitnil,uuid"`
	DeliveryLocation *string `json:"delivery_location"`
}

type ObtainTokenRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

// Responses.

type PageResponse[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

func toPage[S, T any](page queries.PaginatedResponse[S], mapItem func(S) T) PageResponse[T] {
	items := make([]T, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, mapItem(item))
	}
	return PageResponse[T]{
		Items: items,
		Total: page.Total,
		Page:  page.Page,
		Limit: page.Limit,
		Pages: page.Pages,
	}
}

type LifecycleResponse struct {
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at"`
	CreatedBy *string    `json:"created_by"`
	UpdatedBy *string    `json:"updated_by"`
}

func toLifecycleResponse(l kernel.Lifecycle) LifecycleResponse {
	resp := LifecycleResponse{
		CreatedAt: l.CreatedAt().Time(),
		UpdatedAt: l.UpdatedAt().Time(),
		CreatedBy: uuidString(l.CreatedBy()),
		UpdatedBy: uuidString(l.UpdatedBy()),
	}
	if d := l.DeletedAt(); d != nil {
		t := d.Time()
		resp.DeletedAt = &t
	}
	return resp
}

func uuidString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

type ProductResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Image       string `json:"image"`
	Available   bool   `json:"available"`
	LifecycleResponse
}

func toProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:                p.ID().String(),
		Name:              p.Name().String(),
		Description:       p.Description().String(),
		Price:             p.Price().String(),
		Image:             p.Image().String(),
		Available:         p.Available(),
		LifecycleResponse: toLifecycleResponse(p.Lifecycle()),
	}
}

// CustomerResponse never carries the password.
type CustomerResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	IsAdmin bool   `json:"is_admin"`
	LifecycleResponse
}

func toCustomerResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:                c.ID().String(),
		Name:              c.Name().String(),
		Email:             c.Email().String(),
		Phone:             c.Phone().String(),
		IsAdmin:           c.IsAdmin(),
		LifecycleResponse: toLifecycleResponse(c.Lifecycle()),
	}
}

type OrderStatusResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	LifecycleResponse
}

func toOrderStatusResponse(s *orderstatus.OrderStatus) OrderStatusResponse {
	return OrderStatusResponse{
		ID:                s.ID().String(),
		Name:              s.Name().String(),
		Description:       s.Description().String(),
		LifecycleResponse: toLifecycleResponse(s.Lifecycle()),
	}
}

type ReferenceResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func toReferenceResponse(r order.Reference) ReferenceResponse {
	return ReferenceResponse{ID: r.ID().String(), Name: r.Name().String()}
}

type OrderDetailResponse struct {
	ID        string            `json:"id"`
	OrderID   string            `json:"order_id"`
	Product   ReferenceResponse `json:"product"`
	Quantity  int               `json:"quantity"`
	UnitPrice string            `json:"unit_price"`
	Subtotal  string            `json:"subtotal"`
	LifecycleResponse
}

func toOrderDetailResponse(d *order.Detail) OrderDetailResponse {
	return OrderDetailResponse{
		ID:                d.ID().String(),
		OrderID:           d.OrderID().String(),
		Product:           toReferenceResponse(d.Product()),
		Quantity:          d.Quantity(),
		UnitPrice:         d.UnitPrice().String(),
		Subtotal:          d.Subtotal().String(),
		LifecycleResponse: toLifecycleResponse(d.Lifecycle()),
	}
}

type OrderResponse struct {
	ID               string                `json:"id"`
	Customer         ReferenceResponse     `json:"customer"`
	Status           ReferenceResponse     `json:"status"`
	DeliveryLocation string                `json:"delivery_location"`
	Total            string                `json:"total"`
	Details          []OrderDetailResponse `json:"details"`
	LifecycleResponse
}

func toOrderResponse(o *order.Order) OrderResponse {
	details := make([]OrderDetailResponse, 0, len(o.Details()))
	for _, d := range o.Details() {
		details = append(details, toOrderDetailResponse(d))
	}
	return OrderResponse{
		ID:                o.ID().String(),
		Customer:          toReferenceResponse(o.Customer()),
		Status:            toReferenceResponse(o.Status()),
		DeliveryLocation:  o.DeliveryLocation().String(),
		Total:             o.Total().String(),
		Details:           details,
		LifecycleResponse: toLifecycleResponse(o.Lifecycle()),
	}
}

type TokenResponse struct {
	Access           string    `json:"access"`
	Refresh          string    `json:"refresh"`
	AccessExpiresAt  time.Time `json:"access_expires_at"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
}

func toTokenResponse(p ports.TokenPair) TokenResponse {
	return TokenResponse{
		Access:           p.Access,
		Refresh:          p.Refresh,
		AccessExpiresAt:  p.AccessExpiresAt,
		RefreshExpiresAt: p.RefreshExpiresAt,
	}
}
