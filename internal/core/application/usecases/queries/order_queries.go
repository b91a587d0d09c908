package queries

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"
)

var (
	orderOrderBy       = []string{"created_at", "updated_at", "total"}
	orderDetailOrderBy = []string{"created_at", "quantity", "subtotal"}
)

type OrderCriteria struct {
	Criteria
	ID         *string
	CustomerID *string
	StatusID   *string
}

func NewOrderCriteria() OrderCriteria {
	return OrderCriteria{Criteria: NewCriteria()}
}

func (c OrderCriteria) Validate() []string {
	messages := c.Criteria.Validate(orderOrderBy)
	messages = checkUUID(messages, "id", c.ID)
	messages = checkUUID(messages, "customer_id", c.CustomerID)
	messages = checkUUID(messages, "status_id", c.StatusID)
	return messages
}

func (c OrderCriteria) ToFilters() []ports.Filter {
	var filters []ports.Filter
	filters = uuidFilter(filters, "id", c.ID)
	filters = uuidFilter(filters, "customer_id", c.CustomerID)
	filters = uuidFilter(filters, "status_id", c.StatusID)
	return filters
}

// FindOrdersQueryHandler lists orders. Non-admin callers only ever see their
// own orders, whatever customer filter they pass.
type FindOrdersQueryHandler struct {
	repo ports.OrderRepository
}

func NewFindOrdersQueryHandler(repo ports.OrderRepository) FindOrdersQueryHandler {
	return FindOrdersQueryHandler{repo: repo}
}

func (h FindOrdersQueryHandler) Handle(
	ctx context.Context,
	actor kernel.Actor,
	c OrderCriteria,
) (PaginatedResponse[*order.Order], error) {
	if !actor.IsAdmin {
		own := actor.ID.String()
		c.CustomerID = &own
	}
	if err := ensureValid(c.Validate()); err != nil {
		return PaginatedResponse[*order.Order]{}, err
	}
	return find[*order.Order](ctx, h.repo, actor, c.Criteria, c.ToFilters())
}

type GetOrderQueryHandler struct {
	repo ports.OrderRepository
}

func NewGetOrderQueryHandler(repo ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{repo: repo}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, actor kernel.Actor, q GetQuery) (*order.Order, error) {
	o, err := get[*order.Order](ctx, h.repo, actor, q)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin && !o.IsOwnedBy(actor) {
		return nil, errs.NewForbiddenError("customers can only read their own orders")
	}
	return o, nil
}

// OrderDetailCriteria lists order lines, optionally scoped to one order.
type OrderDetailCriteria struct {
	Criteria
	OrderID *string
}

func NewOrderDetailCriteria() OrderDetailCriteria {
	return OrderDetailCriteria{Criteria: NewCriteria()}
}

func (c OrderDetailCriteria) Validate() []string {
	messages := c.Criteria.Validate(orderDetailOrderBy)
	if c.Scope != ports.ExcludeDeleted {
		messages = append(messages, "deleted order details are not listed")
	}
	return checkUUID(messages, "order_id", c.OrderID)
}

func (c OrderDetailCriteria) ToFilters() []ports.Filter {
	return uuidFilter(nil, "order_id", c.OrderID)
}

// FindOrderDetailsQueryHandler lists order lines. Non-admin callers see the
// lines of their own orders only.
type FindOrderDetailsQueryHandler struct {
	repo ports.OrderDetailRepository
}

func NewFindOrderDetailsQueryHandler(repo ports.OrderDetailRepository) FindOrderDetailsQueryHandler {
	return FindOrderDetailsQueryHandler{repo: repo}
}

func (h FindOrderDetailsQueryHandler) Handle(
	ctx context.Context,
	actor kernel.Actor,
	c OrderDetailCriteria,
) (PaginatedResponse[*order.Detail], error) {
	if err := ensureValid(c.Validate()); err != nil {
		return PaginatedResponse[*order.Detail]{}, err
	}

	filters := c.ToFilters()
	if !actor.IsAdmin {
		filters = append(filters, ports.Filter{Field: "customer_id", Operator: ports.OpEqual, Value: actor.ID.Bytes()})
	}

	items, total, err := h.repo.Find(ctx, c.listQuery(filters))
	if err != nil {
		return PaginatedResponse[*order.Detail]{}, err
	}
	return NewPaginatedResponse(items, total, c.Criteria), nil
}
