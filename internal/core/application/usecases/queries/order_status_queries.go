package queries

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/orderstatus"
	"backoffice/internal/core/ports"
)

var orderStatusOrderBy = []string{"created_at", "updated_at", "name"}

type OrderStatusCriteria struct {
	Criteria
	Name *string
}

func NewOrderStatusCriteria() OrderStatusCriteria {
	return OrderStatusCriteria{Criteria: NewCriteria()}
}

func (c OrderStatusCriteria) Validate() []string {
	return c.Criteria.Validate(orderStatusOrderBy)
}

func (c OrderStatusCriteria) ToFilters() []ports.Filter {
	if c.Name == nil {
		return nil
	}
	return []ports.Filter{{Field: "name", Operator: ports.OpContains, Value: *c.Name}}
}

type FindOrderStatusesQueryHandler struct {
	repo ports.OrderStatusRepository
}

func NewFindOrderStatusesQueryHandler(repo ports.OrderStatusRepository) FindOrderStatusesQueryHandler {
	return FindOrderStatusesQueryHandler{repo: repo}
}

func (h FindOrderStatusesQueryHandler) Handle(
	ctx context.Context,
	actor kernel.Actor,
	c OrderStatusCriteria,
) (PaginatedResponse[*orderstatus.OrderStatus], error) {
	if err := ensureValid(c.Validate()); err != nil {
		return PaginatedResponse[*orderstatus.OrderStatus]{}, err
	}
	return find[*orderstatus.OrderStatus](ctx, h.repo, actor, c.Criteria, c.ToFilters())
}

type GetOrderStatusQueryHandler struct {
	repo ports.OrderStatusRepository
}

func NewGetOrderStatusQueryHandler(repo ports.OrderStatusRepository) GetOrderStatusQueryHandler {
	return GetOrderStatusQueryHandler{repo: repo}
}

func (h GetOrderStatusQueryHandler) Handle(ctx context.Context, actor kernel.Actor, q GetQuery) (*orderstatus.OrderStatus, error) {
	return get[*orderstatus.OrderStatus](ctx, h.repo, actor, q)
}
