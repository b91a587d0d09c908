package queries

import (
	"context"

	"backoffice/internal/core/domain/model/customer"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"
)

var customerOrderBy = []string{"created_at", "updated_at", "name", "email"}

type CustomerCriteria struct {
	Criteria
	Name    *string
	Email   *string
	IsAdmin *bool
}

func NewCustomerCriteria() CustomerCriteria {
	return CustomerCriteria{Criteria: NewCriteria()}
}

func (c CustomerCriteria) Validate() []string {
	return c.Criteria.Validate(customerOrderBy)
}

func (c CustomerCriteria) ToFilters() []ports.Filter {
	var filters []ports.Filter
	if c.Name != nil {
		filters = append(filters, ports.Filter{Field: "name", Operator: ports.OpContains, Value: *c.Name})
	}
	if c.Email != nil {
		filters = append(filters, ports.Filter{Field: "email", Operator: ports.OpEqual, Value: *c.Email})
	}
	if c.IsAdmin != nil {
		filters = append(filters, ports.Filter{Field: "is_admin", Operator: ports.OpEqual, Value: *c.IsAdmin})
	}
	return filters
}

// FindCustomersQueryHandler lists customers. Admin only.
type FindCustomersQueryHandler struct {
	repo ports.CustomerRepository
}

func NewFindCustomersQueryHandler(repo ports.CustomerRepository) FindCustomersQueryHandler {
	return FindCustomersQueryHandler{repo: repo}
}

func (h FindCustomersQueryHandler) Handle(
	ctx context.Context,
	actor kernel.Actor,
	c CustomerCriteria,
) (PaginatedResponse[*customer.Customer], error) {
	if !actor.IsAdmin {
		return PaginatedResponse[*customer.Customer]{}, errs.NewForbiddenError("only administrators can list customers")
	}
	if err := ensureValid(c.Validate()); err != nil {
		return PaginatedResponse[*customer.Customer]{}, err
	}
	return find[*customer.Customer](ctx, h.repo, actor, c.Criteria, c.ToFilters())
}

// GetCustomerQueryHandler returns one customer. Customers may read their own
// record only.
type GetCustomerQueryHandler struct {
	repo ports.CustomerRepository
}

func NewGetCustomerQueryHandler(repo ports.CustomerRepository) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{repo: repo}
}

func (h GetCustomerQueryHandler) Handle(ctx context.Context, actor kernel.Actor, q GetQuery) (*customer.Customer, error) {
	c, err := get[*customer.Customer](ctx, h.repo, actor, q)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin && !actor.ID.IsEqual(c.ID()) {
		return nil, errs.NewForbiddenError("customers can only read their own profile")
	}
	return c, nil
}
