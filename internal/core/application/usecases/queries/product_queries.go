package queries

import (
	"context"
	"fmt"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/product"
	"backoffice/internal/core/ports"
)

var productOrderBy = []string{"created_at", "updated_at", "name", "price"}

// ProductCriteria filters the catalogue. Name matches as a case-insensitive
// substring; MinPrice and MaxPrice are inclusive.
type ProductCriteria struct {
	Criteria
	Name      *string
	MinPrice  *float64
	MaxPrice  *float64
	Available *bool
}

func NewProductCriteria() ProductCriteria {
	return ProductCriteria{Criteria: NewCriteria()}
}

func (c ProductCriteria) Validate() []string {
	messages := c.Criteria.Validate(productOrderBy)
	if c.MinPrice != nil {
		if _, err := kernel.NewPriceFromFloat(*c.MinPrice); err != nil {
			messages = append(messages, "min_price: "+err.Error())
		}
	}
	if c.MaxPrice != nil {
		if _, err := kernel.NewPriceFromFloat(*c.MaxPrice); err != nil {
			messages = append(messages, "max_price: "+err.Error())
		}
	}
	if c.MinPrice != nil && c.MaxPrice != nil && *c.MinPrice > *c.MaxPrice {
		messages = append(messages, fmt.Sprintf("min_price %.2f is greater than max_price %.2f", *c.MinPrice, *c.MaxPrice))
	}
	return messages
}

// ToFilters returns one filter per field that is set.
func (c ProductCriteria) ToFilters() []ports.Filter {
	var filters []ports.Filter
	if c.Name != nil {
		filters = append(filters, ports.Filter{Field: "name", Operator: ports.OpContains, Value: *c.Name})
	}
	if c.MinPrice != nil {
		filters = append(filters, ports.Filter{Field: "price", Operator: ports.OpGreaterThanOrEqual, Value: *c.MinPrice})
	}
	if c.MaxPrice != nil {
		filters = append(filters, ports.Filter{Field: "price", Operator: ports.OpLessThanOrEqual, Value: *c.MaxPrice})
	}
	if c.Available != nil {
		filters = append(filters, ports.Filter{Field: "available", Operator: ports.OpEqual, Value: *c.Available})
	}
	return filters
}

// FindProductsQueryHandler lists products. Everyone signed in may browse the
// catalogue.
type FindProductsQueryHandler struct {
	repo ports.ProductRepository
}

func NewFindProductsQueryHandler(repo ports.ProductRepository) FindProductsQueryHandler {
	return FindProductsQueryHandler{repo: repo}
}

func (h FindProductsQueryHandler) Handle(
	ctx context.Context,
	actor kernel.Actor,
	c ProductCriteria,
) (PaginatedResponse[*product.Product], error) {
	if err := ensureValid(c.Validate()); err != nil {
		return PaginatedResponse[*product.Product]{}, err
	}
	return find[*product.Product](ctx, h.repo, actor, c.Criteria, c.ToFilters())
}

type GetProductQueryHandler struct {
	repo ports.ProductRepository
}

func NewGetProductQueryHandler(repo ports.ProductRepository) GetProductQueryHandler {
	return GetProductQueryHandler{repo: repo}
}

func (h GetProductQueryHandler) Handle(ctx context.Context, actor kernel.Actor, q GetQuery) (*product.Product, error) {
	return get[*product.Product](ctx, h.repo, actor, q)
}
