// Package queries contains read operations. Criteria describe filtering,
// sorting and paging; handlers run them against the repository ports and
// package the result as a PaginatedResponse.
package queries

import (
	"fmt"
	"slices"
	"strings"

	"backoffice/internal/core/ports"
)

const (
	DefaultPage           = 1
	DefaultLimit          = 10
	MaxLimit              = 100
	DefaultOrderBy        = "created_at"
	DefaultOrderDirection = "desc"
)

// Criteria is the paging, sorting and soft-deletion part shared by every
// per-aggregate criteria type.
type Criteria struct {
	Page           int
	Limit          int
	OrderBy        string
	OrderDirection string
	Scope          ports.DeletedScope
}

// NewCriteria returns criteria with the defaults: first page of ten,
// newest first, live rows only.
func NewCriteria() Criteria {
	return Criteria{
		Page:           DefaultPage,
		Limit:          DefaultLimit,
		OrderBy:        DefaultOrderBy,
		OrderDirection: DefaultOrderDirection,
	}
}

// Pagination is the page window derived from Criteria.
type Pagination struct {
	Page   int
	Limit  int
	Offset int
}

// Validate returns one message per violated rule. allowedOrderBy lists the
// fields the caller may sort by.
func (c Criteria) Validate(allowedOrderBy []string) []string {
	var messages []string
	if c.Page < 1 {
		messages = append(messages, "page must be greater than or equal to 1")
	}
	if c.Limit < 1 || c.Limit > MaxLimit {
		messages = append(messages, fmt.Sprintf("limit must be between 1 and %d", MaxLimit))
	}
	if !slices.Contains(allowedOrderBy, c.OrderBy) {
		messages = append(messages, fmt.Sprintf("order_by must be one of: %s", strings.Join(allowedOrderBy, ", ")))
	}
	if c.OrderDirection != "asc" && c.OrderDirection != "desc" {
		messages = append(messages, "order_direction must be asc or desc")
	}
	return messages
}

func (c Criteria) Pagination() Pagination {
	return Pagination{
		Page:   c.Page,
		Limit:  c.Limit,
		Offset: (c.Page - 1) * c.Limit,
	}
}

// listQuery combines the page window with filters.
func (c Criteria) listQuery(filters []ports.Filter) ports.ListQuery {
	p := c.Pagination()
	return ports.ListQuery{
		Filters:    filters,
		Offset:     p.Offset,
		Limit:      p.Limit,
		OrderBy:    c.OrderBy,
		Descending: c.OrderDirection == "desc",
	}
}
