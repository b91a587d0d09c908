package http

import (
	"strconv"

	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ListParams are the query parameters every list endpoint accepts.
type ListParams struct {
	Page           *int
	Limit          *int
	OrderBy        *string
	OrderDirection *string
	Deleted        *string
}

// bindQuery binds one optional form-style query parameter into dest.
func bindQuery(c echo.Context, name string, dest any) error {
	err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), dest)
	if err != nil {
		return errs.NewBadRequestError("invalid format for parameter " + name).WithCause(err)
	}
	return nil
}

func bindListParams(c echo.Context) (ListParams, error) {
	var p ListParams
	params := []struct {
		name string
		dest any
	}{
		{"page", &p.Page},
		{"limit", &p.Limit},
		{"order_by", &p.OrderBy},
		{"order_direction", &p.OrderDirection},
		{"deleted", &p.Deleted},
	}
	for _, param := range params {
		if err := bindQuery(c, param.name, param.dest); err != nil {
			return ListParams{}, err
		}
	}
	return p, nil
}

// criteria applies the bound parameters over the defaults.
func (p ListParams) criteria() (queries.Criteria, error) {
	c := queries.NewCriteria()
	if p.Page != nil {
		c.Page = *p.Page
	}
	if p.Limit != nil {
		c.Limit = *p.Limit
	}
	if p.OrderBy != nil {
		c.OrderBy = *p.OrderBy
	}
	if p.OrderDirection != nil {
		c.OrderDirection = *p.OrderDirection
	}
	if p.Deleted != nil {
		scope, ok := ports.ParseDeletedScope(*p.Deleted)
		if !ok {
			return queries.Criteria{}, errs.NewValidationError("deleted must be include or only")
		}
		c.Scope = scope
	}
	return c, nil
}

func listCriteria(c echo.Context) (queries.Criteria, error) {
	p, err := bindListParams(c)
	if err != nil {
		return queries.Criteria{}, err
	}
	return p.criteria()
}

// includeDeleted reads the "deleted" parameter of retrieve endpoints.
// Any value other than include is rejected.
func includeDeleted(c echo.Context) (bool, error) {
	var deleted *string
	if err := bindQuery(c, "deleted", &deleted); err != nil {
		return false, err
	}
	if deleted == nil || *deleted == "" {
		return false, nil
	}
	if *deleted != ports.IncludeDeleted.String() {
		return false, errs.NewValidationError("deleted must be include")
	}
	return true, nil
}

func productCriteria(c echo.Context) (queries.ProductCriteria, error) {
	base, err := listCriteria(c)
	if err != nil {
		return queries.ProductCriteria{}, err
	}
	criteria := queries.ProductCriteria{Criteria: base}
	if err = bindQuery(c, "name", &criteria.Name); err != nil {
		return queries.ProductCriteria{}, err
	}
	if err = bindQuery(c, "min_price", &criteria.MinPrice); err != nil {
		return queries.ProductCriteria{}, err
	}
	if err = bindQuery(c, "max_price", &criteria.MaxPrice); err != nil {
		return queries.ProductCriteria{}, err
	}
	if err = bindQuery(c, "available", &criteria.Available); err != nil {
		return queries.ProductCriteria{}, err
	}
	return criteria, nil
}

func customerCriteria(c echo.Context) (queries.CustomerCriteria, error) {
	base, err := listCriteria(c)
	if err != nil {
		return queries.CustomerCriteria{}, err
	}
	criteria := queries.CustomerCriteria{Criteria: base}
	if err = bindQuery(c, "name", &criteria.Name); err != nil {
		return queries.CustomerCriteria{}, err
	}
	if err = bindQuery(c, "email", &criteria.Email); err != nil {
		return queries.CustomerCriteria{}, err
	}
	if err = bindQuery(c, "is_admin", &criteria.IsAdmin); err != nil {
		return queries.CustomerCriteria{}, err
	}
	return criteria, nil
}

func orderStatusCriteria(c echo.Context) (queries.OrderStatusCriteria, error) {
	base, err := listCriteria(c)
	if err != nil {
		return queries.OrderStatusCriteria{}, err
	}
	criteria := queries.OrderStatusCriteria{Criteria: base}
	if err = bindQuery(c, "name", &criteria.Name); err != nil {
		return queries.OrderStatusCriteria{}, err
	}
	return criteria, nil
}

func orderCriteria(c echo.Context) (queries.OrderCriteria, error) {
	base, err := listCriteria(c)
	if err != nil {
		return queries.OrderCriteria{}, err
	}
	criteria := queries.OrderCriteria{Criteria: base}
	if err = bindQuery(c, "id", &criteria.ID); err != nil {
		return queries.OrderCriteria{}, err
	}
	if err = bindQuery(c, "customer_id", &criteria.CustomerID); err != nil {
		return queries.OrderCriteria{}, err
	}
	if err = bindQuery(c, "status_id", &criteria.StatusID); err != nil {
		return queries.OrderCriteria{}, err
	}
	return criteria, nil
}

func orderDetailCriteria(c echo.Context) (queries.OrderDetailCriteria, error) {
	base, err := listCriteria(c)
	if err != nil {
		return queries.OrderDetailCriteria{}, err
	}
	criteria := queries.OrderDetailCriteria{Criteria: base}
	if err = bindQuery(c, "order_id", &criteria.OrderID); err != nil {
		return queries.OrderDetailCriteria{}, err
	}
	return criteria, nil
}

func pageHeaders[T any](c echo.Context, page queries.PaginatedResponse[T]) {
	h := c.Response().Header()
	h.Set("X-Total-Count", strconv.FormatInt(page.Total, 10))
	h.Set("X-Total-Pages", strconv.Itoa(page.Pages))
}
