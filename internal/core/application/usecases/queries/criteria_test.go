package queries_test

import (
	"testing"

	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestNewCriteria_Defaults(t *testing.T) {
	c := queries.NewCriteria()

	assert.Equal(t, 1, c.Page)
	assert.Equal(t, 10, c.Limit)
	assert.Equal(t, "created_at", c.OrderBy)
	assert.Equal(t, "desc", c.OrderDirection)
	assert.Equal(t, ports.ExcludeDeleted, c.Scope)
	assert.Empty(t, c.Validate([]string{"created_at"}))
}

func TestCriteria_Validate(t *testing.T) {
	allowed := []string{"created_at", "name"}

	tests := []struct {
		name   string
		mutate func(c *queries.Criteria)
		want   string
	}{
		{"zero page", func(c *queries.Criteria) { c.Page = 0 }, "page must be greater than or equal to 1"},
		{"zero limit", func(c *queries.Criteria) { c.Limit = 0 }, "limit must be between 1 and 100"},
		{"limit over max", func(c *queries.Criteria) { c.Limit = 101 }, "limit must be between 1 and 100"},
		{"unknown order_by", func(c *queries.Criteria) { c.OrderBy = "password" }, "order_by must be one of: created_at, name"},
		{"bad direction", func(c *queries.Criteria) { c.OrderDirection = "up" }, "order_direction must be asc or desc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := queries.NewCriteria()
			tt.mutate(&c)

			messages := c.Validate(allowed)

			require.NotEmpty(t, messages)
			assert.Contains(t, messages, tt.want)
		})
	}

	t.Run("limit 100 is accepted", func(t *testing.T) {
		c := queries.NewCriteria()
		c.Limit = 100
		assert.Empty(t, c.Validate(allowed))
	})
}

func TestCriteria_Pagination(t *testing.T) {
	c := queries.NewCriteria()
	c.Page = 3
	c.Limit = 20

	assert.Equal(t, queries.Pagination{Page: 3, Limit: 20, Offset: 40}, c.Pagination())
}

func TestNewPaginatedResponse(t *testing.T) {
	t.Run("no items means no pages", func(t *testing.T) {
		resp := queries.NewPaginatedResponse([]string{}, 0, queries.NewCriteria())

		assert.Equal(t, 0, resp.Pages)
		assert.Equal(t, int64(0), resp.Total)
		assert.NotNil(t, resp.Items)
	})

	t.Run("partial last page is counted", func(t *testing.T) {
		items := make([]int, 11)

		resp := queries.NewPaginatedResponse(items, 25, queries.NewCriteria())

		assert.Equal(t, 3, resp.Pages)
		assert.Equal(t, 1, resp.Page)
		assert.Equal(t, 10, resp.Limit)
		assert.Len(t, resp.Items, 11)
	})

	t.Run("exact multiple", func(t *testing.T) {
		resp := queries.NewPaginatedResponse([]int{1}, 20, queries.NewCriteria())
		assert.Equal(t, 2, resp.Pages)
	})

	t.Run("zero limit is guarded", func(t *testing.T) {
		c := queries.NewCriteria()
		c.Limit = 0

		resp := queries.NewPaginatedResponse([]int{1}, 5, c)

		assert.Equal(t, 0, resp.Pages)
	})

	t.Run("nil items become an empty page", func(t *testing.T) {
		resp := queries.NewPaginatedResponse[int](nil, 0, queries.NewCriteria())
		assert.Equal(t, []int{}, resp.Items)
	})
}

func TestProductCriteria(t *testing.T) {
	t.Run("ToFilters returns only set fields", func(t *testing.T) {
		c := queries.NewProductCriteria()
		c.MinPrice = ptr(5.0)
		c.Available = ptr(true)

		assert.Equal(t, []ports.Filter{
			{Field: "price", Operator: ports.OpGreaterThanOrEqual, Value: 5.0},
			{Field: "available", Operator: ports.OpEqual, Value: true},
		}, c.ToFilters())
	})

	t.Run("no fields means no filters", func(t *testing.T) {
		assert.Empty(t, queries.NewProductCriteria().ToFilters())
	})

	t.Run("price range must be ordered", func(t *testing.T) {
		c := queries.NewProductCriteria()
		c.MinPrice = ptr(10.0)
		c.MaxPrice = ptr(1.0)

		assert.Equal(t, []string{"min_price 10.00 is greater than max_price 1.00"}, c.Validate())
	})

	t.Run("negative prices are rejected", func(t *testing.T) {
		c := queries.NewProductCriteria()
		c.MaxPrice = ptr(-1.0)

		require.Len(t, c.Validate(), 1)
	})
}

func TestOrderCriteria(t *testing.T) {
	c := queries.NewOrderCriteria()
	c.StatusID = ptr("nope")

	assert.Equal(t, []string{"status_id is invalid"}, c.Validate())
	assert.Empty(t, c.ToFilters())
}

func TestOrderDetailCriteria(t *testing.T) {
	c := queries.NewOrderDetailCriteria()
	c.OrderID = ptr("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	require.Empty(t, c.Validate())
	filters := c.ToFilters()
	require.Len(t, filters, 1)
	assert.Equal(t, "order_id", filters[0].Field)
}
