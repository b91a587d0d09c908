package queries

// PaginatedResponse is one page of T plus the numbers a client needs to
// walk the rest.
type PaginatedResponse[T any] struct {
	Items []T
	Total int64
	Page  int
	Limit int
	Pages int
}

// NewPaginatedResponse packages items. Pages is ceil(total / limit), and 0
// when either is 0.
//
// Example:
//
//	resp := queries.NewPaginatedResponse(items, 25, criteria) // limit 10
//	resp.Pages // 3
func NewPaginatedResponse[T any](items []T, total int64, c Criteria) PaginatedResponse[T] {
	if items == nil {
		items = []T{}
	}
	pages := 0
	if c.Limit > 0 && total > 0 {
		pages = int((total + int64(c.Limit) - 1) / int64(c.Limit))
	}
	return PaginatedResponse[T]{
		Items: items,
		Total: total,
		Page:  max(c.Page, 0),
		Limit: c.Limit,
		Pages: pages,
	}
}
