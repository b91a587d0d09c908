// Package ports defines the contracts between the application layer and
// infrastructure: repositories per aggregate, the audit log, the unit of
// work and the token issuer.
package ports

// DeletedScope selects which rows a Find call returns with respect to soft
// deletion.
type DeletedScope int

const (
	// ExcludeDeleted is the default scope: live rows only.
	ExcludeDeleted DeletedScope = iota
	// IncludeDeleted returns live and soft-deleted rows.
	IncludeDeleted
	// OnlyDeleted returns soft-deleted rows only.
	OnlyDeleted
)

// ParseDeletedScope maps the "deleted" query parameter to a scope. The empty
// string is the default scope.
func ParseDeletedScope(raw string) (DeletedScope, bool) {
	switch raw {
	case "":
		return ExcludeDeleted, true
	case "include":
		return IncludeDeleted, true
	case "only":
		return OnlyDeleted, true
	default:
		return ExcludeDeleted, false
	}
}

func (s DeletedScope) String() string {
	switch s {
	case IncludeDeleted:
		return "include"
	case OnlyDeleted:
		return "only"
	default:
		return ""
	}
}

// Operator is the comparison applied by a Filter.
type Operator string

const (
	OpEqual              Operator = "eq"
	OpContains           Operator = "contains"
	OpGreaterThanOrEqual Operator = "gte"
	OpLessThanOrEqual    Operator = "lte"
)

// Filter restricts a Find call to rows whose Field compares to Value.
// Field names are the snake_case names used in query parameters;
// repositories reject fields they do not know.
type Filter struct {
	Field    string
	Operator Operator
	Value    any
}

// ListQuery is what Find receives: filters plus a page window and ordering.
//
// Example:
//
//	q := ports.ListQuery{
//	    Filters:    []ports.Filter{{Field: "available", Operator: ports.OpEqual, Value: true}},
//	    Offset:     0,
//	    Limit:      10,
//	    OrderBy:    "created_at",
//	    Descending: true,
//	}
type ListQuery struct {
	Filters    []Filter
	Offset     int
	Limit      int
	OrderBy    string
	Descending bool
}
