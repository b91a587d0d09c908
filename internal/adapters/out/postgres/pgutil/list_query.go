package pgutil

import (
	"context"
	"fmt"
	"strings"

	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Columns maps the field names used in filters and ordering to qualified
// SQL columns. Fields missing from the map are rejected.
type Columns map[string]string

// Listing describes how one table is listed.
type Listing struct {
	// Table is the main table; its deleted_at column drives the scope.
	Table string
	// Columns is the allow-list for filters and ordering.
	Columns Columns
	// Joins are applied to both the count and the page query.
	Joins []string
	// Select replaces the column list of the page query when set.
	Select string
	// Prepare adjusts the page query only, typically to preload
	// associations.
	Prepare func(db *gorm.DB) *gorm.DB
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Find runs q in scope and returns one page of D plus the total count.
//
// Example:
//
//	dtos, total, err := pgutil.Find[ProductDTO](ctx, db, listing, q, ports.ExcludeDeleted)
func Find[D any](
	ctx context.Context,
	db *gorm.DB,
	l Listing,
	q ports.ListQuery,
	scope ports.DeletedScope,
) ([]D, int64, error) {
	base := db.WithContext(ctx).Model(new(D))
	switch scope {
	case ports.IncludeDeleted:
		base = base.Unscoped()
	case ports.OnlyDeleted:
		base = base.Unscoped().Where(l.Table + ".deleted_at IS NOT NULL")
	}
	for _, join := range l.Joins {
		base = base.Joins(join)
	}

	base, err := applyFilters(base, l.Columns, q.Filters)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err = base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := base.Session(&gorm.Session{})
	if l.Select != "" {
		page = page.Select(l.Select)
	}
	if l.Prepare != nil {
		page = l.Prepare(page)
	}
	page, err = applyOrder(page, l, q)
	if err != nil {
		return nil, 0, err
	}

	var dtos []D
	if err = page.Offset(q.Offset).Limit(q.Limit).Find(&dtos).Error; err != nil {
		return nil, 0, err
	}
	return dtos, total, nil
}

func applyFilters(db *gorm.DB, columns Columns, filters []ports.Filter) (*gorm.DB, error) {
	for _, f := range filters {
		column, ok := columns[f.Field]
		if !ok {
			return nil, errs.NewBadRequestError(fmt.Sprintf("cannot filter by %q", f.Field))
		}
		switch f.Operator {
		case ports.OpEqual:
			db = db.Where(column+" = ?", f.Value)
		case ports.OpContains:
			db = db.Where(column+" ILIKE ?", "%"+likeEscaper.Replace(fmt.Sprint(f.Value))+"%")
		case ports.OpGreaterThanOrEqual:
			db = db.Where(column+" >= ?", f.Value)
		case ports.OpLessThanOrEqual:
			db = db.Where(column+" <= ?", f.Value)
		default:
			return nil, errs.NewBadRequestError(fmt.Sprintf("unsupported operator %q", f.Operator))
		}
	}
	return db, nil
}

func applyOrder(db *gorm.DB, l Listing, q ports.ListQuery) (*gorm.DB, error) {
	if q.OrderBy == "" {
		return db.Order(clause.OrderByColumn{Column: clause.Column{Name: l.Table + ".id", Raw: true}}), nil
	}
	column, ok := l.Columns[q.OrderBy]
	if !ok {
		return nil, errs.NewBadRequestError(fmt.Sprintf("cannot order by %q", q.OrderBy))
	}
	return db.
		Order(clause.OrderByColumn{Column: clause.Column{Name: column, Raw: true}, Desc: q.Descending}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: l.Table + ".id", Raw: true}}), nil
}
