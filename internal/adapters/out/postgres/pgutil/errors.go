package pgutil

import (
	"errors"
	"fmt"

	"backoffice/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// TranslateError maps constraint violations onto the error taxonomy. Other
// errors are returned unchanged.
func TranslateError(err error, entity string) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return errs.NewConflictError(fmt.Sprintf("%s already exists", entity)).
				WithCause(err).
				WithDetails(map[string]any{"constraint": pgErr.ConstraintName})
		case foreignKeyViolation:
			return errs.NewConflictError(fmt.Sprintf("%s references a record that does not exist", entity)).
				WithCause(err).
				WithDetails(map[string]any{"constraint": pgErr.ConstraintName})
		}
	}
	return err
}

// NotFound turns gorm.ErrRecordNotFound into errs.ObjectNotFoundError.
func NotFound(err error, entity string, id any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(entity, id)
	}
	return err
}
