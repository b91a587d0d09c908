package http

import (
	"errors"
	"reflect"
	"strings"

	"backoffice/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

// RequestValidator implements echo.Validator. Field names in messages are
// the JSON names of the request body.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &RequestValidator{validate: v}
}

// Validate returns an errs.ValidationError listing every failed field.
func (v *RequestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errs.NewBadRequestError("invalid payload").WithCause(err)
	}

	messages := make([]string, 0, len(fieldErrs))
	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg := fieldMessage(fe)
		fields[fe.Field()] = msg
		messages = append(messages, fe.Field()+" "+msg)
	}

	return errs.NewValidationError(strings.Join(messages, ", ")).
		WithDetails(map[string]any{"fields": fields})
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "uuid":
		return "must be a valid UUID"
	case "url", "http_url":
		return "must be a valid URL"
	case "e164":
		return "must be a valid phone number"
	case "min":
		if fe.Kind() == reflect.String {
			return "must be at least " + fe.Param() + " characters long"
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "must be at most " + fe.Param() + " characters long"
		}
		return "must be at most " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	default:
		return "failed the " + fe.Tag() + " rule"
	}
}
