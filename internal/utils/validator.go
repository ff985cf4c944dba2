package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"recipe-book/domain"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	Validate = validator.New()

	// Report errors under the submitted field names, not Go struct names.
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
}

// FieldErrors flattens validator failures into per-field messages suitable
// for form redisplay and API error bodies.
func FieldErrors(err error) []domain.FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []domain.FieldError{{Field: "non_field_errors", Message: err.Error()}}
	}

	fields := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domain.FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return fields
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "url":
		return "Enter a valid URL."
	default:
		return fmt.Sprintf("Invalid value for %s.", fe.Field())
	}
}
