package schema

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/deppfellow/reqcheck"
)

// translate converts validator tag errors into user-facing field errors.
//
// validator reports errors in struct field declaration order, which is the
// order the default responder relies on when picking the first message.
func translate(validationErrors validator.ValidationErrors) []reqcheck.FieldError {
	fieldErrors := make([]reqcheck.FieldError, 0, len(validationErrors))

	for _, err := range validationErrors {
		field := strings.ToLower(err.Field())
		var msg string

		switch err.Tag() {
		case "required":
			msg = fmt.Sprintf("%s is required", field)

		case "min":
			// min on a string is a length rule; on a number it's a bound.
			if err.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("%s must be at least %s characters", field, err.Param())
			} else {
				msg = fmt.Sprintf("%s must be at least %s", field, err.Param())
			}

		case "max":
			if err.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("%s must not exceed %s characters", field, err.Param())
			} else {
				msg = fmt.Sprintf("%s must not exceed %s", field, err.Param())
			}

		case "oneof":
			msg = fmt.Sprintf("%s must be one of: %s", field, err.Param())

		case "email":
			msg = fmt.Sprintf("%s must be a valid email address", field)

		case "uuid":
			msg = fmt.Sprintf("%s must be a valid UUID", field)

		case "numeric":
			msg = fmt.Sprintf("%s must be numeric", field)

		case "gt":
			msg = fmt.Sprintf("%s must be greater than %s", field, err.Param())

		case "dive":
			msg = fmt.Sprintf("%s has invalid items", field)

		default:
			// Fallback keeps the tag (and param, if any) visible for rules not
			// covered above.
			if err.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, err.Tag(), err.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, err.Tag())
			}
		}

		fieldErrors = append(fieldErrors, reqcheck.FieldError{
			Field:   field,
			Message: msg,
		})
	}

	return fieldErrors
}
