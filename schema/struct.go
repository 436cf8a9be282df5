package schema

import (
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"

	"github.com/deppfellow/reqcheck"
)

var (
	defaultValidatorOnce sync.Once
	defaultValidator     *validator.Validate
)

// defaultValidate returns the shared validator instance used by Struct.
// validator.Validate caches struct metadata internally and is safe for
// concurrent use, so one instance serves every schema.
func defaultValidate() *validator.Validate {
	defaultValidatorOnce.Do(func() {
		defaultValidator = validator.New()
	})
	return defaultValidator
}

// Struct builds a schema that parses the raw value into a fresh T and runs
// validator tag rules over it. On success Parse produces *T.
//
// Typical usage:
//
//	type CreateTodoRequest struct {
//	    Title string `json:"title" validate:"required,min=3"`
//	    Done  bool   `json:"done"`
//	}
//
//	e.POST("/todos", reqcheck.CheckBody(schema.Struct[CreateTodoRequest](), h.Create))
//
// Binding is weakly typed: raw-text inputs (path/query parameters are always
// strings) coerce into numeric/bool fields when the text allows it, so a
// params schema with an `ID int` field receives 42 for the parameter "42".
// A value that cannot coerce is an ordinary field failure, not a fault.
func Struct[T any]() reqcheck.Schema {
	return StructWith[T](defaultValidate())
}

// StructWith is Struct with a caller-configured validator instance (custom
// tags, custom validation funcs, etc.).
func StructWith[T any](v *validator.Validate) reqcheck.Schema {
	return structSchema[T]{validate: v}
}

type structSchema[T any] struct {
	validate *validator.Validate
}

func (s structSchema[T]) Parse(raw any) (any, *reqcheck.Failure) {
	target := new(T)

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
		TagName:          "json",
	})
	if err != nil {
		// Only reachable with a broken decoder config, which is a programming
		// error in this package, not request data.
		panic(err)
	}

	if err := decoder.Decode(normalize(raw)); err != nil {
		return nil, decodeFailure(err)
	}

	if err := s.validate.Struct(target); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			// validator.InvalidValidationError means T itself is not
			// validatable, i.e. a schema definition mistake. Let it blow up.
			panic(err)
		}
		return nil, reqcheck.NewFailure(translate(validationErrors)...)
	}

	return target, nil
}

// decodeFailure converts a mapstructure decode error into field errors.
//
// mapstructure reports per-field problems as strings with the field name in
// single quotes ("cannot parse 'age' as int: ..."); quotedField pulls the name
// out so the default responder can still point at the offending field.
func decodeFailure(err error) *reqcheck.Failure {
	var decodeErr *mapstructure.Error
	if !errors.As(err, &decodeErr) {
		return reqcheck.Fail("body", err.Error())
	}

	fieldErrors := make([]reqcheck.FieldError, 0, len(decodeErr.Errors))
	for _, msg := range decodeErr.Errors {
		fieldErrors = append(fieldErrors, reqcheck.FieldError{
			Field:   quotedField(msg),
			Message: msg,
		})
	}
	return reqcheck.NewFailure(fieldErrors...)
}

// quotedField extracts the first single-quoted token from a mapstructure
// error message, or "" when the message has none.
func quotedField(msg string) string {
	start := strings.IndexByte(msg, '\'')
	if start < 0 {
		return ""
	}
	rest := msg[start+1:]
	end := strings.IndexByte(rest, '\'')
	if end < 0 {
		return ""
	}
	return strings.ToLower(rest[:end])
}
