package schema

import (
	"errors"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/deppfellow/reqcheck"
)

// JSON builds a schema from a JSON Schema document.
//
// The document is compiled eagerly: a malformed definition is a construction
// error for the caller to handle (or panic on, via MustJSON); it never shows
// up as a request-time failure. On success Parse returns the raw value
// unchanged; JSON Schema validates, it does not coerce.
func JSON(definition string) (reqcheck.Schema, error) {
	compiled, err := jsonschema.CompileString("schema.json", definition)
	if err != nil {
		return nil, err
	}
	return jsonSchema{compiled: compiled}, nil
}

// MustJSON is JSON but panics on a malformed definition. Intended for schemas
// declared at package/route-registration level, where a bad definition should
// stop the program.
func MustJSON(definition string) reqcheck.Schema {
	s, err := JSON(definition)
	if err != nil {
		panic(err)
	}
	return s
}

type jsonSchema struct {
	compiled *jsonschema.Schema
}

func (s jsonSchema) Parse(raw any) (any, *reqcheck.Failure) {
	if err := s.compiled.Validate(normalize(raw)); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return nil, reqcheck.NewFailure(flatten(validationErr)...)
		}
		return nil, reqcheck.Fail("", err.Error())
	}
	return raw, nil
}

// flatten collects the leaf causes of a jsonschema.ValidationError in order.
//
// The engine reports a tree: the root error restates the document location and
// each leaf carries the actual rule violation. Leaves are what a client can
// act on, so those become the field errors; the instance location ("/age")
// doubles as the field path.
func flatten(err *jsonschema.ValidationError) []reqcheck.FieldError {
	if len(err.Causes) == 0 {
		return []reqcheck.FieldError{{
			Field:   err.InstanceLocation,
			Message: err.Message,
		}}
	}

	var fieldErrors []reqcheck.FieldError
	for _, cause := range err.Causes {
		fieldErrors = append(fieldErrors, flatten(cause)...)
	}
	return fieldErrors
}
