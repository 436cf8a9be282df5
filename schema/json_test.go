package schema_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/reqcheck/schema"
)

const userSchemaDef = `{
	"type": "object",
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"age": {"type": "integer"}
	},
	"required": ["name"]
}`

func TestJSONValidBodyPassesThroughUnchanged(t *testing.T) {
	s := schema.MustJSON(userSchemaDef)

	raw := map[string]any{"name": "Alice", "age": float64(30)}
	value, failure := s.Parse(raw)

	require.Nil(t, failure)
	assert.Equal(t, raw, value, "JSON Schema validates, it does not coerce")
}

func TestJSONTypeViolationReportsInstanceLocation(t *testing.T) {
	s := schema.MustJSON(userSchemaDef)

	_, failure := s.Parse(map[string]any{"name": "Al", "age": "x"})
	require.NotNil(t, failure)
	require.NotEmpty(t, failure.Errors)

	fields := make([]string, 0, len(failure.Errors))
	for _, fieldErr := range failure.Errors {
		fields = append(fields, fieldErr.Field)
	}
	assert.Contains(t, fields, "/age")
	assert.Contains(t, failure.First(), "integer")
}

func TestJSONMissingRequiredProperty(t *testing.T) {
	s := schema.MustJSON(userSchemaDef)

	_, failure := s.Parse(map[string]any{"age": float64(30)})
	require.NotNil(t, failure)
	assert.Contains(t, failure.First(), "name")
}

func TestJSONMalformedDefinitionIsAConstructionError(t *testing.T) {
	_, err := schema.JSON(`{"type": "object", "properties": `)
	require.Error(t, err)

	assert.Panics(t, func() {
		schema.MustJSON(`{"type": "nonsense"}`)
	})
}

func TestJSONParamsKeepOriginalStrings(t *testing.T) {
	s := schema.MustJSON(`{
		"type": "object",
		"properties": {"id": {"type": "string", "pattern": "^[0-9]+$"}},
		"required": ["id"]
	}`)

	raw := map[string]string{"id": "42"}
	value, failure := s.Parse(raw)

	require.Nil(t, failure)
	// The handler gets the original raw strings back; this schema performs no
	// coercion, so "42" stays a string.
	assert.Equal(t, raw, value)
}

func TestJSONRejectsNonNumericParam(t *testing.T) {
	s := schema.MustJSON(`{
		"type": "object",
		"properties": {"id": {"type": "string", "pattern": "^[0-9]+$"}},
		"required": ["id"]
	}`)

	_, failure := s.Parse(map[string]string{"id": "abc"})
	require.NotNil(t, failure)
	assert.Equal(t, "/id", failure.Errors[0].Field)
}

func TestJSONQueryValuesMultiValuedKeys(t *testing.T) {
	s := schema.MustJSON(`{
		"type": "object",
		"properties": {
			"tag": {"type": "array", "items": {"type": "string"}},
			"page": {"type": "string"}
		}
	}`)

	_, failure := s.Parse(url.Values{
		"tag":  []string{"a", "b"},
		"page": []string{"1"},
	})
	require.Nil(t, failure, "multi-valued keys become arrays, single-valued keys become strings")
}
