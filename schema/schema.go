// Package schema provides ready-made implementations of reqcheck.Schema.
//
// Two validation engines are covered:
//
//   - Struct / StructWith bind the raw value onto a tagged Go struct and run
//     go-playground/validator rules (`validate:"required,email"` etc.) on it.
//   - JSON / MustJSON validate the raw value against a JSON Schema document.
//
// Anything else can satisfy reqcheck.Schema directly (or via
// reqcheck.SchemaFunc); nothing here is privileged.
package schema

import "net/url"

// normalize flattens the host framework's raw request shapes into plain JSON
// shapes both engines understand.
//
// Query parameters arrive as url.Values and path parameters as
// map[string]string; a single-valued query key becomes its one string, a
// multi-valued key becomes a []any of strings. Everything else passes through.
func normalize(raw any) any {
	switch values := raw.(type) {
	case url.Values:
		flat := make(map[string]any, len(values))
		for key, vals := range values {
			if len(vals) == 1 {
				flat[key] = vals[0]
				continue
			}
			multi := make([]any, len(vals))
			for i, v := range vals {
				multi[i] = v
			}
			flat[key] = multi
		}
		return flat

	case map[string]string:
		flat := make(map[string]any, len(values))
		for key, val := range values {
			flat[key] = val
		}
		return flat
	}

	return raw
}
