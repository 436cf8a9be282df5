package reqcheck

// Schema is the validation capability the adapters are built on.
//
// Parse attempts to turn a raw request value into a typed one:
//   - success: return the typed value (which may be the input itself, or a
//     coerced/narrowed replacement) and a nil Failure.
//   - failure: return a non-nil *Failure with an ordered, non-empty error list.
//     The returned value is ignored in that case.
//
// Parse must treat rejection as a normal result, never as a panic: a request
// carrying garbage is an everyday event, not a fault. Implementations that can
// be misconfigured (e.g. a compiled JSON Schema) should surface that at
// construction time instead.
//
// The raw value Parse receives depends on the request part:
//   - body: the JSON-decoded body (any), or nil for an empty body
//   - path params: map[string]string (always raw text; any string-to-number
//     coercion is the schema's job, Echo never produces typed parameters)
//   - query params: url.Values (raw text, possibly multi-valued)
type Schema interface {
	Parse(raw any) (any, *Failure)
}

// SchemaFunc adapts a plain function to the Schema interface.
type SchemaFunc func(raw any) (any, *Failure)

// Parse implements Schema.
func (f SchemaFunc) Parse(raw any) (any, *Failure) {
	return f(raw)
}

// CheckSpec selects which request parts to validate and with what.
//
// A nil field means "do not validate this part": Check with a zero CheckSpec
// invokes the handler unconditionally. The parts are independent; validating
// the body never requires validating params or query.
type CheckSpec struct {
	// Body validates the JSON-decoded request body.
	Body Schema

	// Params validates the path parameters (map[string]string).
	Params Schema

	// Query validates the query parameters (url.Values).
	Query Schema
}
