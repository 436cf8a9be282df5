package reqcheck

// FieldError represents a single field-level validation error.
// Example:
//
//	{ "field": "age", "message": "must be at least 18" }
type FieldError struct {
	// Field is the field name/path the error relates to (e.g. "email",
	// "/items/0/price" for JSON Schema failures, "body" for an undecodable body).
	Field string `json:"field"`

	// Message is the human-readable error message.
	Message string `json:"message"`
}

// Failure is the structured result of a failed schema parse.
//
// Errors is ordered and never empty: a Schema that rejects a value must report
// at least one FieldError, and the order is what the default responder relies
// on (it sends the first message only).
//
// A Failure is data, not a fault: the adapters consume it to build a response
// and never propagate it up the middleware chain as an error.
type Failure struct {
	Errors []FieldError `json:"errors"`
}

// NewFailure builds a Failure from one or more field errors.
func NewFailure(errs ...FieldError) *Failure {
	return &Failure{Errors: errs}
}

// Fail is a shorthand for a single-field Failure.
func Fail(field, message string) *Failure {
	return NewFailure(FieldError{Field: field, Message: message})
}

// First returns the first error message, or "" for a malformed empty Failure.
//
// The default responder sends exactly this string as the response body;
// callers that want the full list supply an ErrorHandler instead.
func (f *Failure) First() string {
	if f == nil || len(f.Errors) == 0 {
		return ""
	}
	return f.Errors[0].Message
}

// Error makes *Failure satisfy the built-in `error` interface so callers can
// log it or wrap it like any other error. It reports the first message.
func (f *Failure) Error() string {
	return f.First()
}
