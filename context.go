package reqcheck

import (
	"github.com/labstack/echo/v4"
)

const (
	// BodyKey is the Echo context key holding the schema-produced body value.
	BodyKey = "reqcheck_body"

	// ParamsKey is the Echo context key holding the schema-produced path params.
	ParamsKey = "reqcheck_params"

	// QueryKey is the Echo context key holding the schema-produced query params.
	QueryKey = "reqcheck_query"
)

// BodyOf retrieves the validated body value stored by a body-checking adapter.
//
// T must match the type the schema's Parse produced (for schema.Struct[T] that
// is *T). The boolean reports whether a value of that type was present, so the
// usual comma-ok pattern applies:
//
//	req, ok := reqcheck.BodyOf[*CreateTodoRequest](c)
//
// The raw request body is untouched; this is the narrowed view of it.
func BodyOf[T any](c echo.Context) (T, bool) {
	return valueOf[T](c, BodyKey)
}

// ParamsOf retrieves the validated path-parameter value.
func ParamsOf[T any](c echo.Context) (T, bool) {
	return valueOf[T](c, ParamsKey)
}

// QueryOf retrieves the validated query-parameter value.
func QueryOf[T any](c echo.Context) (T, bool) {
	return valueOf[T](c, QueryKey)
}

func valueOf[T any](c echo.Context, key string) (T, bool) {
	value, ok := c.Get(key).(T)
	return value, ok
}
