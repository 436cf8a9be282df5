package reqcheck

import (
	"github.com/labstack/echo/v4"
)

// Decorator rewraps a handler with validation. It is built once, typically
// next to the route table or on a handler struct, and applied at registration
// time:
//
//	requireTodo := reqcheck.ValidateBody(todoSchema)
//
//	g.POST("/todos", requireTodo(h.CreateTodo))
//	g.PUT("/todos/:id", requireTodo(h.UpdateTodo))
//
// Decorating is pure sugar over the Check* functions: the wrapping happens
// once at definition time, not per request, and the decorated handler behaves
// exactly as if it had been passed to CheckBody/CheckParams/CheckQuery/Check
// directly.
//
// Known limitation: the decorated handler keeps the plain echo.HandlerFunc
// signature, so its parameter types are not narrowed to the validated type.
// The handler body re-asserts the type itself via BodyOf/ParamsOf/QueryOf.
type Decorator func(echo.HandlerFunc) echo.HandlerFunc

// ValidateBody returns a Decorator enforcing a body schema.
func ValidateBody(s Schema, opts ...Option) Decorator {
	return Validate(CheckSpec{Body: s}, opts...)
}

// ValidateParams returns a Decorator enforcing a path-parameter schema.
func ValidateParams(s Schema, opts ...Option) Decorator {
	return Validate(CheckSpec{Params: s}, opts...)
}

// ValidateQuery returns a Decorator enforcing a query-parameter schema.
func ValidateQuery(s Schema, opts ...Option) Decorator {
	return Validate(CheckSpec{Query: s}, opts...)
}

// Validate returns a Decorator enforcing any subset of {body, params, query}.
func Validate(spec CheckSpec, opts ...Option) Decorator {
	return func(handler echo.HandlerFunc) echo.HandlerFunc {
		return Check(spec, handler, opts...)
	}
}
