// Package middleware exposes reqcheck's validation as Echo middleware.
//
// These gates run the exact same validation pipeline as the reqcheck wrapping
// functions; the only difference is the success continuation: instead of
// invoking a handler they let the request continue down the chain:
//
//	g := e.Group("/todos")
//	g.Use(middleware.Params(idSchema))
//	g.GET("/:id", h.GetTodo)
//
// On failure the behavior is identical to the core adapter: the configured
// error response is emitted and nothing past the gate runs.
package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/reqcheck"
)

// Body returns a middleware gate that validates the request body against s.
func Body(s reqcheck.Schema, opts ...reqcheck.Option) echo.MiddlewareFunc {
	return Check(reqcheck.CheckSpec{Body: s}, opts...)
}

// Params returns a middleware gate that validates the path parameters.
func Params(s reqcheck.Schema, opts ...reqcheck.Option) echo.MiddlewareFunc {
	return Check(reqcheck.CheckSpec{Params: s}, opts...)
}

// Query returns a middleware gate that validates the query parameters.
func Query(s reqcheck.Schema, opts ...reqcheck.Option) echo.MiddlewareFunc {
	return Check(reqcheck.CheckSpec{Query: s}, opts...)
}

// Check returns a middleware gate validating any subset of
// {body, params, query}.
//
// It delegates to reqcheck.Check with next as the wrapped handler, so success
// continues the chain and failure short-circuits it with the same ordering and
// error emission rules.
func Check(spec reqcheck.CheckSpec, opts ...reqcheck.Option) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return reqcheck.Check(spec, next, opts...)
	}
}
