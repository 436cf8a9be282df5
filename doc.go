// Package reqcheck wraps Echo handlers with schema validation of the request
// body, path parameters, and query parameters.
//
// It removes the bind-and-validate boilerplate from endpoint code: a wrapped
// handler only runs once every designated request part has parsed successfully
// against its schema, and a failed part short-circuits into a structured error
// response instead.
//
// The same validation logic is exposed in three equivalent shapes:
//
//   - Direct wrapping: CheckBody / CheckParams / CheckQuery / Check produce an
//     echo.HandlerFunc from a schema and a handler.
//   - Middleware: the middleware subpackage produces echo.MiddlewareFunc gates
//     that call next(c) on success.
//   - Decorators: ValidateBody / ValidateParams / ValidateQuery / Validate
//     produce reusable handler wrappers applied at route-registration time.
//
// Schemas are an abstract capability (see Schema); the schema subpackage ships
// implementations backed by go-playground/validator struct tags and by JSON
// Schema documents.
package reqcheck
