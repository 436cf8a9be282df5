package reqcheck

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/labstack/echo/v4"
)

// CheckBody wraps handler so it only runs when the request body parses
// against s. See Check for the failure behavior.
func CheckBody(s Schema, handler echo.HandlerFunc, opts ...Option) echo.HandlerFunc {
	return Check(CheckSpec{Body: s}, handler, opts...)
}

// CheckParams wraps handler so it only runs when the path parameters parse
// against s.
//
// Path parameters always reach the schema as raw text (map[string]string):
// Echo never produces typed parameters, so any string-to-number coercion must be
// expressed in the schema itself.
func CheckParams(s Schema, handler echo.HandlerFunc, opts ...Option) echo.HandlerFunc {
	return Check(CheckSpec{Params: s}, handler, opts...)
}

// CheckQuery wraps handler so it only runs when the query parameters parse
// against s. The schema receives the raw url.Values (text, possibly
// multi-valued).
func CheckQuery(s Schema, handler echo.HandlerFunc, opts ...Option) echo.HandlerFunc {
	return Check(CheckSpec{Query: s}, handler, opts...)
}

// Check wraps handler with validation of every part spec names.
//
// Per request, the designated parts are checked in a fixed order: body, then
// params, then query. The first failure short-circuits (later parts are not
// evaluated) and exactly one of two things happens:
//
//   - all designated parts parse: the schema-produced values are stored on the
//     context (see BodyOf/ParamsOf/QueryOf) and handler runs with the original
//     request/response pair.
//   - some part fails: the failure response is emitted (default: plain text,
//     status Options.ErrorCode, body = first error message; or the configured
//     ErrorHandler runs) and handler is never invoked.
//
// Never both, never neither. A zero spec validates nothing and invokes handler
// unconditionally.
//
// NOTE: the body-params-query order is load-bearing only as a tie-break: a
// request invalid in several parts always reports the earliest part's error.
// There is no deeper rationale to it; it is preserved for compatibility.
func Check(spec CheckSpec, handler echo.HandlerFunc, opts ...Option) echo.HandlerFunc {
	options := buildOptions(opts)
	return func(c echo.Context) error {
		ok, err := runChecks(c, spec, options)
		if !ok {
			return err
		}
		return handler(c)
	}
}

// partCheck pairs one request part with its schema and raw-value extractor.
type partCheck struct {
	name       string
	schema     Schema
	contextKey string
	extract    func(echo.Context) (any, *Failure)
}

// runChecks is the single validation pipeline behind every adapter shape.
//
// It returns (true, nil) when all designated parts parsed, with the parsed
// values already stored on the context. It returns (false, err) after a
// failure response has been emitted; err is the response-write error, if any.
func runChecks(c echo.Context, spec CheckSpec, options Options) (bool, error) {
	checks := []partCheck{
		{name: "body", schema: spec.Body, contextKey: BodyKey, extract: bodyValue},
		{name: "params", schema: spec.Params, contextKey: ParamsKey, extract: paramsValue},
		{name: "query", schema: spec.Query, contextKey: QueryKey, extract: queryValue},
	}

	for _, check := range checks {
		// Absent schema: the part passes through unchecked.
		if check.schema == nil {
			continue
		}

		raw, failure := check.extract(c)
		if failure == nil {
			var parsed any
			parsed, failure = check.schema.Parse(raw)
			if failure == nil {
				c.Set(check.contextKey, parsed)
				continue
			}
		}

		if options.Logger != nil {
			options.Logger.Error().
				Str("part", check.name).
				Str("field", failure.Errors[0].Field).
				Err(failure).
				Msg("request validation failed")
		}

		// ErrorHandler owns the entire response; ErrorCode does not apply.
		if options.ErrorHandler != nil {
			options.ErrorHandler(c, failure)
			return false, nil
		}

		return false, c.String(options.ErrorCode, failure.First())
	}

	return true, nil
}

// bodyValue reads and JSON-decodes the request body.
//
// The consumed body is restored on the request so downstream code that wants
// the raw bytes still gets them; the adapter narrows the request, it does not
// mutate it. An empty body yields nil; an undecodable one yields a Failure
// (garbage input is request data, not a fault).
func bodyValue(c echo.Context) (any, *Failure) {
	data, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, Fail("body", "failed to read request body")
	}
	c.Request().Body = io.NopCloser(bytes.NewReader(data))

	if len(data) == 0 {
		return nil, nil
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, Fail("body", "request body is not valid JSON")
	}
	return raw, nil
}

// paramsValue collects the route's path parameters as raw text.
func paramsValue(c echo.Context) (any, *Failure) {
	params := make(map[string]string, len(c.ParamNames()))
	for i, name := range c.ParamNames() {
		params[name] = c.ParamValues()[i]
	}
	return params, nil
}

// queryValue hands the query string through untouched (url.Values);
// multi-valued keys are the schema's business.
func queryValue(c echo.Context) (any, *Failure) {
	return c.QueryParams(), nil
}
