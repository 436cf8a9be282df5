package reqcheck

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// DefaultErrorCode is the HTTP status sent for a validation failure when no
// WithErrorCode option is given.
const DefaultErrorCode = 406

// ErrorHandler builds the failure response itself, instead of the default
// terse one. When set it is fully responsible for the response: the adapter
// sets no status and writes no body on its own, and ErrorCode is ignored.
type ErrorHandler func(c echo.Context, failure *Failure)

// Options configures how a validation failure is reported.
//
// The zero value is what you get with no Option arguments:
// status DefaultErrorCode, body = first error message, no logging.
type Options struct {
	// ErrorCode is the HTTP status of the default failure response.
	ErrorCode int

	// ErrorHandler, when non-nil, replaces default failure emission entirely.
	ErrorHandler ErrorHandler

	// Logger, when non-nil, gets one error event per failed validation.
	// The success path is never logged.
	Logger *zerolog.Logger
}

// Option mutates Options. Every adapter operation accepts a trailing ...Option.
type Option func(*Options)

// WithErrorCode sets the HTTP status used by the default failure response.
// It has no effect when an ErrorHandler is also set.
func WithErrorCode(code int) Option {
	return func(o *Options) {
		o.ErrorCode = code
	}
}

// WithErrorHandler delegates failure responses to fn.
func WithErrorHandler(fn ErrorHandler) Option {
	return func(o *Options) {
		o.ErrorHandler = fn
	}
}

// WithLogger enables structured logging of validation failures.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// buildOptions applies opts over the documented defaults.
func buildOptions(opts []Option) Options {
	options := Options{
		ErrorCode: DefaultErrorCode,
	}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}
