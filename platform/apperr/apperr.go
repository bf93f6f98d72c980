// Package apperr provides standardized domain error types for the application.
// Domain services return these typed errors, and the HTTP layer maps them to
// the response envelope (and, where applicable, an HTTP status code).
package apperr

import (
	"fmt"
	"net/http"
)

// Kind represents the category of error.
type Kind int

const (
	// KindUnknown is the default error kind when none is specified.
	KindUnknown Kind = iota
	// KindInvalidInput indicates input that is neither VIN-shaped nor
	// engine-code-shaped.
	KindInvalidInput
	// KindInvalidVin indicates a candidate that fails VIN format rules.
	KindInvalidVin
	// KindUnknownEngineCode indicates an engine code absent from the
	// knowledge base.
	KindUnknownEngineCode
	// KindDecodeUnavailable indicates the VIN decode service could not be
	// reached or timed out.
	KindDecodeUnavailable
	// KindDecodeEmpty indicates the decode service answered but yielded no
	// usable fields.
	KindDecodeEmpty
	// KindNotFound indicates a resource was not found.
	KindNotFound
	// KindBadRequest indicates a malformed or invalid request.
	KindBadRequest
	// KindInternal indicates an unexpected internal error.
	KindInternal
)

// Error is a domain error with a typed Kind and an optional user-facing
// suggestion (e.g. example engine codes the caller could try).
type Error struct {
	Kind       Kind
	Message    string
	Suggestion string
	Op         string // Operation that failed (optional)
	Err        error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the appropriate HTTP status code for this error kind.
// Most lookup outcomes are reported as 200 with a success flag; this mapping
// is used by the REST-style engine endpoint and the generic fallback.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindNotFound, KindUnknownEngineCode:
		return http.StatusNotFound
	case KindInvalidInput, KindInvalidVin, KindBadRequest:
		return http.StatusBadRequest
	case KindDecodeUnavailable:
		return http.StatusBadGateway
	case KindDecodeEmpty:
		return http.StatusNotFound
	case KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// New creates a new domain error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates a new domain error wrapping an existing error.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// WithOp returns the error with the operation set.
func (e *Error) WithOp(op string) *Error {
	e.Op = op
	return e
}

// WithSuggestion returns the error with a user-facing suggestion attached.
func (e *Error) WithSuggestion(suggestion string) *Error {
	e.Suggestion = suggestion
	return e
}

// Convenience constructors for common error types.

// InvalidInput creates an invalid-input-format error.
func InvalidInput(message string) *Error {
	return New(KindInvalidInput, message)
}

// InvalidVin creates an invalid-VIN error.
func InvalidVin(message string) *Error {
	return New(KindInvalidVin, message)
}

// UnknownEngineCode creates an unknown-engine-code error.
func UnknownEngineCode(message string) *Error {
	return New(KindUnknownEngineCode, message)
}

// DecodeUnavailable creates a decode-service-unavailable error.
func DecodeUnavailable(message string, err error) *Error {
	return Wrap(KindDecodeUnavailable, message, err)
}

// DecodeEmpty creates a decode-service-empty error.
func DecodeEmpty(message string) *Error {
	return New(KindDecodeEmpty, message)
}

// NotFound creates a not found error.
func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

// BadRequest creates a bad request error.
func BadRequest(message string) *Error {
	return New(KindBadRequest, message)
}

// Internal creates an internal server error.
func Internal(message string) *Error {
	return New(KindInternal, message)
}

// GetKind extracts the error kind from an error.
// Returns KindUnknown if the error is not an *Error.
func GetKind(err error) Kind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return KindUnknown
}

// GetSuggestion extracts the suggestion from an error, if any.
func GetSuggestion(err error) string {
	if e, ok := err.(*Error); ok {
		return e.Suggestion
	}
	return ""
}

// Is checks if err is an *Error with the given kind.
func Is(err error, kind Kind) bool {
	return GetKind(err) == kind
}
