// Package apperr defines the error taxonomy shared by the resolver layers and the
// service boundary.
package apperr

import (
	"errors"
	"fmt"
)

// Code classifies an error for control flow and for status mapping at the HTTP edge.
type Code string

const (
	// CodeInvalidInput is the only code that is ever returned to the boundary layer.
	CodeInvalidInput        Code = "INVALID_INPUT"
	CodeUpstreamUnavailable Code = "UPSTREAM_UNAVAILABLE"
	CodeDegradedAnswer      Code = "DEGRADED_ANSWER"
	CodeUnexpected          Code = "UNEXPECTED"
)

// Error is a classified application error.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error carrying the same code, so sentinels like ErrInvalidInput
// work with errors.Is regardless of message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

var ErrInvalidInput = &Error{Code: CodeInvalidInput, Message: "No question provided."}

func InvalidInput(message string) *Error {
	return &Error{Code: CodeInvalidInput, Message: message}
}

func UpstreamUnavailable(source string, err error) *Error {
	return &Error{
		Code:    CodeUpstreamUnavailable,
		Message: fmt.Sprintf("%s unavailable", source),
		Err:     err,
	}
}

func Unexpected(err error) *Error {
	return &Error{Code: CodeUnexpected, Message: "unexpected failure", Err: err}
}

// CodeOf returns the code of the first *Error in err's chain, or CodeUnexpected.
func CodeOf(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnexpected
}

func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
