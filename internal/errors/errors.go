// Package errors provides the coded error values returned across the
// rendering core.
//
// Nothing in the core panics or throws across a package boundary: layout
// faults and drawlist build faults are returned as *Error values carrying a
// machine-readable Code plus free-text detail.
//
// # Error Codes
//
//   - INVALID_PROPS: a node carries a structurally invalid property combination
//   - DL_*: drawlist build faults (limits, builder misuse, format)
//   - RECORD_IO, CONFIG_INVALID: recorder and configuration faults
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidProps, "gap must be >= 0, got %d", gap)
//	if errors.Is(err, errors.ErrCodeInvalidProps) {
//	    // discard the frame
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

const (
	// Layout faults
	ErrCodeInvalidProps Code = "INVALID_PROPS"

	// Drawlist build faults
	ErrCodeLimit        Code = "DL_LIMIT"
	ErrCodeInvalidState Code = "DL_INVALID_STATE"
	ErrCodeUnsupported  Code = "DL_UNSUPPORTED"
	ErrCodeFormat       Code = "DL_FORMAT"
	ErrCodeSink         Code = "DL_SINK"

	// Recorder and configuration faults
	ErrCodeRecordIO      Code = "RECORD_IO"
	ErrCodeConfigInvalid Code = "CONFIG_INVALID"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable detail
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
