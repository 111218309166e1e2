// Package fault defines the structured failure taxonomy shared by the
// domain packages. Business-rule failures carry a Code that survives
// wrapping, so callers can branch on the class of failure without string
// matching.
package fault

import (
	"errors"
	"fmt"
)

// Code classifies a domain failure.
type Code string

const (
	// CodeMissingData indicates a required input was absent.
	CodeMissingData Code = "MISSING_DATA"
	// CodeInvalidState indicates a business-rule violation.
	CodeInvalidState Code = "INVALID_STATE"
	// CodeConcurrency indicates an optimistic version check failed. The
	// caller must re-read current state and retry; the write was rejected.
	CodeConcurrency Code = "CONCURRENCY_ERROR"
	// CodeContractViolation indicates a value-construction invariant was
	// violated before the value ever existed.
	CodeContractViolation Code = "CONTRACT_VIOLATION"
	// CodeUnknown is returned by CodeOf for errors outside the taxonomy.
	CodeUnknown Code = "UNKNOWN_ERROR"
)

// Error is a classified domain failure.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Missing returns a MISSING_DATA failure.
func Missing(format string, args ...any) *Error {
	return &Error{Code: CodeMissingData, Message: fmt.Sprintf(format, args...)}
}

// Invalid returns an INVALID_STATE failure.
func Invalid(format string, args ...any) *Error {
	return &Error{Code: CodeInvalidState, Message: fmt.Sprintf(format, args...)}
}

// Concurrency returns a CONCURRENCY_ERROR failure.
func Concurrency(format string, args ...any) *Error {
	return &Error{Code: CodeConcurrency, Message: fmt.Sprintf(format, args...)}
}

// Contract returns a CONTRACT_VIOLATION failure.
func Contract(format string, args ...any) *Error {
	return &Error{Code: CodeContractViolation, Message: fmt.Sprintf(format, args...)}
}

// CodeOf returns the failure code of err, walking wrapped chains.
// Errors outside the taxonomy report CodeUnknown.
func CodeOf(err error) Code {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return CodeUnknown
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}
