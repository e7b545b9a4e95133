package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"
	ErrUsage    ErrorCode = "USAGE"
	ErrNotFound ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Index errors
	ErrIndexLoad    ErrorCode = "INDEX_LOAD"
	ErrIndexParse   ErrorCode = "INDEX_PARSE"
	ErrIndexInvalid ErrorCode = "INDEX_INVALID"

	// Output errors
	ErrSexpParse ErrorCode = "SEXP_PARSE"
)

// Process exit codes
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitNotFound = 2
)

// SymdexError represents a structured error with code and details
type SymdexError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SymdexError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SymdexError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *SymdexError) Is(target error) bool {
	var targetErr *SymdexError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SymdexError with the given code and message
func New(code ErrorCode, message string) *SymdexError {
	return &SymdexError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SymdexError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SymdexError {
	return &SymdexError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SymdexError
func Wrap(err error, code ErrorCode, message string) *SymdexError {
	if err == nil {
		return nil
	}
	return &SymdexError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SymdexError {
	if err == nil {
		return nil
	}
	return &SymdexError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SymdexError) WithDetail(key string, value interface{}) *SymdexError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var symErr *SymdexError
	if errors.As(err, &symErr) {
		return symErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SymdexError
func GetErrorCode(err error) ErrorCode {
	var symErr *SymdexError
	if errors.As(err, &symErr) {
		return symErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a SymdexError
func GetErrorDetails(err error) map[string]interface{} {
	var symErr *SymdexError
	if errors.As(err, &symErr) {
		return symErr.Details
	}
	return nil
}

// ExitCode maps an error onto the process exit status. Lookups that found
// nothing exit with ExitNotFound; every other failure is ExitFailure.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if IsErrorCode(err, ErrNotFound) {
		return ExitNotFound
	}
	return ExitFailure
}
