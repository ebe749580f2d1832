package types

import (
	"errors"
	"fmt"
)

// ErrorCode represents a namespaced error code for iTrade errors.
type ErrorCode string

// Configuration error codes
const (
	CONFIG_LOAD_FAILED       ErrorCode = "CONFIG_LOAD_FAILED"
	CONFIG_PARSE_FAILED      ErrorCode = "CONFIG_PARSE_FAILED"
	CONFIG_VALIDATION_FAILED ErrorCode = "CONFIG_VALIDATION_FAILED"
)

// Graph database error codes
const (
	GRAPH_INVALID_CONFIG    ErrorCode = "GRAPH_INVALID_CONFIG"
	GRAPH_CONNECTION_FAILED ErrorCode = "GRAPH_CONNECTION_FAILED"
	GRAPH_CONNECTION_CLOSED ErrorCode = "GRAPH_CONNECTION_CLOSED"
	GRAPH_QUERY_FAILED      ErrorCode = "GRAPH_QUERY_FAILED"
	GRAPH_WRITE_FAILED      ErrorCode = "GRAPH_WRITE_FAILED"
)

// Canonical store error codes
const (
	STORE_QUERY_FAILED   ErrorCode = "STORE_QUERY_FAILED"
	STORE_RESULT_INVALID ErrorCode = "STORE_RESULT_INVALID"
	STORE_SEED_FAILED    ErrorCode = "STORE_SEED_FAILED"
)

// ITradeError represents a structured error with error code, message, and
// optional cause. It supports error wrapping and retryability hints for
// error handling logic.
type ITradeError struct {
	Code      ErrorCode
	Message   string
	Retryable bool
	Cause     error
}

// Error implements the error interface, returning a formatted error message.
// Format: "[CODE] message" or "[CODE] message: cause" if cause exists.
func (e *ITradeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error for error unwrapping chains.
// This enables using errors.Is() and errors.As() with wrapped errors.
func (e *ITradeError) Unwrap() error {
	return e.Cause
}

// Is checks if the target error matches this error by error code.
// Returns true if target is an ITradeError with the same Code.
func (e *ITradeError) Is(target error) bool {
	var itErr *ITradeError
	if errors.As(target, &itErr) {
		return e.Code == itErr.Code
	}
	return false
}

// NewError creates a new non-retryable ITradeError with the given code and message.
func NewError(code ErrorCode, message string) *ITradeError {
	return &ITradeError{
		Code:      code,
		Message:   message,
		Retryable: false,
		Cause:     nil,
	}
}

// NewRetryableError creates a new retryable ITradeError with the given code and message.
// Use this for transient errors that may succeed on retry (e.g., network timeouts).
func NewRetryableError(code ErrorCode, message string) *ITradeError {
	return &ITradeError{
		Code:      code,
		Message:   message,
		Retryable: true,
		Cause:     nil,
	}
}

// WrapError creates a new non-retryable ITradeError that wraps an existing error.
// The wrapped error is accessible via Unwrap() for error chain inspection.
func WrapError(code ErrorCode, message string, cause error) *ITradeError {
	return &ITradeError{
		Code:      code,
		Message:   message,
		Retryable: false,
		Cause:     cause,
	}
}

// CodeOf extracts the ErrorCode from an error chain.
// Returns an empty code if the chain contains no ITradeError.
func CodeOf(err error) ErrorCode {
	var itErr *ITradeError
	if errors.As(err, &itErr) {
		return itErr.Code
	}
	return ""
}
