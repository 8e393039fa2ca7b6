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
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Markup errors
	ErrMalformedTag    ErrorCode = "MALFORMED_TAG"
	ErrBracketMismatch ErrorCode = "BRACKET_MISMATCH"

	// Prompt errors
	ErrPromptRead   ErrorCode = "PROMPT_READ"
	ErrPromptConfig ErrorCode = "PROMPT_CONFIG"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
)

// FancyError represents a structured error with code and details
type FancyError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *FancyError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *FancyError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *FancyError) Is(target error) bool {
	var targetErr *FancyError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new FancyError with the given code and message
func New(code ErrorCode, message string) *FancyError {
	return &FancyError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new FancyError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *FancyError {
	return &FancyError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a FancyError
func Wrap(err error, code ErrorCode, message string) *FancyError {
	if err == nil {
		return nil
	}
	return &FancyError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *FancyError {
	if err == nil {
		return nil
	}
	return &FancyError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *FancyError) WithDetail(key string, value interface{}) *FancyError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var fancyErr *FancyError
	if errors.As(err, &fancyErr) {
		return fancyErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a FancyError
func GetErrorCode(err error) ErrorCode {
	var fancyErr *FancyError
	if errors.As(err, &fancyErr) {
		return fancyErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a FancyError
func GetErrorDetails(err error) map[string]interface{} {
	var fancyErr *FancyError
	if errors.As(err, &fancyErr) {
		return fancyErr.Details
	}
	return nil
}
