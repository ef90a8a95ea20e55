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

	// Configuration errors
	ErrConfigNotFound ErrorCode = "CONFIG_NOT_FOUND"
	ErrConfigRead     ErrorCode = "CONFIG_READ"
	ErrConfigParse    ErrorCode = "CONFIG_PARSE"
	ErrConfigValid    ErrorCode = "CONFIG_INVALID"

	// Dispatch errors
	ErrNoMatch        ErrorCode = "NO_MATCH"
	ErrCommandExecute ErrorCode = "COMMAND_EXECUTE"
)

// SeeError represents a structured error with code and details
type SeeError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SeeError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SeeError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *SeeError) Is(target error) bool {
	var targetErr *SeeError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SeeError with the given code and message
func New(code ErrorCode, message string) *SeeError {
	return &SeeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SeeError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SeeError {
	return &SeeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SeeError
func Wrap(err error, code ErrorCode, message string) *SeeError {
	if err == nil {
		return nil
	}
	return &SeeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SeeError {
	if err == nil {
		return nil
	}
	return &SeeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SeeError) WithDetail(key string, value interface{}) *SeeError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *SeeError) WithDetails(details map[string]interface{}) *SeeError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var seeErr *SeeError
	if errors.As(err, &seeErr) {
		return seeErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SeeError
func GetErrorCode(err error) ErrorCode {
	var seeErr *SeeError
	if errors.As(err, &seeErr) {
		return seeErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a SeeError
func GetErrorDetails(err error) map[string]interface{} {
	var seeErr *SeeError
	if errors.As(err, &seeErr) {
		return seeErr.Details
	}
	return nil
}
