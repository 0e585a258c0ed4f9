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
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration document errors
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigParse   ErrorCode = "CONFIG_PARSE"
	ErrConfigVersion ErrorCode = "CONFIG_VERSION"

	// Packaged asset errors
	ErrAssetMissing ErrorCode = "ASSET_MISSING"
	ErrAssetCopy    ErrorCode = "ASSET_COPY"

	// Filesystem errors
	ErrFileRead  ErrorCode = "FILE_READ"
	ErrFileWrite ErrorCode = "FILE_WRITE"
	ErrDirCreate ErrorCode = "DIR_CREATE"
)

// AppkitError represents a structured error with code and details
type AppkitError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *AppkitError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *AppkitError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *AppkitError) Is(target error) bool {
	var targetErr *AppkitError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new AppkitError with the given code and message
func New(code ErrorCode, message string) *AppkitError {
	return &AppkitError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new AppkitError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *AppkitError {
	return &AppkitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an AppkitError
func Wrap(err error, code ErrorCode, message string) *AppkitError {
	if err == nil {
		return nil
	}
	return &AppkitError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *AppkitError {
	if err == nil {
		return nil
	}
	return &AppkitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *AppkitError) WithDetail(key string, value interface{}) *AppkitError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var kitErr *AppkitError
	if errors.As(err, &kitErr) {
		return kitErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an AppkitError
func GetErrorCode(err error) ErrorCode {
	var kitErr *AppkitError
	if errors.As(err, &kitErr) {
		return kitErr.Code
	}
	return ErrUnknown
}
