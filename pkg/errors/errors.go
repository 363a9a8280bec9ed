package errors

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Scan errors, always about the root of a scan
	ErrPathNotFound     ErrorCode = "PATH_NOT_FOUND"
	ErrNotADirectory    ErrorCode = "NOT_A_DIRECTORY"
	ErrPermissionDenied ErrorCode = "PERMISSION_DENIED"
	ErrIO               ErrorCode = "IO"

	// Pattern errors (--filter regex, .gitignore lines)
	ErrInvalidPattern ErrorCode = "INVALID_PATTERN"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
)

// XfError represents a structured error with code and details
type XfError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *XfError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *XfError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *XfError) Is(target error) bool {
	var targetErr *XfError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new XfError with the given code and message
func New(code ErrorCode, message string) *XfError {
	return &XfError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new XfError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *XfError {
	return &XfError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an XfError
func Wrap(err error, code ErrorCode, message string) *XfError {
	if err == nil {
		return nil
	}
	return &XfError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *XfError {
	if err == nil {
		return nil
	}
	return &XfError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// FromOS classifies an OS-level failure on path into PathNotFound,
// PermissionDenied or IO. The path is recorded as a detail.
func FromOS(err error, path string) error {
	if err == nil {
		return nil
	}
	code := ErrIO
	switch {
	case errors.Is(err, fs.ErrNotExist):
		code = ErrPathNotFound
	case errors.Is(err, fs.ErrPermission):
		code = ErrPermissionDenied
	}
	return Wrapf(err, code, "cannot access %s", path).WithDetail("path", path)
}

// WithDetail adds a detail to the error
func (e *XfError) WithDetail(key string, value interface{}) *XfError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *XfError) WithDetails(details map[string]interface{}) *XfError {
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
	var xfErr *XfError
	if errors.As(err, &xfErr) {
		return xfErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an XfError
func GetErrorCode(err error) ErrorCode {
	var xfErr *XfError
	if errors.As(err, &xfErr) {
		return xfErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an XfError
func GetErrorDetails(err error) map[string]interface{} {
	var xfErr *XfError
	if errors.As(err, &xfErr) {
		return xfErr.Details
	}
	return nil
}
