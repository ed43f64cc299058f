package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode classifies an AppError
type ErrorCode int

// System errors (1000-1999)
const (
	ErrInternal ErrorCode = 1000 + iota
	ErrTimeout
)

// Request errors (3000-3999)
const (
	ErrBadRequest ErrorCode = 3000 + iota
	ErrValidation
	ErrResourceNotFound
)

// Remote API errors (5000-5999)
const (
	ErrNetwork ErrorCode = 5000 + iota
	ErrRemoteStatus
	ErrDecode
)

// AppError is the error type returned across package boundaries.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error
func Wrap(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// GetErrorCode returns the code of the first AppError in err's chain,
// or ErrInternal.
func GetErrorCode(err error) ErrorCode {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrInternal
}

// IsAppError reports whether err's chain contains an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// Is reports whether err carries the given code.
func Is(err error, code ErrorCode) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr) && appErr.Code == code
}
