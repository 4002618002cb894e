package core

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a class of failure so callers and tests do not have to
// match on message text.
type ErrorCode string

const (
	ErrUnknown        ErrorCode = "UNKNOWN"
	ErrMalformedInput ErrorCode = "MALFORMED_INPUT"
	ErrReadFailed     ErrorCode = "READ_FAILED"
	ErrBackupFailed   ErrorCode = "BACKUP_FAILED"
	ErrWriteFailed    ErrorCode = "WRITE_FAILED"
	ErrSteamNotFound  ErrorCode = "STEAM_NOT_FOUND"
	ErrConfigLoad     ErrorCode = "CONFIG_LOAD"
)

// ReconcileError is a failure tied to one record file (or to the run as a
// whole when Path is empty).
type ReconcileError struct {
	Code    ErrorCode
	Message string
	Path    string
	Details map[string]interface{}
	Wrapped error
}

func (e *ReconcileError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Path != "" {
		msg += " - " + e.Path
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

func (e *ReconcileError) Unwrap() error {
	return e.Wrapped
}

// Is matches another ReconcileError with the same code.
func (e *ReconcileError) Is(target error) bool {
	var t *ReconcileError
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

func (e *ReconcileError) WithDetail(key string, value interface{}) *ReconcileError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

func NewError(code ErrorCode, path string, format string, args ...interface{}) *ReconcileError {
	return &ReconcileError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Path:    path,
	}
}

// WrapError wraps err with a code. A nil err gives a nil *ReconcileError,
// which is not a nil error once stored in an error variable, so check err
// before wrapping.
func WrapError(err error, code ErrorCode, path string, format string, args ...interface{}) *ReconcileError {
	if err == nil {
		return nil
	}
	e := NewError(code, path, format, args...)
	e.Wrapped = err
	return e
}

func IsErrorCode(err error, code ErrorCode) bool {
	var e *ReconcileError
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

func GetErrorCode(err error) ErrorCode {
	var e *ReconcileError
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrUnknown
}

func GetErrorDetails(err error) map[string]interface{} {
	var e *ReconcileError
	if errors.As(err, &e) {
		return e.Details
	}
	return nil
}
