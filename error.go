package docset

import (
	"errors"
	"fmt"
	"time"
)

// Application error codes. These map roughly onto HTTP semantics but are
// transport-agnostic; implementations translate their own failures into
// one of these codes.
const (
	EINVALID     = "invalid"
	ENOTFOUND    = "not_found"
	ERATELIMITED = "rate_limited"
	EUNAVAILABLE = "unavailable"
	EINTERNAL    = "internal"
)

// Error represents an application error with a machine-readable code.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable message.
	Message string

	// RetryAfter carries the server-requested pause for ERATELIMITED
	// errors. Zero means the server did not specify one.
	RetryAfter time.Duration
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("docset error: code=%s message=%s", e.Code, e.Message)
}

// Errorf returns a new Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps err and returns its code.
// Returns EINTERNAL for non-application errors and "" for nil.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps err and returns its message.
// Non-application errors report a generic message so internal details
// don't leak into user-facing output.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// RetryAfter unwraps err and returns the server-requested pause for
// rate-limit errors. The bool result is false when err is not a
// rate-limit error.
func RetryAfter(err error) (time.Duration, bool) {
	var e *Error
	if errors.As(err, &e) && e.Code == ERATELIMITED {
		return e.RetryAfter, true
	}
	return 0, false
}
