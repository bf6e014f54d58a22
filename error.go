package tweetsnap

import (
	"errors"
	"fmt"
)

// Application error codes. These map 1:1 to the failure classes callers care
// about; transport layers translate them to their own status codes.
const (
	EINVALID     = "invalid"     // validation failed on caller input
	ENOTFOUND    = "not_found"   // entity does not exist
	EINTERNAL    = "internal"    // internal error (storage, encoding)
	EUNAVAILABLE = "unavailable" // upstream service unreachable
)

// Error represents an application error with a machine-readable code and a
// human-readable message.
type Error struct {
	// Code identifies the error class. One of the E* constants.
	Code string

	// Message is a human-readable description safe to show to callers.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("tweetsnap error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode returns the code of the error, if available.
// Returns EINTERNAL for non-application errors and "" for nil.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	}
	if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the message of the error, if available.
// Returns a generic message for non-application errors and "" for nil.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	}
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf constructs an Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
