package constraint

import (
	"errors"
	"fmt"
)

// Error is a deliberate validation-domain failure raised by a collaborator:
// a malformed message expression, a misconfigured resolver, broken metadata.
// Errors of this kind cross every adapter boundary unchanged and abort the
// current validation call.
type Error struct {
	Code    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// NewError creates a validation-domain failure with the given code and
// message.
func NewError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// IsDomainError reports whether err is (or wraps) a validation-domain
// failure.
func IsDomainError(err error) bool {
	var e *Error
	return errors.As(err, &e)
}
