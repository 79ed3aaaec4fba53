package account

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes credential failures.
type ErrorCode string

const (
	// CodeDuplicateEmail indicates a registration with an already-used email.
	CodeDuplicateEmail ErrorCode = "DUPLICATE_EMAIL"

	// CodeInvalidCredentials indicates a login where no stored entry
	// matches both email and password exactly.
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
)

// Error is a credential failure with a structured code.
//
// These are validation errors in the application's taxonomy: surfaced to
// the user as-is, no retry, no state change.
type Error struct {
	Code    ErrorCode
	Message string
	Email   string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Email != "" {
		return fmt.Sprintf("%s: %s (email=%s)", e.Code, e.Message, e.Email)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsDuplicateEmail reports whether err is a duplicate-email registration
// failure. Uses errors.As to handle wrapped errors.
func IsDuplicateEmail(err error) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Code == CodeDuplicateEmail
}

// IsInvalidCredentials reports whether err is a credential mismatch.
// Uses errors.As to handle wrapped errors.
func IsInvalidCredentials(err error) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Code == CodeInvalidCredentials
}
