package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Authentication errors
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("session token expired")
	ErrTokenInvalid       = errors.New("invalid session token")

	// Authorization errors
	ErrAdminRequired = errors.New("admin access required")
	ErrRoleRequired  = errors.New("insufficient role for this operation")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Student record errors
var (
	ErrStudentNotFound = errors.New("student not found")
	ErrStudentIDExists = errors.New("student ID already exists")
)

// User errors
var (
	ErrUserNotFound = errors.New("user not found")
)

// MissingFieldError reports the first required field absent from a create request.
// Field names follow the JSON payload, not the database columns.
type MissingFieldError struct {
	Field string
}

// Error implements the error interface
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// NewMissingFieldError creates a MissingFieldError for the given field
func NewMissingFieldError(field string) error {
	return &MissingFieldError{Field: field}
}

// IsMissingField reports whether err is a MissingFieldError and returns the field name
func IsMissingField(err error) (string, bool) {
	var mfe *MissingFieldError
	if errors.As(err, &mfe) {
		return mfe.Field, true
	}
	return "", false
}
