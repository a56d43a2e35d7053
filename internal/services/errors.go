package services

import (
	"errors"
	"fmt"
)

// Service-level errors. Repository sentinels (not found, duplicate) pass
// through untouched; these cover the failures that originate here.
var (
	// ErrInvalidInput is returned for malformed, missing or out-of-range input
	ErrInvalidInput = errors.New("invalid input")

	// ErrBadCredentials is returned when login credentials do not match.
	// Unknown email and wrong password are deliberately indistinguishable.
	ErrBadCredentials = errors.New("invalid credentials")
)

// invalidInput wraps ErrInvalidInput with a caller-facing message
func invalidInput(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// IsInvalidInput checks if an error is a validation error
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
