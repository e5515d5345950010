package domain

import (
	"errors"
	"strings"
)

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInternalServer     = errors.New("internal server error")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
)

// Entity errors
var (
	ErrAdminNotFound    = errors.New("admin not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrGenreNotFound    = errors.New("genre not found")
	ErrMovieNotFound    = errors.New("movie not found")
	ErrReviewNotFound   = errors.New("review not found")
	ErrEmailTaken       = errors.New("email already registered")
)

// ValidationError carries every violated field constraint, never just the
// first one.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}

// NewValidationError builds a ValidationError from a violation list
func NewValidationError(violations []string) *ValidationError {
	return &ValidationError{Violations: violations}
}

// AsValidationError unwraps err into a *ValidationError if it is one
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
