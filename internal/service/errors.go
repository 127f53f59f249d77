package service

import "errors"

// Typed errors raised by the services. The API layer maps each to an HTTP
// status; nothing below this package decides status codes.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("not authorized to modify this resource")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("Invalid login details")
	ErrInvalidToken       = errors.New("invalid token")
)

// ValidationError reports a missing or malformed request field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with the given message.
func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
