package services

import "errors"

// ValidationError marks a caller mistake (missing or malformed field).
// Controllers map it to a 400 response; anything else from a service is
// treated as a server error and never shown to the caller verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ErrInvalidCredentials is returned for both unknown usernames and wrong
// passwords so the two cases cannot be told apart by a caller.
var ErrInvalidCredentials = errors.New("invalid credentials")
