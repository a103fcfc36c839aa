package errors

import "net/http"

// ValidationError reports a rejected request field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewValidationError creates a ValidationError for field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ErrBadRequest is the generic response for malformed bodies.
var ErrBadRequest = NewHTTPError(http.StatusBadRequest, "Bad request")
