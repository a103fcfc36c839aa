package sgsclient

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound matches any APIError with status 404.
	ErrNotFound = errors.New("sgs: resource not found")
	// ErrUnauthorized matches any APIError with status 401 or 403.
	ErrUnauthorized = errors.New("sgs: unauthorized")
)

// APIError is returned for every non-2xx gateway response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("sgs: status %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	}
	return false
}
