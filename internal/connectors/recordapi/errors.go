package recordapi

import (
	"errors"
	"fmt"
)

// Record API errors.
var (
	// ErrNoBaseURL indicates the client was constructed without a base URL.
	ErrNoBaseURL = errors.New("recordapi: base URL not configured")

	// ErrEmptyPatientID indicates a patient fetch with an empty id.
	ErrEmptyPatientID = errors.New("recordapi: patient id is empty")
)

// APIError represents a non-2xx record API response.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("recordapi: API error %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// IsNotFound checks if the error indicates a resource was not found.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 404
	}
	return false
}

// IsServerError checks if the error indicates an upstream server failure.
func IsServerError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500
	}
	return false
}
