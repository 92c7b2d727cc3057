package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for validation failures
var (
	// ErrEmptyQuery indicates the search text is empty or whitespace
	ErrEmptyQuery = errors.New("search text is empty")

	// ErrQueryTooLong indicates the search text exceeds MaxQueryLength
	ErrQueryTooLong = fmt.Errorf("search text exceeds %d characters", MaxQueryLength)
)

// ConfigurationError indicates a required setting is missing.
// It is not recoverable without changing the configuration.
type ConfigurationError struct {
	Setting string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s is not set", e.Setting)
}

// TransportError indicates the HTTP round trip did not succeed.
// StatusCode is zero when no response was received.
type TransportError struct {
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("transport error: %v", e.Err)
	}
	return fmt.Sprintf("transport error: unexpected status code %d", e.StatusCode)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// UpstreamError carries a failure reported by the title database itself,
// e.g. "Movie not found!" or "Invalid API key!"
type UpstreamError struct {
	Message string
}

func (e *UpstreamError) Error() string {
	return e.Message
}

// ValidationError rejects user input before any request is issued
type ValidationError struct {
	Reason error // ErrEmptyQuery or ErrQueryTooLong
}

func (e *ValidationError) Error() string {
	return "invalid search: " + e.Reason.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Reason
}
