package types

import (
	"errors"
	"fmt"
)

var (
	ErrNotLoggedIn      = errors.New("not logged in")
	ErrCarNotFound      = errors.New("car not found")
	ErrCarNotAvailable  = errors.New("car not available")
	ErrInvalidDateRange = errors.New("drop-off date must be after pick-up date")
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
	ErrEmptyReviewText  = errors.New("review text must not be empty")
	ErrUserNotFound     = errors.New("user not found")
	ErrNotFound         = errors.New("requested item not found")
)

// RequestError represents a failed call to the rental REST API.
// Status 0 means the request never produced an HTTP response
// (transport failure, timeout, open circuit breaker).
type RequestError struct {
	Status  int
	Message string
	Err     error
}

func (e *RequestError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("rental api: %s", e.Message)
	}
	return fmt.Sprintf("rental api: status %d: %s", e.Status, e.Message)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// IsTransport reports whether the call failed before an HTTP status was
// received.
func (e *RequestError) IsTransport() bool {
	return e.Status == 0
}
