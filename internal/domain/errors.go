package domain

import "errors"

// Client-facing validation and capacity errors. Their messages are returned
// verbatim in the response body, so they are written as user-visible strings.
var (
	ErrInvalidJSON        = errors.New("Invalid JSON payload")
	ErrInvalidFormat      = errors.New("Invalid payload format")
	ErrMissingFields      = errors.New("Missing required fields")
	ErrSignupLimitReached = errors.New("Signup limit reached")
)

// ErrNotFound is returned by stores when no record matches.
var ErrNotFound = errors.New("not found")

// ErrInvalidCheckinPayload is returned when a scanned QR payload cannot be
// parsed or fails signature verification.
var ErrInvalidCheckinPayload = errors.New("invalid check-in payload")

// IsValidationError reports whether err is one of the payload validation
// failures that map to a 400 response.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidJSON) ||
		errors.Is(err, ErrInvalidFormat) ||
		errors.Is(err, ErrMissingFields)
}
