package scheduling

import "errors"

var (
	// ErrMalformedDate indicates a date input that could not be parsed.
	// Never coerced silently; callers surface it as a rejected validation.
	ErrMalformedDate = errors.New("malformed date")

	// ErrInvalidRange indicates a sale whose end date precedes its start date.
	ErrInvalidRange = errors.New("end date before start date")

	// ErrPlatformNotFound indicates the platform policy lookup failed upstream.
	ErrPlatformNotFound = errors.New("platform not found")
)
