package domain

import "errors"

var (
	ErrVenueNotFound   = errors.New("venue not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	// ErrVenueUnavailable means the candidate interval overlaps an existing
	// non-cancelled booking for the same venue.
	ErrVenueUnavailable = errors.New("venue is not available for the selected dates")

	// ErrInvalidInterval means end time is not strictly after start time.
	ErrInvalidInterval = errors.New("end time must be after start time")
)

var (
	ErrValidation = errors.New("validation error")
)
