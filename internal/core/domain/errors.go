package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	// A patient fetch that returns this is "confirmed absent", not a
	// transport failure.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrRecordsUnavailable indicates the record API client is not configured.
	ErrRecordsUnavailable = errors.New("record service unavailable")

	// ErrMilestonesUnavailable indicates the milestone store exists but
	// could not be read. Timelines still render without milestone markers.
	ErrMilestonesUnavailable = errors.New("milestone source unavailable")
)
