package entities

import "errors"

// Domain errors
var (
	// Task errors
	ErrTaskNotFound = errors.New("task not found")

	// Meeting errors
	ErrMeetingNotFound = errors.New("meeting not found")

	// Store errors
	ErrStoreUnavailable = errors.New("persistence store unavailable")
)
