package errors

import "errors"

// Meeting errors
var (
	ErrTranscriptRequired = errors.New("transcript is required")
)

// Task errors
var (
	ErrTaskDescriptionRequired = errors.New("task description is required")
	ErrMeetingIDRequired       = errors.New("meeting id is required")
	ErrSearchQueryRequired     = errors.New("search query is required")
	ErrInvalidCalendarRange    = errors.New("month must be 1-12 and year 1970-9999")
	ErrInvalidPriority         = errors.New("priority must be low, medium or high")
	ErrInvalidStatus           = errors.New("status must be pending or completed")
)
