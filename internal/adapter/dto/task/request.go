package task

import "time"

// CreateTaskRequest represents the request to create a task
type CreateTaskRequest struct {
	MeetingID string     `json:"meeting_id" validate:"required,notblank"`
	Task      string     `json:"task" validate:"required,notblank,max=1000"`
	Assignee  string     `json:"assignee,omitempty" validate:"omitempty,max=255"`
	Deadline  *time.Time `json:"deadline,omitempty"`
	Priority  string     `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	Tags      []string   `json:"tags,omitempty" validate:"omitempty,max=20,dive,max=50"`
}

// UpdateTaskRequest represents a partial task update.
// Absent fields are left unchanged; ClearDeadline removes the deadline.
type UpdateTaskRequest struct {
	ID            string     `param:"id" validate:"required"`
	Task          *string    `json:"task,omitempty" validate:"omitempty,max=1000"`
	Assignee      *string    `json:"assignee,omitempty" validate:"omitempty,max=255"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	ClearDeadline bool       `json:"clear_deadline,omitempty"`
	Priority      *string    `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	Status        *string    `json:"status,omitempty" validate:"omitempty,oneof=pending completed"`
	Tags          *[]string  `json:"tags,omitempty" validate:"omitempty,max=20,dive,max=50"`
}

// CalendarRequest represents query parameters for the calendar view
type CalendarRequest struct {
	Month int `query:"month"`
	Year  int `query:"year"`
}

// SearchRequest represents query parameters for task search
type SearchRequest struct {
	Q string `query:"q"`
}
