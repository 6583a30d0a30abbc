package entities

import (
	"strings"
	"time"
)

// AssigneeNotSpecified is stored when no owner could be identified.
const AssigneeNotSpecified = "Not specified"

// DefaultTaskDescription is used when nothing actionable was found in a meeting.
const DefaultTaskDescription = "Review meeting notes and create action items"

// TaskPriority is the urgency of a task
type TaskPriority string

// TaskPriority constants
const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// ParseTaskPriority normalizes free text into a known priority, defaulting to medium
func ParseTaskPriority(s string) TaskPriority {
	switch TaskPriority(strings.ToLower(strings.TrimSpace(s))) {
	case TaskPriorityLow:
		return TaskPriorityLow
	case TaskPriorityHigh:
		return TaskPriorityHigh
	default:
		return TaskPriorityMedium
	}
}

// TaskStatus is the lifecycle state of a task
type TaskStatus string

// TaskStatus constants
const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

// TaskDraft is an action item produced by the summarization pipeline.
// It has no identity until a repository stores it as a Task.
type TaskDraft struct {
	Description string       `json:"task"`
	Assignee    string       `json:"assignee"`
	Deadline    *time.Time   `json:"deadline"`
	Priority    TaskPriority `json:"priority"`
	Status      TaskStatus   `json:"status"`
}

// NewTaskDraft builds a draft with defaults applied. Empty assignee falls back
// to AssigneeNotSpecified, unknown priorities to medium, and every draft starts
// pending. The second return is false when description is blank.
func NewTaskDraft(description, assignee string, deadline *time.Time, priority string) (TaskDraft, bool) {
	description = strings.TrimSpace(description)
	if description == "" {
		return TaskDraft{}, false
	}

	assignee = strings.TrimSpace(assignee)
	if assignee == "" || strings.EqualFold(assignee, "null") {
		assignee = AssigneeNotSpecified
	}

	return TaskDraft{
		Description: description,
		Assignee:    assignee,
		Deadline:    deadline,
		Priority:    ParseTaskPriority(priority),
		Status:      TaskStatusPending,
	}, true
}

// DefaultTaskDraft is the single task emitted when extraction finds nothing
func DefaultTaskDraft() TaskDraft {
	draft, _ := NewTaskDraft(DefaultTaskDescription, "", nil, "")
	return draft
}

// Task is a persisted action item
type Task struct {
	ID          string       `json:"id"`
	MeetingID   string       `json:"meeting_id"`
	Description string       `json:"task"`
	Assignee    string       `json:"assignee"`
	Deadline    *time.Time   `json:"deadline,omitempty"`
	Priority    TaskPriority `json:"priority"`
	Status      TaskStatus   `json:"status"`
	Tags        []string     `json:"tags"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// NewTaskFromDraft creates an unsaved task for meetingID. The repository assigns the ID.
func NewTaskFromDraft(meetingID string, draft TaskDraft) *Task {
	return &Task{
		MeetingID:   meetingID,
		Description: draft.Description,
		Assignee:    draft.Assignee,
		Deadline:    draft.Deadline,
		Priority:    draft.Priority,
		Status:      draft.Status,
		Tags:        []string{},
	}
}

// IsDueOn reports whether a pending task's deadline falls in [dayStart, dayStart+24h)
func (t *Task) IsDueOn(dayStart time.Time) bool {
	if t.Deadline == nil || t.Status != TaskStatusPending {
		return false
	}
	return !t.Deadline.Before(dayStart) && t.Deadline.Before(dayStart.AddDate(0, 0, 1))
}
