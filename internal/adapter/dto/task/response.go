package task

import "time"

// TaskResponse represents a task in API responses
type TaskResponse struct {
	ID        string     `json:"id"`
	MeetingID string     `json:"meeting_id"`
	Task      string     `json:"task"`
	Assignee  string     `json:"assignee"`
	Deadline  *time.Time `json:"deadline"`
	Priority  string     `json:"priority"`
	Status    string     `json:"status"`
	Tags      []string   `json:"tags"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// TaskListResponse represents a list of tasks
type TaskListResponse struct {
	Tasks []*TaskResponse `json:"tasks"`
	Total int             `json:"total"`
}

// DashboardResponse groups pending tasks by deadline
type DashboardResponse struct {
	Overdue  []*TaskResponse `json:"overdue"`
	Today    []*TaskResponse `json:"today"`
	Upcoming []*TaskResponse `json:"upcoming"`
}
