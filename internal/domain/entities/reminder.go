package entities

import "time"

// DueReminder announces a pending task whose deadline falls today
type DueReminder struct {
	TaskID    string    `json:"task_id"`
	MeetingID string    `json:"meeting_id"`
	Task      string    `json:"task"`
	Assignee  string    `json:"assignee"`
	Deadline  time.Time `json:"deadline"`
}

// NewDueReminder builds the reminder for t, which must have a deadline
func NewDueReminder(t *Task) DueReminder {
	r := DueReminder{
		TaskID:    t.ID,
		MeetingID: t.MeetingID,
		Task:      t.Description,
		Assignee:  t.Assignee,
	}
	if t.Deadline != nil {
		r.Deadline = *t.Deadline
	}
	return r
}
