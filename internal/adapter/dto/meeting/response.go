package meeting

import (
	"time"

	"github.com/johnquangdev/meeting-summarizer/internal/adapter/dto/task"
)

// SummarizeResponse is the result of summarizing a transcript.
// Persisted is false when the IDs are temporary.
type SummarizeResponse struct {
	MeetingID string               `json:"meeting_id"`
	Summary   []string             `json:"summary"`
	Tasks     []*task.TaskResponse `json:"tasks"`
	Persisted bool                 `json:"persisted"`
}

// MeetingResponse represents a stored meeting with its tasks
type MeetingResponse struct {
	ID         string               `json:"id"`
	Transcript string               `json:"transcript"`
	Summary    []string             `json:"summary"`
	Tasks      []*task.TaskResponse `json:"tasks"`
	CreatedAt  time.Time            `json:"created_at"`
}
