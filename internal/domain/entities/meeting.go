package entities

import "time"

// NoContentSummaryPoint replaces an empty summary
const NoContentSummaryPoint = "No significant content found."

// PipelineResult is what the summarization pipeline hands to persistence
type PipelineResult struct {
	Summary []string    `json:"summary"`
	Tasks   []TaskDraft `json:"tasks"`
}

// Meeting is a stored transcript together with its generated summary
type Meeting struct {
	ID         string    `json:"id"`
	Transcript string    `json:"transcript"`
	Summary    []string  `json:"summary"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewMeeting creates an unsaved meeting
func NewMeeting(transcript string, summary []string) *Meeting {
	return &Meeting{
		Transcript: transcript,
		Summary:    summary,
		CreatedAt:  time.Now(),
	}
}
