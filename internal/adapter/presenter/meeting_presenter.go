package presenter

import (
	"github.com/johnquangdev/meeting-summarizer/internal/adapter/dto/meeting"
	meetingUsecase "github.com/johnquangdev/meeting-summarizer/internal/usecase/meeting"
)

// ToSummarizeResponse converts a summarize output to its DTO
func ToSummarizeResponse(out *meetingUsecase.SummarizeOutput) *meeting.SummarizeResponse {
	summary := out.Summary
	if summary == nil {
		summary = []string{}
	}
	return &meeting.SummarizeResponse{
		MeetingID: out.MeetingID,
		Summary:   summary,
		Tasks:     ToTaskResponses(out.Tasks),
		Persisted: out.Persisted,
	}
}

// ToMeetingResponse converts a meeting and its tasks to MeetingResponse DTO
func ToMeetingResponse(d *meetingUsecase.MeetingDetails) *meeting.MeetingResponse {
	if d == nil || d.Meeting == nil {
		return nil
	}
	summary := d.Meeting.Summary
	if summary == nil {
		summary = []string{}
	}
	return &meeting.MeetingResponse{
		ID:         d.Meeting.ID,
		Transcript: d.Meeting.Transcript,
		Summary:    summary,
		Tasks:      ToTaskResponses(d.Tasks),
		CreatedAt:  d.Meeting.CreatedAt,
	}
}
