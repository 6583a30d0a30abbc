package meeting

// SummarizeRequest represents the request to summarize a transcript
type SummarizeRequest struct {
	Transcript string `json:"transcript" validate:"required,notblank"`
}

// GetMeetingRequest represents the path parameters of a meeting lookup
type GetMeetingRequest struct {
	ID string `param:"id" validate:"required"`
}
