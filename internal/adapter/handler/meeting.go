package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summarizer/errors"
	"github.com/johnquangdev/meeting-summarizer/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-summarizer/internal/adapter/presenter"
	meetingUsecase "github.com/johnquangdev/meeting-summarizer/internal/usecase/meeting"
)

// Meeting handles meeting-related HTTP requests
type Meeting struct {
	meetingService meetingUsecase.Service
	logger         *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(meetingService meetingUsecase.Service, logger *zap.Logger) *Meeting {
	return &Meeting{
		meetingService: meetingService,
		logger:         logger,
	}
}

// Summarize handles POST /api/summarize
// @Summary      Summarize a transcript
// @Description  Summarizes a meeting transcript and extracts action items. Storage failures return temporary IDs.
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        request  body      meeting.SummarizeRequest  true  "Transcript"
// @Success      200      {object}  meeting.SummarizeResponse  "Summary and tasks"
// @Failure      400      {object}  map[string]interface{}  "Transcript missing"
// @Router       /api/summarize [post]
func (h *Meeting) Summarize(c echo.Context) error {
	var req meeting.SummarizeRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrTranscriptRequired())
	}

	out, err := h.meetingService.Summarize(c.Request().Context(), req.Transcript)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToSummarizeResponse(out))
}

// GetMeeting handles GET /api/meetings/:id
// @Summary      Get meeting details
// @Description  Gets a stored meeting together with its tasks
// @Tags         Meetings
// @Produce      json
// @Param        id   path      string  true  "Meeting ID"
// @Success      200  {object}  meeting.MeetingResponse  "Meeting details"
// @Failure      404  {object}  map[string]interface{}  "Meeting not found"
// @Failure      503  {object}  map[string]interface{}  "Store unavailable"
// @Router       /api/meetings/{id} [get]
func (h *Meeting) GetMeeting(c echo.Context) error {
	var req meeting.GetMeetingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	details, err := h.meetingService.GetMeeting(c.Request().Context(), req.ID)
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, req.ID))
	}

	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(details))
}
