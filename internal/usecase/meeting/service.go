package meeting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	"github.com/johnquangdev/meeting-summarizer/internal/domain/repositories"
	aiuse "github.com/johnquangdev/meeting-summarizer/internal/usecase/ai"
	ucerrors "github.com/johnquangdev/meeting-summarizer/internal/usecase/errors"
)

// TranscriptArchiver keeps a copy of the raw transcript outside the database
type TranscriptArchiver interface {
	ArchiveTranscript(ctx context.Context, meetingID, transcript string) (string, error)
}

// SummarizeOutput is the result of summarizing one transcript.
// Persisted is false when the IDs are temporary placeholders.
type SummarizeOutput struct {
	MeetingID string
	Summary   []string
	Tasks     []*entities.Task
	Persisted bool
}

// MeetingDetails is a stored meeting with its tasks
type MeetingDetails struct {
	Meeting *entities.Meeting
	Tasks   []*entities.Task
}

// Service defines meeting use cases
type Service interface {
	Summarize(ctx context.Context, transcript string) (*SummarizeOutput, error)
	GetMeeting(ctx context.Context, id string) (*MeetingDetails, error)
}

type meetingService struct {
	pipeline aiuse.Runner
	meetings repositories.MeetingRepository
	tasks    repositories.TaskRepository
	archive  TranscriptArchiver
	logger   *zap.Logger
	now      func() time.Time
}

// NewMeetingService creates a meeting service. archive may be nil.
func NewMeetingService(
	pipeline aiuse.Runner,
	meetings repositories.MeetingRepository,
	tasks repositories.TaskRepository,
	archive TranscriptArchiver,
	logger *zap.Logger,
) Service {
	return &meetingService{
		pipeline: pipeline,
		meetings: meetings,
		tasks:    tasks,
		archive:  archive,
		logger:   logger,
		now:      time.Now,
	}
}

// Summarize runs the pipeline and stores the outcome. A storage failure never
// fails the request: the result comes back with temp_ IDs instead.
func (s *meetingService) Summarize(ctx context.Context, transcript string) (*SummarizeOutput, error) {
	if strings.TrimSpace(transcript) == "" {
		return nil, ucerrors.ErrTranscriptRequired
	}

	result := s.pipeline.Run(ctx, transcript)

	meeting := entities.NewMeeting(transcript, result.Summary)
	tasks := make([]*entities.Task, 0, len(result.Tasks))
	for _, draft := range result.Tasks {
		tasks = append(tasks, entities.NewTaskFromDraft("", draft))
	}

	persisted := true
	if err := s.meetings.SaveWithTasks(ctx, meeting, tasks); err != nil {
		persisted = false
		if s.logger != nil {
			s.logger.Warn("⚠️ Failed to save meeting, returning unsaved result", zap.Error(err))
		}
		s.assignTemporaryIDs(meeting, tasks)
	}

	if s.archive != nil {
		if key, err := s.archive.ArchiveTranscript(ctx, meeting.ID, transcript); err != nil {
			if s.logger != nil {
				s.logger.Warn("⚠️ Failed to archive transcript", zap.String("meeting_id", meeting.ID), zap.Error(err))
			}
		} else if s.logger != nil {
			s.logger.Debug("📦 Transcript archived", zap.String("meeting_id", meeting.ID), zap.String("object", key))
		}
	}

	if s.logger != nil {
		s.logger.Info("✅ Meeting summarized",
			zap.String("meeting_id", meeting.ID),
			zap.Int("summary_points", len(result.Summary)),
			zap.Int("tasks", len(tasks)),
			zap.Bool("persisted", persisted))
	}

	return &SummarizeOutput{
		MeetingID: meeting.ID,
		Summary:   result.Summary,
		Tasks:     tasks,
		Persisted: persisted,
	}, nil
}

func (s *meetingService) assignTemporaryIDs(meeting *entities.Meeting, tasks []*entities.Task) {
	now := s.now()
	ms := now.UnixMilli()
	meeting.ID = fmt.Sprintf("temp_meeting_%d", ms)
	for i, task := range tasks {
		task.ID = fmt.Sprintf("temp_%d_%d", ms, i)
		task.MeetingID = meeting.ID
		task.CreatedAt = now
		task.UpdatedAt = now
	}
}

func (s *meetingService) GetMeeting(ctx context.Context, id string) (*MeetingDetails, error) {
	meeting, err := s.meetings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tasks, err := s.tasks.List(ctx, repositories.TaskFilters{MeetingID: &meeting.ID})
	if err != nil {
		return nil, err
	}

	return &MeetingDetails{Meeting: meeting, Tasks: tasks}, nil
}
