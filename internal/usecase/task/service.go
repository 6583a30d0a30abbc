package task

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	"github.com/johnquangdev/meeting-summarizer/internal/domain/repositories"
	ucerrors "github.com/johnquangdev/meeting-summarizer/internal/usecase/errors"
)

// CreateTaskInput holds the fields of a manually created task
type CreateTaskInput struct {
	MeetingID   string
	Description string
	Assignee    string
	Deadline    *time.Time
	Priority    string
	Tags        []string
}

// UpdateTaskInput is a partial update. Nil fields are left unchanged.
type UpdateTaskInput struct {
	Description   *string
	Assignee      *string
	Deadline      *time.Time
	ClearDeadline bool
	Priority      *string
	Status        *string
	Tags          []string
	ReplaceTags   bool
}

// Dashboard groups pending tasks by deadline relative to today
type Dashboard struct {
	Overdue  []*entities.Task
	Today    []*entities.Task
	Upcoming []*entities.Task
}

// Service defines task use cases
type Service interface {
	List(ctx context.Context) ([]*entities.Task, error)
	Dashboard(ctx context.Context) (*Dashboard, error)
	Calendar(ctx context.Context, month, year int) ([]*entities.Task, error)
	Create(ctx context.Context, input CreateTaskInput) (*entities.Task, error)
	Update(ctx context.Context, id string, input UpdateTaskInput) (*entities.Task, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, query string) ([]*entities.Task, error)
}

type taskService struct {
	repo   repositories.TaskRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewTaskService creates a task service
func NewTaskService(repo repositories.TaskRepository, logger *zap.Logger) Service {
	return &taskService{repo: repo, logger: logger, now: time.Now}
}

func (s *taskService) List(ctx context.Context) ([]*entities.Task, error) {
	return s.repo.List(ctx, repositories.TaskFilters{})
}

// Dashboard splits pending tasks around local midnight: overdue before today,
// today within it, upcoming from tomorrow on.
func (s *taskService) Dashboard(ctx context.Context) (*Dashboard, error) {
	today := startOfDay(s.now())
	tomorrow := today.AddDate(0, 0, 1)
	pending := entities.TaskStatusPending

	overdue, err := s.repo.List(ctx, repositories.TaskFilters{Status: &pending, DeadlineBefore: &today})
	if err != nil {
		return nil, err
	}
	dueToday, err := s.repo.List(ctx, repositories.TaskFilters{Status: &pending, DeadlineFrom: &today, DeadlineBefore: &tomorrow})
	if err != nil {
		return nil, err
	}
	upcoming, err := s.repo.List(ctx, repositories.TaskFilters{Status: &pending, DeadlineFrom: &tomorrow})
	if err != nil {
		return nil, err
	}

	return &Dashboard{Overdue: overdue, Today: dueToday, Upcoming: upcoming}, nil
}

// Calendar returns every task with a deadline inside the given month
func (s *taskService) Calendar(ctx context.Context, month, year int) ([]*entities.Task, error) {
	if month < 1 || month > 12 || year < 1970 || year > 9999 {
		return nil, ucerrors.ErrInvalidCalendarRange
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, s.now().Location())
	end := start.AddDate(0, 1, 0)
	return s.repo.List(ctx, repositories.TaskFilters{DeadlineFrom: &start, DeadlineBefore: &end})
}

func (s *taskService) Create(ctx context.Context, input CreateTaskInput) (*entities.Task, error) {
	if strings.TrimSpace(input.MeetingID) == "" {
		return nil, ucerrors.ErrMeetingIDRequired
	}
	priority, err := parsePriority(input.Priority)
	if err != nil {
		return nil, err
	}

	draft, ok := entities.NewTaskDraft(input.Description, input.Assignee, input.Deadline, string(priority))
	if !ok {
		return nil, ucerrors.ErrTaskDescriptionRequired
	}

	task := entities.NewTaskFromDraft(strings.TrimSpace(input.MeetingID), draft)
	if input.Tags != nil {
		task.Tags = cleanTags(input.Tags)
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.Info("✅ Task created", zap.String("task_id", task.ID), zap.String("meeting_id", task.MeetingID))
	}
	return task, nil
}

func (s *taskService) Update(ctx context.Context, id string, input UpdateTaskInput) (*entities.Task, error) {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Description != nil {
		desc := strings.TrimSpace(*input.Description)
		if desc == "" {
			return nil, ucerrors.ErrTaskDescriptionRequired
		}
		task.Description = desc
	}
	if input.Assignee != nil {
		task.Assignee = strings.TrimSpace(*input.Assignee)
		if task.Assignee == "" {
			task.Assignee = entities.AssigneeNotSpecified
		}
	}
	if input.ClearDeadline {
		task.Deadline = nil
	} else if input.Deadline != nil {
		d := *input.Deadline
		task.Deadline = &d
	}
	if input.Priority != nil {
		if task.Priority, err = parsePriority(*input.Priority); err != nil {
			return nil, err
		}
	}
	if input.Status != nil {
		if task.Status, err = parseStatus(*input.Status); err != nil {
			return nil, err
		}
	}
	if input.ReplaceTags {
		task.Tags = cleanTags(input.Tags)
	}

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.logger != nil {
		s.logger.Info("🗑️ Task deleted", zap.String("task_id", id))
	}
	return nil
}

func (s *taskService) Search(ctx context.Context, query string) ([]*entities.Task, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ucerrors.ErrSearchQueryRequired
	}
	return s.repo.Search(ctx, query)
}

// parsePriority accepts an empty value as medium and rejects anything unknown
func parsePriority(raw string) (entities.TaskPriority, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	switch entities.TaskPriority(raw) {
	case "":
		return entities.TaskPriorityMedium, nil
	case entities.TaskPriorityLow, entities.TaskPriorityMedium, entities.TaskPriorityHigh:
		return entities.TaskPriority(raw), nil
	default:
		return "", ucerrors.ErrInvalidPriority
	}
}

func parseStatus(raw string) (entities.TaskStatus, error) {
	switch st := entities.TaskStatus(strings.ToLower(strings.TrimSpace(raw))); st {
	case entities.TaskStatusPending, entities.TaskStatusCompleted:
		return st, nil
	default:
		return "", ucerrors.ErrInvalidStatus
	}
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
