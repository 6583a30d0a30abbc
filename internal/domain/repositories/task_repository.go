package repositories

import (
	"context"
	"time"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
)

// TaskFilters narrows a task listing. Nil fields are ignored. Either deadline
// bound excludes tasks without a deadline.
type TaskFilters struct {
	Status    *entities.TaskStatus
	MeetingID *string
	// DeadlineFrom is inclusive
	DeadlineFrom *time.Time
	// DeadlineBefore is exclusive
	DeadlineBefore *time.Time
}

// TaskRepository defines persistence operations for tasks
type TaskRepository interface {
	Create(ctx context.Context, task *entities.Task) error
	// GetByID returns entities.ErrTaskNotFound when no task matches
	GetByID(ctx context.Context, id string) (*entities.Task, error)
	Update(ctx context.Context, task *entities.Task) error
	Delete(ctx context.Context, id string) error
	// List returns matching tasks, newest first
	List(ctx context.Context, filters TaskFilters) ([]*entities.Task, error)
	// Search matches query literally and case-insensitively against description, assignee and tags
	Search(ctx context.Context, query string) ([]*entities.Task, error)
}
