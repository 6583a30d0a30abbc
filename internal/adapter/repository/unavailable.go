package repository

import (
	"context"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	"github.com/johnquangdev/meeting-summarizer/internal/domain/repositories"
)

// UnavailableMeetings and UnavailableTasks stand in for the real repositories
// when no store is reachable. Every call fails with entities.ErrStoreUnavailable.
type (
	UnavailableMeetings struct{}
	UnavailableTasks    struct{}
)

var (
	_ repositories.MeetingRepository = UnavailableMeetings{}
	_ repositories.TaskRepository    = UnavailableTasks{}
)

func (UnavailableMeetings) SaveWithTasks(context.Context, *entities.Meeting, []*entities.Task) error {
	return entities.ErrStoreUnavailable
}

func (UnavailableMeetings) GetByID(context.Context, string) (*entities.Meeting, error) {
	return nil, entities.ErrStoreUnavailable
}

func (UnavailableTasks) Create(context.Context, *entities.Task) error {
	return entities.ErrStoreUnavailable
}

func (UnavailableTasks) GetByID(context.Context, string) (*entities.Task, error) {
	return nil, entities.ErrStoreUnavailable
}

func (UnavailableTasks) Update(context.Context, *entities.Task) error {
	return entities.ErrStoreUnavailable
}

func (UnavailableTasks) Delete(context.Context, string) error {
	return entities.ErrStoreUnavailable
}

func (UnavailableTasks) List(context.Context, repositories.TaskFilters) ([]*entities.Task, error) {
	return nil, entities.ErrStoreUnavailable
}

func (UnavailableTasks) Search(context.Context, string) ([]*entities.Task, error) {
	return nil, entities.ErrStoreUnavailable
}
