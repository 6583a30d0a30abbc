package repositories

import (
	"context"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
)

// MeetingRepository defines persistence operations for meetings
type MeetingRepository interface {
	// SaveWithTasks stores a meeting and its tasks, assigning IDs to all of them.
	// Each task's MeetingID is set to the new meeting's ID.
	SaveWithTasks(ctx context.Context, meeting *entities.Meeting, tasks []*entities.Task) error

	// GetByID returns entities.ErrMeetingNotFound when no meeting matches
	GetByID(ctx context.Context, id string) (*entities.Meeting, error)
}
