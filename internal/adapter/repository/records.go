package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
)

// meetingRecord is the GORM row for entities.Meeting
type meetingRecord struct {
	ID         uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	Transcript string                      `gorm:"type:text;not null"`
	Summary    datatypes.JSONSlice[string] `gorm:"type:jsonb;not null"`
	CreatedAt  time.Time
}

func (meetingRecord) TableName() string { return "meetings" }

func (r *meetingRecord) toEntity() *entities.Meeting {
	return &entities.Meeting{
		ID:         r.ID.String(),
		Transcript: r.Transcript,
		Summary:    []string(r.Summary),
		CreatedAt:  r.CreatedAt,
	}
}

// taskRecord is the GORM row for entities.Task
type taskRecord struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	MeetingID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Description string    `gorm:"column:task;type:text;not null"`
	Assignee    string    `gorm:"not null"`
	Deadline    *time.Time
	Priority    string                      `gorm:"type:varchar(10);not null"`
	Status      string                      `gorm:"type:varchar(10);not null"`
	Tags        datatypes.JSONSlice[string] `gorm:"type:jsonb;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (taskRecord) TableName() string { return "tasks" }

func newTaskRecord(t *entities.Task, meetingID uuid.UUID) *taskRecord {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return &taskRecord{
		MeetingID:   meetingID,
		Description: t.Description,
		Assignee:    t.Assignee,
		Deadline:    t.Deadline,
		Priority:    string(t.Priority),
		Status:      string(t.Status),
		Tags:        datatypes.JSONSlice[string](tags),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (r *taskRecord) toEntity() *entities.Task {
	tags := []string(r.Tags)
	if tags == nil {
		tags = []string{}
	}
	return &entities.Task{
		ID:          r.ID.String(),
		MeetingID:   r.MeetingID.String(),
		Description: r.Description,
		Assignee:    r.Assignee,
		Deadline:    r.Deadline,
		Priority:    entities.TaskPriority(r.Priority),
		Status:      entities.TaskStatus(r.Status),
		Tags:        tags,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
