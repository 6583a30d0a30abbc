// Package mongo stores meetings and tasks in MongoDB collections.
package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
)

const (
	meetingsCollection = "meetings"
	tasksCollection    = "tasks"
)

type meetingDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Transcript string             `bson:"transcript"`
	Summary    []string           `bson:"summary"`
	CreatedAt  time.Time          `bson:"createdAt"`
}

func (d *meetingDocument) toEntity() *entities.Meeting {
	return &entities.Meeting{
		ID:         d.ID.Hex(),
		Transcript: d.Transcript,
		Summary:    d.Summary,
		CreatedAt:  d.CreatedAt,
	}
}

type taskDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	MeetingID primitive.ObjectID `bson:"meetingId"`
	Task      string             `bson:"task"`
	Assignee  string             `bson:"assignee"`
	Deadline  *time.Time         `bson:"deadline"`
	Priority  string             `bson:"priority"`
	Status    string             `bson:"status"`
	Tags      []string           `bson:"tags"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func newTaskDocument(t *entities.Task, meetingID primitive.ObjectID) *taskDocument {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return &taskDocument{
		MeetingID: meetingID,
		Task:      t.Description,
		Assignee:  t.Assignee,
		Deadline:  t.Deadline,
		Priority:  string(t.Priority),
		Status:    string(t.Status),
		Tags:      tags,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func (d *taskDocument) toEntity() *entities.Task {
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	var deadline *time.Time
	if d.Deadline != nil {
		dl := d.Deadline.UTC()
		deadline = &dl
	}
	return &entities.Task{
		ID:          d.ID.Hex(),
		MeetingID:   d.MeetingID.Hex(),
		Description: d.Task,
		Assignee:    d.Assignee,
		Deadline:    deadline,
		Priority:    entities.TaskPriority(d.Priority),
		Status:      entities.TaskStatus(d.Status),
		Tags:        tags,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
