package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	"github.com/johnquangdev/meeting-summarizer/internal/domain/repositories"
)

type meetingRepository struct {
	meetings *mongo.Collection
	tasks    *mongo.Collection
	logger   *zap.Logger
}

// NewMeetingRepository creates a meeting repository backed by db
func NewMeetingRepository(db *mongo.Database, logger *zap.Logger) repositories.MeetingRepository {
	return &meetingRepository{
		meetings: db.Collection(meetingsCollection),
		tasks:    db.Collection(tasksCollection),
		logger:   logger,
	}
}

// SaveWithTasks inserts the meeting and then its tasks. Standalone servers have
// no transactions, so the meeting is removed again when the task insert fails.
func (r *meetingRepository) SaveWithTasks(ctx context.Context, meeting *entities.Meeting, tasks []*entities.Task) error {
	now := time.Now().UTC()
	doc := &meetingDocument{
		ID:         primitive.NewObjectID(),
		Transcript: meeting.Transcript,
		Summary:    meeting.Summary,
		CreatedAt:  now,
	}
	if doc.Summary == nil {
		doc.Summary = []string{}
	}

	if _, err := r.meetings.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert meeting: %w", err)
	}

	taskDocs := make([]interface{}, 0, len(tasks))
	ids := make([]primitive.ObjectID, 0, len(tasks))
	for _, t := range tasks {
		td := newTaskDocument(t, doc.ID)
		td.ID = primitive.NewObjectID()
		td.CreatedAt = now
		td.UpdatedAt = now
		taskDocs = append(taskDocs, td)
		ids = append(ids, td.ID)
	}

	if len(taskDocs) > 0 {
		if _, err := r.tasks.InsertMany(ctx, taskDocs); err != nil {
			if _, derr := r.meetings.DeleteOne(ctx, bson.M{"_id": doc.ID}); derr != nil && r.logger != nil {
				r.logger.Warn("⚠️ Failed to roll back meeting insert",
					zap.String("meeting_id", doc.ID.Hex()),
					zap.Error(derr),
				)
			}
			_, _ = r.tasks.DeleteMany(ctx, bson.M{"meetingId": doc.ID})
			return fmt.Errorf("insert tasks: %w", err)
		}
	}

	meeting.ID = doc.ID.Hex()
	meeting.CreatedAt = now
	for i, t := range tasks {
		t.ID = ids[i].Hex()
		t.MeetingID = meeting.ID
		t.CreatedAt = now
		t.UpdatedAt = now
	}
	return nil
}

// GetByID retrieves a meeting by its hex ObjectID
func (r *meetingRepository) GetByID(ctx context.Context, id string) (*entities.Meeting, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, entities.ErrMeetingNotFound
	}

	var doc meetingDocument
	err = r.meetings.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, entities.ErrMeetingNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc.toEntity(), nil
}
