package mongo

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	"github.com/johnquangdev/meeting-summarizer/internal/domain/repositories"
)

type taskRepository struct {
	meetings *mongo.Collection
	tasks    *mongo.Collection
}

// NewTaskRepository creates a task repository backed by db
func NewTaskRepository(db *mongo.Database) repositories.TaskRepository {
	return &taskRepository{
		meetings: db.Collection(meetingsCollection),
		tasks:    db.Collection(tasksCollection),
	}
}

// Create inserts a task for an existing meeting
func (r *taskRepository) Create(ctx context.Context, task *entities.Task) error {
	meetingID, err := primitive.ObjectIDFromHex(task.MeetingID)
	if err != nil {
		return entities.ErrMeetingNotFound
	}
	n, err := r.meetings.CountDocuments(ctx, bson.M{"_id": meetingID}, options.Count().SetLimit(1))
	if err != nil {
		return err
	}
	if n == 0 {
		return entities.ErrMeetingNotFound
	}

	now := time.Now().UTC()
	doc := newTaskDocument(task, meetingID)
	doc.ID = primitive.NewObjectID()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	if _, err := r.tasks.InsertOne(ctx, doc); err != nil {
		return err
	}

	task.ID = doc.ID.Hex()
	task.CreatedAt = now
	task.UpdatedAt = now
	return nil
}

// GetByID retrieves a task by its hex ObjectID
func (r *taskRepository) GetByID(ctx context.Context, id string) (*entities.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, entities.ErrTaskNotFound
	}

	var doc taskDocument
	err = r.tasks.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, entities.ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc.toEntity(), nil
}

// Update overwrites the mutable fields of a task
func (r *taskRepository) Update(ctx context.Context, task *entities.Task) error {
	oid, err := primitive.ObjectIDFromHex(task.ID)
	if err != nil {
		return entities.ErrTaskNotFound
	}

	now := time.Now().UTC()
	tags := task.Tags
	if tags == nil {
		tags = []string{}
	}
	res, err := r.tasks.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"task":      task.Description,
		"assignee":  task.Assignee,
		"deadline":  task.Deadline,
		"priority":  string(task.Priority),
		"status":    string(task.Status),
		"tags":      tags,
		"updatedAt": now,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return entities.ErrTaskNotFound
	}

	task.UpdatedAt = now
	return nil
}

// Delete removes a task
func (r *taskRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return entities.ErrTaskNotFound
	}

	res, err := r.tasks.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return entities.ErrTaskNotFound
	}
	return nil
}

// List retrieves tasks with filters, newest first
func (r *taskRepository) List(ctx context.Context, filters repositories.TaskFilters) ([]*entities.Task, error) {
	filter, ok := listFilter(filters)
	if !ok {
		return []*entities.Task{}, nil
	}
	return r.find(ctx, filter)
}

// Search matches description, assignee and any tag with a case-insensitive substring
func (r *taskRepository) Search(ctx context.Context, q string) ([]*entities.Task, error) {
	return r.find(ctx, searchFilter(q))
}

func (r *taskRepository) find(ctx context.Context, filter bson.M) ([]*entities.Task, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.tasks.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []*taskDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]*entities.Task, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toEntity())
	}
	return out, nil
}

// listFilter builds the query document. ok is false when the filter can match
// nothing, such as a meeting ID that is not an ObjectID.
func listFilter(f repositories.TaskFilters) (bson.M, bool) {
	filter := bson.M{}
	if f.Status != nil {
		filter["status"] = string(*f.Status)
	}
	if f.MeetingID != nil {
		oid, err := primitive.ObjectIDFromHex(*f.MeetingID)
		if err != nil {
			return nil, false
		}
		filter["meetingId"] = oid
	}

	deadline := bson.M{}
	if f.DeadlineFrom != nil {
		deadline["$gte"] = *f.DeadlineFrom
	}
	if f.DeadlineBefore != nil {
		deadline["$lt"] = *f.DeadlineBefore
	}
	if len(deadline) > 0 {
		filter["deadline"] = deadline
	}
	return filter, true
}

func searchFilter(q string) bson.M {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}
	return bson.M{"$or": bson.A{
		bson.M{"task": pattern},
		bson.M{"assignee": pattern},
		bson.M{"tags": pattern},
	}}
}
