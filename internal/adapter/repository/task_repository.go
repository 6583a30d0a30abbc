package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	"github.com/johnquangdev/meeting-summarizer/internal/domain/repositories"
)

// taskRepository implements the TaskRepository interface on Postgres
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &taskRepository{db: db}
}

// Create inserts a task for an existing meeting
func (r *taskRepository) Create(ctx context.Context, task *entities.Task) error {
	meetingID, err := uuid.Parse(task.MeetingID)
	if err != nil {
		return entities.ErrMeetingNotFound
	}

	now := time.Now().UTC()
	rec := newTaskRecord(task, meetingID)
	rec.ID = uuid.New()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return entities.ErrMeetingNotFound
		}
		return err
	}

	task.ID = rec.ID.String()
	task.CreatedAt = now
	task.UpdatedAt = now
	return nil
}

// GetByID retrieves a task by its ID
func (r *taskRepository) GetByID(ctx context.Context, id string) (*entities.Task, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, entities.ErrTaskNotFound
	}

	var rec taskRecord
	err = r.db.WithContext(ctx).Where("id = ?", uid).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, entities.ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec.toEntity(), nil
}

// Update overwrites the mutable columns of a task
func (r *taskRepository) Update(ctx context.Context, task *entities.Task) error {
	uid, err := uuid.Parse(task.ID)
	if err != nil {
		return entities.ErrTaskNotFound
	}

	rec := newTaskRecord(task, uuid.Nil)
	rec.UpdatedAt = time.Now().UTC()

	res := r.db.WithContext(ctx).
		Model(&taskRecord{}).
		Where("id = ?", uid).
		Select("task", "assignee", "deadline", "priority", "status", "tags", "updated_at").
		Updates(rec)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entities.ErrTaskNotFound
	}

	task.UpdatedAt = rec.UpdatedAt
	return nil
}

// Delete removes a task
func (r *taskRepository) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return entities.ErrTaskNotFound
	}

	res := r.db.WithContext(ctx).Where("id = ?", uid).Delete(&taskRecord{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entities.ErrTaskNotFound
	}
	return nil
}

// List retrieves tasks with filters, newest first
func (r *taskRepository) List(ctx context.Context, filters repositories.TaskFilters) ([]*entities.Task, error) {
	query := r.db.WithContext(ctx).Model(&taskRecord{})

	if filters.Status != nil {
		query = query.Where("status = ?", string(*filters.Status))
	}
	if filters.MeetingID != nil {
		uid, err := uuid.Parse(*filters.MeetingID)
		if err != nil {
			return []*entities.Task{}, nil
		}
		query = query.Where("meeting_id = ?", uid)
	}
	if filters.DeadlineFrom != nil {
		query = query.Where("deadline >= ?", *filters.DeadlineFrom)
	}
	if filters.DeadlineBefore != nil {
		query = query.Where("deadline < ?", *filters.DeadlineBefore)
	}

	var recs []*taskRecord
	if err := query.Order("created_at DESC").Find(&recs).Error; err != nil {
		return nil, err
	}
	return toEntities(recs), nil
}

// Search matches description, assignee and any tag with a case-insensitive substring
func (r *taskRepository) Search(ctx context.Context, q string) ([]*entities.Task, error) {
	pattern := "%" + escapeLike(q) + "%"

	var recs []*taskRecord
	err := r.db.WithContext(ctx).
		Model(&taskRecord{}).
		Where("task ILIKE ? OR assignee ILIKE ? OR EXISTS (SELECT 1 FROM jsonb_array_elements_text(tags) AS tag WHERE tag ILIKE ?)",
			pattern, pattern, pattern).
		Order("created_at DESC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return toEntities(recs), nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes q match literally inside a LIKE pattern
func escapeLike(q string) string {
	return likeEscaper.Replace(q)
}

func toEntities(recs []*taskRecord) []*entities.Task {
	out := make([]*entities.Task, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.toEntity())
	}
	return out
}
