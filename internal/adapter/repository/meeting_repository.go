package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	"github.com/johnquangdev/meeting-summarizer/internal/domain/repositories"
)

// meetingRepository implements the MeetingRepository interface on Postgres
type meetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) repositories.MeetingRepository {
	return &meetingRepository{db: db}
}

// SaveWithTasks inserts the meeting and its tasks in one transaction
func (r *meetingRepository) SaveWithTasks(ctx context.Context, meeting *entities.Meeting, tasks []*entities.Task) error {
	now := time.Now().UTC()
	meetingRec := &meetingRecord{
		ID:         uuid.New(),
		Transcript: meeting.Transcript,
		Summary:    meeting.Summary,
		CreatedAt:  now,
	}

	taskRecs := make([]*taskRecord, 0, len(tasks))
	for _, t := range tasks {
		rec := newTaskRecord(t, meetingRec.ID)
		rec.ID = uuid.New()
		rec.CreatedAt = now
		rec.UpdatedAt = now
		taskRecs = append(taskRecs, rec)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(meetingRec).Error; err != nil {
			return fmt.Errorf("insert meeting: %w", err)
		}
		if len(taskRecs) > 0 {
			if err := tx.Create(&taskRecs).Error; err != nil {
				return fmt.Errorf("insert tasks: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	meeting.ID = meetingRec.ID.String()
	meeting.CreatedAt = now
	for i, t := range tasks {
		t.ID = taskRecs[i].ID.String()
		t.MeetingID = meeting.ID
		t.CreatedAt = now
		t.UpdatedAt = now
	}
	return nil
}

// GetByID retrieves a meeting by its ID
func (r *meetingRepository) GetByID(ctx context.Context, id string) (*entities.Meeting, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, entities.ErrMeetingNotFound
	}

	var rec meetingRecord
	err = r.db.WithContext(ctx).Where("id = ?", uid).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, entities.ErrMeetingNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec.toEntity(), nil
}
