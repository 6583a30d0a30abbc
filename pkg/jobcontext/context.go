// Package jobcontext stamps background jobs with an ID and start time so
// that every log line a run produces can be correlated.
package jobcontext

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type KeyContext string

var (
	keyJobID        KeyContext = "job_id"
	keyJobType      KeyContext = "job_type"
	keyJobStartTime KeyContext = "job_start_time"
)

// JobMetadata holds metadata for a job execution
type JobMetadata struct {
	JobID     uuid.UUID
	JobType   string
	StartTime time.Time
}

// JobBegin derives a job context from parent with a fresh job ID.
// A positive timeout bounds the run.
func JobBegin(parent context.Context, jobType string, timeout time.Duration) (context.Context, context.CancelFunc) {
	ctx, cancel := parent, context.CancelFunc(func() {})
	if timeout > 0 {
		ctx, cancel = context.WithTimeout(parent, timeout)
	}

	ctx = context.WithValue(ctx, keyJobID, uuid.New())
	ctx = context.WithValue(ctx, keyJobType, jobType)
	ctx = context.WithValue(ctx, keyJobStartTime, time.Now())
	return ctx, cancel
}

// GetJobID extracts job ID from context
func GetJobID(ctx context.Context) (uuid.UUID, bool) {
	jobID, ok := ctx.Value(keyJobID).(uuid.UUID)
	return jobID, ok
}

// GetJobMetadata extracts all job metadata from context
func GetJobMetadata(ctx context.Context) *JobMetadata {
	jobID, _ := GetJobID(ctx)
	jobType, _ := ctx.Value(keyJobType).(string)
	startTime, _ := ctx.Value(keyJobStartTime).(time.Time)

	return &JobMetadata{
		JobID:     jobID,
		JobType:   jobType,
		StartTime: startTime,
	}
}

// Fields returns zap fields describing the job in ctx, or nil outside a job
func Fields(ctx context.Context) []zap.Field {
	md := GetJobMetadata(ctx)
	if md.JobID == uuid.Nil {
		return nil
	}
	fields := []zap.Field{
		zap.String("job_id", md.JobID.String()),
		zap.String("job_type", md.JobType),
	}
	if !md.StartTime.IsZero() {
		fields = append(fields, zap.Duration("elapsed", time.Since(md.StartTime)))
	}
	return fields
}
