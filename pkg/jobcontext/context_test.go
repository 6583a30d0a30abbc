package jobcontext

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobBegin(t *testing.T) {
	ctx, cancel := JobBegin(context.Background(), "reminder", time.Minute)
	defer cancel()

	id, ok := GetJobID(ctx)
	require.True(t, ok)
	assert.NotEqual(t, uuid.Nil, id)

	md := GetJobMetadata(ctx)
	assert.Equal(t, "reminder", md.JobType)
	assert.False(t, md.StartTime.IsZero())

	_, hasDeadline := ctx.Deadline()
	assert.True(t, hasDeadline)
	assert.Len(t, Fields(ctx), 3)
}

func TestJobBegin_NoTimeout(t *testing.T) {
	ctx, cancel := JobBegin(context.Background(), "cli", 0)
	defer cancel()

	_, hasDeadline := ctx.Deadline()
	assert.False(t, hasDeadline)
}

func TestFields_OutsideJob(t *testing.T) {
	assert.Nil(t, Fields(context.Background()))

	_, ok := GetJobID(context.Background())
	assert.False(t, ok)
}
