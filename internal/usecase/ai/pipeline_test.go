package ai

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	pkgai "github.com/johnquangdev/meeting-summarizer/pkg/ai"
)

const sampleTranscript = "Alice opened the weekly sync. We need to finish the quarterly report by Friday. " +
	"Bob said the staging cluster is unstable. Carol will migrate the database next week. " +
	"Everyone agreed the launch date stays. The meeting ended on time."

func TestPipeline_RemotePath(t *testing.T) {
	gen := &fakeGenerator{
		summaryText: "- Report due Friday\n- Database migration planned",
		tasksText:   `[{"task":"Finish the quarterly report","assignee":"Alice","deadline":"Friday","priority":"high","status":"pending"}]`,
	}
	p := NewPipeline(gen, zap.NewNop(), WithClock(clock), WithRequestTimeout(time.Second))

	res := p.Run(context.Background(), sampleTranscript)

	assert.Equal(t, []string{"Report due Friday.", "Database migration planned."}, res.Summary)
	require.Len(t, res.Tasks, 1)
	assert.Equal(t, "Alice", res.Tasks[0].Assignee)
	require.NotNil(t, res.Tasks[0].Deadline)
	assert.Equal(t, time.Date(2024, time.January, 5, 17, 0, 0, 0, time.UTC), *res.Tasks[0].Deadline)
	assert.Equal(t, 2, gen.calls())
}

func TestPipeline_DisabledGeneratorMakesNoCalls(t *testing.T) {
	p := NewPipeline(pkgai.Disabled{}, nil, WithClock(clock))

	res := p.Run(context.Background(), sampleTranscript)

	assert.Equal(t, SummarizeLocally(sampleTranscript), res.Summary)
	assert.Equal(t, ExtractTasksLocally(res.Summary), res.Tasks)
}

func TestPipeline_NilGeneratorUsesLocalPath(t *testing.T) {
	res := NewPipeline(nil, nil).Run(context.Background(), sampleTranscript)

	assert.NotEmpty(t, res.Summary)
	assert.NotEmpty(t, res.Tasks)
}

func TestPipeline_UpstreamFailureFallsBack(t *testing.T) {
	gen := &fakeGenerator{summaryErr: errUpstream, tasksErr: errUpstream}
	p := NewPipeline(gen, zap.NewNop(), WithClock(clock))

	res := p.Run(context.Background(), sampleTranscript)

	assert.Equal(t, SummarizeLocally(sampleTranscript), res.Summary)
	assert.Equal(t, ExtractTasksLocally(res.Summary), res.Tasks)
	for _, task := range res.Tasks {
		assert.Nil(t, task.Deadline)
	}
}

func TestPipeline_MalformedTasksFallBack(t *testing.T) {
	gen := &fakeGenerator{
		summaryText: "- We should rotate the API keys",
		tasksText:   "I am unable to produce JSON today.",
	}
	p := NewPipeline(gen, nil, WithClock(clock), WithJSONRepair(false))

	res := p.Run(context.Background(), sampleTranscript)

	require.Len(t, res.Tasks, 1)
	assert.Equal(t, "Rotate the API keys.", res.Tasks[0].Description)
}

func TestPipeline_TruncatedTaskArrayFallsBackByDefault(t *testing.T) {
	gen := &fakeGenerator{
		summaryText: "- We should rotate the API keys",
		tasksText:   `[{"task":"Rotate keys"}, {"task":"Email Bo", "assignee":]`,
	}
	p := NewPipeline(gen, nil, WithClock(clock))

	res := p.Run(context.Background(), sampleTranscript)

	require.Len(t, res.Tasks, 1)
	assert.Equal(t, "Rotate the API keys.", res.Tasks[0].Description)
	assert.Nil(t, res.Tasks[0].Deadline)
}

func TestPipeline_JSONRepairIsOptIn(t *testing.T) {
	gen := &fakeGenerator{
		summaryText: "- We should rotate the API keys",
		tasksText:   `[{"task": "Rotate keys", "assignee": "Dev",}]`,
	}
	p := NewPipeline(gen, nil, WithClock(clock), WithJSONRepair(true))

	res := p.Run(context.Background(), sampleTranscript)

	require.Len(t, res.Tasks, 1)
	assert.Equal(t, "Rotate keys", res.Tasks[0].Description)
	assert.Equal(t, "Dev", res.Tasks[0].Assignee)
}

func TestPipeline_EmptyTaskArrayGetsDefault(t *testing.T) {
	gen := &fakeGenerator{summaryText: "- Nothing to do", tasksText: "[]"}

	res := NewPipeline(gen, nil, WithClock(clock)).Run(context.Background(), sampleTranscript)

	require.Len(t, res.Tasks, 1)
	assert.Equal(t, entities.DefaultTaskDraft(), res.Tasks[0])
}

func TestPipeline_NoContentPlaceholder(t *testing.T) {
	res := NewPipeline(pkgai.Disabled{}, nil).Run(context.Background(), "ok. yes. no.")

	assert.Equal(t, []string{entities.NoContentSummaryPoint}, res.Summary)
	require.Len(t, res.Tasks, 1)
	assert.Equal(t, entities.DefaultTaskDescription, res.Tasks[0].Description)
}

func TestPipeline_AlwaysProducesOutput(t *testing.T) {
	generators := map[string]pkgai.Generator{
		"disabled":  pkgai.Disabled{},
		"failing":   &fakeGenerator{summaryErr: errUpstream, tasksErr: errUpstream},
		"garbage":   &fakeGenerator{summaryText: "   ", tasksText: "{}"},
		"timed out": &fakeGenerator{block: true},
	}
	transcripts := []string{"x", "short", sampleTranscript, "!!!???...", "One sentence with no end"}

	for name, gen := range generators {
		p := NewPipeline(gen, nil, WithClock(clock), WithRequestTimeout(5*time.Millisecond))
		for _, tr := range transcripts {
			res := p.Run(context.Background(), tr)
			assert.NotEmpty(t, res.Summary, "%s %q", name, tr)
			assert.NotEmpty(t, res.Tasks, "%s %q", name, tr)
			for _, task := range res.Tasks {
				assert.Equal(t, entities.TaskStatusPending, task.Status)
			}
		}
	}
}
