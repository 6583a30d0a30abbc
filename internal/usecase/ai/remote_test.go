package ai

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	pkgai "github.com/johnquangdev/meeting-summarizer/pkg/ai"
)

// Wednesday.
var fixedNow = time.Date(2024, time.January, 3, 10, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func TestParseBulletPoints(t *testing.T) {
	text := "- Budget approved\n\n• Launch moved to March.\n* Hiring freeze lifted\n   \nPlain line"

	assert.Equal(t, []string{
		"Budget approved.",
		"Launch moved to March.",
		"Hiring freeze lifted.",
		"Plain line.",
	}, ParseBulletPoints(text))
}

func TestRemoteSummarizer(t *testing.T) {
	gen := &fakeGenerator{summaryText: "- One\n- Two"}
	s := NewRemoteSummarizer(gen, pkgai.DefaultGenerationOptions(), time.Second)

	points, err := s.Summarize(context.Background(), "the transcript")
	require.NoError(t, err)
	assert.Equal(t, []string{"One.", "Two."}, points)
	require.Len(t, gen.prompts, 1)
	assert.True(t, strings.HasPrefix(gen.prompts[0], "Please summarize this meeting transcript in 3-5 key bullet points:\n\n"))
	assert.True(t, strings.HasSuffix(gen.prompts[0], "the transcript"))
}

func TestRemoteSummarizer_Errors(t *testing.T) {
	_, err := NewRemoteSummarizer(&fakeGenerator{summaryErr: errUpstream}, pkgai.DefaultGenerationOptions(), time.Second).
		Summarize(context.Background(), "t")
	assert.ErrorIs(t, err, errUpstream)

	_, err = NewRemoteSummarizer(&fakeGenerator{summaryText: "\n  \n"}, pkgai.DefaultGenerationOptions(), time.Second).
		Summarize(context.Background(), "t")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestRemoteSummarizer_Timeout(t *testing.T) {
	gen := &fakeGenerator{block: true}
	s := NewRemoteSummarizer(gen, pkgai.DefaultGenerationOptions(), 10*time.Millisecond)

	_, err := s.Summarize(context.Background(), "t")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRemoteTaskExtractor(t *testing.T) {
	gen := &fakeGenerator{tasksText: `Here you go:
[
  {"task": "Finish the report", "assignee": "Alice", "deadline": "Friday", "priority": "high", "status": "completed"},
  {"task": "Book the venue", "assignee": "", "deadline": "next tuesday", "priority": "urgent"},
  {"task": "Call the vendor", "deadline": "someday"},
  {"task": "   ", "assignee": "Nobody"}
]`}
	e := NewRemoteTaskExtractor(gen, NewParser(false), pkgai.DefaultGenerationOptions(), time.Second, clock)

	tasks, err := e.ExtractTasks(context.Background(), []string{"Alice will finish.", "Book it."}, "transcript")
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	assert.Equal(t, "Finish the report", tasks[0].Description)
	assert.Equal(t, "Alice", tasks[0].Assignee)
	assert.Equal(t, entities.TaskPriorityHigh, tasks[0].Priority)
	assert.Equal(t, entities.TaskStatusPending, tasks[0].Status)
	require.NotNil(t, tasks[0].Deadline)
	assert.Equal(t, time.Date(2024, time.January, 5, 17, 0, 0, 0, time.UTC), *tasks[0].Deadline)

	assert.Equal(t, entities.AssigneeNotSpecified, tasks[1].Assignee)
	assert.Equal(t, entities.TaskPriorityMedium, tasks[1].Priority)
	require.NotNil(t, tasks[1].Deadline)
	assert.Equal(t, time.Date(2024, time.January, 16, 17, 0, 0, 0, time.UTC), *tasks[1].Deadline)

	assert.Nil(t, tasks[2].Deadline)

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "Extract actionable tasks from this meeting summary: Alice will finish. Book it..")
}

func TestRemoteTaskExtractor_EmptyArray(t *testing.T) {
	e := NewRemoteTaskExtractor(&fakeGenerator{tasksText: "[]"}, nil, pkgai.DefaultGenerationOptions(), time.Second, clock)

	tasks, err := e.ExtractTasks(context.Background(), []string{"x"}, "")
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestRemoteTaskExtractor_Errors(t *testing.T) {
	opts := pkgai.DefaultGenerationOptions()

	_, err := NewRemoteTaskExtractor(&fakeGenerator{tasksErr: errUpstream}, nil, opts, time.Second, clock).
		ExtractTasks(context.Background(), []string{"x"}, "")
	assert.ErrorIs(t, err, errUpstream)

	_, err = NewRemoteTaskExtractor(&fakeGenerator{tasksText: "no tasks, sorry"}, nil, opts, time.Second, clock).
		ExtractTasks(context.Background(), []string{"x"}, "")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestFallbackDecorators(t *testing.T) {
	ctx := context.Background()
	gen := &fakeGenerator{summaryErr: errUpstream, tasksErr: errUpstream}
	opts := pkgai.DefaultGenerationOptions()

	s := NewSummarizerWithFallback(NewRemoteSummarizer(gen, opts, time.Second), LocalSummarizer{}, nil)
	points, err := s.Summarize(ctx, "We need to renew the contract soon.")
	require.NoError(t, err)
	assert.Equal(t, []string{"We need to renew the contract soon."}, points)

	e := NewTaskExtractorWithFallback(NewRemoteTaskExtractor(gen, nil, opts, time.Second, clock), LocalTaskExtractor{}, nil)
	tasks, err := e.ExtractTasks(ctx, points, "")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Renew the contract soon.", tasks[0].Description)
}
