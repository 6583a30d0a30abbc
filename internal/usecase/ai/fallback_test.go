package ai

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
)

func TestSummarizeLocally(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		want       []string
	}{
		{
			name:       "short transcript keeps everything once",
			transcript: "We reviewed the roadmap today. Alice will draft the proposal!",
			want:       []string{"We reviewed the roadmap today.", "Alice will draft the proposal."},
		},
		{
			name:       "noise sentences are dropped",
			transcript: "Ok. Yes! Sure? The budget was approved by finance.",
			want:       []string{"The budget was approved by finance."},
		},
		{
			name: "first middle and last two, capped at five",
			transcript: "Sentence number one here. Sentence number two here. Sentence number three here. " +
				"Sentence number four here. Sentence number five here. Sentence number six here. " +
				"Sentence number seven here. Sentence number eight here.",
			want: []string{
				"Sentence number one here.",
				"Sentence number two here.",
				"Sentence number five here.",
				"Sentence number six here.",
				"Sentence number seven here.",
			},
		},
		{
			name:       "nothing long enough",
			transcript: "Hi. Bye. Ok!",
			want:       []string{},
		},
		{
			name:       "ten characters is enough",
			transcript: "abcdefghij",
			want:       []string{"abcdefghij."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SummarizeLocally(tt.transcript))
		})
	}
}

func TestSummarizeLocally_PointsEndWithPeriod(t *testing.T) {
	transcripts := []string{
		"Is the deployment ready for Friday? We must finish QA first!!! Then ship it to production",
		"One very long sentence without any terminator at all",
		"Repeat this sentence please. Repeat this sentence please. Repeat this sentence please.",
	}
	for _, tr := range transcripts {
		points := SummarizeLocally(tr)
		require.NotEmpty(t, points, tr)
		assert.LessOrEqual(t, len(points), 5)
		seen := map[string]bool{}
		for _, p := range points {
			assert.True(t, strings.HasSuffix(p, "."), p)
			assert.False(t, seen[p], "duplicate %q", p)
			seen[p] = true
		}
	}
}

func TestExtractTasksLocally(t *testing.T) {
	tasks := ExtractTasksLocally([]string{"We need to finish the report by Friday."})

	require.Len(t, tasks, 1)
	assert.True(t, strings.HasPrefix(tasks[0].Description, "Finish the report by Friday"), tasks[0].Description)
	assert.Equal(t, entities.AssigneeNotSpecified, tasks[0].Assignee)
	assert.Nil(t, tasks[0].Deadline)
	assert.Equal(t, entities.TaskPriorityMedium, tasks[0].Priority)
	assert.Equal(t, entities.TaskStatusPending, tasks[0].Status)
}

func TestExtractTasksLocally_NoMatchGivesDefault(t *testing.T) {
	tasks := ExtractTasksLocally([]string{"The weather was nice."})

	require.Len(t, tasks, 1)
	assert.Equal(t, entities.DefaultTaskDescription, tasks[0].Description)
	assert.Equal(t, entities.AssigneeNotSpecified, tasks[0].Assignee)
	assert.Equal(t, entities.TaskStatusPending, tasks[0].Status)
}

func TestExtractTasksLocally_PrefixesAndOrder(t *testing.T) {
	tasks := ExtractTasksLocally([]string{
		"I'm going to update the onboarding docs.",
		"The weather was nice.",
		"They should book the venue.",
		"Bob will send the invoice.",
		"THEY PLAN TO migrate the database.",
		"Action item: renew the certificate.",
	})

	got := make([]string, 0, len(tasks))
	for _, task := range tasks {
		got = append(got, task.Description)
	}
	assert.Equal(t, []string{
		"Update the onboarding docs.",
		"Book the venue.",
		"Bob will send the invoice.",
		"Migrate the database.",
		"Action item: renew the certificate.",
	}, got)
}

func TestExtractTasksLocally_PrefixOnlyKeepsOriginal(t *testing.T) {
	tasks := ExtractTasksLocally([]string{"we will"})

	require.Len(t, tasks, 1)
	assert.Equal(t, "We will", tasks[0].Description)
}

func TestLocalStrategies_Idempotent(t *testing.T) {
	transcript := "We need to ship the beta next week. Carol should review the copy. The demo went well overall."
	ctx := context.Background()

	run := func() ([]string, []entities.TaskDraft) {
		summary, err := LocalSummarizer{}.Summarize(ctx, transcript)
		require.NoError(t, err)
		tasks, err := LocalTaskExtractor{}.ExtractTasks(ctx, summary, transcript)
		require.NoError(t, err)
		return summary, tasks
	}

	s1, t1 := run()
	s2, t2 := run()
	assert.Equal(t, s1, s2)
	assert.Equal(t, t1, t2)
}
