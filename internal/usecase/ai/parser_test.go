package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTasks(t *testing.T) {
	p := NewParser(false)

	tests := []struct {
		name string
		text string
		want []ParsedTask
	}{
		{
			name: "plain array",
			text: `[{"task":"Ship it","assignee":"Ann","deadline":"Friday","priority":"high","status":"pending"}]`,
			want: []ParsedTask{{Task: "Ship it", Assignee: "Ann", Deadline: "Friday", Priority: "high", Status: "pending"}},
		},
		{
			name: "commentary and code fence around the array",
			text: "Sure! Here are the tasks:\n```json\n[{\"task\":\"Write tests\",\"deadline\":null}]\n```\nLet me know.",
			want: []ParsedTask{{Task: "Write tests"}},
		},
		{
			name: "non string values are stringified",
			text: `[{"task":"Pay","priority":3}]`,
			want: []ParsedTask{{Task: "Pay", Priority: "3"}},
		},
		{
			name: "non-object elements are skipped",
			text: `["noise", {"task":"Keep me"}]`,
			want: []ParsedTask{{Task: "Keep me"}},
		},
		{
			name: "empty array",
			text: `[]`,
			want: []ParsedTask{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := p.ParseTasks(tt.text)
			require.False(t, res.Malformed, res.Reason)
			assert.Equal(t, tt.want, res.Tasks)
		})
	}
}

func TestParseTasks_Malformed(t *testing.T) {
	p := NewParser(false)

	for name, text := range map[string]string{
		"no array":           `{"task":"not in an array"}`,
		"no brackets at all": "I could not find any tasks.",
		"broken json":        `[{"task": oops}]`,
		"only strings":       `["a", "b"]`,
		"reversed brackets":  `] nothing [`,
	} {
		t.Run(name, func(t *testing.T) {
			res := p.ParseTasks(text)
			assert.True(t, res.Malformed)
			assert.NotEmpty(t, res.Reason)
			assert.Empty(t, res.Tasks)
		})
	}
}

func TestParseTasks_RepairsTrailingComma(t *testing.T) {
	res := NewParser(true).ParseTasks(`[{"task": "Fix the build", "assignee": "Dev",}]`)

	require.False(t, res.Malformed, res.Reason)
	require.Len(t, res.Tasks, 1)
	assert.Equal(t, "Fix the build", res.Tasks[0].Task)
	assert.Equal(t, "Dev", res.Tasks[0].Assignee)
}

func TestParseTasks_NoRepairRejectsTruncatedArray(t *testing.T) {
	res := NewParser(false).ParseTasks(`[{"task":"Rotate keys"}, {"task":"Email Bo", "assignee":]`)

	assert.True(t, res.Malformed)
	assert.Empty(t, res.Tasks)
}
