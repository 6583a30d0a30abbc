package ai

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	pkgai "github.com/johnquangdev/meeting-summarizer/pkg/ai"
	"github.com/johnquangdev/meeting-summarizer/pkg/deadline"
)

// ErrMalformedResponse marks generator output that could not be used
var ErrMalformedResponse = errors.New("malformed generator response")

const summaryPrompt = "Please summarize this meeting transcript in 3-5 key bullet points:\n\n%s"

const taskPrompt = `Extract actionable tasks from this meeting summary: %s. ` +
	`Return only a JSON array of tasks with this exact format: ` +
	`[{"task": "task description", "assignee": "person name or Not specified", ` +
	`"deadline": "relative date like Friday, Thursday, Next Tuesday, or null if no deadline", ` +
	`"priority": "low/medium/high", "status": "pending"}]. ` +
	`Use relative dates like "Friday", "Thursday", "Next Tuesday", "Next week" for deadlines. ` +
	`Do not include any other text, just the JSON array.`

var bulletMarker = regexp.MustCompile(`^[-•*]\s*`)

// RemoteSummarizer asks a generator for bullet points. Errors are returned to
// the caller so a fallback can take over.
type RemoteSummarizer struct {
	generator pkgai.Generator
	opts      pkgai.GenerationOptions
	timeout   time.Duration
}

// NewRemoteSummarizer creates a RemoteSummarizer. A zero timeout leaves the
// caller's deadline in charge.
func NewRemoteSummarizer(generator pkgai.Generator, opts pkgai.GenerationOptions, timeout time.Duration) *RemoteSummarizer {
	return &RemoteSummarizer{generator: generator, opts: opts, timeout: timeout}
}

func (s *RemoteSummarizer) Summarize(ctx context.Context, transcript string) ([]string, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.generator.Generate(ctx, fmt.Sprintf(summaryPrompt, transcript), s.opts)
	if err != nil {
		return nil, fmt.Errorf("%s summarize: %w", s.generator.Name(), err)
	}

	points := ParseBulletPoints(text)
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: no summary points", ErrMalformedResponse)
	}
	return points, nil
}

// ParseBulletPoints splits generated text into summary points. Blank lines are
// dropped, a leading "-", "•" or "*" is stripped and every point ends with a period.
func ParseBulletPoints(text string) []string {
	var points []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(bulletMarker.ReplaceAllString(strings.TrimSpace(line), ""))
		if line == "" {
			continue
		}
		if !strings.HasSuffix(line, ".") {
			line += "."
		}
		points = append(points, line)
	}
	return points
}

// RemoteTaskExtractor asks a generator for a JSON task list and resolves the
// relative deadlines it contains.
type RemoteTaskExtractor struct {
	generator pkgai.Generator
	parser    *Parser
	opts      pkgai.GenerationOptions
	timeout   time.Duration
	now       func() time.Time
}

// NewRemoteTaskExtractor creates a RemoteTaskExtractor. now anchors deadline resolution.
func NewRemoteTaskExtractor(generator pkgai.Generator, parser *Parser, opts pkgai.GenerationOptions, timeout time.Duration, now func() time.Time) *RemoteTaskExtractor {
	if now == nil {
		now = time.Now
	}
	if parser == nil {
		parser = NewParser(false)
	}
	return &RemoteTaskExtractor{generator: generator, parser: parser, opts: opts, timeout: timeout, now: now}
}

// ExtractTasks returns ErrMalformedResponse when the output holds no usable
// array. An empty array is a valid answer and yields no drafts.
func (e *RemoteTaskExtractor) ExtractTasks(ctx context.Context, summary []string, _ string) ([]entities.TaskDraft, error) {
	ctx, cancel := withTimeout(ctx, e.timeout)
	defer cancel()

	text, err := e.generator.Generate(ctx, fmt.Sprintf(taskPrompt, strings.Join(summary, " ")), e.opts)
	if err != nil {
		return nil, fmt.Errorf("%s extract tasks: %w", e.generator.Name(), err)
	}

	result := e.parser.ParseTasks(text)
	if result.Malformed {
		return nil, fmt.Errorf("%w: %s", ErrMalformedResponse, result.Reason)
	}

	now := e.now()
	drafts := make([]entities.TaskDraft, 0, len(result.Tasks))
	for _, t := range result.Tasks {
		var due *time.Time
		if at, ok := deadline.Resolve(t.Deadline, now); ok {
			due = &at
		}
		if draft, ok := entities.NewTaskDraft(t.Task, t.Assignee, due, t.Priority); ok {
			drafts = append(drafts, draft)
		}
	}
	return drafts, nil
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
