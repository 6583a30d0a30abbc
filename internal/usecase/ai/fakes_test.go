package ai

import (
	"context"
	"errors"
	"strings"
	"sync"

	pkgai "github.com/johnquangdev/meeting-summarizer/pkg/ai"
)

var errUpstream = errors.New("upstream unavailable")

// fakeGenerator answers summary and task prompts with canned text
type fakeGenerator struct {
	mu          sync.Mutex
	summaryText string
	summaryErr  error
	tasksText   string
	tasksErr    error
	prompts     []string
	block       bool
}

func (f *fakeGenerator) Name() string { return "fake" }

func (f *fakeGenerator) Generate(ctx context.Context, prompt string, _ pkgai.GenerationOptions) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()

	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	if strings.HasPrefix(prompt, "Extract actionable tasks") {
		return f.tasksText, f.tasksErr
	}
	return f.summaryText, f.summaryErr
}

func (f *fakeGenerator) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}
