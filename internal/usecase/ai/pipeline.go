package ai

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	pkgai "github.com/johnquangdev/meeting-summarizer/pkg/ai"
)

// Runner produces a summary and tasks for a transcript
type Runner interface {
	Run(ctx context.Context, transcript string) *entities.PipelineResult
}

// Pipeline runs summarization then task extraction. It always returns at least
// one summary point and one task.
type Pipeline struct {
	summarizer Summarizer
	extractor  TaskExtractor
	logger     *zap.Logger
}

type pipelineOptions struct {
	now        func() time.Time
	timeout    time.Duration
	repairJSON bool
	generation pkgai.GenerationOptions
}

// Option customises NewPipeline
type Option func(*pipelineOptions)

// WithClock sets the clock used to resolve relative deadlines
func WithClock(now func() time.Time) Option {
	return func(o *pipelineOptions) { o.now = now }
}

// WithRequestTimeout bounds each generator call
func WithRequestTimeout(d time.Duration) Option {
	return func(o *pipelineOptions) { o.timeout = d }
}

// WithJSONRepair opts in to running malformed task arrays through jsonrepair.
// Off by default, so malformed output falls back to local extraction.
func WithJSONRepair(enabled bool) Option {
	return func(o *pipelineOptions) { o.repairJSON = enabled }
}

// WithGenerationOptions overrides the sampling settings
func WithGenerationOptions(g pkgai.GenerationOptions) Option {
	return func(o *pipelineOptions) { o.generation = g }
}

// NewPipeline wires the remote strategies with local fallbacks. A disabled or
// nil generator skips the remote path entirely.
func NewPipeline(generator pkgai.Generator, logger *zap.Logger, opts ...Option) *Pipeline {
	o := pipelineOptions{
		now:        time.Now,
		timeout:    30 * time.Second,
		repairJSON: false,
		generation: pkgai.DefaultGenerationOptions(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	if pkgai.IsDisabled(generator) {
		if logger != nil {
			logger.Info("ℹ️ No AI credential configured, pipeline uses local summarizer and extractor")
		}
		return NewPipelineWith(LocalSummarizer{}, LocalTaskExtractor{}, logger)
	}

	summarizer := NewSummarizerWithFallback(
		NewRemoteSummarizer(generator, o.generation, o.timeout),
		LocalSummarizer{},
		logger,
	)
	extractor := NewTaskExtractorWithFallback(
		NewRemoteTaskExtractor(generator, NewParser(o.repairJSON), o.generation, o.timeout, o.now),
		LocalTaskExtractor{},
		logger,
	)
	return NewPipelineWith(summarizer, extractor, logger)
}

// NewPipelineWith builds a pipeline from explicit strategies
func NewPipelineWith(summarizer Summarizer, extractor TaskExtractor, logger *zap.Logger) *Pipeline {
	return &Pipeline{summarizer: summarizer, extractor: extractor, logger: logger}
}

// Run never fails. Callers reject blank transcripts before calling it.
func (p *Pipeline) Run(ctx context.Context, transcript string) *entities.PipelineResult {
	summary, err := p.summarizer.Summarize(ctx, transcript)
	if err != nil {
		summary = SummarizeLocally(transcript)
	}
	if len(summary) == 0 {
		summary = []string{entities.NoContentSummaryPoint}
	}

	tasks, err := p.extractor.ExtractTasks(ctx, summary, transcript)
	if err != nil {
		tasks = ExtractTasksLocally(summary)
	}
	if len(tasks) == 0 {
		tasks = []entities.TaskDraft{entities.DefaultTaskDraft()}
	}

	if p.logger != nil {
		p.logger.Debug("✅ Pipeline finished",
			zap.Int("summary_points", len(summary)),
			zap.Int("tasks", len(tasks)))
	}

	return &entities.PipelineResult{Summary: summary, Tasks: tasks}
}
