package ai

import (
	"context"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
)

// Summarizer turns a transcript into summary points
type Summarizer interface {
	Summarize(ctx context.Context, transcript string) ([]string, error)
}

// TaskExtractor turns a summary into task drafts
type TaskExtractor interface {
	ExtractTasks(ctx context.Context, summary []string, transcript string) ([]entities.TaskDraft, error)
}

// SummarizerWithFallback tries primary and switches to fallback on any error
type SummarizerWithFallback struct {
	primary  Summarizer
	fallback Summarizer
	logger   *zap.Logger
}

func NewSummarizerWithFallback(primary, fallback Summarizer, logger *zap.Logger) *SummarizerWithFallback {
	return &SummarizerWithFallback{primary: primary, fallback: fallback, logger: logger}
}

func (s *SummarizerWithFallback) Summarize(ctx context.Context, transcript string) ([]string, error) {
	points, err := s.primary.Summarize(ctx, transcript)
	if err == nil {
		return points, nil
	}
	if s.logger != nil {
		s.logger.Warn("⚠️ AI summarization failed, using local summarizer", zap.Error(err))
	}
	return s.fallback.Summarize(ctx, transcript)
}

// TaskExtractorWithFallback tries primary and switches to fallback on any error
type TaskExtractorWithFallback struct {
	primary  TaskExtractor
	fallback TaskExtractor
	logger   *zap.Logger
}

func NewTaskExtractorWithFallback(primary, fallback TaskExtractor, logger *zap.Logger) *TaskExtractorWithFallback {
	return &TaskExtractorWithFallback{primary: primary, fallback: fallback, logger: logger}
}

func (e *TaskExtractorWithFallback) ExtractTasks(ctx context.Context, summary []string, transcript string) ([]entities.TaskDraft, error) {
	tasks, err := e.primary.ExtractTasks(ctx, summary, transcript)
	if err == nil {
		return tasks, nil
	}
	if e.logger != nil {
		e.logger.Warn("⚠️ AI task extraction failed, using keyword extractor", zap.Error(err))
	}
	return e.fallback.ExtractTasks(ctx, summary, transcript)
}
