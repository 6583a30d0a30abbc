package ai

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/johnquangdev/meeting-summarizer/pkg/config"
)

// ErrGeneratorDisabled is returned by Disabled for every call
var ErrGeneratorDisabled = errors.New("text generation is not configured")

// GenerationOptions tunes a single generation call
type GenerationOptions struct {
	Temperature     float32
	TopK            float32
	TopP            float32
	MaxOutputTokens int32
}

// DefaultGenerationOptions are the sampling settings used for summaries and task extraction
func DefaultGenerationOptions() GenerationOptions {
	return GenerationOptions{
		Temperature:     0.3,
		TopK:            40,
		TopP:            0.95,
		MaxOutputTokens: 1024,
	}
}

// Generator produces free text for a prompt
type Generator interface {
	Generate(ctx context.Context, prompt string, opts GenerationOptions) (string, error)
	Name() string
}

// Disabled is the generator used when no credential is configured
type Disabled struct{}

func (Disabled) Generate(context.Context, string, GenerationOptions) (string, error) {
	return "", ErrGeneratorDisabled
}

func (Disabled) Name() string { return "disabled" }

// IsDisabled reports whether g can never produce text
func IsDisabled(g Generator) bool {
	if g == nil {
		return true
	}
	_, ok := g.(Disabled)
	return ok
}

// NewGenerator builds the generator for the configured provider.
// A missing or placeholder key yields Disabled rather than an error.
func NewGenerator(ctx context.Context, cfg config.AIConfig) (Generator, error) {
	key := strings.TrimSpace(cfg.ActiveAPIKey())
	if key == "" || strings.HasPrefix(strings.ToLower(key), "your_") {
		return Disabled{}, nil
	}

	switch cfg.Provider {
	case config.ProviderGroq:
		return NewGroqClient(key, cfg.GroqBaseURL, cfg.GroqModel, timeoutOrDefault(cfg.RequestTimeout)), nil
	default:
		return NewGeminiClient(ctx, key, cfg.GeminiModel)
	}
}

func timeoutOrDefault(d time.Duration) time.Duration {
	if d <= 0 {
		return 30 * time.Second
	}
	return d
}
