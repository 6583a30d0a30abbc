package ai

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GeminiClient generates text through the Gemini API
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a Gemini client for model
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	if model == "" {
		model = "gemini-1.5-flash"
	}
	return &GeminiClient{client: client, model: model}, nil
}

func (g *GeminiClient) Name() string { return "gemini" }

// Generate sends prompt as a single user turn and joins the text parts of the first candidate
func (g *GeminiClient) Generate(ctx context.Context, prompt string, opts GenerationOptions) (string, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(opts.Temperature),
		TopK:            genai.Ptr(opts.TopK),
		TopP:            genai.Ptr(opts.TopP),
		MaxOutputTokens: opts.MaxOutputTokens,
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from gemini")
	}

	var sb strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			sb.WriteString(part.Text)
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("empty response from gemini")
	}
	return sb.String(), nil
}
