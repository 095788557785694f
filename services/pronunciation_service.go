package services

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/storage-ops/ordertool/config"
)

const pronunciationPrompt = "In one word, no fluff, give me the pronunciation of the first name %s"

// Pronouncer produces a one-word pronunciation guide for a first name.
// The pipeline treats it as an injected capability so tests can substitute a
// deterministic stub.
type Pronouncer interface {
	Pronounce(ctx context.Context, firstName string) (string, error)
}

// PronouncerFunc adapts a plain function to the Pronouncer interface
type PronouncerFunc func(ctx context.Context, firstName string) (string, error)

// Pronounce calls the wrapped function
func (f PronouncerFunc) Pronounce(ctx context.Context, firstName string) (string, error) {
	return f(ctx, firstName)
}

// GenAIPronouncer asks the Gemini API for pronunciations
type GenAIPronouncer struct {
	client *genai.Client
	model  string
}

// NewGenAIPronouncer creates a Gemini-backed pronouncer from the application config
func NewGenAIPronouncer(ctx context.Context, cfg *config.Config) (*GenAIPronouncer, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.GeminiAPIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GenAIPronouncer{
		client: client,
		model:  cfg.GeminiModel,
	}, nil
}

// Pronounce asks the model for a one-word pronunciation guide
func (p *GenAIPronouncer) Pronounce(ctx context.Context, firstName string) (string, error) {
	prompt := fmt.Sprintf(pronunciationPrompt, firstName)

	result, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("GenAI request failed: %w", err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", fmt.Errorf("GenAI returned no text")
	}
	return text, nil
}
