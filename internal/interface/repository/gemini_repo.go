package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"tripwise-service/internal/domain/repository"
	"tripwise-service/pkg/logger"
)

// GeminiRepository implements the GenerativeRepository interface with the
// Gemini API. One call per prompt, no retry; failures propagate to the
// caller.
type GeminiRepository struct {
	logger logger.Logger
	client *genai.Client
	model  string
}

// NewGeminiRepository creates a new Gemini repository
func NewGeminiRepository(ctx context.Context, apiKey, model string, logger logger.Logger) (*GeminiRepository, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiRepository{
		logger: logger,
		client: client,
		model:  model,
	}, nil
}

var _ repository.GenerativeRepository = (*GeminiRepository)(nil)

// Generate sends the prompt and returns the concatenated text parts of the
// first candidate.
func (r *GeminiRepository) Generate(ctx context.Context, prompt string) (string, error) {
	model := r.client.GenerativeModel(r.model)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("gemini returned no text content")
	}
	return sb.String(), nil
}

// ModelName returns the configured model identifier.
func (r *GeminiRepository) ModelName() string {
	return r.model
}

// Close releases the underlying client.
func (r *GeminiRepository) Close() error {
	return r.client.Close()
}
