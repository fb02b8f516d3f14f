package ai

import (
	"context"

	"github.com/skillbridge/learning-path/internal/config"
)

// Client is the upstream inference provider.
type Client interface {
	GenerateLearningPath(ctx context.Context, prompt string) (string, error)
}

// GenerationParams are the sampling parameters sent with every request.
type GenerationParams struct {
	MaxLength   int
	Temperature float64
	TopP        float64
}

// DefaultGenerationParams match the fixed values the service has always sent.
var DefaultGenerationParams = GenerationParams{
	MaxLength:   1000,
	Temperature: 0.7,
	TopP:        0.9,
}

// NewClient creates an inference client for the configured provider.
// Hugging Face is the default. The mock provider must be requested explicitly
// via AI_PROVIDER=mock; a missing credential never silently downgrades to it,
// it fails on first use instead.
func NewClient(cfg config.Config) Client {
	if cfg.Provider == config.ProviderMock {
		return NewMockClient()
	}
	return NewHuggingFaceClient(cfg.APIKey, cfg.ModelURL, DefaultGenerationParams)
}

// MockClient returns a canned roadmap. Useful for local development without
// an API key and as a deterministic stand-in in tests.
type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

const mockLearningPath = `Missing Skills:
* Version control fundamentals
* API design basics

Technologies:
* Git, REST APIs

Roadmap:
1. Learn the fundamentals
2. Build small projects
3. Study advanced topics`

func (m *MockClient) GenerateLearningPath(ctx context.Context, prompt string) (string, error) {
	return mockLearningPath, nil
}
