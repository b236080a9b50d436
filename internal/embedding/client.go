// Package embedding provides the text embedding boundary and vector math
// for semantic matching.
package embedding

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Client is an abstraction over embedding providers.
type Client interface {
	// Embed turns text into a fixed-dimension vector.
	Embed(ctx context.Context, text string) ([]float32, error)
	// Close releases any resources held by the client.
	Close() error
}

// NewClient creates a new embedding client based on configuration.
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	default:
		return NewGeminiClient(ctx, config, apiKey)
	}
}

// GeminiClient implements Client for Google Gemini embedding models.
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini embedding client.
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		config: config,
	}, nil
}

// Embed generates an embedding vector for the given text.
func (c *GeminiClient) Embed(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, &APICallError{Message: "cannot embed empty text"}
	}

	model := c.client.EmbeddingModel(c.config.Model)

	resp, err := model.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, &APICallError{
			Message: "failed to generate embedding",
			Cause:   err,
		}
	}

	if resp.Embedding == nil || len(resp.Embedding.Values) == 0 {
		return nil, &APICallError{Message: "empty embedding in response"}
	}

	return resp.Embedding.Values, nil
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}
