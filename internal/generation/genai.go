package generation

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GenAICompleter calls the Gemini API through the Google Gen AI SDK
type GenAICompleter struct {
	client *genai.Client
}

// NewGenAICompleter creates a Gemini API client. baseURL may be empty.
func NewGenAICompleter(ctx context.Context, apiKey, baseURL string) (*GenAICompleter, error) {
	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GenAICompleter{client: client}, nil
}

// Complete sends prompt as a single user turn and returns the response text
func (g *GenAICompleter) Complete(ctx context.Context, model, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}
