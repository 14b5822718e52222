package summarizer

import (
	"context"
	"net/http"

	"google.golang.org/genai"
)

// GeminiBackend 는 Google Gemini API 를 호출한다.
type GeminiBackend struct {
	client *genai.Client
	model  string
	opts   GenerationOptions
}

func NewGemini(ctx context.Context, model, apiKey string, opts GenerationOptions, httpClient *http.Client) (*GeminiBackend, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiBackend{
		client: client,
		model:  model,
		opts:   opts.withDefaults(),
	}, nil
}

func (b *GeminiBackend) Name() string {
	return BackendGemini
}

func (b *GeminiBackend) Complete(ctx context.Context, prompt string) (string, error) {
	result, err := b.client.Models.GenerateContent(
		ctx,
		b.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature:     genai.Ptr(float32(b.opts.Temperature)),
			MaxOutputTokens: int32(b.opts.MaxTokens),
		},
	)
	if err != nil {
		return "", serviceFailed(b.Name(), "generate content failed: %w", err)
	}
	if result == nil || len(result.Candidates) == 0 {
		return "", malformed(b.Name(), errEmptyGeneratedText)
	}
	return result.Text(), nil
}
