package summarizer

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type AnthropicBackend struct {
	client *anthropic.Client
	model  anthropic.Model
	opts   GenerationOptions
}

func NewAnthropic(model, apiKey string, opts GenerationOptions, httpClient *http.Client) *AnthropicBackend {
	reqOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if httpClient != nil {
		reqOpts = append(reqOpts, option.WithHTTPClient(httpClient))
	}
	client := anthropic.NewClient(reqOpts...)
	return &AnthropicBackend{
		client: &client,
		model:  anthropic.Model(model),
		opts:   opts.withDefaults(),
	}
}

func (b *AnthropicBackend) Name() string {
	return BackendAnthropic
}

func (b *AnthropicBackend) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := b.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       b.model,
		MaxTokens:   int64(b.opts.MaxTokens),
		Temperature: anthropic.Float(b.opts.Temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return "", serviceFailed(b.Name(), "status=%d: %w", apiErr.StatusCode, err)
		}
		return "", serviceFailed(b.Name(), "request failed: %w", err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	return sb.String(), nil
}
