package summarizer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenRouterBackend 는 OpenAI 호환 chat completions API(OpenRouter)를 호출한다.
type OpenRouterBackend struct {
	client *openai.Client
	model  string
	opts   GenerationOptions
}

// NewOpenRouter 는 baseURL 의 OpenAI 호환 엔드포인트를 쓰는 백엔드를 만든다.
// 재시도는 하지 않는다. 다음 백엔드로 넘어가는 것이 재시도 역할을 한다.
func NewOpenRouter(baseURL, model, apiKey string, opts GenerationOptions, httpClient *http.Client) *OpenRouterBackend {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	reqOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
		option.WithHeader("HTTP-Referer", "https://github.com/tramibot"),
		option.WithHeader("X-Title", "tramibot"),
	}
	if httpClient != nil {
		reqOpts = append(reqOpts, option.WithHTTPClient(httpClient))
	}
	client := openai.NewClient(reqOpts...)
	return &OpenRouterBackend{
		client: &client,
		model:  model,
		opts:   opts.withDefaults(),
	}
}

func (b *OpenRouterBackend) Name() string {
	return BackendOpenRouter
}

func (b *OpenRouterBackend) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := b.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(b.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		MaxTokens:   openai.Int(int64(b.opts.MaxTokens)),
		Temperature: openai.Float(b.opts.Temperature),
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", serviceFailed(b.Name(), "status=%d: %w", apiErr.StatusCode, err)
		}
		return "", serviceFailed(b.Name(), "request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", malformed(b.Name(), fmt.Errorf("no choices in response"))
	}
	return resp.Choices[0].Message.Content, nil
}
