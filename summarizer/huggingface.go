package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"tramibot/httpclient"
)

// HuggingFaceBackend 는 Hugging Face Inference API 의 text-generation 엔드포인트를 호출한다.
type HuggingFaceBackend struct {
	base  *httpclient.BaseClient
	model string
	token string
	opts  GenerationOptions
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

type hfParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	ReturnFullText bool    `json:"return_full_text"`
}

type hfGeneration struct {
	GeneratedText *string `json:"generated_text"`
}

const hfMaxBodySize = 2 << 20

// NewHuggingFace 는 baseURL(예: https://api-inference.huggingface.co/models) 아래의 model 을 호출하는 백엔드를 만든다.
// httpClient 가 nil 이면 로깅 클라이언트를 만든다.
func NewHuggingFace(baseURL, model, token string, opts GenerationOptions, httpClient *http.Client) *HuggingFaceBackend {
	return &HuggingFaceBackend{
		base:  httpclient.NewBaseClientWithClient(httpClient, baseURL),
		model: model,
		token: token,
		opts:  opts.withDefaults(),
	}
}

func (b *HuggingFaceBackend) Name() string {
	return BackendHuggingFace
}

func (b *HuggingFaceBackend) Complete(ctx context.Context, prompt string) (string, error) {
	payload := hfRequest{
		Inputs: prompt,
		Parameters: hfParameters{
			MaxNewTokens: b.opts.MaxTokens,
			Temperature:  b.opts.Temperature,
		},
	}
	buf, err := json.Marshal(payload)
	if err != nil {
		return "", &Error{Kind: KindUnknown, Backend: b.Name(), Err: err}
	}

	req, err := b.base.NewRequest(ctx, http.MethodPost, b.model, nil, bytes.NewReader(buf))
	if err != nil {
		return "", serviceFailed(b.Name(), "failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+b.token)

	resp, err := b.base.Do(req)
	if err != nil {
		return "", serviceFailed(b.Name(), "request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, hfMaxBodySize))
	if err != nil {
		return "", serviceFailed(b.Name(), "response read failed: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", serviceFailed(b.Name(), "status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out []hfGeneration
	if err := json.Unmarshal(body, &out); err != nil {
		return "", malformed(b.Name(), fmt.Errorf("unexpected response body: %w", err))
	}
	if len(out) == 0 || out[0].GeneratedText == nil {
		return "", malformed(b.Name(), fmt.Errorf("generated_text field missing"))
	}
	return *out[0].GeneratedText, nil
}
