package summarizer

import (
	"context"
	"fmt"
	"strings"

	"tramibot/config"
	"tramibot/httpclient"
	"tramibot/quota"
)

// FromConfig 는 설정의 우선순위대로 백엔드를 구성한다.
// 자격 증명이 없는 백엔드는 건너뛰며, 남은 백엔드가 없어도 에러가 아니다.
// 이 경우 모든 분석은 ErrNotConfigured 로 실패하고 대체 문구가 사용된다.
func FromConfig(ctx context.Context, cfg config.SummarizerConfig, secrets config.Secrets) (*Summarizer, error) {
	opts := GenerationOptions{
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
	}
	httpClient := httpclient.New(httpclient.Config{Timeout: cfg.Timeout})

	backends := make([]Backend, 0, len(cfg.Backends))
	seen := make(map[string]bool, len(cfg.Backends))
	for _, raw := range cfg.Backends {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		switch name {
		case BackendHuggingFace:
			if secrets.HuggingFaceToken == "" {
				skipBackend(name, "HUGGINGFACE_TOKEN")
				continue
			}
			backends = append(backends, NewHuggingFace(cfg.HuggingFaceURL, cfg.HuggingFaceModel, secrets.HuggingFaceToken, opts, httpClient))
		case BackendOpenRouter:
			if secrets.OpenRouterAPIKey == "" {
				skipBackend(name, "OPENROUTER_API_KEY")
				continue
			}
			backends = append(backends, NewOpenRouter(cfg.OpenRouterURL, cfg.OpenRouterModel, secrets.OpenRouterAPIKey, opts, httpClient))
		case BackendGemini:
			if secrets.GeminiAPIKey == "" {
				skipBackend(name, "GEMINI_API_KEY")
				continue
			}
			b, err := NewGemini(ctx, cfg.GeminiModel, secrets.GeminiAPIKey, opts, httpClient)
			if err != nil {
				return nil, fmt.Errorf("failed to create gemini backend: %w", err)
			}
			backends = append(backends, b)
		case BackendAnthropic:
			if secrets.AnthropicAPIKey == "" {
				skipBackend(name, "ANTHROPIC_API_KEY")
				continue
			}
			backends = append(backends, NewAnthropic(cfg.AnthropicModel, secrets.AnthropicAPIKey, opts, httpClient))
		default:
			return nil, fmt.Errorf("unsupported summarizer backend: %s", raw)
		}
	}

	if len(backends) == 0 {
		config.Logger.Warn("no summarizer backend configured, impact analysis will use fallback text")
	}

	s := New(backends,
		WithTimeout(cfg.Timeout),
		WithQuota(quota.NewSummaryQuotaLimiter(cfg.Quota)),
	)
	config.InfoWithFields("summarizer initialized", config.Fields{
		"backends": s.Backends(),
	})
	return s, nil
}

func skipBackend(name, envKey string) {
	config.Logger.Infof("summarizer backend %s disabled: %s is not set", name, envKey)
}
