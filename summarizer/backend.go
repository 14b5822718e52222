package summarizer

import (
	"context"
	"time"
)

const (
	// DefaultTimeout 는 백엔드 호출 한 번에 허용되는 시간이다.
	DefaultTimeout = 30 * time.Second

	DefaultMaxTokens   = 800
	DefaultTemperature = 0.7

	// FallbackText 는 분석에 실패했을 때 화면에 보여줄 고정 안내 문구이다.
	FallbackText = "AI service is currently updating. Please check official Spanish government websites for the most current information."
)

const (
	BackendHuggingFace = "huggingface"
	BackendOpenRouter  = "openrouter"
	BackendGemini      = "gemini"
	BackendAnthropic   = "anthropic"
)

// Backend 는 프롬프트 하나를 받아 생성된 텍스트를 돌려주는 외부 텍스트 생성 서비스이다.
// 실패는 *Error 로 분류해서 반환해야 한다.
type Backend interface {
	Name() string
	Complete(ctx context.Context, prompt string) (string, error)
}

// GenerationOptions 는 모든 백엔드에 공통으로 전달되는 생성 파라미터이다.
type GenerationOptions struct {
	MaxTokens   int
	Temperature float64
}

func (o GenerationOptions) withDefaults() GenerationOptions {
	if o.MaxTokens <= 0 {
		o.MaxTokens = DefaultMaxTokens
	}
	if o.Temperature <= 0 {
		o.Temperature = DefaultTemperature
	}
	return o
}
