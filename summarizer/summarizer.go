package summarizer

import (
	"context"
	"strings"
	"time"

	"tramibot/config"
	"tramibot/models"
	"tramibot/quota"
)

// Summarizer 는 설정된 우선순위대로 백엔드를 시도하고 처음으로 비어 있지 않은 텍스트를 반환한다.
// 호출 간 상태(캐시, 서킷 브레이커)는 두지 않는다.
type Summarizer struct {
	backends []Backend
	limiter  *quota.SummaryQuotaLimiter
	timeout  time.Duration
}

type Option func(*Summarizer)

// WithQuota 는 호출 한도를 적용한다. 한 번의 Generate 호출이 한 건으로 집계된다.
func WithQuota(l *quota.SummaryQuotaLimiter) Option {
	return func(s *Summarizer) { s.limiter = l }
}

// WithTimeout 은 백엔드 호출 한 번의 제한 시간을 바꾼다.
func WithTimeout(d time.Duration) Option {
	return func(s *Summarizer) {
		if d > 0 {
			s.timeout = d
		}
	}
}

func New(backends []Backend, opts ...Option) *Summarizer {
	s := &Summarizer{
		backends: backends,
		timeout:  DefaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Backends 는 활성화된 백엔드 이름을 우선순위 순서로 반환한다.
func (s *Summarizer) Backends() []string {
	names := make([]string, 0, len(s.backends))
	for _, b := range s.backends {
		names = append(names, b.Name())
	}
	return names
}

// Generate 는 prompt 를 백엔드에 순서대로 보내고 (텍스트, 백엔드 이름) 을 반환한다.
// 모든 백엔드가 실패하면 마지막 실패를 *Error 로 반환한다.
func (s *Summarizer) Generate(ctx context.Context, prompt string) (string, string, error) {
	if len(s.backends) == 0 {
		return "", "", ErrNotConfigured
	}

	allowed, err := s.limiter.WaitAndReserve(ctx)
	if err != nil {
		return "", "", &Error{Kind: KindServiceFailed, Err: err}
	}
	if !allowed {
		config.Logger.Warn("summary daily quota exceeded, skip generation")
		return "", "", ErrQuotaExceeded
	}

	var lastErr error
	for _, b := range s.backends {
		text, err := s.complete(ctx, b, prompt)
		if err == nil {
			return text, b.Name(), nil
		}
		lastErr = err
		config.Logger.Warnf("summarizer backend %s failed: %v", b.Name(), err)

		if ctx.Err() != nil {
			break
		}
	}
	return "", "", lastErr
}

func (s *Summarizer) complete(ctx context.Context, b Backend, prompt string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	text, err := b.Complete(callCtx, prompt)
	if err != nil {
		if KindOf(err) == KindUnknown {
			err = &Error{Kind: KindServiceFailed, Backend: b.Name(), Err: err}
		}
		return "", err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", malformed(b.Name(), errEmptyGeneratedText)
	}

	config.Logger.Debugf("summarizer backend %s completed in %s (%d chars)", b.Name(), time.Since(start), len(text))
	return text, nil
}

// Summarize 는 관보 텍스트와 선택적 사용자 상황에 대한 영향 분석 텍스트를 반환한다.
func (s *Summarizer) Summarize(ctx context.Context, text, userContext string) (string, error) {
	out, _, err := s.Generate(ctx, ImpactPrompt(text, userContext))
	return out, err
}

// Assess 는 항목 하나를 분석한다. 실패하지 않으며, 실패 시 FallbackText 와 원인 에러를 담는다.
func (s *Summarizer) Assess(ctx context.Context, entry models.BulletinEntry, userContext string) models.ImpactAssessment {
	text, backend, err := s.Generate(ctx, ImpactPrompt(entry.Text(), userContext))
	if err != nil {
		return models.ImpactAssessment{
			Entry:        entry,
			AnalysisText: FallbackText,
			Err:          err,
		}
	}
	return models.ImpactAssessment{
		Entry:        entry,
		AnalysisText: text,
		Backend:      backend,
	}
}
