// Package guidance 는 절차 안내, 권장 조치, 절차별 영향, 향후 변경 예측을 생성한다.
// 모든 요청은 영향 분석과 같은 백엔드 체인을 거치며 실패 시 고정 안내 문구로 대체된다.
package guidance

import (
	"context"
	"errors"
	"time"

	"tramibot/config"
	"tramibot/summarizer"
)

// Procedures 는 모니터링 대상 절차 목록이다.
var Procedures = []string{
	"NIE Applications",
	"TIE Card Processing",
	"EU Residence Registration",
	"Family Reunification",
	"Student Visas",
	"Work Permits",
	"Long-Term Residence",
	"Nationality Applications",
}

// SourcesChecked 는 안내문이 근거로 삼는 공식 출처이다.
var SourcesChecked = []string{"BOE", "Ministry of Inclusion"}

var ErrEmptyProcedure = errors.New("procedure is required")

// Generator 는 프롬프트로 텍스트를 만든다. summarizer.Summarizer 가 구현한다.
type Generator interface {
	Generate(ctx context.Context, prompt string) (text string, backend string, err error)
}

// Answer 는 생성 결과이다. Text 는 항상 비어 있지 않다.
type Answer struct {
	Text    string
	Backend string
	Err     error
}

type Guide struct {
	Procedure      string
	GeneratedAt    time.Time
	Guidance       Answer
	SourcesChecked []string
}

type Service struct {
	gen Generator
	now func() time.Time
}

func NewService(gen Generator) *Service {
	return &Service{gen: gen, now: time.Now}
}

// Procedures 는 모니터링 대상 절차 목록의 복사본을 반환한다.
func (s *Service) Procedures() []string {
	out := make([]string, len(Procedures))
	copy(out, Procedures)
	return out
}

// ProcedureGuide 는 절차 하나에 대한 안내문을 만든다. procedure 가 비어 있으면 에러를 반환한다.
func (s *Service) ProcedureGuide(ctx context.Context, procedure, userContext string) (Guide, error) {
	if procedure == "" {
		return Guide{}, ErrEmptyProcedure
	}
	sources := make([]string, len(SourcesChecked))
	copy(sources, SourcesChecked)

	return Guide{
		Procedure:      procedure,
		GeneratedAt:    s.now(),
		Guidance:       s.ask(ctx, "procedure_guide", guidePrompt(procedure, userContext)),
		SourcesChecked: sources,
	}, nil
}

// RecommendedActions 는 관보 항목과 그 분석에 대해 3~5개의 실행 단계를 만든다.
func (s *Service) RecommendedActions(ctx context.Context, title, analysis string) Answer {
	return s.ask(ctx, "recommended_actions", actionsPrompt(title, analysis))
}

// ProcedureImpact 는 특정 절차에 대한 변경 영향을 목록으로 만든다.
func (s *Service) ProcedureImpact(ctx context.Context, procedure, title, analysis string) (Answer, error) {
	if procedure == "" {
		return Answer{}, ErrEmptyProcedure
	}
	return s.ask(ctx, "procedure_impact", procedureImpactPrompt(procedure, title, analysis)), nil
}

// Predictions 는 향후 4~6주 변경 예측을 만든다. 공식 정보가 아니다.
func (s *Service) Predictions(ctx context.Context) Answer {
	return s.ask(ctx, "predictions", PREDICTION_INSTRUCTION)
}

func (s *Service) ask(ctx context.Context, kind, prompt string) Answer {
	if s.gen == nil {
		return Answer{Text: summarizer.FallbackText, Err: summarizer.ErrNotConfigured}
	}
	text, backend, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		config.WarnWithFields("guidance generation fell back", config.Fields{
			"kind":       kind,
			"error_kind": summarizer.KindOf(err).String(),
			"error":      err.Error(),
		})
		return Answer{Text: summarizer.FallbackText, Err: err}
	}
	return Answer{Text: text, Backend: backend}
}
