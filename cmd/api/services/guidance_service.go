package services

import (
	"context"

	"tramibot/cmd/api/dto"
	"tramibot/guidance"
	"tramibot/summarizer"
)

const PredictionsDisclaimer = "AI-generated estimate. Not official information; always confirm with BOE and the Ministry of Inclusion."

// GuidanceService 는 guidance.Service 결과를 API DTO 로 매핑한다.
type GuidanceService struct {
	svc *guidance.Service
}

func NewGuidanceService(svc *guidance.Service) *GuidanceService {
	return &GuidanceService{svc: svc}
}

func (s *GuidanceService) Procedures() dto.ProceduresResponseDTO {
	return dto.ProceduresResponseDTO{Procedures: s.svc.Procedures()}
}

func (s *GuidanceService) Guide(ctx context.Context, in dto.GuideRequestDTO) (dto.GuideResponseDTO, error) {
	g, err := s.svc.ProcedureGuide(ctx, in.Procedure, in.UserContext)
	if err != nil {
		return dto.GuideResponseDTO{}, err
	}
	text := mapAnswer(g.Guidance)
	return dto.GuideResponseDTO{
		Procedure:      g.Procedure,
		GeneratedAt:    g.GeneratedAt,
		Guidance:       text.Text,
		SourcesChecked: g.SourcesChecked,
		Backend:        text.Backend,
		ErrorKind:      text.ErrorKind,
	}, nil
}

func (s *GuidanceService) Actions(ctx context.Context, in dto.ActionsRequestDTO) dto.TextResponseDTO {
	return mapAnswer(s.svc.RecommendedActions(ctx, in.Title, in.Analysis))
}

func (s *GuidanceService) Impact(ctx context.Context, in dto.ProcedureImpactRequestDTO) (dto.TextResponseDTO, error) {
	a, err := s.svc.ProcedureImpact(ctx, in.Procedure, in.Title, in.Analysis)
	if err != nil {
		return dto.TextResponseDTO{}, err
	}
	return mapAnswer(a), nil
}

func (s *GuidanceService) Predictions(ctx context.Context) dto.PredictionsResponseDTO {
	return dto.PredictionsResponseDTO{
		TextResponseDTO: mapAnswer(s.svc.Predictions(ctx)),
		Disclaimer:      PredictionsDisclaimer,
	}
}

func mapAnswer(a guidance.Answer) dto.TextResponseDTO {
	out := dto.TextResponseDTO{Text: a.Text, Backend: a.Backend}
	if a.Err != nil {
		out.ErrorKind = summarizer.KindOf(a.Err).String()
	}
	return out
}
