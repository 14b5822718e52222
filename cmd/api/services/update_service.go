package services

import (
	"context"

	"tramibot/cmd/api/dto"
	"tramibot/models"
	"tramibot/scanner"
	"tramibot/summarizer"
)

const MessageNoUpdates = "no updates found"

// Scanner 는 파이프라인 한 번을 실행한다. scanner.Scanner 가 구현한다.
type Scanner interface {
	ScanWithContext(ctx context.Context, userContext string) scanner.Result
}

// UpdateService 는 요청 시점 스캔("지금 스캔")과 DTO 매핑을 담당한다.
type UpdateService struct {
	scanner      Scanner
	displayLimit int
}

func NewUpdateService(s Scanner, displayLimit int) *UpdateService {
	return &UpdateService{scanner: s, displayLimit: displayLimit}
}

// Scan 은 스캔을 한 번 실행하고 최대 displayLimit 개의 결과를 반환한다.
func (s *UpdateService) Scan(ctx context.Context, userContext string) dto.ScanResponseDTO {
	res := s.scanner.ScanWithContext(ctx, userContext)

	shown := scanner.Display(res.Assessments, s.displayLimit)
	out := dto.ScanResponseDTO{
		ScannedAt: res.ScannedAt,
		Scanned:   res.Scanned,
		Count:     len(res.Assessments),
		Urgent:    res.Urgent(),
		Updates:   make([]dto.UpdateDTO, 0, len(shown)),
	}
	if res.FeedError != nil {
		out.FeedError = res.FeedError.Error()
	}
	for _, a := range shown {
		out.Updates = append(out.Updates, mapUpdate(a))
	}
	if len(out.Updates) == 0 {
		out.Message = MessageNoUpdates
	}
	return out
}

func mapUpdate(a models.ImpactAssessment) dto.UpdateDTO {
	u := dto.UpdateDTO{
		Source:      a.Entry.Source,
		PublishedAt: a.Entry.PublishedAt,
		Title:       a.Entry.Title,
		Summary:     a.Entry.Summary,
		Link:        a.Entry.Link,
		Analysis:    a.AnalysisText,
		Backend:     a.Backend,
		Urgent:      a.Urgent,
	}
	if a.Err != nil {
		u.ErrorKind = summarizer.KindOf(a.Err).String()
	}
	return u
}
