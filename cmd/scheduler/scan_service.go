package main

import (
	"context"
	"fmt"

	"tramibot/cmd/scheduler/services"
	"tramibot/config"
	"tramibot/scanner"
	"tramibot/trace"
)

// ScanService 정기 스캔 한 번을 수행하고 결과를 기록/발행한다.
type ScanService struct {
	scanner      *scanner.Scanner
	eventService *services.EventService
	displayLimit int
}

func NewScanService(s *scanner.Scanner, eventService *services.EventService, displayLimit int) *ScanService {
	return &ScanService{
		scanner:      s,
		eventService: eventService,
		displayLimit: displayLimit,
	}
}

// RunOnce 는 트리거의 Job 이다. 피드 조회 실패는 에러로 반환해 트리거 로그에 남긴다.
func (s *ScanService) RunOnce(ctx context.Context) error {
	// 정기 실행은 inbound 요청이 없으므로 새 request_id 로 외부 호출을 묶는다.
	ctx = trace.NewContext(ctx)
	res := s.scanner.Scan(ctx)

	for _, a := range scanner.Display(res.Assessments, s.displayLimit) {
		config.InfoWithFields("bulletin update", config.Fields{
			"request_id": trace.RequestIDFromContext(ctx),
			"title":      a.Entry.Title,
			"link":       a.Entry.Link,
			"urgent":     a.Urgent,
			"backend":    a.Backend,
			"analysis":   a.AnalysisText,
		})
	}
	if res.FeedError == nil && len(res.Assessments) == 0 {
		config.Logger.Info("no updates found")
	}

	evt, err := s.eventService.PublishScanCompleted(ctx, res)
	if err != nil {
		config.Logger.Errorf("failed to publish scan event: %v", err)
	} else {
		config.Logger.Infof("published %s event %s (relevant=%d)", evt.Type, evt.ID, evt.Relevant)
	}

	if res.FeedError != nil {
		return fmt.Errorf("bulletin feed unavailable: %w", res.FeedError)
	}
	return nil
}
