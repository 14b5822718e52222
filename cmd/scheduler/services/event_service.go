package services

import (
	"context"
	"fmt"

	"tramibot/eventbus"
	"tramibot/events"
	"tramibot/scanner"
)

const eventSource = "scheduler"

// EventService 스케줄러용 이벤트 발행 서비스
type EventService struct {
	publisher eventbus.Publisher
}

func NewEventService(publisher eventbus.Publisher) *EventService {
	return &EventService{publisher: publisher}
}

// PublishScanCompleted 정기 스캔 완료 이벤트 발행
func (s *EventService) PublishScanCompleted(ctx context.Context, res scanner.Result) (events.BulletinScanCompletedEvent, error) {
	evt := events.NewBulletinScanCompleted(eventSource, res.ScannedAt, res.Scanned, res.Assessments, res.FeedError)

	data, eventType, err := events.SerializeEvent(evt)
	if err != nil {
		return evt, err
	}
	msg := eventbus.NewEvent(evt.ID, string(eventType), data)
	if err := s.publisher.Publish(ctx, eventbus.TopicBulletinEvents, msg); err != nil {
		return evt, fmt.Errorf("failed to publish %s: %w", eventType, err)
	}
	return evt, nil
}
