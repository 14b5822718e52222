package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tramibot/models"
	"tramibot/summarizer"
)

// EventType 이벤트 타입 정의
type EventType string

const (
	BulletinScanCompleted EventType = "bulletin.scan_completed"
)

const eventVersion = "1.0"

// BaseEvent 모든 이벤트의 기본 구조
type BaseEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"` // "scheduler", "api" 등
	Version   string    `json:"version"`
}

// GetType 이벤트 타입을 반환
func (e BaseEvent) GetType() EventType {
	return e.Type
}

func newBase(t EventType, source string, ts time.Time) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      t,
		Timestamp: ts,
		Source:    source,
		Version:   eventVersion,
	}
}

// AssessmentPayload 관련 관보 항목 하나와 그 영향 분석
type AssessmentPayload struct {
	Source      string `json:"source"`
	PublishedAt string `json:"published_at"`
	Title       string `json:"title"`
	Summary     string `json:"summary"`
	Link        string `json:"link"`
	Analysis    string `json:"analysis"`
	Backend     string `json:"backend,omitempty"`
	Urgent      bool   `json:"urgent"`
	ErrorKind   string `json:"error_kind,omitempty"`
}

// BulletinScanCompletedEvent 정기 스캔 완료 이벤트
type BulletinScanCompletedEvent struct {
	BaseEvent
	ScannedAt   time.Time           `json:"scanned_at"`
	Scanned     int                 `json:"scanned"`
	Relevant    int                 `json:"relevant"`
	Urgent      int                 `json:"urgent"`
	FeedError   string              `json:"feed_error,omitempty"`
	Assessments []AssessmentPayload `json:"assessments"`
}

// NewAssessmentPayload 는 분석 결과를 이벤트 페이로드로 바꾼다.
func NewAssessmentPayload(a models.ImpactAssessment) AssessmentPayload {
	p := AssessmentPayload{
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
		p.ErrorKind = summarizer.KindOf(a.Err).String()
	}
	return p
}

// NewBulletinScanCompleted 는 스캔 결과로 이벤트를 만든다.
func NewBulletinScanCompleted(source string, scannedAt time.Time, scanned int, assessments []models.ImpactAssessment, feedErr error) BulletinScanCompletedEvent {
	evt := BulletinScanCompletedEvent{
		BaseEvent:   newBase(BulletinScanCompleted, source, time.Now().UTC()),
		ScannedAt:   scannedAt,
		Scanned:     scanned,
		Relevant:    len(assessments),
		Assessments: make([]AssessmentPayload, 0, len(assessments)),
	}
	if feedErr != nil {
		evt.FeedError = feedErr.Error()
	}
	for _, a := range assessments {
		if a.Urgent {
			evt.Urgent++
		}
		evt.Assessments = append(evt.Assessments, NewAssessmentPayload(a))
	}
	return evt
}

// Event 는 이벤트 버스로 나가는 모든 이벤트가 구현한다.
type Event interface {
	GetType() EventType
}

// SerializeEvent 이벤트를 JSON으로 직렬화하고 타입 정보 반환
func SerializeEvent(event Event) ([]byte, EventType, error) {
	switch event.(type) {
	case BulletinScanCompletedEvent, *BulletinScanCompletedEvent:
	default:
		return nil, "", fmt.Errorf("unknown event type: %T", event)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal event: %w", err)
	}

	return data, event.GetType(), nil
}
