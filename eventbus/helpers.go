package eventbus

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"tramibot/config"
)

// NewEvent 는 이미 직렬화된 payload 로 Event 를 구성합니다.
// id가 빈 문자열이면 UUID 를 생성합니다.
func NewEvent(id, eventType string, payload []byte) Event {
	if id == "" {
		id = uuid.NewString()
	}
	return Event{
		ID:        id,
		Type:      eventType,
		CreatedAt: time.Now().UTC(),
		Payload:   payload,
	}
}

// New 는 KAFKA_BOOTSTRAP_SERVERS 가 설정되어 있으면 Kafka Publisher 를,
// 아니면 로그만 남기는 NoopPublisher 를 반환합니다.
func New(secrets config.Secrets) (Publisher, error) {
	if secrets.KafkaBrokers == "" {
		config.Logger.Info("KAFKA_BOOTSTRAP_SERVERS is not set, scan events will not be published")
		return &NoopPublisher{}, nil
	}
	return NewKafkaEventBus(secrets.KafkaBrokers)
}

// NoopPublisher 는 이벤트를 발행하지 않고 기록만 합니다.
type NoopPublisher struct {
	mu     sync.Mutex
	events []Event
	closed bool
}

func (n *NoopPublisher) Publish(_ context.Context, topic Topic, event Event) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return ErrPublisherClosed
	}
	n.events = append(n.events, event)
	config.Logger.Debugf("noop publish %s to %s", event.ID, topic.Base())
	return nil
}

// Events 는 지금까지 기록된 이벤트의 복사본입니다.
func (n *NoopPublisher) Events() []Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Event, len(n.events))
	copy(out, n.events)
	return out
}

func (n *NoopPublisher) Close() {
	n.mu.Lock()
	n.closed = true
	n.mu.Unlock()
}
