package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// Topic은 Kafka 토픽 이름입니다. DLQ 토픽 이름도 여기서 파생합니다.
type Topic struct {
	base string
}

func NewTopic(base string) Topic {
	return Topic{base: base}
}

func (t Topic) Base() string {
	return t.base
}

// DLQ는 발행에 끝내 실패한 이벤트를 보관할 토픽 이름을 반환합니다 (예: my_topic.dlq).
func (t Topic) DLQ() string {
	return t.base + ".dlq"
}

// Event는 Kafka 메시지의 페이로드로 사용되는 구조체입니다.
type Event struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	CreatedAt time.Time       `json:"created_at"`
	Payload   json.RawMessage `json:"payload"`
}

// Publisher는 이벤트 발행의 추상화입니다.
// Kafka 설정이 없는 환경에서는 NoopPublisher 가 사용됩니다.
type Publisher interface {
	Publish(ctx context.Context, topic Topic, event Event) error
	Close()
}

// ErrPublisherClosed는 Close 이후 Publish 를 호출했을 때 반환됩니다.
var ErrPublisherClosed = errors.New("eventbus: publisher closed")
