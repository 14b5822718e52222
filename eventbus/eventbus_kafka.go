package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"

	"tramibot/config"
)

// KafkaEventBus는 confluent-kafka-go 라이브러리를 사용한 Publisher 구현체입니다.
type KafkaEventBus struct {
	Producer *kafka.Producer
	Brokers  string

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

// NewKafkaEventBus는 Kafka Producer를 초기화합니다.
func NewKafkaEventBus(brokers string) (*KafkaEventBus, error) {
	p, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": brokers,
		"acks":              "all",
		"retries":           5, // Producer는 일시적인 오류 발생 시 최대 5회 재시도합니다.
	})
	if err != nil {
		return nil, fmt.Errorf("kafka Producer 생성 실패: %w", err)
	}

	k := &KafkaEventBus{
		Producer: p,
		Brokers:  brokers,
		done:     make(chan struct{}),
	}

	// Producer 이벤트를 처리하는 고루틴. Producer.Close 가 Events 채널을 닫으면 종료됩니다.
	go func() {
		defer close(k.done)
		for e := range p.Events() {
			switch ev := e.(type) {
			case *kafka.Message:
				if ev.TopicPartition.Error != nil {
					config.Logger.Errorf("메시지 전달 실패 %v: %v", ev.TopicPartition, ev.TopicPartition.Error)
				}
			case kafka.Error:
				config.Logger.Errorf("Kafka 오류: %v", ev)
			}
		}
	}()

	return k, nil
}

// Close는 Producer를 안전하게 종료합니다.
func (k *KafkaEventBus) Close() {
	k.mu.Lock()
	if k.closed || k.Producer == nil {
		k.mu.Unlock()
		return
	}
	k.closed = true
	k.mu.Unlock()

	// 5초 동안 남은 메시지를 모두 플러시합니다.
	if remaining := k.Producer.Flush(5000); remaining > 0 {
		config.Logger.Warnf("플러시 후에도 %d개의 메시지가 남아 있습니다.", remaining)
	}
	k.Producer.Close()
	<-k.done
	config.Logger.Info("Kafka Producer 종료.")
}

// Publish는 지정된 토픽에 이벤트를 발행하고 전달 보고를 기다립니다.
// 전달에 실패하면 같은 이벤트를 DLQ 토픽에 한 번 더 기록해 둡니다.
func (k *KafkaEventBus) Publish(ctx context.Context, topic Topic, event Event) error {
	k.mu.RLock()
	defer k.mu.RUnlock()
	if k.closed {
		return ErrPublisherClosed
	}

	err := k.produce(ctx, topic.Base(), event)
	if err == nil {
		return nil
	}
	if ctx.Err() != nil {
		return err
	}

	config.Logger.Errorf("이벤트 %s 발행 실패, DLQ %s 로 전송: %v", event.ID, topic.DLQ(), err)
	if dlqErr := k.produce(ctx, topic.DLQ(), event); dlqErr != nil {
		config.Logger.Errorf("DLQ %s 발행 실패: %v", topic.DLQ(), dlqErr)
	}
	return err
}

func (k *KafkaEventBus) produce(ctx context.Context, topic string, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("이벤트 마샬링 실패: %w", err)
	}

	// 버퍼가 있으므로 ctx 취소 후 늦게 도착한 전달 보고도 블록되지 않습니다.
	deliveryChan := make(chan kafka.Event, 1)

	err = k.Producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
		Value:          data,
		Key:            []byte(event.ID),
		Headers:        []kafka.Header{{Key: "event_type", Value: []byte(event.Type)}},
	}, deliveryChan)
	if err != nil {
		return fmt.Errorf("메시지 발행 실패: %w", err)
	}

	select {
	case ev := <-deliveryChan:
		m, ok := ev.(*kafka.Message)
		if !ok {
			return fmt.Errorf("예상하지 못한 전달 보고: %v", ev)
		}
		if m.TopicPartition.Error != nil {
			return fmt.Errorf("메시지 전달 실패: %w", m.TopicPartition.Error)
		}
	case <-ctx.Done():
		return ctx.Err()
	}

	return nil
}
