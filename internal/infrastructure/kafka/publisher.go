package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/solidtrack/timelock-service/internal/domain"
)

// UnlockEventPublisher writes unlock request lifecycle events to the
// unlock-request-events topic, keyed by organization so one tenant's
// events stay ordered.
type UnlockEventPublisher struct {
	writer *kafka.Writer
}

func NewUnlockEventPublisher(brokers []string, topic string) *UnlockEventPublisher {
	return &UnlockEventPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *UnlockEventPublisher) PublishUnlockRequestEvent(event domain.UnlockRequestEvent) error {
	msg, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(context.Background(), kafka.Message{
		Key:   []byte(event.OrganizationID),
		Value: msg,
		Time:  time.Now(),
	})
}

func (p *UnlockEventPublisher) Close() error {
	return p.writer.Close()
}
