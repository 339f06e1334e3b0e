package storage

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"star-barista/internal/domain"
)

type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

// PublishCheckout emits a checkout event keyed by username so one user's
// checkouts stay on one partition.
func (p *KafkaPublisher) PublishCheckout(ctx context.Context, event domain.CheckoutEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Username),
		Value: payload,
	})
}
