package trends

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"

	"star-barista/internal/domain"
)

type Consumer struct {
	Reader *kafka.Reader
	Store  StoreInterface
}

func NewConsumer(reader *kafka.Reader, store StoreInterface) *Consumer {
	return &Consumer{Reader: reader, Store: store}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting trends consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.CheckoutEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		if event.Type == domain.EventTypeCheckout {
			c.ProcessCheckout(ctx, event)
		}
	}
}

func (c *Consumer) ProcessCheckout(ctx context.Context, event domain.CheckoutEvent) {
	if event.Type != domain.EventTypeCheckout {
		return
	}
	log.Printf("Processing checkout: user=%s order=%d items=%d", event.Username, event.OrderID, len(event.Items))

	if err := c.Store.RecordCheckout(ctx, event); err != nil {
		log.Printf("Error recording checkout trends: %v", err)
		return
	}
}
