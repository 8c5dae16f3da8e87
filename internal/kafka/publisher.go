package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mf-api/internal/config"
	"mf-api/internal/models"

	kafkaGo "github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkaGo.Message) error
	Close() error
}

// Publisher writes favorite events to Kafka, keyed by user so that one
// user's events stay ordered.
type Publisher struct {
	w messageWriter
}

func NewPublisher(cfg config.KafkaConfig) *Publisher {
	return &Publisher{w: &kafkaGo.Writer{
		Addr:                   kafkaGo.TCP(cfg.BrokerURL),
		Topic:                  cfg.Topic,
		Balancer:               &kafkaGo.Hash{},
		RequiredAcks:           kafkaGo.RequireOne,
		BatchTimeout:           10 * time.Millisecond,
		WriteTimeout:           5 * time.Second,
		AllowAutoTopicCreation: false,
	}}
}

func (p *Publisher) Publish(ctx context.Context, event models.FavoriteEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal favorite event: %w", err)
	}
	return p.w.WriteMessages(ctx, kafkaGo.Message{
		Key:   []byte(event.UserID),
		Value: value,
		Time:  event.At,
	})
}

func (p *Publisher) Close() error {
	return p.w.Close()
}
