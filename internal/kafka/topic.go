package kafka

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"mf-api/internal/config"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

func EnsureTopic(cfg config.KafkaConfig) error {
	// Dial the Kafka broker to create a connection for administrative tasks
	conn, err := kafkaGo.Dial("tcp", cfg.BrokerURL)
	if err != nil {
		return fmt.Errorf("dial kafka: %w", err)
	}
	defer conn.Close()

	controller, err := conn.Controller()
	if err != nil {
		return fmt.Errorf("get kafka controller: %w", err)
	}

	controllerConn, err := kafkaGo.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	if err != nil {
		return fmt.Errorf("dial kafka controller: %w", err)
	}
	defer controllerConn.Close()

	// Creating an existing topic is not an error.
	err = controllerConn.CreateTopics(kafkaGo.TopicConfig{
		Topic:             cfg.Topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	})
	if err != nil {
		return fmt.Errorf("create kafka topic %q: %w", cfg.Topic, err)
	}
	return nil
}

// EnsureTopicWithRetry calls EnsureTopic until it succeeds, attempts run
// out or ctx is done.
func EnsureTopicWithRetry(ctx context.Context, cfg config.KafkaConfig, log logrus.FieldLogger, attempts int, delay time.Duration) error {
	return retry(ctx, attempts, delay, func() error {
		err := EnsureTopic(cfg)
		if err != nil {
			log.WithError(err).WithField("topic", cfg.Topic).Warn("could not ensure kafka topic, retrying")
			return err
		}
		log.WithField("topic", cfg.Topic).Info("kafka topic is ready")
		return nil
	})
}

func retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	var err error
	for i := 0; i < attempts; i++ {
		if err = fn(); err == nil {
			return nil
		}
		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return fmt.Errorf("gave up after %d attempts: %w", attempts, err)
}
