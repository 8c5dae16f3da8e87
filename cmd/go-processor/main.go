package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"mf-api/internal/config"
	"mf-api/internal/kafka"
	"mf-api/internal/logger"
	mongoGo "mf-api/internal/mongo"
	"mf-api/internal/processor"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

func main() {
	// - Load Configuration
	cfg, err := config.LoadConfig("")
	if err != nil {
		logrus.Fatalf("Error loading configuration: %v", err)
	}
	if !cfg.EventsEnabled() {
		logrus.Fatal("KAFKA_BROKER_URL is required by the favorite events processor")
	}

	log, logCloser, err := logger.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		logrus.Fatalf("Error creating logger: %v", err)
	}
	defer logCloser.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// - Wait for Kafka to be truly ready.
	if err := kafka.EnsureTopicWithRetry(ctx, cfg.Kafka, log, 30, 2*time.Second); err != nil {
		log.WithError(err).Fatal("kafka topic is not available")
	}

	// - Setup Kafka Reader
	r := kafkaGo.NewReader(kafkaGo.ReaderConfig{
		Brokers: []string{cfg.Kafka.BrokerURL},
		Topic:   cfg.Kafka.Topic,
		GroupID: cfg.Kafka.GroupID,
		// first run of a new group counts every event still retained
		StartOffset: kafkaGo.FirstOffset,
	})
	defer func() {
		if err := r.Close(); err != nil {
			log.WithError(err).Error("failed to close Kafka Reader")
			return
		}
		log.Info("Kafka Reader closed")
	}()
	log.WithField("group_id", cfg.Kafka.GroupID).Info("Kafka reader configured")

	// - Setup MongoDB database
	DB, err := mongoGo.ConnectDB(cfg.MongoDB)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := DB.Disconnect(ctx); err != nil {
			log.WithError(err).Error("error during MongoDB disconnect")
			return
		}
		log.Info("MongoDB client disconnected")
	}()

	m := cfg.MongoDB
	store, err := processor.NewMongoStore(ctx, DB,
		mongoGo.GetCollection(DB, m.DatabaseName, m.FavoriteEventsCollectionName),
		mongoGo.GetCollection(DB, m.DatabaseName, m.FavoriteCountsCollectionName),
	)
	if err != nil {
		log.WithError(err).Fatal("failed to inspect MongoDB deployment")
	}
	if !store.Transactional() {
		log.Warn("MongoDB does not support transactions; a crash between writes can drop a count")
	}
	if err := store.EnsureIndexes(ctx); err != nil {
		log.WithError(err).Warn("could not create processor indexes (may already exist)")
	}

	// - The Read Loop
	log.Info("waiting for messages")
	if err := processor.NewProcessor(store, log).Run(ctx, r); err != nil {
		log.WithError(err).Error("processor stopped")
		return
	}
	log.Info("processor stopped")
}
