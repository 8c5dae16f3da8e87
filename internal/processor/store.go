package processor

import (
	"context"
	"errors"
	"time"

	"mf-api/internal/models"
	mongoGo "mf-api/internal/mongo"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrAlreadyProcessed = errors.New("event already processed")

type Store interface {
	EnsureIndexes(ctx context.Context) error
	// Apply records ev as processed and adjusts its counter by inc. It
	// returns ErrAlreadyProcessed when ev was applied before.
	Apply(ctx context.Context, ev *models.ProcessedEvent, inc int64, now time.Time) error
}

type MongoStore struct {
	client *mongo.Client
	events *mongo.Collection
	counts *mongo.Collection
	// replica sets and mongos run both writes in one transaction
	transactions bool
}

// NewMongoStore asks the server whether it supports transactions.
func NewMongoStore(ctx context.Context, client *mongo.Client, events, counts *mongo.Collection) (*MongoStore, error) {
	var hello struct {
		SetName string `bson:"setName"`
		Msg     string `bson:"msg"`
	}
	err := client.Database("admin").RunCommand(ctx, bson.D{{Key: "hello", Value: 1}}).Decode(&hello)
	if err != nil {
		return nil, err
	}
	return &MongoStore{
		client:       client,
		events:       events,
		counts:       counts,
		transactions: hello.SetName != "" || hello.Msg == "isdbgrid",
	}, nil
}

func (s *MongoStore) Transactional() bool {
	return s.transactions
}

func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.events.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "messageKey", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}
	_, err = s.counts.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "itemType", Value: 1}, {Key: "itemId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (s *MongoStore) Apply(ctx context.Context, ev *models.ProcessedEvent, inc int64, now time.Time) error {
	if s.transactions {
		sess, err := s.client.StartSession()
		if err != nil {
			return err
		}
		defer sess.EndSession(ctx)

		_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
			if err := s.recordEvent(sc, ev); err != nil {
				return nil, err
			}
			return nil, s.adjustCount(sc, ev, inc, now)
		})
		return err
	}

	// Standalone server: a crash between the two writes loses this count.
	if err := s.recordEvent(ctx, ev); err != nil {
		return err
	}
	if err := s.adjustCount(ctx, ev, inc, now); err != nil {
		// let the redelivery count it
		if _, ferr := s.events.DeleteOne(ctx, bson.M{"messageKey": ev.MessageKey}); ferr != nil {
			return errors.Join(err, ferr)
		}
		return err
	}
	return nil
}

func (s *MongoStore) recordEvent(ctx context.Context, ev *models.ProcessedEvent) error {
	_, err := s.events.InsertOne(ctx, ev)
	if mongoGo.IsDuplicateKeyError(err) {
		return ErrAlreadyProcessed
	}
	return err
}

// adjustCount applies inc to the item's counter. Increments upsert the
// counter; decrements never take it below zero.
func (s *MongoStore) adjustCount(ctx context.Context, ev *models.ProcessedEvent, inc int64, now time.Time) error {
	filter := bson.M{"itemType": ev.ItemType, "itemId": ev.ItemID}
	set := bson.M{"updatedAt": now}
	if ev.ItemName != "" {
		set["itemName"] = ev.ItemName
	}
	update := bson.M{"$inc": bson.M{"count": inc}, "$set": set}

	if inc > 0 {
		_, err := s.counts.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
		return err
	}

	filter["count"] = bson.M{"$gte": -inc}
	_, err := s.counts.UpdateOne(ctx, filter, update)
	return err
}
