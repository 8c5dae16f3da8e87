package processor

import (
	"context"
	"errors"
	"time"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

type Reader interface {
	FetchMessage(ctx context.Context) (kafkaGo.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkaGo.Message) error
}

// Processor keeps per-item favorite counters in step with the favorite
// events topic.
type Processor struct {
	store Store
	log   logrus.FieldLogger
	now   func() time.Time
}

func NewProcessor(store Store, log logrus.FieldLogger) *Processor {
	return &Processor{store: store, log: log, now: time.Now}
}

// Handle applies one message. Malformed messages are logged and dropped;
// only storage failures are returned, so the message is not committed.
func (p *Processor) Handle(ctx context.Context, m kafkaGo.Message) error {
	log := p.log.WithFields(logrus.Fields{
		"topic":     m.Topic,
		"partition": m.Partition,
		"offset":    m.Offset,
	})

	delta, err := TransformMessage(m)
	if err != nil {
		log.WithError(err).WithField("value", string(m.Value)).Warn("dropping bad message")
		return nil
	}
	if delta == nil {
		log.Debug("skipping message of unknown type")
		return nil
	}

	now := p.now().UTC()
	delta.Event.ProcessedAt = now

	err = p.store.Apply(ctx, &delta.Event, delta.Inc, now)
	if errors.Is(err, ErrAlreadyProcessed) {
		log.Info("message already processed")
		return nil
	}
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"item_id":   delta.Event.ItemID,
		"item_type": delta.Event.ItemType,
		"inc":       delta.Inc,
	}).Debug("favorite count updated")
	return nil
}

// Run reads until ctx is done or the reader fails. A message is committed
// only after Handle succeeds.
func (p *Processor) Run(ctx context.Context, r Reader) error {
	for {
		m, err := r.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		if err := p.Handle(ctx, m); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		if err := r.CommitMessages(ctx, m); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
	}
}
