package processor

import (
	"encoding/json"
	"fmt"

	"mf-api/internal/models"

	kafkaGo "github.com/segmentio/kafka-go"
)

// Delta is the count change carried by one favorite event.
type Delta struct {
	Event models.ProcessedEvent
	Inc   int64
}

// MessageKey is the idempotency key of a Kafka message.
func MessageKey(m kafkaGo.Message) string {
	return fmt.Sprintf("%s-%d-%d", m.Topic, m.Partition, m.Offset)
}

// TransformMessage decodes a favorite event. Unknown event types return
// (nil, nil) and are skipped.
func TransformMessage(m kafkaGo.Message) (*Delta, error) {
	var ev models.FavoriteEvent
	if err := json.Unmarshal(m.Value, &ev); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	var inc int64
	switch ev.Type {
	case models.EventFavoriteAdded:
		inc = 1
	case models.EventFavoriteRemoved:
		inc = -1
	default:
		return nil, nil
	}

	if ev.ItemID == "" || ev.ItemType == "" {
		return nil, fmt.Errorf("%s event without itemId or itemType", ev.Type)
	}

	return &Delta{
		Event: models.ProcessedEvent{
			MessageKey: MessageKey(m),
			Type:       ev.Type,
			UserID:     ev.UserID,
			ItemID:     ev.ItemID,
			ItemType:   ev.ItemType,
			ItemName:   ev.ItemName,
			At:         ev.At,
		},
		Inc: inc,
	}, nil
}
