package consumer

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"

	"trade-navigator-service/internal/config"
	"trade-navigator-service/internal/entity"
)

// UsageStore persists usage events pulled off the broker.
type UsageStore interface {
	InsertUsage(ctx context.Context, record *entity.UsageRecord) error
}

// Consumer drains usage events and writes them to the usage history table.
type Consumer struct {
	usageStore UsageStore
}

// NewConsumer creates a new instance of Consumer.
func NewConsumer(usageStore UsageStore) *Consumer {
	return &Consumer{usageStore: usageStore}
}

// StartKafkaConsumer starts a Kafka consumer to listen for usage events
func (c *Consumer) StartKafkaConsumer() {
	usageReader := config.NewKafkaReader(config.UsageTopic, "trade-navigator-group")

	for {
		// Read message from usage topic
		ctx := context.Background()
		msg, err := usageReader.ReadMessage(ctx)
		if err != nil {
			log.Error().Msgf("Error reading message: %v", err)
			continue
		}

		// Process message
		c.processMessage(ctx, msg)
	}
}

// processMessage processes the message received from the Kafka topic
func (c *Consumer) processMessage(ctx context.Context, msg kafka.Message) {
	var record entity.UsageRecord

	err := json.Unmarshal(msg.Value, &record)
	if err != nil {
		log.Error().Msgf("Error unmarshalling message: %v", err)
		return
	}

	// key -> "usage.recorded.<result-id>"
	key := string(msg.Key)
	listKey := strings.Split(key, ".")
	if len(listKey) < 2 {
		log.Error().Msgf("Malformed event key: %s", key)
		return
	}
	eventType := listKey[1]

	switch eventType {
	case "recorded":
		if err := c.usageStore.InsertUsage(ctx, &record); err != nil {
			log.Error().Msgf("Error persisting usage record for result %s: %v", record.ResultID, err)
		}
	default:
		log.Error().Msgf("Unknown usage event type: %s", eventType)
	}
}
