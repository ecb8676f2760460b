package consumer

import (
	"context"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trade-navigator-service/internal/entity"
)

type fakeUsageStore struct {
	inserted []*entity.UsageRecord
	err      error
}

func (f *fakeUsageStore) InsertUsage(_ context.Context, record *entity.UsageRecord) error {
	if f.err != nil {
		return f.err
	}
	f.inserted = append(f.inserted, record)
	return nil
}

func TestProcessMessage_PersistsRecordedUsage(t *testing.T) {
	store := &fakeUsageStore{}
	c := NewConsumer(store)

	msg := kafka.Message{
		Key:   []byte("usage.recorded.res-1"),
		Value: []byte(`{"user_id": "user-1", "product_id": "prod-1", "result_id": "res-1", "target_margin": 20, "scenario_count": 2}`),
	}
	c.processMessage(context.Background(), msg)

	require.Len(t, store.inserted, 1)
	assert.Equal(t, "res-1", store.inserted[0].ResultID)
	assert.Equal(t, "user-1", store.inserted[0].UserID)
	assert.Equal(t, 2, store.inserted[0].ScenarioCount)
}

func TestProcessMessage_IgnoresUnknownEventType(t *testing.T) {
	store := &fakeUsageStore{}
	c := NewConsumer(store)

	msg := kafka.Message{
		Key:   []byte("usage.deleted.res-1"),
		Value: []byte(`{"result_id": "res-1"}`),
	}
	c.processMessage(context.Background(), msg)

	assert.Empty(t, store.inserted)
}

func TestProcessMessage_IgnoresMalformedPayload(t *testing.T) {
	store := &fakeUsageStore{}
	c := NewConsumer(store)

	msg := kafka.Message{
		Key:   []byte("usage.recorded.res-1"),
		Value: []byte("{"),
	}
	c.processMessage(context.Background(), msg)

	assert.Empty(t, store.inserted)
}

func TestProcessMessage_IgnoresMalformedKey(t *testing.T) {
	store := &fakeUsageStore{}
	c := NewConsumer(store)

	msg := kafka.Message{
		Key:   []byte("usage"),
		Value: []byte(`{"result_id": "res-1"}`),
	}
	c.processMessage(context.Background(), msg)

	assert.Empty(t, store.inserted)
}
