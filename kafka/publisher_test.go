package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/link/inventory-platform/internal/inventory/domain"
)

func movement() domain.StockMovement {
	return domain.StockMovement{
		InventoryID:    12,
		ProductID:      4,
		Operation:      domain.OperationRemoved,
		QuantityChange: -2,
		OldQuantity:    9,
		NewQuantity:    7,
		Reason:         "SALE",
		OccurredAt:     time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC),
	}
}

func TestPublishStockMovement(t *testing.T) {
	producer := mocks.NewSyncProducer(t, NewProducerConfig())

	var sent InventoryChangedEvent
	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		assert.Equal(t, TopicInventoryChanged, msg.Topic)

		key, err := msg.Key.Encode()
		require.NoError(t, err)
		assert.Equal(t, "inventory_12", string(key))

		headers := map[string]string{}
		for _, h := range msg.Headers {
			headers[string(h.Key)] = string(h.Value)
		}
		assert.Equal(t, EventTypeInventoryChanged, headers["event_type"])
		assert.NotEmpty(t, headers["event_id"])

		value, err := msg.Value.Encode()
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(value, &sent))
		assert.Equal(t, headers["event_id"], sent.EventID)
		return nil
	})

	publisher := NewPublisherWithProducer(producer, "")
	require.NoError(t, publisher.PublishStockMovement(context.Background(), movement()))
	require.NoError(t, publisher.Close())

	assert.Equal(t, EventTypeInventoryChanged, sent.EventType)
	assert.Equal(t, uint(12), sent.InventoryID)
	assert.Equal(t, "REMOVED", sent.Operation)
	assert.Equal(t, -2, sent.QuantityChange)
	assert.Equal(t, 9, sent.OldQuantity)
	assert.Equal(t, 7, sent.NewQuantity)
	assert.Equal(t, "SALE", sent.Reason)
	assert.True(t, movement().OccurredAt.Equal(sent.Timestamp))
}

func TestPublishStockMovement_CustomTopic(t *testing.T) {
	producer := mocks.NewSyncProducer(t, NewProducerConfig())
	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != "stock-audit" {
			return errors.New("unexpected topic " + msg.Topic)
		}
		return nil
	})

	publisher := NewPublisherWithProducer(producer, "stock-audit")
	require.NoError(t, publisher.PublishStockMovement(context.Background(), movement()))
	require.NoError(t, publisher.Close())
}

func TestPublishStockMovement_SendFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, NewProducerConfig())
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	publisher := NewPublisherWithProducer(producer, "")
	err := publisher.PublishStockMovement(context.Background(), movement())
	require.NoError(t, publisher.Close())

	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
}

func TestNoopPublisher(t *testing.T) {
	var p NoopPublisher
	assert.NoError(t, p.PublishStockMovement(context.Background(), movement()))
	assert.NoError(t, p.Close())
}
