package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/link/inventory-platform/internal/inventory/domain"
	"github.com/link/inventory-platform/pkg/logger"
)

// Config selects the brokers and topic. No brokers means publishing is disabled.
type Config struct {
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

// Publisher wraps Kafka producer
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewProducerConfig returns the sarama settings the publisher relies on.
func NewProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = 3
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.MaxMessageBytes = 1000000
	return config
}

// NewPublisher creates a new Kafka publisher
func NewPublisher(cfg Config) (*Publisher, error) {
	producer, err := sarama.NewSyncProducer(cfg.Brokers, NewProducerConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.Logger.Info().
		Strs("brokers", cfg.Brokers).
		Str("topic", topicOrDefault(cfg.Topic)).
		Msg("Kafka publisher initialized")

	return NewPublisherWithProducer(producer, cfg.Topic), nil
}

// NewPublisherWithProducer publishes through an existing producer.
func NewPublisherWithProducer(producer sarama.SyncProducer, topic string) *Publisher {
	return &Publisher{producer: producer, topic: topicOrDefault(topic)}
}

// PublishStockMovement publishes an inventory changed event with tracing
func (p *Publisher) PublishStockMovement(ctx context.Context, movement domain.StockMovement) error {
	tracer := otel.Tracer("kafka-publisher")
	ctx, span := tracer.Start(ctx, "kafka.publish.inventory_changed",
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination", p.topic),
			attribute.String("messaging.destination_kind", "topic"),
			attribute.String("event.type", EventTypeInventoryChanged),
			attribute.Int64("inventory.id", int64(movement.InventoryID)),
			attribute.Int64("product.id", int64(movement.ProductID)),
			attribute.Int("inventory.quantity_change", movement.QuantityChange),
		),
	)
	defer span.End()

	event := InventoryChangedEvent{
		EventID:        uuid.NewString(),
		EventType:      EventTypeInventoryChanged,
		InventoryID:    movement.InventoryID,
		ProductID:      movement.ProductID,
		Operation:      string(movement.Operation),
		QuantityChange: movement.QuantityChange,
		OldQuantity:    movement.OldQuantity,
		NewQuantity:    movement.NewQuantity,
		Reason:         movement.Reason,
		Timestamp:      movement.OccurredAt,
	}

	span.SetAttributes(attribute.String("event.id", event.EventID))

	eventBytes, err := json.Marshal(event)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to marshal event")
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// Inject trace context into Kafka headers
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	headers := []sarama.RecordHeader{
		{Key: []byte("event_type"), Value: []byte(EventTypeInventoryChanged)},
		{Key: []byte("event_id"), Value: []byte(event.EventID)},
	}
	for key, value := range carrier {
		headers = append(headers, sarama.RecordHeader{Key: []byte(key), Value: []byte(value)})
	}

	msg := &sarama.ProducerMessage{
		Topic:   p.topic,
		Key:     sarama.StringEncoder(fmt.Sprintf("inventory_%d", event.InventoryID)),
		Value:   sarama.ByteEncoder(eventBytes),
		Headers: headers,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to send message")
		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	span.SetAttributes(
		attribute.Int("messaging.kafka.partition", int(partition)),
		attribute.Int64("messaging.kafka.offset", offset),
	)
	span.SetStatus(codes.Ok, "Event published successfully")

	logger.Debug(ctx).
		Str("event_id", event.EventID).
		Str("topic", p.topic).
		Int32("partition", partition).
		Int64("offset", offset).
		Uint("inventory_id", event.InventoryID).
		Msg("Inventory changed event published")

	return nil
}

// Close closes the Kafka producer
func (p *Publisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}

// NoopPublisher drops every movement. It stands in when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishStockMovement(context.Context, domain.StockMovement) error {
	return nil
}

func (NoopPublisher) Close() error { return nil }

func topicOrDefault(topic string) string {
	if topic == "" {
		return TopicInventoryChanged
	}
	return topic
}
