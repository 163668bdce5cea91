package kafka

import "time"

// InventoryChangedEvent is emitted for every applied stock movement
type InventoryChangedEvent struct {
	EventID        string    `json:"event_id"`
	EventType      string    `json:"event_type"`
	InventoryID    uint      `json:"inventory_id"`
	ProductID      uint      `json:"product_id"`
	Operation      string    `json:"operation"`
	QuantityChange int       `json:"quantity_change"`
	OldQuantity    int       `json:"old_quantity"`
	NewQuantity    int       `json:"new_quantity"`
	Reason         string    `json:"reason"`
	Timestamp      time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeInventoryChanged = "inventory.changed"
)

// Kafka topics
const (
	TopicInventoryChanged = "inventory-changed"
)
