package domain

import (
	"context"
	"time"
)

type Operation string

const (
	OperationAdded   Operation = "ADDED"
	OperationRemoved Operation = "REMOVED"
)

// DefaultReason is recorded when a quantity change comes without a reason.
const DefaultReason = "NOT_SPECIFIED"

// StockMovement describes one applied quantity change.
type StockMovement struct {
	InventoryID    uint
	ProductID      uint
	Operation      Operation
	QuantityChange int
	OldQuantity    int
	NewQuantity    int
	Reason         string
	OccurredAt     time.Time
}

// NewStockMovement derives the movement from the updated inventory and the change applied to it.
func NewStockMovement(updated *Inventory, change int, reason string) StockMovement {
	op := OperationRemoved
	if change > 0 {
		op = OperationAdded
	}
	if reason == "" {
		reason = DefaultReason
	}

	return StockMovement{
		InventoryID:    updated.ID,
		ProductID:      updated.ProductID,
		Operation:      op,
		QuantityChange: change,
		OldQuantity:    updated.Quantity - change,
		NewQuantity:    updated.Quantity,
		Reason:         reason,
		OccurredAt:     updated.LastUpdated,
	}
}

// StockMovementPublisher emits stock movements to interested consumers.
type StockMovementPublisher interface {
	PublishStockMovement(ctx context.Context, movement StockMovement) error
}

// Amount is the size of the change regardless of its direction.
func (m StockMovement) Amount() int {
	if m.QuantityChange < 0 {
		return -m.QuantityChange
	}
	return m.QuantityChange
}
