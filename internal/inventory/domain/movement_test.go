package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewStockMovement(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	updated := &Inventory{ID: 3, ProductID: 9, Quantity: 7, LastUpdated: at}

	removed := NewStockMovement(updated, -3, "")
	assert.Equal(t, StockMovement{
		InventoryID:    3,
		ProductID:      9,
		Operation:      OperationRemoved,
		QuantityChange: -3,
		OldQuantity:    10,
		NewQuantity:    7,
		Reason:         DefaultReason,
		OccurredAt:     at,
	}, removed)

	assert.Equal(t, 3, removed.Amount())

	added := NewStockMovement(updated, 4, "RESTOCK")
	assert.Equal(t, OperationAdded, added.Operation)
	assert.Equal(t, 3, added.OldQuantity)
	assert.Equal(t, 4, added.Amount())
	assert.Equal(t, "RESTOCK", added.Reason)

	unchanged := NewStockMovement(updated, 0, "")
	assert.Equal(t, OperationRemoved, unchanged.Operation)
	assert.Equal(t, 7, unchanged.OldQuantity)
	assert.Zero(t, unchanged.Amount())
}

func TestErrors(t *testing.T) {
	assert.EqualError(t, &InventoryNotFoundError{ProductID: 5}, "Inventory not found for product ID: 5")
	assert.EqualError(t, &InventoryNotFoundError{ID: 2}, "Inventory not found for ID: 2")
	assert.ErrorIs(t, &InventoryNotFoundError{ID: 2}, ErrInventoryNotFound)
	assert.EqualError(t, &InventoryAlreadyExistsError{ProductID: 5}, "Inventory already exists for product ID: 5")
	assert.EqualError(t, &InsufficientStockError{Available: 2, Requested: 5}, "Insufficient stock. Available: 2, Requested: 5")
	assert.ErrorIs(t, &InsufficientStockError{}, ErrInsufficientStock)
	assert.EqualError(t, &ProductNotFoundError{ID: 11}, "Product with ID does not exist: 11")
	assert.ErrorIs(t, &ProductNotFoundError{ID: 11}, ErrProductNotFound)
}
