package command

import (
	"context"
	"time"

	"github.com/link/inventory-platform/internal/inventory/domain"
	"github.com/link/inventory-platform/pkg/logger"
)

// UpdateQuantityCommand adds QuantityChange, which may be negative, to an inventory
type UpdateQuantityCommand struct {
	InventoryID    uint
	QuantityChange int
	Reason         string
}

// UpdateQuantityHandler handles update quantity command
type UpdateQuantityHandler struct {
	repo      domain.InventoryRepository
	catalog   domain.ProductCatalog
	publisher domain.StockMovementPublisher
}

func NewUpdateQuantityHandler(
	repo domain.InventoryRepository,
	catalog domain.ProductCatalog,
	publisher domain.StockMovementPublisher,
) *UpdateQuantityHandler {
	return &UpdateQuantityHandler{repo: repo, catalog: catalog, publisher: publisher}
}

// Handle applies the change atomically and then announces the movement.
// Neither a failed publish nor a failed product name lookup undoes the change.
func (h *UpdateQuantityHandler) Handle(ctx context.Context, cmd UpdateQuantityCommand) (*domain.Inventory, error) {
	inventory, err := h.repo.AdjustQuantity(ctx, cmd.InventoryID, cmd.QuantityChange, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	movement := domain.NewStockMovement(inventory, cmd.QuantityChange, cmd.Reason)

	logger.Info(ctx).
		Uint("inventoryId", movement.InventoryID).
		Uint("productId", movement.ProductID).
		Str("operation", string(movement.Operation)).
		Int("quantityChange", movement.Amount()).
		Int("oldQuantity", movement.OldQuantity).
		Int("newQuantity", movement.NewQuantity).
		Str("reason", movement.Reason).
		Msg("INVENTORY CHANGED")

	if err := h.publisher.PublishStockMovement(ctx, movement); err != nil {
		logger.Error(ctx).
			Err(err).
			Uint("inventoryId", movement.InventoryID).
			Msg("Failed to publish stock movement")
	}

	product, err := h.catalog.GetProduct(ctx, inventory.ProductID)
	if err != nil {
		logger.Warn(ctx).
			Err(err).
			Uint("productId", inventory.ProductID).
			Msg("Product name unavailable for updated inventory")
		return inventory, nil
	}

	inventory.ProductName = product.Name
	return inventory, nil
}
