package command

import (
	"context"
	"time"

	"github.com/link/inventory-platform/internal/inventory/domain"
	"github.com/link/inventory-platform/pkg/logger"
)

// CreateInventoryCommand represents the command to create an inventory
type CreateInventoryCommand struct {
	ProductID uint
	Quantity  int
	Location  string
}

// CreateInventoryHandler handles create inventory command
type CreateInventoryHandler struct {
	repo    domain.InventoryRepository
	catalog domain.ProductCatalog
}

func NewCreateInventoryHandler(repo domain.InventoryRepository, catalog domain.ProductCatalog) *CreateInventoryHandler {
	return &CreateInventoryHandler{repo: repo, catalog: catalog}
}

// Handle creates the single inventory record of an existing product.
func (h *CreateInventoryHandler) Handle(ctx context.Context, cmd CreateInventoryCommand) (*domain.Inventory, error) {
	product, err := h.catalog.GetProduct(ctx, cmd.ProductID)
	if err != nil {
		return nil, err
	}

	exists, err := h.repo.ExistsByProductID(ctx, cmd.ProductID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &domain.InventoryAlreadyExistsError{ProductID: cmd.ProductID}
	}

	inventory := &domain.Inventory{
		ProductID:   cmd.ProductID,
		Quantity:    cmd.Quantity,
		Location:    cmd.Location,
		LastUpdated: time.Now().UTC(),
	}

	if err := h.repo.Save(ctx, inventory); err != nil {
		return nil, err
	}
	inventory.ProductName = product.Name

	logger.Info(ctx).
		Uint("inventoryId", inventory.ID).
		Uint("productId", inventory.ProductID).
		Int("quantity", inventory.Quantity).
		Str("location", inventory.Location).
		Msg("Inventory created")

	return inventory, nil
}
