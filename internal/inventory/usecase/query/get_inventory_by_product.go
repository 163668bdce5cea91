package query

import (
	"context"

	"github.com/link/inventory-platform/internal/inventory/domain"
)

// GetInventoryByProductQuery looks up the stock of one product
type GetInventoryByProductQuery struct {
	ProductID uint
}

// GetInventoryByProductHandler handles get inventory by product query
type GetInventoryByProductHandler struct {
	repo    domain.InventoryRepository
	catalog domain.ProductCatalog
}

func NewGetInventoryByProductHandler(repo domain.InventoryRepository, catalog domain.ProductCatalog) *GetInventoryByProductHandler {
	return &GetInventoryByProductHandler{repo: repo, catalog: catalog}
}

// Handle resolves the product first, so an unknown product is reported as
// such even when no inventory exists for it.
func (h *GetInventoryByProductHandler) Handle(ctx context.Context, query GetInventoryByProductQuery) (*domain.Inventory, error) {
	product, err := h.catalog.GetProduct(ctx, query.ProductID)
	if err != nil {
		return nil, err
	}

	inventory, err := h.repo.FindByProductID(ctx, query.ProductID)
	if err != nil {
		return nil, err
	}

	inventory.ProductName = product.Name
	return inventory, nil
}
