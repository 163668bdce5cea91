package command

import (
	"context"
	"fmt"

	"github.com/link/inventory-platform/internal/product/domain"
	"github.com/link/inventory-platform/pkg/logger"
)

// DeleteProductCommand represents the command to delete a product
type DeleteProductCommand struct {
	ID uint
}

// DeleteProductHandler handles delete product command
type DeleteProductHandler struct {
	repo domain.ProductRepository
}

func NewDeleteProductHandler(repo domain.ProductRepository) *DeleteProductHandler {
	return &DeleteProductHandler{repo: repo}
}

func (h *DeleteProductHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
	if _, err := h.repo.FindByID(ctx, cmd.ID); err != nil {
		return err
	}

	if err := h.repo.Delete(ctx, cmd.ID); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	logger.Info(ctx).Uint("product_id", cmd.ID).Msg("Product deleted")
	return nil
}
