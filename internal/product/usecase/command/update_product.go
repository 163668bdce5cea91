package command

import (
	"context"
	"fmt"

	"github.com/link/inventory-platform/internal/product/domain"
)

// UpdateProductCommand replaces every attribute of an existing product
type UpdateProductCommand struct {
	ID          uint
	ProductName string
	Description string
	Price       float64
	Category    string
	Brand       string
	ImageURL    string
}

// UpdateProductHandler handles update product command
type UpdateProductHandler struct {
	repo domain.ProductRepository
}

func NewUpdateProductHandler(repo domain.ProductRepository) *UpdateProductHandler {
	return &UpdateProductHandler{repo: repo}
}

// Handle checks existence before the name conflict, so an unknown id is
// always reported as not found.
func (h *UpdateProductHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*domain.Product, error) {
	product, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	if product.ProductName != cmd.ProductName {
		exists, err := h.repo.ExistsByName(ctx, cmd.ProductName)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrProductAlreadyExists
		}
	}

	product.CopyFrom(domain.Product{
		ProductName: cmd.ProductName,
		Description: cmd.Description,
		Price:       cmd.Price,
		Category:    cmd.Category,
		Brand:       cmd.Brand,
		ImageURL:    cmd.ImageURL,
	})

	if err := h.repo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}
