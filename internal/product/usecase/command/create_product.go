package command

import (
	"context"
	"fmt"

	"github.com/link/inventory-platform/internal/product/domain"
	"github.com/link/inventory-platform/pkg/logger"
)

// CreateProductCommand represents the command to create a new product
type CreateProductCommand struct {
	ProductName string
	Description string
	Price       float64
	Category    string
	Brand       string
	ImageURL    string
}

// CreateProductHandler handles product creation command
type CreateProductHandler struct {
	repo domain.ProductRepository
}

func NewCreateProductHandler(repo domain.ProductRepository) *CreateProductHandler {
	return &CreateProductHandler{repo: repo}
}

// Handle stores a new product. Names are unique.
func (h *CreateProductHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*domain.Product, error) {
	exists, err := h.repo.ExistsByName(ctx, cmd.ProductName)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrProductAlreadyExists
	}

	product := &domain.Product{
		ProductName: cmd.ProductName,
		Description: cmd.Description,
		Price:       cmd.Price,
		Category:    cmd.Category,
		Brand:       cmd.Brand,
		ImageURL:    cmd.ImageURL,
	}

	if err := h.repo.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	logger.Info(ctx).
		Uint("product_id", product.ID).
		Str("product_name", product.ProductName).
		Msg("Product created")

	return product, nil
}
