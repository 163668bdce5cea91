package query

import (
	"context"

	"github.com/link/inventory-platform/internal/product/domain"
)

// ListProductsQuery selects one sorted page of the catalog
type ListProductsQuery struct {
	Page domain.PageRequest
}

// ListProductsHandler handles list products query
type ListProductsHandler struct {
	repo domain.ProductRepository
}

func NewListProductsHandler(repo domain.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle returns an empty page, not an error, when there are no products.
func (h *ListProductsHandler) Handle(ctx context.Context, query ListProductsQuery) (*domain.Page, error) {
	req := query.Page.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return h.repo.FindAll(ctx, req)
}
