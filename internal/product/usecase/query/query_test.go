package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/link/inventory-platform/internal/product/domain"
)

func TestGetProduct(t *testing.T) {
	ctx := context.Background()
	repo := new(MockProductRepository)
	repo.On("FindByID", ctx, uint(4)).Return(&domain.Product{ID: 4, ProductName: "Camera"}, nil)

	product, err := NewGetProductHandler(repo).Handle(ctx, GetProductQuery{ID: 4})

	require.NoError(t, err)
	assert.Equal(t, "Camera", product.ProductName)
}

func TestGetProduct_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(MockProductRepository)
	repo.On("FindByID", ctx, uint(4)).Return(nil, &domain.NotFoundError{ID: 4})

	_, err := NewGetProductHandler(repo).Handle(ctx, GetProductQuery{ID: 4})

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestListProducts_NormalizesRequest(t *testing.T) {
	ctx := context.Background()
	repo := new(MockProductRepository)
	want := domain.PageRequest{Number: 1, Size: 5, SortBy: "id", Direction: domain.SortDescending}
	page := domain.NewPage([]domain.Product{{ID: 6}}, want, 6)
	repo.On("FindAll", ctx, want).Return(page, nil)

	got, err := NewListProductsHandler(repo).Handle(ctx, ListProductsQuery{
		Page: domain.PageRequest{Number: 1, Size: 5, Direction: "desc"},
	})

	require.NoError(t, err)
	assert.Same(t, page, got)
	repo.AssertExpectations(t)
}

func TestListProducts_InvalidRequest(t *testing.T) {
	repo := new(MockProductRepository)

	_, err := NewListProductsHandler(repo).Handle(context.Background(), ListProductsQuery{
		Page: domain.PageRequest{Number: -1, Size: 10},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidPageRequest)
	repo.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything)
}
