package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/link/inventory-platform/internal/product/domain"
	"github.com/link/inventory-platform/pkg/database"
)

func newRepository(t *testing.T) domain.ProductRepository {
	t.Helper()

	db, err := database.NewSQLiteMemory()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})

	repo := NewGormProductRepository(db)
	require.NoError(t, repo.AutoMigrate())

	return NewTracingProductRepository(repo)
}

func sampleProduct(name string, price float64) *domain.Product {
	return &domain.Product{
		ProductName: name,
		Description: "Noise cancelling headphones",
		Price:       price,
		Category:    "Audio",
		Brand:       "Acme",
		ImageURL:    "https://img.example.com/" + name + ".png",
	}
}

func TestSaveAndFindByID(t *testing.T) {
	ctx := context.Background()
	repo := newRepository(t)

	product := sampleProduct("Headphones", 199.9)
	require.NoError(t, repo.Save(ctx, product))
	require.NotZero(t, product.ID)

	found, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, *product, *found)
}

func TestFindByID_NotFound(t *testing.T) {
	_, err := newRepository(t).FindByID(context.Background(), 99)

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.EqualValues(t, 99, nf.ID)
}

func TestSave_DuplicateName(t *testing.T) {
	ctx := context.Background()
	repo := newRepository(t)

	require.NoError(t, repo.Save(ctx, sampleProduct("Speaker", 50)))
	err := repo.Save(ctx, sampleProduct("Speaker", 60))

	assert.ErrorIs(t, err, domain.ErrProductAlreadyExists)
}

func TestExistsByName(t *testing.T) {
	ctx := context.Background()
	repo := newRepository(t)
	require.NoError(t, repo.Save(ctx, sampleProduct("Tablet", 300)))

	exists, err := repo.ExistsByName(ctx, "Tablet")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByName(ctx, "Phone")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	repo := newRepository(t)

	product := sampleProduct("Monitor", 250)
	require.NoError(t, repo.Save(ctx, product))

	product.Price = 225
	product.Brand = "Contoso"
	require.NoError(t, repo.Update(ctx, product))

	found, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 225.0, found.Price)
	assert.Equal(t, "Contoso", found.Brand)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	repo := newRepository(t)

	product := sampleProduct("Keyboard", 80)
	require.NoError(t, repo.Save(ctx, product))

	require.NoError(t, repo.Delete(ctx, product.ID))
	_, err := repo.FindByID(ctx, product.ID)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, product.ID), domain.ErrProductNotFound)

	// A hard delete frees the unique name.
	assert.NoError(t, repo.Save(ctx, sampleProduct("Keyboard", 90)))
}

func TestFindAll_PaginatesAndSorts(t *testing.T) {
	ctx := context.Background()
	repo := newRepository(t)

	for i := 1; i <= 5; i++ {
		require.NoError(t, repo.Save(ctx, sampleProduct(fmt.Sprintf("Item %d", i), float64(i*10))))
	}

	page, err := repo.FindAll(ctx, domain.PageRequest{Number: 0, Size: 2, SortBy: "price", Direction: domain.SortDescending})
	require.NoError(t, err)

	require.Len(t, page.Items, 2)
	assert.Equal(t, 50.0, page.Items[0].Price)
	assert.Equal(t, 40.0, page.Items[1].Price)
	assert.EqualValues(t, 5, page.TotalElements)
	assert.Equal(t, 3, page.TotalPages)
	assert.False(t, page.Last)

	last, err := repo.FindAll(ctx, domain.PageRequest{Number: 2, Size: 2, SortBy: "price", Direction: domain.SortDescending})
	require.NoError(t, err)
	require.Len(t, last.Items, 1)
	assert.Equal(t, 10.0, last.Items[0].Price)
	assert.True(t, last.Last)
}

func TestFindAll_Empty(t *testing.T) {
	page, err := newRepository(t).FindAll(context.Background(), domain.DefaultPageRequest())
	require.NoError(t, err)

	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Zero(t, page.TotalPages)
	assert.True(t, page.Last)
}
