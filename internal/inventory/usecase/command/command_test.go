package command

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/link/inventory-platform/internal/inventory/domain"
	"github.com/link/inventory-platform/pkg/resilience"
)

func TestCreateInventory(t *testing.T) {
	ctx := context.Background()
	repo := new(MockInventoryRepository)
	catalog := new(MockProductCatalog)
	catalog.On("GetProduct", ctx, uint(3)).Return(&domain.Product{ID: 3, Name: "Chair"}, nil)
	repo.On("ExistsByProductID", ctx, uint(3)).Return(false, nil)
	repo.On("Save", ctx, mock.MatchedBy(func(inv *domain.Inventory) bool {
		return inv.ProductID == 3 && inv.Quantity == 15 && inv.Location == "Aisle 4" &&
			inv.LastUpdated.Location() == time.UTC && !inv.LastUpdated.IsZero()
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Inventory).ID = 21
	}).Return(nil)

	inv, err := NewCreateInventoryHandler(repo, catalog).Handle(ctx, CreateInventoryCommand{
		ProductID: 3,
		Quantity:  15,
		Location:  "Aisle 4",
	})

	require.NoError(t, err)
	assert.EqualValues(t, 21, inv.ID)
	assert.Equal(t, "Chair", inv.ProductName)
	repo.AssertExpectations(t)
}

func TestCreateInventory_AlreadyExists(t *testing.T) {
	ctx := context.Background()
	repo := new(MockInventoryRepository)
	catalog := new(MockProductCatalog)
	catalog.On("GetProduct", ctx, uint(3)).Return(&domain.Product{ID: 3, Name: "Chair"}, nil)
	repo.On("ExistsByProductID", ctx, uint(3)).Return(true, nil)

	_, err := NewCreateInventoryHandler(repo, catalog).Handle(ctx, CreateInventoryCommand{ProductID: 3})

	assert.EqualError(t, err, "Inventory already exists for product ID: 3")
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCreateInventory_ProductLookupFails(t *testing.T) {
	ctx := context.Background()
	repo := new(MockInventoryRepository)
	catalog := new(MockProductCatalog)
	catalog.On("GetProduct", ctx, uint(3)).Return(nil, resilience.ErrCircuitOpen)

	_, err := NewCreateInventoryHandler(repo, catalog).Handle(ctx, CreateInventoryCommand{ProductID: 3})

	assert.ErrorIs(t, err, resilience.ErrCircuitOpen)
	repo.AssertNotCalled(t, "ExistsByProductID", mock.Anything, mock.Anything)
}

func TestUpdateQuantity_PublishesMovement(t *testing.T) {
	ctx := context.Background()
	repo := new(MockInventoryRepository)
	catalog := new(MockProductCatalog)
	publisher := new(MockStockMovementPublisher)

	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	repo.On("AdjustQuantity", ctx, uint(9), -4, mock.AnythingOfType("time.Time")).
		Return(&domain.Inventory{ID: 9, ProductID: 3, Quantity: 6, LastUpdated: at}, nil)
	publisher.On("PublishStockMovement", ctx, domain.StockMovement{
		InventoryID:    9,
		ProductID:      3,
		Operation:      domain.OperationRemoved,
		QuantityChange: -4,
		OldQuantity:    10,
		NewQuantity:    6,
		Reason:         "SALE",
		OccurredAt:     at,
	}).Return(nil)
	catalog.On("GetProduct", ctx, uint(3)).Return(&domain.Product{ID: 3, Name: "Chair"}, nil)

	inv, err := NewUpdateQuantityHandler(repo, catalog, publisher).Handle(ctx, UpdateQuantityCommand{
		InventoryID:    9,
		QuantityChange: -4,
		Reason:         "SALE",
	})

	require.NoError(t, err)
	assert.Equal(t, 6, inv.Quantity)
	assert.Equal(t, "Chair", inv.ProductName)
	publisher.AssertExpectations(t)
}

func TestUpdateQuantity_DefaultReason(t *testing.T) {
	ctx := context.Background()
	repo := new(MockInventoryRepository)
	catalog := new(MockProductCatalog)
	publisher := new(MockStockMovementPublisher)

	repo.On("AdjustQuantity", ctx, uint(9), 5, mock.Anything).
		Return(&domain.Inventory{ID: 9, ProductID: 3, Quantity: 5}, nil)
	publisher.On("PublishStockMovement", ctx, mock.MatchedBy(func(m domain.StockMovement) bool {
		return m.Reason == domain.DefaultReason && m.Operation == domain.OperationAdded && m.OldQuantity == 0
	})).Return(nil)
	catalog.On("GetProduct", ctx, uint(3)).Return(&domain.Product{ID: 3, Name: "Chair"}, nil)

	_, err := NewUpdateQuantityHandler(repo, catalog, publisher).Handle(ctx, UpdateQuantityCommand{InventoryID: 9, QuantityChange: 5})

	require.NoError(t, err)
	publisher.AssertExpectations(t)
}

func TestUpdateQuantity_PublishFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	repo := new(MockInventoryRepository)
	catalog := new(MockProductCatalog)
	publisher := new(MockStockMovementPublisher)

	repo.On("AdjustQuantity", ctx, uint(9), 1, mock.Anything).
		Return(&domain.Inventory{ID: 9, ProductID: 3, Quantity: 2}, nil)
	publisher.On("PublishStockMovement", ctx, mock.Anything).Return(errors.New("broker down"))
	catalog.On("GetProduct", ctx, uint(3)).Return(nil, domain.ErrProductServiceUnavailable)

	inv, err := NewUpdateQuantityHandler(repo, catalog, publisher).Handle(ctx, UpdateQuantityCommand{InventoryID: 9, QuantityChange: 1})

	require.NoError(t, err)
	assert.Equal(t, 2, inv.Quantity)
	assert.Empty(t, inv.ProductName)
}

func TestUpdateQuantity_Insufficient(t *testing.T) {
	ctx := context.Background()
	repo := new(MockInventoryRepository)
	catalog := new(MockProductCatalog)
	publisher := new(MockStockMovementPublisher)

	repo.On("AdjustQuantity", ctx, uint(9), -50, mock.Anything).
		Return(nil, &domain.InsufficientStockError{InventoryID: 9, Available: 6, Requested: 50})

	_, err := NewUpdateQuantityHandler(repo, catalog, publisher).Handle(ctx, UpdateQuantityCommand{InventoryID: 9, QuantityChange: -50})

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	publisher.AssertNotCalled(t, "PublishStockMovement", mock.Anything, mock.Anything)
	catalog.AssertNotCalled(t, "GetProduct", mock.Anything, mock.Anything)
}
