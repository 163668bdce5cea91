//go:build wireinject
// +build wireinject

package inventory

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/link/inventory-platform/internal/inventory/delivery/http"
	"github.com/link/inventory-platform/internal/inventory/domain"
	"github.com/link/inventory-platform/internal/inventory/repository"
	"github.com/link/inventory-platform/internal/inventory/usecase/command"
	"github.com/link/inventory-platform/internal/inventory/usecase/query"
)

// ProvideInventoryRepository provides the inventory repository wrapped with tracing
func ProvideInventoryRepository(db *gorm.DB) domain.InventoryRepository {
	return repository.NewTracingInventoryRepository(repository.NewGormInventoryRepository(db))
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideInventoryRepository,
)

var CommandHandlerSet = wire.NewSet(
	command.NewCreateInventoryHandler,
	command.NewUpdateQuantityHandler,
)

var QueryHandlerSet = wire.NewSet(
	query.NewGetInventoryByProductHandler,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies.
// The product catalog and the movement publisher are built by the caller
// because they depend on runtime configuration.
func InitializeHTTPHandler(db *gorm.DB, catalog domain.ProductCatalog, publisher domain.StockMovementPublisher) (*http.InventoryHandler, error) {
	wire.Build(
		RepositorySet,
		CommandHandlerSet,
		QueryHandlerSet,
		http.NewInventoryHandler,
	)
	return nil, nil
}
