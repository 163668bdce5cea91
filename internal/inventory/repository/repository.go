package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/link/inventory-platform/internal/inventory/domain"
)

// GormInventoryRepository implements domain.InventoryRepository using GORM
type GormInventoryRepository struct {
	db *gorm.DB
}

func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

func (r *GormInventoryRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Inventory{})
}

func (r *GormInventoryRepository) Save(ctx context.Context, inventory *domain.Inventory) error {
	if err := r.db.WithContext(ctx).Create(inventory).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &domain.InventoryAlreadyExistsError{ProductID: inventory.ProductID}
		}
		return fmt.Errorf("failed to create inventory: %w", err)
	}
	return nil
}

func (r *GormInventoryRepository) FindByID(ctx context.Context, id uint) (*domain.Inventory, error) {
	return findOne(r.db.WithContext(ctx).Where("id = ?", id), &domain.InventoryNotFoundError{ID: id})
}

func (r *GormInventoryRepository) FindByProductID(ctx context.Context, productID uint) (*domain.Inventory, error) {
	return findOne(r.db.WithContext(ctx).Where("product_id = ?", productID), &domain.InventoryNotFoundError{ProductID: productID})
}

func (r *GormInventoryRepository) ExistsByProductID(ctx context.Context, productID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Inventory{}).
		Where("product_id = ?", productID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check inventory: %w", err)
	}
	return count > 0, nil
}

func (r *GormInventoryRepository) AdjustQuantity(ctx context.Context, id uint, delta int, at time.Time) (*domain.Inventory, error) {
	var updated *domain.Inventory

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&domain.Inventory{}).
			Where("id = ? AND quantity + ? >= 0", id, delta).
			Updates(map[string]any{
				"quantity":     gorm.Expr("quantity + ?", delta),
				"last_updated": at,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to adjust quantity: %w", result.Error)
		}

		current, err := findOne(tx.Where("id = ?", id), &domain.InventoryNotFoundError{ID: id})
		if err != nil {
			return err
		}

		if result.RowsAffected == 0 {
			return &domain.InsufficientStockError{
				InventoryID: id,
				Available:   current.Quantity,
				Requested:   abs(delta),
			}
		}

		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func findOne(db *gorm.DB, notFound error) (*domain.Inventory, error) {
	var inventory domain.Inventory
	if err := db.First(&inventory).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound
		}
		return nil, fmt.Errorf("failed to find inventory: %w", err)
	}
	return &inventory, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
