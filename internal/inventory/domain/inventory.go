package domain

import (
	"context"
	"time"
)

// LocationMaxLength is the column size of inventories.location.
const LocationMaxLength = 80

// Inventory is the stock of one product at one location.
type Inventory struct {
	ID          uint      `gorm:"primaryKey"`
	ProductID   uint      `gorm:"column:product_id;not null;uniqueIndex"`
	Quantity    int       `gorm:"not null"`
	Location    string    `gorm:"size:80;not null"`
	LastUpdated time.Time `gorm:"column:last_updated;not null"`

	// ProductName is resolved from the product catalog and never stored.
	ProductName string `gorm:"-"`
}

// TableName specifies the table name
func (Inventory) TableName() string {
	return "inventories"
}

// InventoryRepository defines the contract for inventory data access
type InventoryRepository interface {
	Save(ctx context.Context, inventory *Inventory) error
	FindByID(ctx context.Context, id uint) (*Inventory, error)
	FindByProductID(ctx context.Context, productID uint) (*Inventory, error)
	ExistsByProductID(ctx context.Context, productID uint) (bool, error)

	// AdjustQuantity adds delta to the stored quantity in one conditional
	// update. The quantity never drops below zero: such a change fails with
	// *InsufficientStockError and leaves the row untouched.
	AdjustQuantity(ctx context.Context, id uint, delta int, at time.Time) (*Inventory, error)
}
