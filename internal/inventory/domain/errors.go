package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInventoryNotFound         = errors.New("inventory not found")
	ErrInventoryAlreadyExists    = errors.New("inventory already exists")
	ErrInsufficientStock         = errors.New("insufficient stock")
	ErrProductNotFound           = errors.New("product not found")
	ErrProductServiceUnavailable = errors.New("product service is not available")
)

// InventoryNotFoundError is raised for a lookup by inventory id or by product id.
// Exactly one of the two is set.
type InventoryNotFoundError struct {
	ID        uint
	ProductID uint
}

func (e *InventoryNotFoundError) Error() string {
	if e.ProductID != 0 {
		return fmt.Sprintf("Inventory not found for product ID: %d", e.ProductID)
	}
	return fmt.Sprintf("Inventory not found for ID: %d", e.ID)
}

func (e *InventoryNotFoundError) Is(target error) bool {
	return target == ErrInventoryNotFound
}

type InventoryAlreadyExistsError struct {
	ProductID uint
}

func (e *InventoryAlreadyExistsError) Error() string {
	return fmt.Sprintf("Inventory already exists for product ID: %d", e.ProductID)
}

func (e *InventoryAlreadyExistsError) Is(target error) bool {
	return target == ErrInventoryAlreadyExists
}

// InsufficientStockError reports a removal larger than the stored quantity.
type InsufficientStockError struct {
	InventoryID uint
	Available   int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Insufficient stock. Available: %d, Requested: %d", e.Available, e.Requested)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

type ProductNotFoundError struct {
	ID uint
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("Product with ID does not exist: %d", e.ID)
}

func (e *ProductNotFoundError) Is(target error) bool {
	return target == ErrProductNotFound
}

// ProductServiceError is an unexpected answer of the product service.
type ProductServiceError struct {
	StatusCode int
	Message    string
}

func (e *ProductServiceError) Error() string {
	return fmt.Sprintf("product service responded with status %d: %s", e.StatusCode, e.Message)
}
