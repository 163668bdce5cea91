package domain

import "context"

// Product is the part of a catalog product the inventory needs.
type Product struct {
	ID   uint
	Name string
}

// ProductCatalog resolves products owned by the product service.
type ProductCatalog interface {
	GetProduct(ctx context.Context, id uint) (*Product, error)
}
