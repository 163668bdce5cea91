package domain

import "context"

// Column limits of the products table.
const (
	ProductNameMaxLength        = 120
	ProductDescriptionMaxLength = 500
	ProductCategoryMaxLength    = 60
	ProductBrandMaxLength       = 60
	ProductImageURLMaxLength    = 255
)

// Product represents the product entity
type Product struct {
	ID          uint    `gorm:"primaryKey"`
	ProductName string  `gorm:"column:product_name;size:120;not null;uniqueIndex"`
	Description string  `gorm:"size:500;not null"`
	Price       float64 `gorm:"not null"`
	Category    string  `gorm:"size:60;not null"`
	Brand       string  `gorm:"size:60;not null"`
	ImageURL    string  `gorm:"column:image_url;size:255"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// CopyFrom overwrites every mutable field with the values of other.
func (p *Product) CopyFrom(other Product) {
	p.ProductName = other.ProductName
	p.Description = other.Description
	p.Price = other.Price
	p.Category = other.Category
	p.Brand = other.Brand
	p.ImageURL = other.ImageURL
}

// ProductRepository defines the contract for product data access
type ProductRepository interface {
	Save(ctx context.Context, product *Product) error
	FindByID(ctx context.Context, id uint) (*Product, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	FindAll(ctx context.Context, req PageRequest) (*Page, error)
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uint) error
}
