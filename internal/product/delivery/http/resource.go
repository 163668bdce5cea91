package http

import (
	"strconv"

	"github.com/link/inventory-platform/internal/product/domain"
	"github.com/link/inventory-platform/internal/product/usecase/command"
	"github.com/link/inventory-platform/pkg/validation"
)

const resourceType = "products"

// ProductResource is the JSON:API representation of a product.
type ProductResource struct {
	ID          string  `jsonapi:"primary,products"`
	ProductName string  `jsonapi:"attr,productName"`
	Description string  `jsonapi:"attr,description"`
	Price       float64 `jsonapi:"attr,price"`
	Category    string  `jsonapi:"attr,category"`
	Brand       string  `jsonapi:"attr,brand"`
	ImageURL    string  `jsonapi:"attr,imageUrl"`
}

// productAttributes is the body of POST and PUT requests.
// Price is a pointer so that a missing value can be told apart from zero.
type productAttributes struct {
	ProductName string   `json:"productName" validate:"notblank,max=120"`
	Description string   `json:"description" validate:"notblank,max=500"`
	Price       *float64 `json:"price" validate:"required,gt=0,lte=100000000"`
	Category    string   `json:"category" validate:"notblank,max=50"`
	Brand       string   `json:"brand" validate:"notblank,max=50"`
	ImageURL    string   `json:"imageUrl" validate:"notblank,max=255"`
}

var validationMessages = map[string]string{
	"notblank":  "The field must not be blank",
	"required":  "The field must not be null",
	"max":       "The field must not exceed maximum length",
	"price.gt":  "The field must be a positive number",
	"price.lte": "The price exceeds the maximum allowed",
}

func newValidator() *validation.Validator {
	return validation.New(validationMessages)
}

func toResource(p *domain.Product) *ProductResource {
	return &ProductResource{
		ID:          strconv.FormatUint(uint64(p.ID), 10),
		ProductName: p.ProductName,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Brand:       p.Brand,
		ImageURL:    p.ImageURL,
	}
}

func toResources(products []domain.Product) []*ProductResource {
	out := make([]*ProductResource, 0, len(products))
	for i := range products {
		out = append(out, toResource(&products[i]))
	}
	return out
}

func (a productAttributes) price() float64 {
	if a.Price == nil {
		return 0
	}
	return *a.Price
}

func (a productAttributes) toCreateCommand() command.CreateProductCommand {
	return command.CreateProductCommand{
		ProductName: a.ProductName,
		Description: a.Description,
		Price:       a.price(),
		Category:    a.Category,
		Brand:       a.Brand,
		ImageURL:    a.ImageURL,
	}
}

func (a productAttributes) toUpdateCommand(id uint) command.UpdateProductCommand {
	return command.UpdateProductCommand{
		ID:          id,
		ProductName: a.ProductName,
		Description: a.Description,
		Price:       a.price(),
		Category:    a.Category,
		Brand:       a.Brand,
		ImageURL:    a.ImageURL,
	}
}
