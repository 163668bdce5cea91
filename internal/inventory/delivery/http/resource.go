package http

import (
	"strconv"
	"time"

	"github.com/link/inventory-platform/internal/inventory/domain"
	"github.com/link/inventory-platform/pkg/validation"
)

const resourceType = "inventories"

// InventoryResource is the JSON:API representation of an inventory.
type InventoryResource struct {
	ID          string    `jsonapi:"primary,inventories"`
	ProductID   uint      `jsonapi:"attr,productId"`
	ProductName string    `jsonapi:"attr,productName"`
	Quantity    int       `jsonapi:"attr,quantity"`
	Location    string    `jsonapi:"attr,location"`
	LastUpdated time.Time `jsonapi:"attr,lastUpdated,iso8601"`
}

type createInventoryAttributes struct {
	ProductID *int64 `json:"productId" validate:"required,gte=1"`
	Quantity  *int   `json:"quantity" validate:"required,gte=0"`
	Location  string `json:"location" validate:"notblank,max=80"`
}

type updateQuantityAttributes struct {
	QuantityChange *int   `json:"quantityChange" validate:"required"`
	Reason         string `json:"reason"`
}

var validationMessages = map[string]string{
	"productId.required":      "Product ID is required",
	"productId.gte":           "Product ID must be greater than 0",
	"quantity.required":       "Quantity is required",
	"quantity.gte":            "Quantity cannot be negative",
	"location.notblank":       "Location is required",
	"location.max":            "Location cannot exceed maximum length",
	"quantityChange.required": "Quantity change is required",
}

func newValidator() *validation.Validator {
	return validation.New(validationMessages)
}

func toResource(inv *domain.Inventory) *InventoryResource {
	return &InventoryResource{
		ID:          strconv.FormatUint(uint64(inv.ID), 10),
		ProductID:   inv.ProductID,
		ProductName: inv.ProductName,
		Quantity:    inv.Quantity,
		Location:    inv.Location,
		LastUpdated: inv.LastUpdated.UTC(),
	}
}
