package http

import (
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	// registers the generated OpenAPI document
	_ "github.com/link/inventory-platform/internal/inventory/docs"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation for Inventory Service
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router) {
	router.PathPrefix("/swagger/").Handler(SwaggerHandler())
}

func SwaggerHandler() http.Handler {
	return httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json"))
}

// GetInventoryByProduct godoc
// @Summary Get inventory by product ID
// @Description Get the stock of a product together with its name
// @Tags Inventory
// @Security ApiKeyAuth
// @Produce application/vnd.api+json
// @Param productId path int true "Product ID"
// @Success 200 {object} object{data=object,links=object}
// @Failure 400 {object} document.ErrorDocument
// @Failure 404 {object} document.ErrorDocument
// @Failure 503 {object} document.ErrorDocument
// @Failure 504 {object} document.ErrorDocument
// @Router /inventory/product/{productId} [get]
func (h *InventoryHandler) GetInventoryByProductDoc() {}

// CreateInventory godoc
// @Summary Create inventory
// @Description Create the inventory record of an existing product
// @Tags Inventory
// @Security ApiKeyAuth
// @Accept application/vnd.api+json
// @Produce application/vnd.api+json
// @Param request body object{data=object{type=string,attributes=object{productId=int,quantity=int,location=string}}} true "Inventory document"
// @Success 201 {object} object{data=object,links=object}
// @Failure 400 {object} document.ErrorDocument
// @Failure 404 {object} document.ErrorDocument
// @Failure 409 {object} document.ErrorDocument
// @Router /inventory [post]
func (h *InventoryHandler) CreateInventoryDoc() {}

// UpdateQuantity godoc
// @Summary Change inventory quantity
// @Description Add a positive or negative quantity change. Stock never drops below zero.
// @Tags Inventory
// @Security ApiKeyAuth
// @Accept application/vnd.api+json
// @Produce application/vnd.api+json
// @Param id path int true "Inventory ID"
// @Param request body object{data=object{type=string,attributes=object{quantityChange=int,reason=string}}} true "Quantity change document"
// @Success 200 {object} object{data=object,links=object}
// @Failure 400 {object} document.ErrorDocument
// @Failure 404 {object} document.ErrorDocument
// @Failure 409 {object} document.ErrorDocument
// @Router /inventory/{id}/quantity [put]
func (h *InventoryHandler) UpdateQuantityDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Description Check service health and database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string}
// @Failure 503 {object} object{status=string}
// @Router /health [get]
func (h *InventoryHandler) HealthCheckDoc() {}

// CircuitBreakers godoc
// @Summary Circuit breaker status
// @Description List every circuit breaker with its state and counts
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,circuitBreakers=array}
// @Router /health/circuitbreakers [get]
func (h *InventoryHandler) CircuitBreakersDoc() {}
