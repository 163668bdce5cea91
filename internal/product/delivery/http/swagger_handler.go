package http

import (
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	// registers the generated OpenAPI document
	_ "github.com/link/inventory-platform/internal/product/docs"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router) {
	router.PathPrefix("/swagger/").Handler(SwaggerHandler())
}

// SwaggerHandler serves the UI and /swagger/doc.json.
func SwaggerHandler() http.Handler {
	return httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json"))
}

// CreateProduct godoc
// @Summary Create a new product
// @Description Create a product. Product names are unique.
// @Tags Products
// @Security ApiKeyAuth
// @Accept application/vnd.api+json
// @Produce application/vnd.api+json
// @Param request body object{data=object{type=string,attributes=object{productName=string,description=string,price=number,category=string,brand=string,imageUrl=string}}} true "Product document"
// @Success 201 {object} object{data=object,links=object}
// @Failure 400 {object} document.ErrorDocument
// @Failure 409 {object} document.ErrorDocument
// @Failure 415 {object} document.ErrorDocument
// @Router /product [post]
func (h *ProductHandler) CreateProductDoc() {}

// ListProducts godoc
// @Summary List products
// @Description Get one sorted page of products
// @Tags Products
// @Security ApiKeyAuth
// @Produce application/vnd.api+json
// @Param page[number] query int false "Zero based page number"
// @Param page[size] query int false "Page size, 1 to 100"
// @Param sort query string false "Sort attribute"
// @Param direction query string false "ASC or DESC"
// @Success 200 {object} object{data=array,links=object,meta=object}
// @Failure 400 {object} document.ErrorDocument
// @Router /product [get]
func (h *ProductHandler) ListProductsDoc() {}

// GetProduct godoc
// @Summary Get product by ID
// @Tags Products
// @Security ApiKeyAuth
// @Produce application/vnd.api+json
// @Param id path int true "Product ID"
// @Success 200 {object} object{data=object,links=object}
// @Failure 400 {object} document.ErrorDocument
// @Failure 404 {object} document.ErrorDocument
// @Router /product/{id} [get]
func (h *ProductHandler) GetProductDoc() {}

// UpdateProduct godoc
// @Summary Update a product
// @Description Replace every attribute of an existing product
// @Tags Products
// @Security ApiKeyAuth
// @Accept application/vnd.api+json
// @Produce application/vnd.api+json
// @Param id path int true "Product ID"
// @Param request body object{data=object{type=string,attributes=object{productName=string,description=string,price=number,category=string,brand=string,imageUrl=string}}} true "Product document"
// @Success 200 {object} object{data=object,links=object}
// @Failure 400 {object} document.ErrorDocument
// @Failure 404 {object} document.ErrorDocument
// @Failure 409 {object} document.ErrorDocument
// @Router /product/{id} [put]
func (h *ProductHandler) UpdateProductDoc() {}

// DeleteProduct godoc
// @Summary Delete a product
// @Tags Products
// @Security ApiKeyAuth
// @Param id path int true "Product ID"
// @Success 204
// @Failure 400 {object} document.ErrorDocument
// @Failure 404 {object} document.ErrorDocument
// @Router /product/{id} [delete]
func (h *ProductHandler) DeleteProductDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Description Check service health and database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string}
// @Failure 503 {object} object{status=string}
// @Router /health [get]
func (h *ProductHandler) HealthCheckDoc() {}
