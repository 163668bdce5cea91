package http

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/jsonapi"
	"github.com/gorilla/mux"

	"github.com/link/inventory-platform/internal/product/domain"
	"github.com/link/inventory-platform/internal/product/usecase/command"
	"github.com/link/inventory-platform/internal/product/usecase/query"
	"github.com/link/inventory-platform/pkg/document"
	"github.com/link/inventory-platform/pkg/logger"
	"github.com/link/inventory-platform/pkg/validation"
)

// ProductHandler handles HTTP requests for products using CQRS pattern
type ProductHandler struct {
	// Command handlers
	createHandler *command.CreateProductHandler
	updateHandler *command.UpdateProductHandler
	deleteHandler *command.DeleteProductHandler

	// Query handlers
	getProductHandler *query.GetProductHandler
	listHandler       *query.ListProductsHandler

	validator *validation.Validator
}

func NewProductHandler(
	createHandler *command.CreateProductHandler,
	updateHandler *command.UpdateProductHandler,
	deleteHandler *command.DeleteProductHandler,
	getProductHandler *query.GetProductHandler,
	listHandler *query.ListProductsHandler,
) *ProductHandler {
	return &ProductHandler{
		createHandler:     createHandler,
		updateHandler:     updateHandler,
		deleteHandler:     deleteHandler,
		getProductHandler: getProductHandler,
		listHandler:       listHandler,
		validator:         newValidator(),
	}
}

func (h *ProductHandler) RegisterRoutes(router *mux.Router) {
	for _, path := range []string{"/product", "/product/"} {
		router.HandleFunc(path, h.CreateProduct).Methods(http.MethodPost)
		router.HandleFunc(path, h.ListProducts).Methods(http.MethodGet)
	}

	router.HandleFunc("/product/{id}", h.GetProduct).Methods(http.MethodGet)
	router.HandleFunc("/product/{id}", h.UpdateProduct).Methods(http.MethodPut)
	router.HandleFunc("/product/{id}", h.DeleteProduct).Methods(http.MethodDelete)
}

// CreateProduct handles POST /product
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var attrs productAttributes
	if _, err := document.DecodeResource(r, resourceType, &attrs); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.validator.Validate(attrs); err != nil {
		writeError(w, r, err)
		return
	}

	product, err := h.createHandler.Handle(r.Context(), attrs.toCreateCommand())
	if err != nil {
		writeError(w, r, err)
		return
	}

	self := productURL(r, product.ID)
	w.Header().Set("Location", self)
	h.writeProduct(w, r, http.StatusCreated, product, self)
}

// ListProducts handles GET /product
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	req, err := parsePageRequest(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}
	req = req.Normalize()

	page, err := h.listHandler.Handle(r.Context(), query.ListProductsQuery{Page: req})
	if err != nil {
		writeError(w, r, err)
		return
	}

	meta := jsonapi.Meta{
		"totalPages":    page.TotalPages,
		"totalElements": page.TotalElements,
		"currentPage":   page.Number,
		"pageSize":      page.Size,
	}

	err = document.WriteResource(w, http.StatusOK, toResources(page.Items), pageLinks(document.BaseURL(r), page, req), meta)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to write product page")
	}
}

// GetProduct handles GET /product/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	product, err := h.getProductHandler.Handle(r.Context(), query.GetProductQuery{ID: id})
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.writeProduct(w, r, http.StatusOK, product, productURL(r, product.ID))
}

// UpdateProduct handles PUT /product/{id}
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var attrs productAttributes
	if _, err := document.DecodeResource(r, resourceType, &attrs); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.validator.Validate(attrs); err != nil {
		writeError(w, r, err)
		return
	}

	product, err := h.updateHandler.Handle(r.Context(), attrs.toUpdateCommand(id))
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.writeProduct(w, r, http.StatusOK, product, productURL(r, product.ID))
}

// DeleteProduct handles DELETE /product/{id}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteProductCommand{ID: id}); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ProductHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if err := db.PingContext(r.Context()); err != nil {
			logger.Warn(r.Context()).Err(err).Msg("Database unavailable")
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "unhealthy"})
			return
		}

		_ = json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	}).Methods(http.MethodGet)
}

func (h *ProductHandler) writeProduct(w http.ResponseWriter, r *http.Request, status int, product *domain.Product, self string) {
	if err := document.WriteResource(w, status, toResource(product), jsonapi.Links{"self": self}, nil); err != nil {
		logger.Error(r.Context()).Err(err).Uint("product_id", product.ID).Msg("Failed to write product")
	}
}

func pathID(r *http.Request) (uint, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, errMalformedID
	}
	if id < 1 {
		return 0, errNonPositiveID
	}
	return uint(id), nil
}

func productURL(r *http.Request, id uint) string {
	return fmt.Sprintf("%s/product/%d", document.BaseURL(r), id)
}

// parsePageRequest reads page[number], page[size], sort and direction, falling
// back to page, size, sortBy and sortDirection.
func parsePageRequest(values url.Values) (domain.PageRequest, error) {
	req := domain.DefaultPageRequest()

	if v := firstOf(values, "page[number]", "page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return req, domain.ErrInvalidPageRequest
		}
		req.Number = n
	}
	if v := firstOf(values, "page[size]", "size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return req, domain.ErrInvalidPageRequest
		}
		req.Size = n
	}
	if v := firstOf(values, "sort", "sortBy"); v != "" {
		req.SortBy = v
	}
	if v := firstOf(values, "direction", "sortDirection"); v != "" {
		req.Direction = v
	}

	return req, nil
}

func firstOf(values url.Values, keys ...string) string {
	for _, k := range keys {
		if v := values.Get(k); v != "" {
			return v
		}
	}
	return ""
}

func pageLinks(base string, page *domain.Page, req domain.PageRequest) jsonapi.Links {
	link := func(number int) string {
		return fmt.Sprintf("%s/product?page[number]=%d&page[size]=%d&sort=%s&direction=%s",
			base, number, page.Size, req.SortBy, req.Direction)
	}

	links := jsonapi.Links{
		"self":  link(page.Number),
		"first": link(0),
		"last":  link(page.LastPageNumber()),
	}
	if !page.Last {
		links["next"] = link(page.Number + 1)
	}
	if page.HasPrevious() {
		links["prev"] = link(page.Number - 1)
	}
	return links
}
