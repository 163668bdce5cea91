package http

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/jsonapi"
	"github.com/gorilla/mux"

	"github.com/link/inventory-platform/internal/inventory/domain"
	"github.com/link/inventory-platform/internal/inventory/usecase/command"
	"github.com/link/inventory-platform/internal/inventory/usecase/query"
	"github.com/link/inventory-platform/pkg/document"
	"github.com/link/inventory-platform/pkg/logger"
	"github.com/link/inventory-platform/pkg/resilience"
	"github.com/link/inventory-platform/pkg/validation"
)

// InventoryHandler handles HTTP requests for inventory
type InventoryHandler struct {
	getByProductHandler   *query.GetInventoryByProductHandler
	createHandler         *command.CreateInventoryHandler
	updateQuantityHandler *command.UpdateQuantityHandler

	validator *validation.Validator
}

func NewInventoryHandler(
	getByProductHandler *query.GetInventoryByProductHandler,
	createHandler *command.CreateInventoryHandler,
	updateQuantityHandler *command.UpdateQuantityHandler,
) *InventoryHandler {
	return &InventoryHandler{
		getByProductHandler:   getByProductHandler,
		createHandler:         createHandler,
		updateQuantityHandler: updateQuantityHandler,
		validator:             newValidator(),
	}
}

func (h *InventoryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/inventory/product/{productId}", h.GetInventoryByProduct).Methods(http.MethodGet)
	router.HandleFunc("/inventory", h.CreateInventory).Methods(http.MethodPost)
	router.HandleFunc("/inventory/", h.CreateInventory).Methods(http.MethodPost)
	router.HandleFunc("/inventory/{id}/quantity", h.UpdateQuantity).Methods(http.MethodPut)
}

// GetInventoryByProduct handles GET /inventory/product/{productId}
func (h *InventoryHandler) GetInventoryByProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r, "productId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	inventory, err := h.getByProductHandler.Handle(r.Context(), query.GetInventoryByProductQuery{ProductID: productID})
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.writeInventory(w, r, http.StatusOK, inventory, requestURL(r))
}

// CreateInventory handles POST /inventory
func (h *InventoryHandler) CreateInventory(w http.ResponseWriter, r *http.Request) {
	var attrs createInventoryAttributes
	if _, err := document.DecodeResource(r, resourceType, &attrs); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.validator.Validate(attrs); err != nil {
		writeError(w, r, err)
		return
	}

	inventory, err := h.createHandler.Handle(r.Context(), command.CreateInventoryCommand{
		ProductID: uint(*attrs.ProductID),
		Quantity:  *attrs.Quantity,
		Location:  attrs.Location,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	self := inventoryURL(r, inventory.ID)
	w.Header().Set("Location", self)
	h.writeInventory(w, r, http.StatusCreated, inventory, self)
}

// UpdateQuantity handles PUT /inventory/{id}/quantity
func (h *InventoryHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var attrs updateQuantityAttributes
	if _, err := document.DecodeResource(r, resourceType, &attrs); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.validator.Validate(attrs); err != nil {
		writeError(w, r, err)
		return
	}

	inventory, err := h.updateQuantityHandler.Handle(r.Context(), command.UpdateQuantityCommand{
		InventoryID:    id,
		QuantityChange: *attrs.QuantityChange,
		Reason:         attrs.Reason,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.writeInventory(w, r, http.StatusOK, inventory, requestURL(r))
}

// RegisterHealthCheck serves /health, which pings the database, and
// /health/circuitbreakers, which lists the breakers of the registry.
func (h *InventoryHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB, breakers *resilience.Registry) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			logger.Warn(r.Context()).Err(err).Msg("Database unavailable")
			respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	}).Methods(http.MethodGet)

	router.HandleFunc("/health/circuitbreakers", func(w http.ResponseWriter, r *http.Request) {
		stats := breakers.Stats()

		status := "healthy"
		for _, s := range stats {
			if s.State != "closed" {
				status = "degraded"
			}
		}

		respondJSON(w, http.StatusOK, map[string]any{
			"status":          status,
			"circuitBreakers": stats,
		})
	}).Methods(http.MethodGet)
}

func (h *InventoryHandler) writeInventory(w http.ResponseWriter, r *http.Request, status int, inventory *domain.Inventory, self string) {
	links := jsonapi.Links{"self": self}
	if err := document.WriteResource(w, status, toResource(inventory), links, nil); err != nil {
		logger.Error(r.Context()).Err(err).Uint("inventory_id", inventory.ID).Msg("Failed to write inventory")
	}
}

func pathID(r *http.Request, param string) (uint, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[param], 10, 64)
	if err != nil {
		return 0, &pathParamError{param: param, malformed: true}
	}
	if id < 1 {
		return 0, &pathParamError{param: param}
	}
	return uint(id), nil
}

func inventoryURL(r *http.Request, id uint) string {
	return fmt.Sprintf("%s/inventory/%d", document.BaseURL(r), id)
}

// requestURL is the absolute URL of the route that served r, without the query.
func requestURL(r *http.Request) string {
	return document.BaseURL(r) + r.URL.Path
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
