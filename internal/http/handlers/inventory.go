package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"erp-monolith/internal/logx"
	"erp-monolith/internal/mockdata"
)

// InventoryHandler serves the v1 inventory endpoints.
type InventoryHandler struct {
	logger logx.Logger
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(logger logx.Logger) *InventoryHandler {
	return &InventoryHandler{logger: logger}
}

// Register mounts the inventory routes onto r.
func (h *InventoryHandler) Register(r chi.Router) {
	r.Post("/items", h.CreateItem)
	r.Get("/items", h.ListItems)
	r.Get("/items/sku/{sku}", h.GetItemBySKU)
	r.Get("/items/{id}", h.GetItem)
	r.Put("/items/{id}", h.UpdateItem)
	r.Post("/stock/adjust", h.AdjustStock)
	r.Post("/stock/reserve", h.ReserveStock)
	r.Post("/stock/release", h.ReleaseStock)
	r.Post("/stock/fulfill", h.FulfillReservation)
	r.Post("/stock/receive", h.ReceiveStock)
	r.Get("/low-stock", h.LowStock)
	r.Get("/valuation", h.Valuation)
	r.Get("/categories", h.Categories)
}

type inventoryItemRequest struct {
	SKU             string  `json:"sku"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Category        string  `json:"category"`
	UnitPrice       float64 `json:"unitPrice"`
	QuantityOnHand  *int    `json:"quantityOnHand"`
	ReorderPoint    *int    `json:"reorderPoint"`
	ReorderQuantity *int    `json:"reorderQuantity"`
}

// CreateItem handles POST /api/inventory/items.
func (h *InventoryHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req inventoryItemRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid json")
		return
	}
	quantityOnHand := 0
	if req.QuantityOnHand != nil {
		quantityOnHand = *req.QuantityOnHand
	}
	reorderPoint := 10
	if req.ReorderPoint != nil {
		reorderPoint = *req.ReorderPoint
	}
	reorderQuantity := 50
	if req.ReorderQuantity != nil {
		reorderQuantity = *req.ReorderQuantity
	}
	writeJSON(h.logger, w, r, http.StatusCreated, map[string]any{
		"id":              newID("item"),
		"sku":             req.SKU,
		"name":            req.Name,
		"description":     req.Description,
		"category":        req.Category,
		"unitPrice":       req.UnitPrice,
		"quantityOnHand":  quantityOnHand,
		"reorderPoint":    reorderPoint,
		"reorderQuantity": reorderQuantity,
	})
}

// ListItems handles GET /api/inventory/items.
func (h *InventoryHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, mockdata.InventoryItems)
}

// GetItem handles GET /api/inventory/items/{id}.
func (h *InventoryHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{
		"id":             chi.URLParam(r, "id"),
		"sku":            "SKU-001",
		"name":           "Sample Item",
		"quantityOnHand": 100,
		"unitPrice":      25.00,
	})
}

// GetItemBySKU handles GET /api/inventory/items/sku/{sku}.
func (h *InventoryHandler) GetItemBySKU(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{
		"sku":            chi.URLParam(r, "sku"),
		"name":           "Sample Item",
		"quantityOnHand": 100,
		"unitPrice":      25.00,
	})
}

// UpdateItem handles PUT /api/inventory/items/{id}.
func (h *InventoryHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req inventoryItemRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid json")
		return
	}
	reorderPoint := 0
	if req.ReorderPoint != nil {
		reorderPoint = *req.ReorderPoint
	}
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{
		"id":           chi.URLParam(r, "id"),
		"name":         req.Name,
		"unitPrice":    req.UnitPrice,
		"reorderPoint": reorderPoint,
		"message":      "Inventory item updated successfully",
	})
}

type stockRequest struct {
	ItemID          string `json:"itemId"`
	AdjustmentType  string `json:"adjustmentType"`
	Quantity        int    `json:"quantity"`
	NewQuantity     int    `json:"newQuantity"`
	Reason          string `json:"reason"`
	OrderID         string `json:"orderId"`
	ReservationID   string `json:"reservationId"`
	PurchaseOrderID string `json:"purchaseOrderId"`
}

// AdjustStock handles POST /api/inventory/stock/adjust.
func (h *InventoryHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	var req stockRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid json")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{
		"itemId":         req.ItemID,
		"adjustmentType": req.AdjustmentType,
		"quantity":       req.Quantity,
		"newQuantity":    req.NewQuantity,
		"reason":         req.Reason,
		"adjustedAt":     utcNow(),
	})
}

// ReserveStock handles POST /api/inventory/stock/reserve.
func (h *InventoryHandler) ReserveStock(w http.ResponseWriter, r *http.Request) {
	var req stockRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid json")
		return
	}
	writeJSON(h.logger, w, r, http.StatusCreated, map[string]any{
		"reservationId": newID("res"),
		"itemId":        req.ItemID,
		"quantity":      req.Quantity,
		"orderId":       req.OrderID,
		"reservedAt":    utcNow(),
	})
}

// ReleaseStock handles POST /api/inventory/stock/release.
func (h *InventoryHandler) ReleaseStock(w http.ResponseWriter, r *http.Request) {
	var req stockRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid json")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{
		"reservationId": req.ReservationID,
		"itemId":        req.ItemID,
		"quantity":      req.Quantity,
		"releasedAt":    utcNow(),
		"message":       "Stock reservation released",
	})
}

// FulfillReservation handles POST /api/inventory/stock/fulfill.
func (h *InventoryHandler) FulfillReservation(w http.ResponseWriter, r *http.Request) {
	var req stockRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid json")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{
		"reservationId": req.ReservationID,
		"itemId":        req.ItemID,
		"quantity":      req.Quantity,
		"fulfilledAt":   utcNow(),
		"message":       "Reservation fulfilled",
	})
}

// ReceiveStock handles POST /api/inventory/stock/receive.
func (h *InventoryHandler) ReceiveStock(w http.ResponseWriter, r *http.Request) {
	var req stockRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid json")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{
		"itemId":          req.ItemID,
		"quantity":        req.Quantity,
		"purchaseOrderId": req.PurchaseOrderID,
		"receivedAt":      utcNow(),
		"message":         "Stock received successfully",
	})
}

// LowStock handles GET /api/inventory/low-stock.
func (h *InventoryHandler) LowStock(w http.ResponseWriter, r *http.Request) {
	low := make([]mockdata.InventoryItem, 0)
	for _, item := range mockdata.InventoryItems {
		if item.QuantityOnHand <= item.ReorderPoint {
			low = append(low, item)
		}
	}
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{
		"lowStockCount": len(low),
		"items":         low,
	})
}

// Valuation handles GET /api/inventory/valuation.
func (h *InventoryHandler) Valuation(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{
		"totalValue":    250000,
		"totalItems":    450,
		"averageValue":  555.56,
		"valuationDate": utcNow(),
	})
}

// Categories handles GET /api/inventory/categories.
func (h *InventoryHandler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{
		"categories": []map[string]any{
			{"name": "Electronics", "itemCount": 150, "totalValue": 100000},
			{"name": "Office Supplies", "itemCount": 200, "totalValue": 50000},
		},
	})
}
