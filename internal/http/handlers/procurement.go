package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"erp-monolith/internal/logx"
	"erp-monolith/internal/mockdata"
)

// ProcurementHandler serves the v1 procurement endpoints.
type ProcurementHandler struct {
	logger logx.Logger
}

// NewProcurementHandler creates a new ProcurementHandler.
func NewProcurementHandler(logger logx.Logger) *ProcurementHandler {
	return &ProcurementHandler{logger: logger}
}

// Register mounts the procurement routes onto r.
func (h *ProcurementHandler) Register(r chi.Router) {
	r.Post("/vendors", h.CreateVendor)
	r.Get("/vendors", h.ListVendors)
	r.Get("/vendors/{id}", h.GetVendor)
	r.Get("/vendors/{id}/performance", h.VendorPerformance)
	r.Post("/purchase-orders", h.CreatePurchaseOrder)
	r.Get("/purchase-orders", h.ListPurchaseOrders)
	r.Get("/purchase-orders/{id}", h.GetPurchaseOrder)
	r.Post("/purchase-orders/{id}/approve", h.ApprovePurchaseOrder)
	r.Post("/purchase-orders/{id}/place", h.PlacePurchaseOrder)
	r.Post("/purchase-orders/{id}/receive", h.ReceivePurchaseOrder)
	r.Post("/purchase-orders/{id}/cancel", h.CancelPurchaseOrder)
}

type vendorRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	PaymentTerms string `json:"paymentTerms"`
}

// CreateVendor handles POST /api/procurement/vendors.
func (h *ProcurementHandler) CreateVendor(w http.ResponseWriter, r *http.Request) {
	var req vendorRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid json")
		return
	}
	paymentTerms := req.PaymentTerms
	if paymentTerms == "" {
		paymentTerms = "Net 30"
	}
	writeJSON(h.logger, w, r, http.StatusCreated, map[string]any{
		"id":           newID("vendor"),
		"name":         req.Name,
		"email":        req.Email,
		"phone":        req.Phone,
		"address":      req.Address,
		"paymentTerms": paymentTerms,
		"status":       "active",
	})
}

// ListVendors handles GET /api/procurement/vendors.
func (h *ProcurementHandler) ListVendors(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, mockdata.Vendors)
}

// GetVendor handles GET /api/procurement/vendors/{id}.
func (h *ProcurementHandler) GetVendor(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{
		"id":     chi.URLParam(r, "id"),
		"name":   "Sample Vendor",
		"email":  "vendor@example.com",
		"status": "active",
	})
}

// VendorPerformance handles GET /api/procurement/vendors/{id}/performance.
func (h *ProcurementHandler) VendorPerformance(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{
		"vendorId":           chi.URLParam(r, "id"),
		"onTimeDeliveryRate": 95,
		"qualityScore":       4.5,
		"totalOrders":        50,
		"totalSpent":         250000,
	})
}

type purchaseOrderRequest struct {
	VendorID             string          `json:"vendorId"`
	OrderDate            string          `json:"orderDate"`
	ExpectedDeliveryDate string          `json:"expectedDeliveryDate"`
	Items                json.RawMessage `json:"items"`
	TotalAmount          float64         `json:"totalAmount"`
}

// CreatePurchaseOrder handles POST /api/procurement/purchase-orders.
func (h *ProcurementHandler) CreatePurchaseOrder(w http.ResponseWriter, r *http.Request) {
	var req purchaseOrderRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid json")
		return
	}
	items := req.Items
	if items == nil {
		items = json.RawMessage("[]")
	}
	writeJSON(h.logger, w, r, http.StatusCreated, map[string]any{
		"id":                   newID("po"),
		"poNumber":             newRefNumber("PO"),
		"vendorId":             req.VendorID,
		"orderDate":            req.OrderDate,
		"expectedDeliveryDate": req.ExpectedDeliveryDate,
		"items":                items,
		"totalAmount":          req.TotalAmount,
		"status":               "draft",
	})
}

// ListPurchaseOrders handles GET /api/procurement/purchase-orders.
func (h *ProcurementHandler) ListPurchaseOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, mockdata.PurchaseOrders)
}

// GetPurchaseOrder handles GET /api/procurement/purchase-orders/{id}.
func (h *ProcurementHandler) GetPurchaseOrder(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{
		"id":          chi.URLParam(r, "id"),
		"poNumber":    "PO-001",
		"vendorId":    "vendor-001",
		"totalAmount": 10000,
		"status":      "pending",
	})
}

func (h *ProcurementHandler) poTransition(w http.ResponseWriter, r *http.Request, status, stampKey, message string) {
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{
		"id":     chi.URLParam(r, "id"),
		"status": status,
		stampKey: utcNow(),
		"message": message,
	})
}

// ApprovePurchaseOrder handles POST /api/procurement/purchase-orders/{id}/approve.
func (h *ProcurementHandler) ApprovePurchaseOrder(w http.ResponseWriter, r *http.Request) {
	h.poTransition(w, r, "approved", "approvedAt", "Purchase order approved successfully")
}

// PlacePurchaseOrder handles POST /api/procurement/purchase-orders/{id}/place.
func (h *ProcurementHandler) PlacePurchaseOrder(w http.ResponseWriter, r *http.Request) {
	h.poTransition(w, r, "placed", "placedAt", "Purchase order placed with vendor")
}

// ReceivePurchaseOrder handles POST /api/procurement/purchase-orders/{id}/receive.
func (h *ProcurementHandler) ReceivePurchaseOrder(w http.ResponseWriter, r *http.Request) {
	h.poTransition(w, r, "received", "receivedAt", "Purchase order received")
}

// CancelPurchaseOrder handles POST /api/procurement/purchase-orders/{id}/cancel.
func (h *ProcurementHandler) CancelPurchaseOrder(w http.ResponseWriter, r *http.Request) {
	h.poTransition(w, r, "cancelled", "cancelledAt", "Purchase order cancelled")
}
