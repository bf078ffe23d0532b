package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"erp-monolith/internal/logx"
	"erp-monolith/internal/mockdata"
)

// SupplyChainHandler serves the v1 supply-chain endpoints. The stateful
// shipment collection lives behind the v2 surface; these handlers keep the
// original literal/echo behavior.
type SupplyChainHandler struct {
	logger logx.Logger
}

// NewSupplyChainHandler creates a new SupplyChainHandler.
func NewSupplyChainHandler(logger logx.Logger) *SupplyChainHandler {
	return &SupplyChainHandler{logger: logger}
}

// Register mounts the supply-chain routes onto r.
func (h *SupplyChainHandler) Register(r chi.Router) {
	r.Post("/shipments", h.CreateShipment)
	r.Get("/shipments", h.ListShipments)
	r.Get("/shipments/tracking/{trackingNumber}", h.GetByTracking)
	r.Get("/shipments/order/{orderId}", h.GetByOrder)
	r.Get("/shipments/{id}", h.GetShipment)
	r.Post("/shipments/{id}/dispatch", h.DispatchShipment)
	r.Put("/shipments/{id}/status", h.UpdateStatus)
	r.Post("/shipments/{id}/deliver", h.MarkDelivered)
	r.Post("/shipments/{id}/cancel", h.CancelShipment)
	r.Get("/carriers/performance", h.CarrierPerformance)
	r.Get("/inbound/summary", h.InboundSummary)
	r.Get("/outbound/summary", h.OutboundSummary)
}

type shipmentEchoRequest struct {
	OrderID           string `json:"orderId"`
	Carrier           string `json:"carrier"`
	Origin            string `json:"origin"`
	Destination       string `json:"destination"`
	ShipDate          string `json:"shipDate"`
	EstimatedDelivery string `json:"estimatedDelivery"`
}

// CreateShipment handles POST /api/supply-chain/shipments.
func (h *SupplyChainHandler) CreateShipment(w http.ResponseWriter, r *http.Request) {
	var req shipmentEchoRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid json")
		return
	}
	writeJSON(h.logger, w, r, http.StatusCreated, map[string]any{
		"id":                newID("ship"),
		"trackingNumber":    newRefNumber("TRK"),
		"orderId":           req.OrderID,
		"carrier":           req.Carrier,
		"origin":            req.Origin,
		"destination":       req.Destination,
		"shipDate":          req.ShipDate,
		"estimatedDelivery": req.EstimatedDelivery,
		"status":            "pending",
	})
}

// ListShipments handles GET /api/supply-chain/shipments.
func (h *SupplyChainHandler) ListShipments(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, mockdata.Shipments)
}

// GetShipment handles GET /api/supply-chain/shipments/{id}.
func (h *SupplyChainHandler) GetShipment(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{
		"id":                chi.URLParam(r, "id"),
		"trackingNumber":    "TRK-001",
		"status":            "in_transit",
		"estimatedDelivery": "2024-02-01",
	})
}

// GetByTracking handles GET /api/supply-chain/shipments/tracking/{trackingNumber}.
func (h *SupplyChainHandler) GetByTracking(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{
		"trackingNumber":    chi.URLParam(r, "trackingNumber"),
		"status":            "in_transit",
		"currentLocation":   "Distribution Center",
		"estimatedDelivery": "2024-02-01",
	})
}

// GetByOrder handles GET /api/supply-chain/shipments/order/{orderId}.
func (h *SupplyChainHandler) GetByOrder(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, []map[string]any{
		{
			"id":             "ship-001",
			"orderId":        chi.URLParam(r, "orderId"),
			"trackingNumber": "TRK-001",
			"status":         "delivered",
		},
	})
}

// DispatchShipment handles POST /api/supply-chain/shipments/{id}/dispatch.
func (h *SupplyChainHandler) DispatchShipment(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{
		"id":           chi.URLParam(r, "id"),
		"status":       "dispatched",
		"dispatchedAt": utcNow(),
		"message":      "Shipment dispatched successfully",
	})
}

type shipmentStatusRequest struct {
	Status   string `json:"status"`
	Location string `json:"location"`
}

// UpdateStatus handles PUT /api/supply-chain/shipments/{id}/status.
func (h *SupplyChainHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req shipmentStatusRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid json")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{
		"id":        chi.URLParam(r, "id"),
		"status":    req.Status,
		"location":  req.Location,
		"updatedAt": utcNow(),
	})
}

// MarkDelivered handles POST /api/supply-chain/shipments/{id}/deliver.
func (h *SupplyChainHandler) MarkDelivered(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{
		"id":          chi.URLParam(r, "id"),
		"status":      "delivered",
		"deliveredAt": utcNow(),
		"message":     "Shipment marked as delivered",
	})
}

// CancelShipment handles POST /api/supply-chain/shipments/{id}/cancel.
func (h *SupplyChainHandler) CancelShipment(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{
		"id":          chi.URLParam(r, "id"),
		"status":      "cancelled",
		"cancelledAt": utcNow(),
		"message":     "Shipment cancelled",
	})
}

// CarrierPerformance handles GET /api/supply-chain/carriers/performance.
func (h *SupplyChainHandler) CarrierPerformance(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{
		"carriers": []map[string]any{
			{"name": "FedEx", "onTimeRate": 95, "avgDeliveryTime": 2.5},
			{"name": "UPS", "onTimeRate": 93, "avgDeliveryTime": 2.8},
		},
	})
}

// InboundSummary handles GET /api/supply-chain/inbound/summary.
func (h *SupplyChainHandler) InboundSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{
		"totalInbound":  25,
		"inTransit":     15,
		"arrived":       10,
		"expectedToday": 5,
	})
}

// OutboundSummary handles GET /api/supply-chain/outbound/summary.
func (h *SupplyChainHandler) OutboundSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{
		"totalOutbound": 30,
		"pending":       5,
		"dispatched":    20,
		"delivered":     5,
	})
}
