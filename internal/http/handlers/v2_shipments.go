package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"erp-monolith/internal/apperr"
	"erp-monolith/internal/logx"
	"erp-monolith/internal/pagination"
)

// ShipmentHandler serves the stateful v2 shipment resource. Unlike the rest
// of the API it reads and writes real records instead of echoing fixtures.
type ShipmentHandler struct {
	logger  logx.Logger
	usecase shipmentUsecase
	created prometheus.Counter
}

func NewShipmentHandler(logger logx.Logger, usecase shipmentUsecase, created prometheus.Counter) *ShipmentHandler {
	return &ShipmentHandler{
		logger:  logger,
		usecase: usecase,
		created: created,
	}
}

func (h *ShipmentHandler) Register(r chi.Router) {
	r.Route("/supply-chain/shipments", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/tracking/{trackingNumber}", h.GetByTracking)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Replace)
		r.Patch("/{id}", h.Patch)
	})
}

func (h *ShipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createShipmentRequest
	if err := readJSON(w, r, &req); err != nil {
		writeV2Error(h.logger, w, r, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	sh, err := h.usecase.Create(req.toDomain())
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	h.created.Inc()
	h.logger.Info("shipment created",
		logx.String("id", sh.ID),
		logx.String("trackingNumber", sh.TrackingNumber),
	)
	writeV2Data(h.logger, w, r, http.StatusCreated, sh)
}

func (h *ShipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	writeV2Page(h.logger, w, r, pagination.Paginate(h.usecase.List(), page, limit))
}

func (h *ShipmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	sh, err := h.usecase.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeV2Data(h.logger, w, r, http.StatusOK, sh)
}

func (h *ShipmentHandler) GetByTracking(w http.ResponseWriter, r *http.Request) {
	sh, err := h.usecase.GetByTracking(chi.URLParam(r, "trackingNumber"))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeV2Data(h.logger, w, r, http.StatusOK, sh)
}

func (h *ShipmentHandler) Replace(w http.ResponseWriter, r *http.Request) {
	var req replaceShipmentRequest
	if err := readJSON(w, r, &req); err != nil {
		writeV2Error(h.logger, w, r, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	sh, err := h.usecase.Replace(chi.URLParam(r, "id"), req.toDomain())
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeV2Data(h.logger, w, r, http.StatusOK, sh)
}

func (h *ShipmentHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var req patchShipmentRequest
	if err := readJSON(w, r, &req); err != nil {
		writeV2Error(h.logger, w, r, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	sh, updated, err := h.usecase.Patch(chi.URLParam(r, "id"), req.toDomain())
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeV2(h.logger, w, r, http.StatusOK, map[string]any{
		"data":          sh,
		"updatedFields": updated,
	})
}

func (h *ShipmentHandler) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		writeV2Error(h.logger, w, r, http.StatusNotFound, "Shipment not found")
	case errors.Is(err, apperr.ErrValidation), errors.Is(err, apperr.ErrInvalidInput):
		writeV2Error(h.logger, w, r, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("shipment handler failure", logx.Err(err))
		writeV2Error(h.logger, w, r, http.StatusInternalServerError, "Internal server error")
	}
}
