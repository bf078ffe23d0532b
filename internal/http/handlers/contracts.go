package handlers

import (
	"erp-monolith/internal/domain"
	"erp-monolith/internal/store"
)

// shipmentUsecase defines the shipment operations required by the v2 handlers.
type shipmentUsecase interface {
	Create(c domain.ShipmentCreate) (domain.Shipment, error)
	Get(id string) (domain.Shipment, error)
	GetByTracking(trackingNumber string) (domain.Shipment, error)
	Replace(id string, r domain.ShipmentReplace) (domain.Shipment, error)
	Patch(id string, p domain.ShipmentPatch) (domain.Shipment, []string, error)
	List() []domain.Shipment
}

// NewShipmentUsecase wires the shipment store into a shipmentUsecase.
func NewShipmentUsecase(s *store.ShipmentStore) shipmentUsecase {
	return s
}
