package handlers

import (
	"encoding/json"

	"erp-monolith/internal/domain"
)

type createShipmentRequest struct {
	OrderID           string          `json:"orderId"`
	Carrier           string          `json:"carrier"`
	Origin            string          `json:"origin"`
	Destination       string          `json:"destination"`
	ShipDate          string          `json:"shipDate"`
	EstimatedDelivery string          `json:"estimatedDelivery"`
	Items             json.RawMessage `json:"items"`
	// Accepted but ignored: the store always starts a shipment as pending.
	Status string `json:"status"`
}

func (req createShipmentRequest) toDomain() domain.ShipmentCreate {
	return domain.ShipmentCreate{
		OrderID:           req.OrderID,
		Carrier:           req.Carrier,
		Origin:            req.Origin,
		Destination:       req.Destination,
		ShipDate:          req.ShipDate,
		EstimatedDelivery: req.EstimatedDelivery,
		Items:             req.Items,
	}
}

type replaceShipmentRequest struct {
	Carrier           *string                `json:"carrier"`
	TrackingNumber    *string                `json:"trackingNumber"`
	Status            *domain.ShipmentStatus `json:"status"`
	EstimatedDelivery *string                `json:"estimatedDelivery"`
}

func (req replaceShipmentRequest) toDomain() domain.ShipmentReplace {
	return domain.ShipmentReplace{
		Carrier:           req.Carrier,
		TrackingNumber:    req.TrackingNumber,
		Status:            req.Status,
		EstimatedDelivery: req.EstimatedDelivery,
	}
}

type patchShipmentRequest struct {
	Status            *domain.ShipmentStatus `json:"status"`
	TrackingNumber    *string                `json:"trackingNumber"`
	OrderID           *string                `json:"orderId"`
	Items             json.RawMessage        `json:"items"`
	Origin            *string                `json:"origin"`
	Destination       *string                `json:"destination"`
	EstimatedDelivery *string                `json:"estimatedDelivery"`
	Location          *string                `json:"location"`
}

func (req patchShipmentRequest) toDomain() domain.ShipmentPatch {
	return domain.ShipmentPatch{
		Status:            req.Status,
		TrackingNumber:    req.TrackingNumber,
		OrderID:           req.OrderID,
		Items:             req.Items,
		Origin:            req.Origin,
		Destination:       req.Destination,
		EstimatedDelivery: req.EstimatedDelivery,
		Location:          req.Location,
	}
}
