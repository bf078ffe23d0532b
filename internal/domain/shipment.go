package domain

import "encoding/json"

// Shipment represents one logistics shipment held by the store.
// UpdatedAt stays empty until the first mutation.
type Shipment struct {
	ID                string          `json:"id"`
	TrackingNumber    string          `json:"trackingNumber"`
	OrderID           string          `json:"orderId,omitempty"`
	Carrier           string          `json:"carrier,omitempty"`
	Origin            string          `json:"origin,omitempty"`
	Destination       string          `json:"destination,omitempty"`
	ShipDate          string          `json:"shipDate,omitempty"`
	EstimatedDelivery string          `json:"estimatedDelivery,omitempty"`
	Location          string          `json:"location,omitempty"`
	Items             json.RawMessage `json:"items,omitempty"`
	Status            ShipmentStatus  `json:"status"`
	UpdatedAt         string          `json:"updatedAt,omitempty"`
}

// ShipmentCreate carries the caller-supplied fields for a new shipment.
// The store assigns id, tracking number and the initial status itself.
type ShipmentCreate struct {
	OrderID           string
	Carrier           string
	Origin            string
	Destination       string
	ShipDate          string
	EstimatedDelivery string
	Items             json.RawMessage
}

// ShipmentReplace carries optional fields for a full update.
// A nil field means “do not change” that attribute.
type ShipmentReplace struct {
	Carrier           *string
	TrackingNumber    *string
	Status            *ShipmentStatus
	EstimatedDelivery *string
}

// ShipmentPatch carries optional fields for a partial update. The field set
// is the fixed allow-list of patchable attributes; a nil field means “do not
// change” that attribute and nil Items means the key was absent.
type ShipmentPatch struct {
	Status            *ShipmentStatus
	TrackingNumber    *string
	OrderID           *string
	Items             json.RawMessage
	Origin            *string
	Destination       *string
	EstimatedDelivery *string
	Location          *string
}

// Empty reports whether no patchable field is present at all.
func (p ShipmentPatch) Empty() bool {
	return p.Status == nil &&
		p.TrackingNumber == nil &&
		p.OrderID == nil &&
		p.Items == nil &&
		p.Origin == nil &&
		p.Destination == nil &&
		p.EstimatedDelivery == nil &&
		p.Location == nil
}
