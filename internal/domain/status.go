package domain

// ShipmentStatus represents the status of a shipment.
type ShipmentStatus string

// List of possible shipment statuses
const (
	StatusPending   ShipmentStatus = "pending"
	StatusInTransit ShipmentStatus = "in_transit"
	StatusDelivered ShipmentStatus = "delivered"
	StatusCancelled ShipmentStatus = "cancelled"
	StatusDelayed   ShipmentStatus = "delayed"
)

var allowedStatuses = [...]ShipmentStatus{
	StatusPending, StatusInTransit, StatusDelivered, StatusCancelled, StatusDelayed,
}

// Valid checks if the ShipmentStatus is one of the five legal values.
func (s ShipmentStatus) Valid() bool {
	for _, v := range allowedStatuses {
		if s == v {
			return true
		}
	}
	return false
}
