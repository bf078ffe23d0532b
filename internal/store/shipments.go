// Package store holds the process-lifetime in-memory collections behind the
// v2 API surface. The shipment store is the only stateful subsystem: records
// live in insertion order, are never deleted, and survive exactly as long as
// the process.
package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"erp-monolith/internal/apperr"
	"erp-monolith/internal/domain"
)

// ShipmentStore owns the shipment collection. All access goes through its
// methods; a single mutex guards both the index and the backing slice.
type ShipmentStore struct {
	mu        sync.Mutex
	shipments []domain.Shipment
	byID      map[string]int
	now       func() time.Time
}

// NewShipmentStore returns an empty store.
func NewShipmentStore() *ShipmentStore {
	return &ShipmentStore{
		byID: make(map[string]int),
		now:  time.Now,
	}
}

func (s *ShipmentStore) timestamp() string {
	return s.now().UTC().Format(time.RFC3339Nano)
}

func newShipmentID() string {
	return "ship-" + uuid.NewString()
}

func newTrackingNumber() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "TRK-" + strings.ToUpper(raw[:12])
}

// Create appends a new shipment with a generated id and tracking number.
// The initial status is always pending regardless of caller input.
func (s *ShipmentStore) Create(c domain.ShipmentCreate) (domain.Shipment, error) {
	sh := domain.Shipment{
		ID:                newShipmentID(),
		TrackingNumber:    newTrackingNumber(),
		OrderID:           c.OrderID,
		Carrier:           c.Carrier,
		Origin:            c.Origin,
		Destination:       c.Destination,
		ShipDate:          c.ShipDate,
		EstimatedDelivery: c.EstimatedDelivery,
		Items:             c.Items,
		Status:            domain.StatusPending,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.byID[sh.ID] = len(s.shipments)
	s.shipments = append(s.shipments, sh)
	return sh, nil
}

// Get looks a shipment up by id.
func (s *ShipmentStore) Get(id string) (domain.Shipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.byID[id]
	if !ok {
		return domain.Shipment{}, apperr.ErrNotFound
	}
	return s.shipments[i], nil
}

// GetByTracking looks a shipment up by tracking number.
func (s *ShipmentStore) GetByTracking(trackingNumber string) (domain.Shipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.shipments {
		if s.shipments[i].TrackingNumber == trackingNumber {
			return s.shipments[i], nil
		}
	}
	return domain.Shipment{}, apperr.ErrNotFound
}

// Replace overwrites the supplied fields of an existing shipment. The first
// validation failure short-circuits and leaves the record untouched.
func (s *ShipmentStore) Replace(id string, r domain.ShipmentReplace) (domain.Shipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.byID[id]
	if !ok {
		return domain.Shipment{}, apperr.ErrNotFound
	}

	if r.Carrier != nil && strings.TrimSpace(*r.Carrier) == "" {
		return domain.Shipment{}, fmt.Errorf("%w: carrier must be a non-empty string", apperr.ErrValidation)
	}
	if r.TrackingNumber != nil && strings.TrimSpace(*r.TrackingNumber) == "" {
		return domain.Shipment{}, fmt.Errorf("%w: trackingNumber must be a non-empty string", apperr.ErrValidation)
	}
	if r.Status != nil && !r.Status.Valid() {
		return domain.Shipment{}, fmt.Errorf("%w: invalid status %q", apperr.ErrValidation, *r.Status)
	}

	sh := &s.shipments[i]
	if r.Carrier != nil {
		sh.Carrier = *r.Carrier
	}
	if r.TrackingNumber != nil {
		sh.TrackingNumber = *r.TrackingNumber
	}
	if r.Status != nil {
		sh.Status = *r.Status
	}
	if r.EstimatedDelivery != nil {
		sh.EstimatedDelivery = *r.EstimatedDelivery
	}
	sh.UpdatedAt = s.timestamp()
	return *sh, nil
}

// Patch applies only the fields present in p and reports which field names
// were changed, in the fixed allow-list order. An empty payload is rejected
// before the existence check.
func (s *ShipmentStore) Patch(id string, p domain.ShipmentPatch) (domain.Shipment, []string, error) {
	if p.Empty() {
		return domain.Shipment{}, nil, fmt.Errorf("%w: no data provided", apperr.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.byID[id]
	if !ok {
		return domain.Shipment{}, nil, apperr.ErrNotFound
	}

	if p.Status != nil && !p.Status.Valid() {
		return domain.Shipment{}, nil, fmt.Errorf("%w: invalid status %q", apperr.ErrValidation, *p.Status)
	}

	sh := &s.shipments[i]
	var updated []string
	if p.Status != nil {
		sh.Status = *p.Status
		updated = append(updated, "status")
	}
	if p.TrackingNumber != nil {
		sh.TrackingNumber = *p.TrackingNumber
		updated = append(updated, "trackingNumber")
	}
	if p.OrderID != nil {
		sh.OrderID = *p.OrderID
		updated = append(updated, "orderId")
	}
	if p.Items != nil {
		sh.Items = p.Items
		updated = append(updated, "items")
	}
	if p.Origin != nil {
		sh.Origin = *p.Origin
		updated = append(updated, "origin")
	}
	if p.Destination != nil {
		sh.Destination = *p.Destination
		updated = append(updated, "destination")
	}
	if p.EstimatedDelivery != nil {
		sh.EstimatedDelivery = *p.EstimatedDelivery
		updated = append(updated, "estimatedDelivery")
	}
	if p.Location != nil {
		sh.Location = *p.Location
		updated = append(updated, "location")
	}
	sh.UpdatedAt = s.timestamp()
	return *sh, updated, nil
}

// List returns a copy of the full collection in insertion order.
func (s *ShipmentStore) List() []domain.Shipment {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Shipment, len(s.shipments))
	copy(out, s.shipments)
	return out
}

// Len reports the current number of shipments.
func (s *ShipmentStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.shipments)
}
