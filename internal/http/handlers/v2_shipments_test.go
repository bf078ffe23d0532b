package handlers_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"erp-monolith/internal/apperr"
	"erp-monolith/internal/domain"
	"erp-monolith/internal/http/handlers"
)

type stubShipmentUsecase struct {
	createFn        func(c domain.ShipmentCreate) (domain.Shipment, error)
	getFn           func(id string) (domain.Shipment, error)
	getByTrackingFn func(trackingNumber string) (domain.Shipment, error)
	replaceFn       func(id string, r domain.ShipmentReplace) (domain.Shipment, error)
	patchFn         func(id string, p domain.ShipmentPatch) (domain.Shipment, []string, error)
	listFn          func() []domain.Shipment
}

func (s *stubShipmentUsecase) Create(c domain.ShipmentCreate) (domain.Shipment, error) {
	return s.createFn(c)
}

func (s *stubShipmentUsecase) Get(id string) (domain.Shipment, error) {
	return s.getFn(id)
}

func (s *stubShipmentUsecase) GetByTracking(trackingNumber string) (domain.Shipment, error) {
	return s.getByTrackingFn(trackingNumber)
}

func (s *stubShipmentUsecase) Replace(id string, r domain.ShipmentReplace) (domain.Shipment, error) {
	return s.replaceFn(id, r)
}

func (s *stubShipmentUsecase) Patch(id string, p domain.ShipmentPatch) (domain.Shipment, []string, error) {
	return s.patchFn(id, p)
}

func (s *stubShipmentUsecase) List() []domain.Shipment {
	return s.listFn()
}

func newTestCounter() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{Name: "test_shipments_created_total"})
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, routeCtx))
}

func TestShipmentCreate_ReturnsCreatedEnvelope(t *testing.T) {
	t.Parallel()

	uc := &stubShipmentUsecase{
		createFn: func(c domain.ShipmentCreate) (domain.Shipment, error) {
			require.Equal(t, "order-123", c.OrderID)
			require.Equal(t, "FedEx", c.Carrier)
			return domain.Shipment{
				ID:             "ship-abc",
				TrackingNumber: "TRK-123456789ABC",
				OrderID:        c.OrderID,
				Carrier:        c.Carrier,
				Status:         domain.StatusPending,
			}, nil
		},
	}
	counter := newTestCounter()
	h := handlers.NewShipmentHandler(testLogger(), uc, counter)

	body := `{"orderId":"order-123","carrier":"FedEx","status":"delivered"}`
	rr := httptest.NewRecorder()
	h.Create(rr, httptest.NewRequest(http.MethodPost, "/api/v2/supply-chain/shipments", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rr.Code)
	require.Equal(t, float64(1), testutil.ToFloat64(counter))

	resp := decodeBody(t, rr)
	require.Equal(t, true, resp["success"])
	require.NotEmpty(t, resp["timestamp"])

	data := resp["data"].(map[string]any)
	require.Equal(t, "ship-abc", data["id"])
	require.Equal(t, "TRK-123456789ABC", data["trackingNumber"])
	// status forced to pending regardless of what the caller sent
	require.Equal(t, "pending", data["status"])
}

func TestShipmentCreate_InvalidBody(t *testing.T) {
	t.Parallel()

	uc := &stubShipmentUsecase{
		createFn: func(domain.ShipmentCreate) (domain.Shipment, error) {
			require.FailNow(t, "Create should not be called on malformed json")
			return domain.Shipment{}, nil
		},
	}
	counter := newTestCounter()
	h := handlers.NewShipmentHandler(testLogger(), uc, counter)

	rr := httptest.NewRecorder()
	h.Create(rr, httptest.NewRequest(http.MethodPost, "/api/v2/supply-chain/shipments", strings.NewReader("{broken")))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, float64(0), testutil.ToFloat64(counter))

	resp := decodeBody(t, rr)
	require.Equal(t, false, resp["success"])
	require.Equal(t, "Invalid JSON body", resp["error"])
}

func TestShipmentGet_NotFound(t *testing.T) {
	t.Parallel()

	uc := &stubShipmentUsecase{
		getFn: func(id string) (domain.Shipment, error) {
			require.Equal(t, "ship-missing", id)
			return domain.Shipment{}, fmt.Errorf("shipment %s: %w", id, apperr.ErrNotFound)
		},
	}
	h := handlers.NewShipmentHandler(testLogger(), uc, newTestCounter())

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/v2/supply-chain/shipments/ship-missing", nil), "id", "ship-missing")
	rr := httptest.NewRecorder()
	h.Get(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)

	resp := decodeBody(t, rr)
	require.Equal(t, false, resp["success"])
	require.Equal(t, "Shipment not found", resp["error"])
}

func TestShipmentGetByTracking_OK(t *testing.T) {
	t.Parallel()

	uc := &stubShipmentUsecase{
		getByTrackingFn: func(trackingNumber string) (domain.Shipment, error) {
			require.Equal(t, "TRK-AAA", trackingNumber)
			return domain.Shipment{ID: "ship-1", TrackingNumber: trackingNumber, Status: domain.StatusInTransit}, nil
		},
	}
	h := handlers.NewShipmentHandler(testLogger(), uc, newTestCounter())

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/v2/supply-chain/shipments/tracking/TRK-AAA", nil), "trackingNumber", "TRK-AAA")
	rr := httptest.NewRecorder()
	h.GetByTracking(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	resp := decodeBody(t, rr)
	data := resp["data"].(map[string]any)
	require.Equal(t, "ship-1", data["id"])
	require.Equal(t, "in_transit", data["status"])
}

func TestShipmentReplace_ValidationError(t *testing.T) {
	t.Parallel()

	uc := &stubShipmentUsecase{
		replaceFn: func(id string, r domain.ShipmentReplace) (domain.Shipment, error) {
			return domain.Shipment{}, fmt.Errorf("%w: carrier must not be empty", apperr.ErrValidation)
		},
	}
	h := handlers.NewShipmentHandler(testLogger(), uc, newTestCounter())

	req := withURLParam(
		httptest.NewRequest(http.MethodPut, "/api/v2/supply-chain/shipments/ship-1", strings.NewReader(`{"carrier":""}`)),
		"id", "ship-1",
	)
	rr := httptest.NewRecorder()
	h.Replace(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)

	resp := decodeBody(t, rr)
	require.Equal(t, false, resp["success"])
	require.Contains(t, resp["error"], "carrier must not be empty")
}

func TestShipmentPatch_ReturnsUpdatedFields(t *testing.T) {
	t.Parallel()

	uc := &stubShipmentUsecase{
		patchFn: func(id string, p domain.ShipmentPatch) (domain.Shipment, []string, error) {
			require.Equal(t, "ship-1", id)
			require.NotNil(t, p.Status)
			require.Equal(t, domain.StatusDelivered, *p.Status)
			require.NotNil(t, p.Location)
			return domain.Shipment{ID: id, Status: domain.StatusDelivered, Location: *p.Location},
				[]string{"status", "location"}, nil
		},
	}
	h := handlers.NewShipmentHandler(testLogger(), uc, newTestCounter())

	body := `{"status":"delivered","location":"Austin, TX"}`
	req := withURLParam(
		httptest.NewRequest(http.MethodPatch, "/api/v2/supply-chain/shipments/ship-1", strings.NewReader(body)),
		"id", "ship-1",
	)
	rr := httptest.NewRecorder()
	h.Patch(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	resp := decodeBody(t, rr)
	require.Equal(t, true, resp["success"])
	require.Equal(t, []any{"status", "location"}, resp["updatedFields"])

	data := resp["data"].(map[string]any)
	require.Equal(t, "delivered", data["status"])
	require.Equal(t, "Austin, TX", data["location"])
}

func TestShipmentPatch_EmptyPayload(t *testing.T) {
	t.Parallel()

	uc := &stubShipmentUsecase{
		patchFn: func(id string, p domain.ShipmentPatch) (domain.Shipment, []string, error) {
			require.True(t, p.Empty())
			return domain.Shipment{}, nil, fmt.Errorf("%w: no data provided", apperr.ErrValidation)
		},
	}
	h := handlers.NewShipmentHandler(testLogger(), uc, newTestCounter())

	req := withURLParam(
		httptest.NewRequest(http.MethodPatch, "/api/v2/supply-chain/shipments/ship-1", strings.NewReader(`{}`)),
		"id", "ship-1",
	)
	rr := httptest.NewRecorder()
	h.Patch(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)

	resp := decodeBody(t, rr)
	require.Contains(t, resp["error"], "no data provided")
}

func TestShipmentList_Paginated(t *testing.T) {
	t.Parallel()

	shipments := make([]domain.Shipment, 0, 25)
	for i := 0; i < 25; i++ {
		shipments = append(shipments, domain.Shipment{
			ID:     fmt.Sprintf("ship-%03d", i),
			Status: domain.StatusPending,
		})
	}
	uc := &stubShipmentUsecase{
		listFn: func() []domain.Shipment { return shipments },
	}
	h := handlers.NewShipmentHandler(testLogger(), uc, newTestCounter())

	rr := httptest.NewRecorder()
	h.List(rr, httptest.NewRequest(http.MethodGet, "/api/v2/supply-chain/shipments?page=3&limit=10", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	resp := decodeBody(t, rr)
	require.Equal(t, true, resp["success"])
	require.Equal(t, 25.0, resp["total"])

	data := resp["data"].([]any)
	require.Len(t, data, 5)
	first := data[0].(map[string]any)
	require.Equal(t, "ship-020", first["id"])

	meta := resp["pagination"].(map[string]any)
	require.Equal(t, 3.0, meta["page"])
	require.Equal(t, 3.0, meta["totalPages"])
	require.Equal(t, false, meta["hasNextPage"])
	require.Equal(t, true, meta["hasPreviousPage"])
}
