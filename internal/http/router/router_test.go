package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"erp-monolith/internal/http/handlers"
	"erp-monolith/internal/http/router"
	"erp-monolith/internal/logx"
	"erp-monolith/internal/store"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := logx.Nop()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "router_test_shipments_created_total"})
	usecase := handlers.NewShipmentUsecase(store.NewShipmentStore())

	return router.New(router.Deps{
		Logger:      logger,
		Base:        handlers.New(logger),
		HR:          handlers.NewHRHandler(logger),
		Payroll:     handlers.NewPayrollHandler(logger),
		Accounting:  handlers.NewAccountingHandler(logger),
		Finance:     handlers.NewFinanceHandler(logger),
		Billing:     handlers.NewBillingHandler(logger),
		Procurement: handlers.NewProcurementHandler(logger),
		SupplyChain: handlers.NewSupplyChainHandler(logger),
		Inventory:   handlers.NewInventoryHandler(logger),
		V2:          handlers.NewV2Handler(logger),
		Shipments:   handlers.NewShipmentHandler(logger, usecase, counter),
	})
}

func TestRouter_MountsCoreRoutes(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t)

	for _, tc := range []struct {
		method string
		target string
		want   int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/api", http.StatusOK},
		{http.MethodGet, "/api/mock-stats", http.StatusOK},
		{http.MethodGet, "/api/demo/employees", http.StatusOK},
		{http.MethodGet, "/api/hr/employees", http.StatusOK},
		{http.MethodGet, "/api/payroll", http.StatusOK},
		{http.MethodGet, "/api/accounting/trial-balance", http.StatusOK},
		{http.MethodGet, "/api/finance/budgets", http.StatusOK},
		{http.MethodGet, "/api/billing/invoices", http.StatusOK},
		{http.MethodGet, "/api/procurement/vendors", http.StatusOK},
		{http.MethodGet, "/api/supply-chain/carriers/performance", http.StatusOK},
		{http.MethodGet, "/api/inventory/items", http.StatusOK},
		{http.MethodGet, "/api/v2/hr/employees", http.StatusOK},
		{http.MethodGet, "/api/v2/supply-chain/shipments", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/api/unknown", http.StatusNotFound},
	} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.target, nil))
		require.Equal(t, tc.want, rr.Code, "%s %s", tc.method, tc.target)
	}
}

func TestRouter_NotFoundBodyIsJSON(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))

	require.Equal(t, http.StatusNotFound, rr.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	require.Equal(t, "/nope", body["path"])
	require.Equal(t, http.MethodGet, body["method"])
}

func TestRouter_ShipmentLifecycleThroughRoutes(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t)

	// create
	rr := httptest.NewRecorder()
	createBody := `{"orderId":"order-1","carrier":"UPS","origin":"Chicago, IL","destination":"Denver, CO"}`
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v2/supply-chain/shipments", strings.NewReader(createBody)))
	require.Equal(t, http.StatusCreated, rr.Code)

	var created struct {
		Success bool `json:"success"`
		Data    struct {
			ID             string `json:"id"`
			TrackingNumber string `json:"trackingNumber"`
			Status         string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&created))
	require.True(t, created.Success)
	require.True(t, strings.HasPrefix(created.Data.ID, "ship-"))
	require.True(t, strings.HasPrefix(created.Data.TrackingNumber, "TRK-"))
	require.Equal(t, "pending", created.Data.Status)

	// fetch by id through the router
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v2/supply-chain/shipments/"+created.Data.ID, nil))
	require.Equal(t, http.StatusOK, rr.Code)

	// fetch by tracking number
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v2/supply-chain/shipments/tracking/"+created.Data.TrackingNumber, nil))
	require.Equal(t, http.StatusOK, rr.Code)

	// patch
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPatch, "/api/v2/supply-chain/shipments/"+created.Data.ID,
		strings.NewReader(`{"status":"in_transit","location":"Omaha, NE"}`)))
	require.Equal(t, http.StatusOK, rr.Code)

	var patched struct {
		UpdatedFields []string `json:"updatedFields"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&patched))
	require.Equal(t, []string{"status", "location"}, patched.UpdatedFields)
}
