package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"erp-monolith/internal/http/handlers"
	"erp-monolith/internal/http/middleware"
	"erp-monolith/internal/http/middleware/ratelimit"
	"erp-monolith/internal/logx"
)

// Deps bundles everything the router mounts.
type Deps struct {
	Logger      logx.Logger
	Base        *handlers.Handlers
	HR          *handlers.HRHandler
	Payroll     *handlers.PayrollHandler
	Accounting  *handlers.AccountingHandler
	Finance     *handlers.FinanceHandler
	Billing     *handlers.BillingHandler
	Procurement *handlers.ProcurementHandler
	SupplyChain *handlers.SupplyChainHandler
	Inventory   *handlers.InventoryHandler
	V2          *handlers.V2Handler
	Shipments   *handlers.ShipmentHandler
	RateLimit   *ratelimit.Middleware
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(15 * time.Second))
	r.Use(middleware.Observability(d.Logger))
	if d.RateLimit != nil {
		r.Use(d.RateLimit.Handler())
	}

	r.Get("/health", d.Base.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/", d.Base.APIInfo)
		r.Get("/mock-stats", d.Base.MockStats)

		r.Route("/demo", func(r chi.Router) {
			r.Get("/employees", d.Base.DemoEmployees)
			r.Get("/departments", d.Base.DemoDepartments)
			r.Get("/payroll", d.Base.DemoPayroll)
			r.Get("/transactions", d.Base.DemoTransactions)
			r.Get("/budgets", d.Base.DemoBudgets)
			r.Get("/customers", d.Base.DemoCustomers)
			r.Get("/invoices", d.Base.DemoInvoices)
			r.Get("/vendors", d.Base.DemoVendors)
			r.Get("/purchase-orders", d.Base.DemoPurchaseOrders)
			r.Get("/inventory", d.Base.DemoInventory)
			r.Get("/shipments", d.Base.DemoShipments)
		})

		r.Route("/hr", d.HR.Register)
		r.Route("/payroll", d.Payroll.Register)
		r.Route("/accounting", d.Accounting.Register)
		r.Route("/finance", d.Finance.Register)
		r.Route("/billing", d.Billing.Register)
		r.Route("/procurement", d.Procurement.Register)
		r.Route("/supply-chain", d.SupplyChain.Register)
		r.Route("/inventory", d.Inventory.Register)

		r.Route("/v2", func(r chi.Router) {
			d.V2.Register(r)
			d.Shipments.Register(r)
		})
	})

	r.NotFound(http.HandlerFunc(d.Base.NotFound))

	return r
}
