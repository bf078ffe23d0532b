package app

import (
	"go.uber.org/dig"

	"erp-monolith/internal/http/handlers"
	"erp-monolith/internal/http/middleware/ratelimit"
	"erp-monolith/internal/http/router"
	"erp-monolith/internal/logx"
)

type routerDepsIn struct {
	dig.In

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

func newRouterDeps(in routerDepsIn) router.Deps {
	return router.Deps{
		Logger:      in.Logger,
		Base:        in.Base,
		HR:          in.HR,
		Payroll:     in.Payroll,
		Accounting:  in.Accounting,
		Finance:     in.Finance,
		Billing:     in.Billing,
		Procurement: in.Procurement,
		SupplyChain: in.SupplyChain,
		Inventory:   in.Inventory,
		V2:          in.V2,
		Shipments:   in.Shipments,
		RateLimit:   in.RateLimit,
	}
}
