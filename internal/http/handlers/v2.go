package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"erp-monolith/internal/logx"
	"erp-monolith/internal/mockdata"
	"erp-monolith/internal/pagination"
)

// V2Handler serves the paginated v2 list endpoints over the demo datasets.
type V2Handler struct {
	logger logx.Logger
}

// NewV2Handler creates a new V2Handler.
func NewV2Handler(logger logx.Logger) *V2Handler {
	return &V2Handler{logger: logger}
}

// Register mounts the v2 list routes onto r.
func (h *V2Handler) Register(r chi.Router) {
	r.Get("/hr/employees", listV2(h.logger, mockdata.Employees))
	r.Get("/hr/departments", listV2(h.logger, mockdata.Departments))
	r.Get("/payroll/records", listV2(h.logger, mockdata.PayrollRecords))
	r.Get("/accounting/transactions", listV2(h.logger, mockdata.Transactions))
	r.Get("/finance/budgets", listV2(h.logger, mockdata.Budgets))
	r.Get("/billing/customers", listV2(h.logger, mockdata.Customers))
	r.Get("/billing/invoices", listV2(h.logger, mockdata.Invoices))
	r.Get("/procurement/vendors", listV2(h.logger, mockdata.Vendors))
	r.Get("/procurement/purchase-orders", listV2(h.logger, mockdata.PurchaseOrders))
	r.Get("/inventory/items", listV2(h.logger, mockdata.InventoryItems))
}

// listV2 builds a paginated list handler over a fixed collection.
func listV2[T any](logger logx.Logger, items []T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, limit := pageParams(r)
		writeV2Page(logger, w, r, pagination.Paginate(items, page, limit))
	}
}
