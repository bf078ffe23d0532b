package handlers

import (
	"net/http"

	"erp-monolith/internal/logx"
	"erp-monolith/internal/mockdata"
)

// Handlers holds the service-level HTTP handlers (health, API info, demo data).
type Handlers struct {
	Logger logx.Logger
}

// New creates a Handlers instance with the given logger.
func New(logger logx.Logger) *Handlers {
	return &Handlers{Logger: logger}
}

// Health handles GET /health.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.Logger, w, r, http.StatusOK, map[string]any{
		"status":    "healthy",
		"service":   "ERP Monolith",
		"timestamp": utcNow(),
	})
}

type apiModule struct {
	Name        string   `json:"name"`
	Path        string   `json:"path"`
	Description string   `json:"description"`
	Calls       []string `json:"calls"`
	CalledBy    []string `json:"calledBy"`
}

// APIInfo handles GET /api and describes the module graph.
func (h *Handlers) APIInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.Logger, w, r, http.StatusOK, map[string]any{
		"name":         "Enterprise Resource Planning - Monolithic API",
		"version":      "1.0.0",
		"architecture": "Monolithic",
		"modules": []apiModule{
			{Name: "Human Resources", Path: "/api/hr", Description: "Employee and department management", Calls: []string{}, CalledBy: []string{"Payroll"}},
			{Name: "Payroll", Path: "/api/payroll", Description: "Salary processing and tax calculations", Calls: []string{"HR", "Accounting"}, CalledBy: []string{}},
			{Name: "Accounting", Path: "/api/accounting", Description: "General ledger and financial transactions", Calls: []string{}, CalledBy: []string{"Payroll", "Billing", "Procurement"}},
			{Name: "Finance", Path: "/api/finance", Description: "Budgeting and financial reporting", Calls: []string{"Accounting"}, CalledBy: []string{}},
			{Name: "Billing", Path: "/api/billing", Description: "Invoicing and customer billing", Calls: []string{"Accounting"}, CalledBy: []string{}},
			{Name: "Procurement", Path: "/api/procurement", Description: "Purchase orders and vendor management", Calls: []string{"Accounting"}, CalledBy: []string{"Inventory"}},
			{Name: "Supply Chain", Path: "/api/supply-chain", Description: "Shipments and logistics", Calls: []string{}, CalledBy: []string{}},
			{Name: "Inventory", Path: "/api/inventory", Description: "Stock management and automatic reordering", Calls: []string{"Procurement"}, CalledBy: []string{}},
		},
		"characteristics": map[string]string{
			"deploymentUnit": "Single monolithic application",
			"database":       "None (in-memory demo data)",
			"coupling":       "Tight coupling between modules (direct service calls)",
			"middleware":     "Shared logging, metrics, and error handling",
		},
	})
}

// MockStats handles GET /api/mock-stats.
func (h *Handlers) MockStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.Logger, w, r, http.StatusOK, mockdata.GetStats())
}

// DemoEmployees handles GET /api/demo/employees.
func (h *Handlers) DemoEmployees(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.Logger, w, r, http.StatusOK, mockdata.Employees)
}

// DemoDepartments handles GET /api/demo/departments.
func (h *Handlers) DemoDepartments(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.Logger, w, r, http.StatusOK, mockdata.Departments)
}

// DemoPayroll handles GET /api/demo/payroll.
func (h *Handlers) DemoPayroll(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.Logger, w, r, http.StatusOK, mockdata.PayrollRecords)
}

// DemoTransactions handles GET /api/demo/transactions.
func (h *Handlers) DemoTransactions(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.Logger, w, r, http.StatusOK, mockdata.Transactions)
}

// DemoBudgets handles GET /api/demo/budgets.
func (h *Handlers) DemoBudgets(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.Logger, w, r, http.StatusOK, mockdata.Budgets)
}

// DemoCustomers handles GET /api/demo/customers.
func (h *Handlers) DemoCustomers(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.Logger, w, r, http.StatusOK, mockdata.Customers)
}

// DemoInvoices handles GET /api/demo/invoices.
func (h *Handlers) DemoInvoices(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.Logger, w, r, http.StatusOK, mockdata.Invoices)
}

// DemoVendors handles GET /api/demo/vendors.
func (h *Handlers) DemoVendors(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.Logger, w, r, http.StatusOK, mockdata.Vendors)
}

// DemoPurchaseOrders handles GET /api/demo/purchase-orders.
func (h *Handlers) DemoPurchaseOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.Logger, w, r, http.StatusOK, mockdata.PurchaseOrders)
}

// DemoInventory handles GET /api/demo/inventory.
func (h *Handlers) DemoInventory(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.Logger, w, r, http.StatusOK, mockdata.InventoryItems)
}

// DemoShipments handles GET /api/demo/shipments.
func (h *Handlers) DemoShipments(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.Logger, w, r, http.StatusOK, mockdata.Shipments)
}

// NotFound returns the JSON 404 body for unknown routes.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.Logger, w, r, http.StatusNotFound, map[string]string{
		"error":  "Endpoint not found",
		"path":   r.URL.Path,
		"method": r.Method,
	})
}
