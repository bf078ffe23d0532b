package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"erp-monolith/internal/logx"
	"erp-monolith/internal/mockdata"
)

// Flat tax rate applied to invoice subtotals.
const invoiceTaxRate = 0.08

// BillingHandler serves the v1 billing endpoints.
type BillingHandler struct {
	logger logx.Logger
}

// NewBillingHandler creates a new BillingHandler.
func NewBillingHandler(logger logx.Logger) *BillingHandler {
	return &BillingHandler{logger: logger}
}

// Register mounts the billing routes onto r.
func (h *BillingHandler) Register(r chi.Router) {
	r.Post("/customers", h.CreateCustomer)
	r.Get("/customers", h.ListCustomers)
	r.Get("/customers/{id}", h.GetCustomer)
	r.Get("/customers/{id}/balance", h.CustomerBalance)
	r.Post("/invoices", h.CreateInvoice)
	r.Get("/invoices", h.ListInvoices)
	r.Get("/invoices/overdue", h.OverdueInvoices)
	r.Get("/invoices/{id}", h.GetInvoice)
	r.Post("/invoices/{id}/send", h.SendInvoice)
	r.Post("/invoices/{id}/payments", h.RecordPayment)
	r.Post("/invoices/{id}/cancel", h.CancelInvoice)
}

type customerRequest struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Address     string   `json:"address"`
	CreditLimit *float64 `json:"creditLimit"`
}

// CreateCustomer handles POST /api/billing/customers.
func (h *BillingHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid json")
		return
	}
	creditLimit := 50000.0
	if req.CreditLimit != nil {
		creditLimit = *req.CreditLimit
	}
	writeJSON(h.logger, w, r, http.StatusCreated, map[string]any{
		"id":             newID("cust"),
		"name":           req.Name,
		"email":          req.Email,
		"phone":          req.Phone,
		"address":        req.Address,
		"creditLimit":    creditLimit,
		"currentBalance": 0,
		"status":         "active",
	})
}

// ListCustomers handles GET /api/billing/customers.
func (h *BillingHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, mockdata.Customers)
}

// GetCustomer handles GET /api/billing/customers/{id}.
func (h *BillingHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{
		"id":             chi.URLParam(r, "id"),
		"name":           "Sample Customer",
		"email":          "customer@example.com",
		"currentBalance": 5000,
	})
}

// CustomerBalance handles GET /api/billing/customers/{id}/balance.
func (h *BillingHandler) CustomerBalance(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{
		"customerId":      chi.URLParam(r, "id"),
		"currentBalance":  5000,
		"creditLimit":     50000,
		"availableCredit": 45000,
	})
}

type invoiceRequest struct {
	CustomerID string          `json:"customerId"`
	IssueDate  string          `json:"issueDate"`
	DueDate    string          `json:"dueDate"`
	Subtotal   float64         `json:"subtotal"`
	Items      json.RawMessage `json:"items"`
}

// CreateInvoice handles POST /api/billing/invoices. Total is subtotal plus
// the flat tax.
func (h *BillingHandler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var req invoiceRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid json")
		return
	}
	taxAmount := req.Subtotal * invoiceTaxRate
	total := req.Subtotal + taxAmount
	items := req.Items
	if items == nil {
		items = json.RawMessage("[]")
	}
	writeJSON(h.logger, w, r, http.StatusCreated, map[string]any{
		"id":            newID("inv"),
		"invoiceNumber": newRefNumber("INV"),
		"customerId":    req.CustomerID,
		"issueDate":     req.IssueDate,
		"dueDate":       req.DueDate,
		"subtotal":      req.Subtotal,
		"taxAmount":     taxAmount,
		"totalAmount":   total,
		"balanceDue":    total,
		"status":        "draft",
		"items":         items,
	})
}

// ListInvoices handles GET /api/billing/invoices.
func (h *BillingHandler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, mockdata.Invoices)
}

// GetInvoice handles GET /api/billing/invoices/{id}.
func (h *BillingHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{
		"id":            chi.URLParam(r, "id"),
		"invoiceNumber": "INV-001",
		"customerId":    "cust-001",
		"totalAmount":   10000,
		"status":        "pending",
	})
}

// SendInvoice handles POST /api/billing/invoices/{id}/send.
func (h *BillingHandler) SendInvoice(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{
		"id":      chi.URLParam(r, "id"),
		"status":  "sent",
		"sentAt":  utcNow(),
		"message": "Invoice sent successfully",
	})
}

type paymentRequest struct {
	Amount        float64 `json:"amount"`
	PaymentDate   string  `json:"paymentDate"`
	PaymentMethod string  `json:"paymentMethod"`
}

// RecordPayment handles POST /api/billing/invoices/{id}/payments.
func (h *BillingHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid json")
		return
	}
	writeJSON(h.logger, w, r, http.StatusCreated, map[string]any{
		"invoiceId":     chi.URLParam(r, "id"),
		"paymentId":     newID("pmt"),
		"amount":        req.Amount,
		"paymentDate":   req.PaymentDate,
		"paymentMethod": req.PaymentMethod,
		"message":       "Payment recorded successfully",
	})
}

// CancelInvoice handles POST /api/billing/invoices/{id}/cancel.
func (h *BillingHandler) CancelInvoice(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{
		"id":          chi.URLParam(r, "id"),
		"status":      "cancelled",
		"cancelledAt": utcNow(),
		"message":     "Invoice cancelled successfully",
	})
}

// OverdueInvoices handles GET /api/billing/invoices/overdue.
func (h *BillingHandler) OverdueInvoices(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{
		"overdueCount":       5,
		"totalOverdueAmount": 25000,
		"invoices":           []any{},
	})
}
