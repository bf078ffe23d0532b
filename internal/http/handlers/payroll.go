package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"erp-monolith/internal/logx"
	"erp-monolith/internal/mockdata"
)

// Withholding rate applied to gross pay when processing payroll.
const taxWithholdingRate = 0.2

// PayrollHandler serves the v1 payroll endpoints.
type PayrollHandler struct {
	logger logx.Logger
}

// NewPayrollHandler creates a new PayrollHandler.
func NewPayrollHandler(logger logx.Logger) *PayrollHandler {
	return &PayrollHandler{logger: logger}
}

// Register mounts the payroll routes onto r.
func (h *PayrollHandler) Register(r chi.Router) {
	r.Post("/process", h.Process)
	r.Post("/process-batch", h.ProcessBatch)
	r.Post("/{id}/approve", h.Approve)
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Get("/employee/{employeeId}", h.EmployeeHistory)
}

type processPayrollRequest struct {
	EmployeeID     string   `json:"employeeId"`
	PayPeriodStart string   `json:"payPeriodStart"`
	PayPeriodEnd   string   `json:"payPeriodEnd"`
	GrossPay       *float64 `json:"grossPay"`
	Deductions     *float64 `json:"deductions"`
}

// Process handles POST /api/payroll/process. Net pay is gross minus
// deductions minus the flat withholding.
func (h *PayrollHandler) Process(w http.ResponseWriter, r *http.Request) {
	var req processPayrollRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid json")
		return
	}

	grossPay := 6250.0
	if req.GrossPay != nil {
		grossPay = *req.GrossPay
	}
	deductions := 1000.0
	if req.Deductions != nil {
		deductions = *req.Deductions
	}
	taxWithheld := grossPay * taxWithholdingRate
	netPay := grossPay - deductions - taxWithheld

	writeJSON(h.logger, w, r, http.StatusCreated, map[string]any{
		"id":             newID("pay"),
		"employeeId":     req.EmployeeID,
		"payPeriodStart": req.PayPeriodStart,
		"payPeriodEnd":   req.PayPeriodEnd,
		"grossPay":       grossPay,
		"deductions":     deductions,
		"taxWithheld":    taxWithheld,
		"netPay":         netPay,
		"status":         "pending",
		"processedAt":    utcNow(),
	})
}

type processBatchRequest struct {
	EmployeeIDs []string `json:"employeeIds"`
}

// ProcessBatch handles POST /api/payroll/process-batch.
func (h *PayrollHandler) ProcessBatch(w http.ResponseWriter, r *http.Request) {
	var req processBatchRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid json")
		return
	}

	results := make([]map[string]any, 0, len(req.EmployeeIDs))
	for _, empID := range req.EmployeeIDs {
		results = append(results, map[string]any{
			"employeeId": empID,
			"status":     "processed",
			"netPay":     5000,
		})
	}

	writeJSON(h.logger, w, r, http.StatusCreated, map[string]any{
		"batchId":        newID("batch"),
		"totalProcessed": len(req.EmployeeIDs),
		"results":        results,
	})
}

// Approve handles POST /api/payroll/{id}/approve.
func (h *PayrollHandler) Approve(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{
		"id":         chi.URLParam(r, "id"),
		"status":     "approved",
		"approvedAt": utcNow(),
		"message":    "Payroll approved successfully",
	})
}

// List handles GET /api/payroll.
func (h *PayrollHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, mockdata.PayrollRecords)
}

// Get handles GET /api/payroll/{id}.
func (h *PayrollHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{
		"id":         chi.URLParam(r, "id"),
		"employeeId": "emp-001",
		"grossPay":   6250,
		"netPay":     5000,
		"status":     "approved",
	})
}

// EmployeeHistory handles GET /api/payroll/employee/{employeeId}.
func (h *PayrollHandler) EmployeeHistory(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, []map[string]any{
		{
			"id":             "pay-001",
			"employeeId":     chi.URLParam(r, "employeeId"),
			"payPeriodStart": "2024-01-01",
			"payPeriodEnd":   "2024-01-31",
			"netPay":         5000,
		},
	})
}
