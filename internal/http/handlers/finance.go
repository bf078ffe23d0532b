package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"erp-monolith/internal/logx"
	"erp-monolith/internal/mockdata"
)

// FinanceHandler serves the v1 finance endpoints.
type FinanceHandler struct {
	logger logx.Logger
}

// NewFinanceHandler creates a new FinanceHandler.
func NewFinanceHandler(logger logx.Logger) *FinanceHandler {
	return &FinanceHandler{logger: logger}
}

// Register mounts the finance routes onto r.
func (h *FinanceHandler) Register(r chi.Router) {
	r.Post("/budgets", h.CreateBudget)
	r.Get("/budgets", h.ListBudgets)
	r.Get("/budgets/{id}", h.GetBudget)
	r.Post("/budgets/{id}/close", h.CloseBudget)
	r.Get("/budgets/{id}/utilization", h.BudgetUtilization)
	r.Get("/departments/{id}/budget-summary", h.DepartmentBudgetSummary)
	r.Get("/reports", h.Report)
}

type budgetRequest struct {
	DepartmentID    string  `json:"departmentId"`
	FiscalYear      int     `json:"fiscalYear"`
	Quarter         string  `json:"quarter"`
	AllocatedAmount float64 `json:"allocatedAmount"`
}

// CreateBudget handles POST /api/finance/budgets.
func (h *FinanceHandler) CreateBudget(w http.ResponseWriter, r *http.Request) {
	var req budgetRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid json")
		return
	}
	writeJSON(h.logger, w, r, http.StatusCreated, map[string]any{
		"id":              newID("budget"),
		"departmentId":    req.DepartmentID,
		"fiscalYear":      req.FiscalYear,
		"quarter":         req.Quarter,
		"allocatedAmount": req.AllocatedAmount,
		"spentAmount":     0,
		"remainingAmount": req.AllocatedAmount,
		"status":          "active",
	})
}

// ListBudgets handles GET /api/finance/budgets.
func (h *FinanceHandler) ListBudgets(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, mockdata.Budgets)
}

// GetBudget handles GET /api/finance/budgets/{id}.
func (h *FinanceHandler) GetBudget(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{
		"id":              chi.URLParam(r, "id"),
		"departmentId":    "dept-001",
		"allocatedAmount": 100000,
		"spentAmount":     50000,
		"remainingAmount": 50000,
	})
}

// CloseBudget handles POST /api/finance/budgets/{id}/close.
func (h *FinanceHandler) CloseBudget(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{
		"id":       chi.URLParam(r, "id"),
		"status":   "closed",
		"closedAt": utcNow(),
		"message":  "Budget closed successfully",
	})
}

// BudgetUtilization handles GET /api/finance/budgets/{id}/utilization.
func (h *FinanceHandler) BudgetUtilization(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{
		"budgetId":              chi.URLParam(r, "id"),
		"utilizationPercentage": 75,
		"allocatedAmount":       100000,
		"spentAmount":           75000,
		"remainingAmount":       25000,
	})
}

// DepartmentBudgetSummary handles GET /api/finance/departments/{id}/budget-summary.
func (h *FinanceHandler) DepartmentBudgetSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{
		"departmentId":          chi.URLParam(r, "id"),
		"totalAllocated":        500000,
		"totalSpent":            350000,
		"totalRemaining":        150000,
		"utilizationPercentage": 70,
	})
}

// Report handles GET /api/finance/reports.
func (h *FinanceHandler) Report(w http.ResponseWriter, r *http.Request) {
	reportType := r.URL.Query().Get("type")
	if reportType == "" {
		reportType = "summary"
	}
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{
		"reportType":  reportType,
		"generatedAt": utcNow(),
		"data": map[string]any{
			"revenue":  1000000,
			"expenses": 750000,
			"profit":   250000,
		},
	})
}
