package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"erp-monolith/internal/logx"
	"erp-monolith/internal/mockdata"
)

// AccountingHandler serves the v1 accounting endpoints.
type AccountingHandler struct {
	logger logx.Logger
}

// NewAccountingHandler creates a new AccountingHandler.
func NewAccountingHandler(logger logx.Logger) *AccountingHandler {
	return &AccountingHandler{logger: logger}
}

// Register mounts the accounting routes onto r.
func (h *AccountingHandler) Register(r chi.Router) {
	r.Post("/journal-entries", h.CreateJournalEntry)
	r.Get("/transactions", h.ListTransactions)
	r.Get("/transactions/{id}", h.GetTransaction)
	r.Get("/general-ledger", h.GeneralLedger)
	r.Get("/trial-balance", h.TrialBalance)
}

type journalEntryRequest struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Entries     json.RawMessage `json:"entries"`
	TotalDebit  float64         `json:"totalDebit"`
	TotalCredit float64         `json:"totalCredit"`
}

// CreateJournalEntry handles POST /api/accounting/journal-entries.
func (h *AccountingHandler) CreateJournalEntry(w http.ResponseWriter, r *http.Request) {
	var req journalEntryRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid json")
		return
	}
	entries := req.Entries
	if entries == nil {
		entries = json.RawMessage("[]")
	}
	writeJSON(h.logger, w, r, http.StatusCreated, map[string]any{
		"id":          newID("je"),
		"date":        req.Date,
		"description": req.Description,
		"entries":     entries,
		"totalDebit":  req.TotalDebit,
		"totalCredit": req.TotalCredit,
		"status":      "posted",
	})
}

// ListTransactions handles GET /api/accounting/transactions.
func (h *AccountingHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, mockdata.Transactions)
}

// GetTransaction handles GET /api/accounting/transactions/{id}.
func (h *AccountingHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{
		"id":          chi.URLParam(r, "id"),
		"date":        "2024-01-15",
		"description": "Sample transaction",
		"amount":      1000,
		"type":        "debit",
	})
}

// GeneralLedger handles GET /api/accounting/general-ledger.
func (h *AccountingHandler) GeneralLedger(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{
		"accounts": []map[string]any{
			{"code": "1000", "name": "Cash", "balance": 50000},
			{"code": "2000", "name": "Accounts Payable", "balance": 25000},
		},
	})
}

// TrialBalance handles GET /api/accounting/trial-balance.
func (h *AccountingHandler) TrialBalance(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{
		"date":         utcNow(),
		"totalDebits":  100000,
		"totalCredits": 100000,
		"balanced":     true,
	})
}
