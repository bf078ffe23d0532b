package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"erp-monolith/internal/http/handlers"
)

func TestCreateInvoice_AppliesTax(t *testing.T) {
	t.Parallel()

	h := handlers.NewBillingHandler(testLogger())

	body := `{"customerId":"cust-001","issueDate":"2024-03-01","dueDate":"2024-03-31","subtotal":1000}`
	rr := httptest.NewRecorder()
	h.CreateInvoice(rr, httptest.NewRequest(http.MethodPost, "/api/billing/invoices", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rr.Code)

	resp := decodeBody(t, rr)
	require.Equal(t, "cust-001", resp["customerId"])
	require.Equal(t, 1000.0, resp["subtotal"])
	require.Equal(t, 80.0, resp["taxAmount"]) // 8% of subtotal
	require.Equal(t, 1080.0, resp["totalAmount"])
	require.Equal(t, 1080.0, resp["balanceDue"])
	require.Equal(t, "draft", resp["status"])
	require.True(t, strings.HasPrefix(resp["id"].(string), "inv-"))
	require.True(t, strings.HasPrefix(resp["invoiceNumber"].(string), "INV-"))
	require.Equal(t, []any{}, resp["items"])
}

func TestCreateInvoice_InvalidBody(t *testing.T) {
	t.Parallel()

	h := handlers.NewBillingHandler(testLogger())

	rr := httptest.NewRecorder()
	h.CreateInvoice(rr, httptest.NewRequest(http.MethodPost, "/api/billing/invoices", strings.NewReader("oops")))

	require.Equal(t, http.StatusBadRequest, rr.Code)
}
