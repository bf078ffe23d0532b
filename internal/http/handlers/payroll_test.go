package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"erp-monolith/internal/http/handlers"
)

func TestPayrollProcess_ComputesWithholding(t *testing.T) {
	t.Parallel()

	h := handlers.NewPayrollHandler(testLogger())

	body := `{"employeeId":"emp-001","payPeriodStart":"2024-02-01","payPeriodEnd":"2024-02-29","grossPay":5000,"deductions":500}`
	rr := httptest.NewRecorder()
	h.Process(rr, httptest.NewRequest(http.MethodPost, "/api/payroll/process", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rr.Code)

	resp := decodeBody(t, rr)
	require.Equal(t, "emp-001", resp["employeeId"])
	require.Equal(t, 5000.0, resp["grossPay"])
	require.Equal(t, 500.0, resp["deductions"])
	require.Equal(t, 1000.0, resp["taxWithheld"]) // 20% of gross
	require.Equal(t, 3500.0, resp["netPay"])
	require.Equal(t, "pending", resp["status"])
	require.True(t, strings.HasPrefix(resp["id"].(string), "pay-"))
}

func TestPayrollProcess_DefaultsGrossAndDeductions(t *testing.T) {
	t.Parallel()

	h := handlers.NewPayrollHandler(testLogger())

	rr := httptest.NewRecorder()
	h.Process(rr, httptest.NewRequest(http.MethodPost, "/api/payroll/process", strings.NewReader(`{"employeeId":"emp-002"}`)))

	require.Equal(t, http.StatusCreated, rr.Code)

	resp := decodeBody(t, rr)
	require.Equal(t, 6250.0, resp["grossPay"])
	require.Equal(t, 1000.0, resp["deductions"])
	require.Equal(t, 1250.0, resp["taxWithheld"])
	require.Equal(t, 4000.0, resp["netPay"])
}

func TestPayrollProcess_InvalidBody(t *testing.T) {
	t.Parallel()

	h := handlers.NewPayrollHandler(testLogger())

	rr := httptest.NewRecorder()
	h.Process(rr, httptest.NewRequest(http.MethodPost, "/api/payroll/process", strings.NewReader("{not json")))

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestPayrollProcessBatch_OneResultPerEmployee(t *testing.T) {
	t.Parallel()

	h := handlers.NewPayrollHandler(testLogger())

	body := `{"employeeIds":["emp-001","emp-002","emp-003"]}`
	rr := httptest.NewRecorder()
	h.ProcessBatch(rr, httptest.NewRequest(http.MethodPost, "/api/payroll/process-batch", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rr.Code)

	resp := decodeBody(t, rr)
	require.Equal(t, 3.0, resp["totalProcessed"])
	require.True(t, strings.HasPrefix(resp["batchId"].(string), "batch-"))

	results := resp["results"].([]any)
	require.Len(t, results, 3)
	first := results[0].(map[string]any)
	require.Equal(t, "emp-001", first["employeeId"])
	require.Equal(t, "processed", first["status"])
}
