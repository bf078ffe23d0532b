package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"erp-monolith/internal/logx"
	"erp-monolith/internal/mockdata"
)

// HRHandler serves the v1 human-resources endpoints.
type HRHandler struct {
	logger logx.Logger
}

// NewHRHandler creates a new HRHandler.
func NewHRHandler(logger logx.Logger) *HRHandler {
	return &HRHandler{logger: logger}
}

// Register mounts the HR routes onto r.
func (h *HRHandler) Register(r chi.Router) {
	r.Post("/employees", h.CreateEmployee)
	r.Get("/employees", h.ListEmployees)
	r.Get("/employees/{id}", h.GetEmployee)
	r.Put("/employees/{id}", h.UpdateEmployee)
	r.Patch("/employees/{id}/promote", h.PromoteEmployee)
	r.Post("/employees/{id}/terminate", h.TerminateEmployee)
	r.Post("/departments", h.CreateDepartment)
	r.Get("/departments", h.ListDepartments)
	r.Get("/departments/{id}", h.GetDepartment)
	r.Get("/statistics", h.Statistics)
}

type employeeRequest struct {
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	Email        string  `json:"email"`
	DepartmentID string  `json:"departmentId"`
	Position     string  `json:"position"`
	Salary       float64 `json:"salary"`
	HireDate     string  `json:"hireDate"`
	Status       string  `json:"status"`
}

// CreateEmployee handles POST /api/hr/employees.
func (h *HRHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employeeRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid json")
		return
	}
	writeJSON(h.logger, w, r, http.StatusCreated, map[string]any{
		"id":           newID("emp"),
		"firstName":    req.FirstName,
		"lastName":     req.LastName,
		"email":        req.Email,
		"departmentId": req.DepartmentID,
		"position":     req.Position,
		"salary":       req.Salary,
		"hireDate":     req.HireDate,
		"status":       "active",
	})
}

// ListEmployees handles GET /api/hr/employees.
func (h *HRHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, mockdata.Employees)
}

// GetEmployee handles GET /api/hr/employees/{id}.
func (h *HRHandler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	for _, emp := range mockdata.Employees {
		if emp.ID == id {
			writeJSON(h.logger, w, r, http.StatusOK, emp)
			return
		}
	}
	writeError(h.logger, w, r, http.StatusNotFound, "Employee not found")
}

// UpdateEmployee handles PUT /api/hr/employees/{id}.
func (h *HRHandler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employeeRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid json")
		return
	}
	status := req.Status
	if status == "" {
		status = "active"
	}
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{
		"id":           chi.URLParam(r, "id"),
		"firstName":    req.FirstName,
		"lastName":     req.LastName,
		"email":        req.Email,
		"departmentId": req.DepartmentID,
		"position":     req.Position,
		"salary":       req.Salary,
		"status":       status,
	})
}

type promoteEmployeeRequest struct {
	NewPosition   string  `json:"newPosition"`
	NewSalary     float64 `json:"newSalary"`
	EffectiveDate string  `json:"effectiveDate"`
}

// PromoteEmployee handles PATCH /api/hr/employees/{id}/promote.
func (h *HRHandler) PromoteEmployee(w http.ResponseWriter, r *http.Request) {
	var req promoteEmployeeRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid json")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{
		"id":            chi.URLParam(r, "id"),
		"newPosition":   req.NewPosition,
		"newSalary":     req.NewSalary,
		"effectiveDate": req.EffectiveDate,
		"message":       "Employee promoted successfully",
	})
}

type terminateEmployeeRequest struct {
	TerminationDate string `json:"terminationDate"`
	Reason          string `json:"reason"`
}

// TerminateEmployee handles POST /api/hr/employees/{id}/terminate.
func (h *HRHandler) TerminateEmployee(w http.ResponseWriter, r *http.Request) {
	var req terminateEmployeeRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid json")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{
		"id":              chi.URLParam(r, "id"),
		"terminationDate": req.TerminationDate,
		"reason":          req.Reason,
		"status":          "terminated",
		"message":         "Employee terminated successfully",
	})
}

type departmentRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ManagerID   string  `json:"managerId"`
	Budget      float64 `json:"budget"`
	Location    string  `json:"location"`
}

// CreateDepartment handles POST /api/hr/departments.
func (h *HRHandler) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req departmentRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid json")
		return
	}
	writeJSON(h.logger, w, r, http.StatusCreated, map[string]any{
		"id":          newID("dept"),
		"name":        req.Name,
		"description": req.Description,
		"managerId":   req.ManagerID,
		"budget":      req.Budget,
		"location":    req.Location,
	})
}

// ListDepartments handles GET /api/hr/departments.
func (h *HRHandler) ListDepartments(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, mockdata.Departments)
}

// GetDepartment handles GET /api/hr/departments/{id}.
func (h *HRHandler) GetDepartment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	for _, dept := range mockdata.Departments {
		if dept.ID == id {
			writeJSON(h.logger, w, r, http.StatusOK, dept)
			return
		}
	}
	writeError(h.logger, w, r, http.StatusNotFound, "Department not found")
}

// Statistics handles GET /api/hr/statistics.
func (h *HRHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{
		"totalEmployees":    150,
		"activeEmployees":   142,
		"totalDepartments":  8,
		"averageSalary":     65000,
		"newHiresThisMonth": 5,
	})
}
