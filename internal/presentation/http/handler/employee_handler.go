package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sangkips/erp-api/internal/application/service"
	"github.com/sangkips/erp-api/internal/presentation/http/dto/response"
)

// EmployeeHandler handles HR employee requests
type EmployeeHandler struct {
	employeeService *service.EmployeeService
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(employeeService *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// List handles listing employees, latest hires first
func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.employeeService.ListEmployees(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.List(c, "Employees retrieved successfully", employees)
}

// Create handles creating an employee. An omitted employeeId is generated.
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req service.EmployeeInput
	if !bindJSON(c, &req) {
		return
	}

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Employee created successfully", employee)
}

func (h *EmployeeHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "Employee")
	if !ok {
		return
	}

	employee, err := h.employeeService.GetEmployee(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Employee retrieved successfully", employee)
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "Employee")
	if !ok {
		return
	}

	var req service.EmployeeInput
	if !bindJSON(c, &req) {
		return
	}

	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Employee updated successfully", employee)
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "Employee")
	if !ok {
		return
	}

	if err := h.employeeService.DeleteEmployee(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Employee deleted successfully", nil)
}
