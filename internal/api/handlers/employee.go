package handlers

import (
	"staffing-backoffice/internal/service"

	"github.com/gin-gonic/gin"
)

// EmployeeHandler handles HTTP requests for employee operations
type EmployeeHandler struct {
	employeeService service.EmployeeServiceInterface
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(employeeService service.EmployeeServiceInterface) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// CreateEmployee handles POST /employees
// @Summary Enroll an employee
// @Tags employees
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param employee body service.CreateEmployeeRequest true "Employee data"
// @Success 200 {object} Response{data=models.Employee}
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees [post]
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req service.CreateEmployeeRequest
	if err := bindRequest(c, &req); err != nil {
		respondError(c, err)
		return
	}

	employee, err := h.employeeService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Employee created", employee)
}

// GetEmployee handles GET /employees/:id
// @Summary Get employee by ID
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID (UUID)"
// @Success 200 {object} Response{data=models.Employee}
// @Security BearerAuth
// @Router /employees/{id} [get]
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	employee, err := h.employeeService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", employee)
}

// ListEmployees handles GET /employees
// @Summary List employees
// @Tags employees
// @Produce json
// @Param role query string false "Role filter"
// @Param search query string false "Name or phone search"
// @Param active_only query bool false "Only active employees"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Success 200 {object} Response{data=[]models.Employee}
// @Security BearerAuth
// @Router /employees [get]
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	var req service.ListEmployeesRequest
	if err := bindRequest(c, &req); err != nil {
		respondError(c, err)
		return
	}

	page, err := h.employeeService.List(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondPage(c, page)
}

// UpdateEmployee handles PUT /employees/:id
// @Summary Update an employee
// @Tags employees
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path string true "Employee ID (UUID)"
// @Param employee body service.UpdateEmployeeRequest true "Fields to change"
// @Success 200 {object} Response{data=models.Employee}
// @Security BearerAuth
// @Router /employees/{id} [put]
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	var req service.UpdateEmployeeRequest
	if err := bindRequest(c, &req); err != nil {
		respondError(c, err)
		return
	}

	employee, err := h.employeeService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Employee updated", employee)
}

// DeleteEmployee handles DELETE /employees/:id
// @Summary Delete an employee
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID (UUID)"
// @Success 200 {object} Response
// @Security BearerAuth
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.employeeService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Employee deleted", nil)
}
