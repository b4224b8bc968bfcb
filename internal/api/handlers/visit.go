package handlers

import (
	"staffing-backoffice/internal/auth"
	apperrors "staffing-backoffice/internal/errors"
	"staffing-backoffice/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// VisitHandler handles HTTP requests for supervisor site visits
type VisitHandler struct {
	visitService service.VisitServiceInterface
}

// NewVisitHandler creates a new visit handler
func NewVisitHandler(visitService service.VisitServiceInterface) *VisitHandler {
	return &VisitHandler{visitService: visitService}
}

// actingSupervisor resolves whose visits a request concerns. Supervisors only
// ever act for themselves; an empty id from a supervisor means the caller.
func actingSupervisor(c *gin.Context, requested uuid.UUID) (uuid.UUID, error) {
	p, ok := auth.PrincipalFromContext(c.Request.Context())
	if !ok {
		return uuid.Nil, apperrors.ErrMissingPrincipal
	}
	if p.Role != auth.RoleSupervisor {
		return requested, nil
	}
	if requested != uuid.Nil && requested != p.UserID {
		return uuid.Nil, apperrors.ErrForbidden
	}
	return p.UserID, nil
}

// CheckIn handles POST /visits/checkin
// @Summary Supervisor check-in
// @Description Open a visit at a site. A supervisor may hold one open visit at a time.
// @Tags visits
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param visit body service.CheckInRequest true "Check-in"
// @Success 200 {object} Response{data=service.VisitResponse}
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /visits/checkin [post]
func (h *VisitHandler) CheckIn(c *gin.Context) {
	var req service.CheckInRequest
	if err := bindRequest(c, &req); err != nil {
		respondError(c, err)
		return
	}
	supervisorID, err := actingSupervisor(c, req.SupervisorID)
	if err != nil {
		respondError(c, err)
		return
	}
	req.SupervisorID = supervisorID

	visit, err := h.visitService.CheckIn(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Checked in", visit)
}

// CheckOut handles POST /visits/checkout
// @Summary Supervisor check-out
// @Description Close the supervisor's open visit and record its duration in whole minutes
// @Tags visits
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param visit body service.CheckOutRequest true "Check-out"
// @Success 200 {object} Response{data=service.VisitResponse}
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /visits/checkout [post]
func (h *VisitHandler) CheckOut(c *gin.Context) {
	var req service.CheckOutRequest
	if err := bindRequest(c, &req); err != nil {
		respondError(c, err)
		return
	}
	supervisorID, err := actingSupervisor(c, req.SupervisorID)
	if err != nil {
		respondError(c, err)
		return
	}
	req.SupervisorID = supervisorID

	visit, err := h.visitService.CheckOut(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Checked out", visit)
}

// Performance handles GET /visits/performance
// @Summary Supervisor performance report
// @Description Daily and per-site totals, attendance and a paged visit log for an inclusive local date range
// @Tags visits
// @Produce json
// @Param supervisor_id query string false "Supervisor ID (UUID); supervisors get their own report"
// @Param from query string true "First day (YYYY-MM-DD)"
// @Param to query string true "Last day (YYYY-MM-DD)"
// @Param page query int false "Log page" default(1)
// @Param per_page query int false "Log items per page" default(20)
// @Success 200 {object} Response{data=service.PerformanceResponse}
// @Security BearerAuth
// @Router /visits/performance [get]
func (h *VisitHandler) Performance(c *gin.Context) {
	req, ok := h.performanceRequest(c)
	if !ok {
		return
	}

	report, err := h.visitService.Performance(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", report)
}

// ExportPerformance handles GET /visits/performance/export
// @Summary Export a supervisor performance report
// @Tags visits
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param supervisor_id query string false "Supervisor ID (UUID)"
// @Param from query string true "First day (YYYY-MM-DD)"
// @Param to query string true "Last day (YYYY-MM-DD)"
// @Success 200 {file} file
// @Security BearerAuth
// @Router /visits/performance/export [get]
func (h *VisitHandler) ExportPerformance(c *gin.Context) {
	req, ok := h.performanceRequest(c)
	if !ok {
		return
	}

	data, err := h.visitService.ExportPerformance(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondWorkbook(c, "supervisor-performance", data)
}

// ListVisits handles GET /visits
// @Summary List site visits
// @Tags visits
// @Produce json
// @Param supervisor_id query string false "Supervisor ID (UUID)"
// @Param location_id query string false "Society ID (UUID)"
// @Param open_only query bool false "Only open visits"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Success 200 {object} Response{data=[]service.VisitResponse}
// @Security BearerAuth
// @Router /visits [get]
func (h *VisitHandler) ListVisits(c *gin.Context) {
	var req service.ListVisitsRequest
	if err := bindRequest(c, &req); err != nil {
		respondError(c, err)
		return
	}
	if p, ok := auth.PrincipalFromContext(c.Request.Context()); ok && p.Role == auth.RoleSupervisor {
		var requested uuid.UUID
		if req.SupervisorID != nil {
			requested = *req.SupervisorID
		}
		id, err := actingSupervisor(c, requested)
		if err != nil {
			respondError(c, err)
			return
		}
		req.SupervisorID = &id
	}

	page, err := h.visitService.ListVisits(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondPage(c, page)
}

func (h *VisitHandler) performanceRequest(c *gin.Context) (*service.PerformanceRequest, bool) {
	var req service.PerformanceRequest
	if err := bindRequest(c, &req); err != nil {
		respondError(c, err)
		return nil, false
	}
	supervisorID, err := actingSupervisor(c, req.SupervisorID)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	req.SupervisorID = supervisorID
	return &req, true
}
