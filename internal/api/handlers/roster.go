package handlers

import (
	"net/http"

	"staffing-backoffice/internal/service"

	"github.com/gin-gonic/gin"
)

// RosterHandler handles HTTP requests for roster assignments
type RosterHandler struct {
	rosterService service.RosterServiceInterface
}

// NewRosterHandler creates a new roster handler
func NewRosterHandler(rosterService service.RosterServiceInterface) *RosterHandler {
	return &RosterHandler{rosterService: rosterService}
}

// AssignRoster handles POST /rosters
// @Summary Roster a guard
// @Description Assign a guard to a society and shift for an inclusive date range.
// @Description Overlapping assignments of the same guard are refused unless allow_overlap is set.
// @Tags rosters
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param assignment body service.AssignRosterRequest true "Assignment"
// @Success 200 {object} Response{data=service.RosterResponse}
// @Security BearerAuth
// @Router /rosters [post]
func (h *RosterHandler) AssignRoster(c *gin.Context) {
	var req service.AssignRosterRequest
	if err := bindRequest(c, &req); err != nil {
		respondError(c, err)
		return
	}

	roster, err := h.rosterService.Assign(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Guard rostered", roster)
}

// BulkAssignRoster handles POST /rosters/bulk
// @Summary Roster many guards to one slot
// @Description Either every guard is rostered or none is; results explain each refusal
// @Tags rosters
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param assignment body service.BulkAssignRequest true "Bulk assignment"
// @Success 200 {object} Response{data=service.BulkAssignResponse}
// @Security BearerAuth
// @Router /rosters/bulk [post]
func (h *RosterHandler) BulkAssignRoster(c *gin.Context) {
	var req service.BulkAssignRequest
	if err := bindRequest(c, &req); err != nil {
		respondError(c, err)
		return
	}

	result, err := h.rosterService.BulkAssign(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, Response{Success: result.Success, Message: result.Message, Data: result})
}

// GetRoster handles GET /rosters/:id
// @Summary Get roster assignment by ID
// @Tags rosters
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Success 200 {object} Response{data=service.RosterResponse}
// @Security BearerAuth
// @Router /rosters/{id} [get]
func (h *RosterHandler) GetRoster(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	roster, err := h.rosterService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", roster)
}

// ListRosters handles GET /rosters
// @Summary List roster assignments
// @Tags rosters
// @Produce json
// @Param society_id query string false "Society ID (UUID)"
// @Param shift_id query string false "Shift ID (UUID)"
// @Param guard_id query string false "Guard ID (UUID)"
// @Param team_id query string false "Team ID (UUID)"
// @Param active_on query string false "Only assignments covering this date (YYYY-MM-DD)"
// @Param search query string false "Guard or society name search"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Success 200 {object} Response{data=[]service.RosterResponse}
// @Security BearerAuth
// @Router /rosters [get]
func (h *RosterHandler) ListRosters(c *gin.Context) {
	var req service.ListRostersRequest
	if err := bindRequest(c, &req); err != nil {
		respondError(c, err)
		return
	}

	page, err := h.rosterService.List(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondPage(c, page)
}

// UpdateRoster handles PUT /rosters/:id
// @Summary Update a roster assignment
// @Description Only the fields present are changed; the overlap check excludes the assignment itself
// @Tags rosters
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Param assignment body service.UpdateRosterRequest true "Fields to change"
// @Success 200 {object} Response{data=service.RosterResponse}
// @Security BearerAuth
// @Router /rosters/{id} [put]
func (h *RosterHandler) UpdateRoster(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	var req service.UpdateRosterRequest
	if err := bindRequest(c, &req); err != nil {
		respondError(c, err)
		return
	}

	roster, err := h.rosterService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Roster updated", roster)
}

// DeleteRoster handles DELETE /rosters/:id
// @Summary Delete a roster assignment
// @Tags rosters
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Success 200 {object} Response
// @Security BearerAuth
// @Router /rosters/{id} [delete]
func (h *RosterHandler) DeleteRoster(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.rosterService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Roster deleted", nil)
}

// ExportRosters handles GET /rosters/export
// @Summary Export roster assignments
// @Description Same filters as the listing, all pages, as an Excel workbook
// @Tags rosters
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param society_id query string false "Society ID (UUID)"
// @Param active_on query string false "Only assignments covering this date (YYYY-MM-DD)"
// @Success 200 {file} file
// @Security BearerAuth
// @Router /rosters/export [get]
func (h *RosterHandler) ExportRosters(c *gin.Context) {
	var req service.ListRostersRequest
	if err := bindRequest(c, &req); err != nil {
		respondError(c, err)
		return
	}

	data, err := h.rosterService.Export(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondWorkbook(c, "roster", data)
}
