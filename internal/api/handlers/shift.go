package handlers

import (
	"staffing-backoffice/internal/service"

	"github.com/gin-gonic/gin"
)

// ShiftHandler handles HTTP requests for shift operations
type ShiftHandler struct {
	shiftService service.ShiftServiceInterface
}

// NewShiftHandler creates a new shift handler
func NewShiftHandler(shiftService service.ShiftServiceInterface) *ShiftHandler {
	return &ShiftHandler{shiftService: shiftService}
}

// CreateShift handles POST /shifts
// @Summary Create a shift
// @Description start_time and end_time are HH:MM; an end before the start is an overnight shift
// @Tags shifts
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param shift body service.ShiftRequest true "Shift"
// @Success 200 {object} Response{data=models.Shift}
// @Security BearerAuth
// @Router /shifts [post]
func (h *ShiftHandler) CreateShift(c *gin.Context) {
	var req service.ShiftRequest
	if err := bindRequest(c, &req); err != nil {
		respondError(c, err)
		return
	}

	shift, err := h.shiftService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Shift created", shift)
}

// GetShift handles GET /shifts/:id
// @Summary Get shift by ID
// @Tags shifts
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Success 200 {object} Response{data=models.Shift}
// @Security BearerAuth
// @Router /shifts/{id} [get]
func (h *ShiftHandler) GetShift(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	shift, err := h.shiftService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", shift)
}

// ListShifts handles GET /shifts
// @Summary List all shifts
// @Tags shifts
// @Produce json
// @Success 200 {object} Response{data=[]models.Shift}
// @Security BearerAuth
// @Router /shifts [get]
func (h *ShiftHandler) ListShifts(c *gin.Context) {
	shifts, err := h.shiftService.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", shifts)
}

// UpdateShift handles PUT /shifts/:id
// @Summary Update a shift
// @Tags shifts
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Param shift body service.ShiftRequest true "Shift"
// @Success 200 {object} Response{data=models.Shift}
// @Security BearerAuth
// @Router /shifts/{id} [put]
func (h *ShiftHandler) UpdateShift(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	var req service.ShiftRequest
	if err := bindRequest(c, &req); err != nil {
		respondError(c, err)
		return
	}

	shift, err := h.shiftService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Shift updated", shift)
}

// DeleteShift handles DELETE /shifts/:id
// @Summary Delete a shift
// @Tags shifts
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Success 200 {object} Response
// @Security BearerAuth
// @Router /shifts/{id} [delete]
func (h *ShiftHandler) DeleteShift(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.shiftService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Shift deleted", nil)
}
