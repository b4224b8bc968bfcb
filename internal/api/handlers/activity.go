package handlers

import (
	"staffing-backoffice/internal/service"

	"github.com/gin-gonic/gin"
)

// ActivityHandler serves the audit trail
type ActivityHandler struct {
	activityService service.ActivityServiceInterface
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activityService service.ActivityServiceInterface) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// ListActivities handles GET /activities
// @Summary List recent activities
// @Tags activities
// @Produce json
// @Param entity_type query string false "Entity type"
// @Param actor_id query string false "Actor ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Success 200 {object} Response{data=[]models.Activity}
// @Security BearerAuth
// @Router /activities [get]
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	var req service.ListActivitiesRequest
	if err := bindRequest(c, &req); err != nil {
		respondError(c, err)
		return
	}

	page, err := h.activityService.List(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondPage(c, page)
}

// DeleteActivity handles DELETE /activities/:id
// @Summary Delete an activity
// @Tags activities
// @Produce json
// @Param id path string true "Activity ID (UUID)"
// @Success 200 {object} Response
// @Security BearerAuth
// @Router /activities/{id} [delete]
func (h *ActivityHandler) DeleteActivity(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.activityService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Activity deleted", nil)
}
