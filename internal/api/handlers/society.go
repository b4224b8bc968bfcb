package handlers

import (
	"staffing-backoffice/internal/service"

	"github.com/gin-gonic/gin"
)

// SocietyHandler handles HTTP requests for society operations
type SocietyHandler struct {
	societyService service.SocietyServiceInterface
}

// NewSocietyHandler creates a new society handler
func NewSocietyHandler(societyService service.SocietyServiceInterface) *SocietyHandler {
	return &SocietyHandler{societyService: societyService}
}

// CreateSociety handles POST /societies
// @Summary Onboard a society
// @Tags societies
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param society body service.SocietyRequest true "Society data"
// @Success 200 {object} Response{data=models.Society}
// @Security BearerAuth
// @Router /societies [post]
func (h *SocietyHandler) CreateSociety(c *gin.Context) {
	var req service.SocietyRequest
	if err := bindRequest(c, &req); err != nil {
		respondError(c, err)
		return
	}

	society, err := h.societyService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Society created", society)
}

// GetSociety handles GET /societies/:id
// @Summary Get society by ID
// @Tags societies
// @Produce json
// @Param id path string true "Society ID (UUID)"
// @Success 200 {object} Response{data=models.Society}
// @Security BearerAuth
// @Router /societies/{id} [get]
func (h *SocietyHandler) GetSociety(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	society, err := h.societyService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", society)
}

// ListSocieties handles GET /societies
// @Summary List societies
// @Tags societies
// @Produce json
// @Param search query string false "Name search"
// @Param city query string false "City"
// @Param client_type_id query string false "Client type ID (UUID)"
// @Param active_only query bool false "Only active societies"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Success 200 {object} Response{data=[]models.Society}
// @Security BearerAuth
// @Router /societies [get]
func (h *SocietyHandler) ListSocieties(c *gin.Context) {
	var req service.ListSocietiesRequest
	if err := bindRequest(c, &req); err != nil {
		respondError(c, err)
		return
	}

	page, err := h.societyService.List(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondPage(c, page)
}

// UpdateSociety handles PUT /societies/:id
// @Summary Update a society
// @Tags societies
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path string true "Society ID (UUID)"
// @Param society body service.SocietyRequest true "Society data"
// @Success 200 {object} Response{data=models.Society}
// @Security BearerAuth
// @Router /societies/{id} [put]
func (h *SocietyHandler) UpdateSociety(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	var req service.SocietyRequest
	if err := bindRequest(c, &req); err != nil {
		respondError(c, err)
		return
	}

	society, err := h.societyService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Society updated", society)
}

// DeleteSociety handles DELETE /societies/:id
// @Summary Delete a society
// @Tags societies
// @Produce json
// @Param id path string true "Society ID (UUID)"
// @Success 200 {object} Response
// @Security BearerAuth
// @Router /societies/{id} [delete]
func (h *SocietyHandler) DeleteSociety(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.societyService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Society deleted", nil)
}
