package handlers

import (
	"staffing-backoffice/internal/service"

	"github.com/gin-gonic/gin"
)

// ClientTypeHandler handles HTTP requests for client type operations
type ClientTypeHandler struct {
	clientTypeService service.ClientTypeServiceInterface
}

// NewClientTypeHandler creates a new client type handler
func NewClientTypeHandler(clientTypeService service.ClientTypeServiceInterface) *ClientTypeHandler {
	return &ClientTypeHandler{clientTypeService: clientTypeService}
}

// ManageClientType handles the manage_client_type action
// @Summary Create, update or delete a client type
// @Description op is one of create, update, delete; update and delete need id
// @Tags client-types
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body service.ManageClientTypeRequest true "Operation"
// @Success 200 {object} Response{data=models.ClientType}
// @Security BearerAuth
// @Router /client-types/manage [post]
func (h *ClientTypeHandler) ManageClientType(c *gin.Context) {
	var req service.ManageClientTypeRequest
	if err := bindRequest(c, &req); err != nil {
		respondError(c, err)
		return
	}

	clientType, err := h.clientTypeService.Manage(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	switch req.Op {
	case service.ClientTypeOpCreate:
		respondOK(c, "Client type created", clientType)
	case service.ClientTypeOpUpdate:
		respondOK(c, "Client type updated", clientType)
	default:
		respondOK(c, "Client type deleted", nil)
	}
}

// CreateClientType handles POST /client-types
// @Summary Create a client type
// @Tags client-types
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param clientType body service.ClientTypeRequest true "Client type"
// @Success 200 {object} Response{data=models.ClientType}
// @Security BearerAuth
// @Router /client-types [post]
func (h *ClientTypeHandler) CreateClientType(c *gin.Context) {
	var req service.ClientTypeRequest
	if err := bindRequest(c, &req); err != nil {
		respondError(c, err)
		return
	}

	clientType, err := h.clientTypeService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Client type created", clientType)
}

// GetClientType handles GET /client-types/:id
// @Summary Get client type by ID
// @Tags client-types
// @Produce json
// @Param id path string true "Client type ID (UUID)"
// @Success 200 {object} Response{data=models.ClientType}
// @Security BearerAuth
// @Router /client-types/{id} [get]
func (h *ClientTypeHandler) GetClientType(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	clientType, err := h.clientTypeService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", clientType)
}

// ListClientTypes handles GET /client-types
// @Summary List client types
// @Tags client-types
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Success 200 {object} Response{data=[]models.ClientType}
// @Security BearerAuth
// @Router /client-types [get]
func (h *ClientTypeHandler) ListClientTypes(c *gin.Context) {
	var req service.PageRequest
	if err := bindRequest(c, &req); err != nil {
		respondError(c, err)
		return
	}

	page, err := h.clientTypeService.List(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondPage(c, page)
}

// UpdateClientType handles PUT /client-types/:id
// @Summary Update a client type
// @Tags client-types
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path string true "Client type ID (UUID)"
// @Param clientType body service.ClientTypeRequest true "Client type"
// @Success 200 {object} Response{data=models.ClientType}
// @Security BearerAuth
// @Router /client-types/{id} [put]
func (h *ClientTypeHandler) UpdateClientType(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	var req service.ClientTypeRequest
	if err := bindRequest(c, &req); err != nil {
		respondError(c, err)
		return
	}

	clientType, err := h.clientTypeService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Client type updated", clientType)
}

// DeleteClientType handles DELETE /client-types/:id
// @Summary Delete a client type
// @Description Refused while any society uses the client type
// @Tags client-types
// @Produce json
// @Param id path string true "Client type ID (UUID)"
// @Success 200 {object} Response
// @Security BearerAuth
// @Router /client-types/{id} [delete]
func (h *ClientTypeHandler) DeleteClientType(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.clientTypeService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Client type deleted", nil)
}
