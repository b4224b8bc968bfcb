package handlers

import (
	"staffing-backoffice/internal/service"

	"github.com/gin-gonic/gin"
)

// TicketHandler handles HTTP requests for support tickets
type TicketHandler struct {
	ticketService service.TicketServiceInterface
}

// NewTicketHandler creates a new ticket handler
func NewTicketHandler(ticketService service.TicketServiceInterface) *TicketHandler {
	return &TicketHandler{ticketService: ticketService}
}

// CreateTicket handles POST /tickets
// @Summary Raise a ticket
// @Tags tickets
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param ticket body service.CreateTicketRequest true "Ticket"
// @Success 200 {object} Response{data=models.Ticket}
// @Security BearerAuth
// @Router /tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req service.CreateTicketRequest
	if err := bindRequest(c, &req); err != nil {
		respondError(c, err)
		return
	}

	ticket, err := h.ticketService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Ticket created", ticket)
}

// GetTicket handles GET /tickets/:id
// @Summary Get ticket by ID
// @Tags tickets
// @Produce json
// @Param id path string true "Ticket ID (UUID)"
// @Success 200 {object} Response{data=models.Ticket}
// @Security BearerAuth
// @Router /tickets/{id} [get]
func (h *TicketHandler) GetTicket(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	ticket, err := h.ticketService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", ticket)
}

// ListTickets handles GET /tickets
// @Summary List tickets
// @Tags tickets
// @Produce json
// @Param status query string false "Status"
// @Param priority query string false "Priority"
// @Param society_id query string false "Society ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Success 200 {object} Response{data=[]models.Ticket}
// @Security BearerAuth
// @Router /tickets [get]
func (h *TicketHandler) ListTickets(c *gin.Context) {
	var req service.ListTicketsRequest
	if err := bindRequest(c, &req); err != nil {
		respondError(c, err)
		return
	}

	page, err := h.ticketService.List(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondPage(c, page)
}

// UpdateTicketStatus handles PUT /tickets/:id/status
// @Summary Move a ticket through its lifecycle
// @Tags tickets
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path string true "Ticket ID (UUID)"
// @Param status body service.UpdateTicketStatusRequest true "New status"
// @Success 200 {object} Response{data=models.Ticket}
// @Security BearerAuth
// @Router /tickets/{id}/status [put]
func (h *TicketHandler) UpdateTicketStatus(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	var req service.UpdateTicketStatusRequest
	if err := bindRequest(c, &req); err != nil {
		respondError(c, err)
		return
	}

	ticket, err := h.ticketService.UpdateStatus(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Ticket updated", ticket)
}
