package handlers

import (
	"staffing-backoffice/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// CreateTeam handles POST /teams
// @Summary Create a new team
// @Description Create a team led by a supervisor with an initial member list
// @Tags teams
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param team body service.TeamRequest true "Team data"
// @Success 200 {object} Response{data=service.TeamResponse} "Successfully created team"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req service.TeamRequest
	if err := bindRequest(c, &req); err != nil {
		respondError(c, err)
		return
	}

	team, err := h.teamService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Team created", team)
}

// GetTeam handles GET /teams/:id
// @Summary Get team by ID
// @Tags teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} Response{data=service.TeamResponse} "Successfully retrieved team"
// @Security BearerAuth
// @Router /teams/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	team, err := h.teamService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", team)
}

// ListTeams handles GET /teams
// @Summary List teams
// @Description List teams filtered by name search and size bucket
// @Tags teams
// @Produce json
// @Param search query string false "Team name search"
// @Param size query string false "Size bucket" Enums(small, medium, large)
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Success 200 {object} Response{data=[]service.TeamResponse} "Successfully retrieved teams"
// @Security BearerAuth
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	var req service.ListTeamsRequest
	if err := bindRequest(c, &req); err != nil {
		respondError(c, err)
		return
	}

	page, err := h.teamService.List(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondPage(c, page)
}

// UpdateTeam handles PUT /teams/:id
// @Summary Update a team
// @Description Replace the team's name, supervisor and member list
// @Tags teams
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param team body service.TeamRequest true "Team data"
// @Success 200 {object} Response{data=service.TeamResponse} "Successfully updated team"
// @Security BearerAuth
// @Router /teams/{id} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	var req service.TeamRequest
	if err := bindRequest(c, &req); err != nil {
		respondError(c, err)
		return
	}

	team, err := h.teamService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Team updated", team)
}

// DeleteTeam handles DELETE /teams/:id
// @Summary Delete a team
// @Description Delete a team and its memberships; roster assignments keep no team
// @Tags teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} Response "Team deleted"
// @Security BearerAuth
// @Router /teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.teamService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Team deleted", nil)
}
