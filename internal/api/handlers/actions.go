package handlers

import (
	"sort"

	"staffing-backoffice/internal/auth"
	apperrors "staffing-backoffice/internal/errors"

	"github.com/gin-gonic/gin"
)

var (
	// StaffRoles may read and change every back-office record
	StaffRoles = []auth.Role{auth.RoleAdmin, auth.RoleManager}
	// AllRoles includes supervisors, who only record and read field work
	AllRoles = []auth.Role{auth.RoleAdmin, auth.RoleManager, auth.RoleSupervisor}
	// AdminRoles may remove audit history
	AdminRoles = []auth.Role{auth.RoleAdmin}
)

// Handlers groups the entity handlers the action dispatcher delegates to
type Handlers struct {
	Activity   *ActivityHandler
	ClientType *ClientTypeHandler
	Ticket     *TicketHandler
	Team       *TeamHandler
	Roster     *RosterHandler
	Visit      *VisitHandler
	Advance    *AdvanceHandler
}

type action struct {
	handle gin.HandlerFunc
	roles  []auth.Role
	// withID copies an id parameter from the query or body into the path params
	withID bool
}

// ActionHandler serves the single-endpoint API where the operation is named
// by the action parameter
type ActionHandler struct {
	actions map[string]action
}

// NewActionHandler creates the dispatcher over the given handlers
func NewActionHandler(h Handlers) *ActionHandler {
	return &ActionHandler{actions: map[string]action{
		"get_activities":             {handle: h.Activity.ListActivities, roles: StaffRoles},
		"delete_activity":            {handle: h.Activity.DeleteActivity, roles: AdminRoles, withID: true},
		"manage_client_type":         {handle: h.ClientType.ManageClientType, roles: StaffRoles},
		"get_client_types":           {handle: h.ClientType.ListClientTypes, roles: AllRoles},
		"get_tickets":                {handle: h.Ticket.ListTickets, roles: AllRoles},
		"create_ticket":              {handle: h.Ticket.CreateTicket, roles: AllRoles},
		"update_ticket_status":       {handle: h.Ticket.UpdateTicketStatus, roles: StaffRoles, withID: true},
		"get_teams":                  {handle: h.Team.ListTeams, roles: AllRoles},
		"create_team":                {handle: h.Team.CreateTeam, roles: StaffRoles},
		"update_team":                {handle: h.Team.UpdateTeam, roles: StaffRoles, withID: true},
		"delete_team":                {handle: h.Team.DeleteTeam, roles: StaffRoles, withID: true},
		"assign_roster":              {handle: h.Roster.AssignRoster, roles: StaffRoles},
		"bulk_assign_roster":         {handle: h.Roster.BulkAssignRoster, roles: StaffRoles},
		"get_rosters":                {handle: h.Roster.ListRosters, roles: AllRoles},
		"update_roster":              {handle: h.Roster.UpdateRoster, roles: StaffRoles, withID: true},
		"delete_roster":              {handle: h.Roster.DeleteRoster, roles: StaffRoles, withID: true},
		"export_rosters":             {handle: h.Roster.ExportRosters, roles: StaffRoles},
		"supervisor_checkin":         {handle: h.Visit.CheckIn, roles: AllRoles},
		"supervisor_checkout":        {handle: h.Visit.CheckOut, roles: AllRoles},
		"get_supervisor_performance": {handle: h.Visit.Performance, roles: AllRoles},
		"get_visits":                 {handle: h.Visit.ListVisits, roles: AllRoles},
		"check_advance_balance":      {handle: h.Advance.CheckBalance, roles: StaffRoles},
		"get_advance_balances":       {handle: h.Advance.ListBalances, roles: StaffRoles},
		"fix_advance_balance":        {handle: h.Advance.FixBalance, roles: StaffRoles},
	}}
}

// Names returns the supported action names in order
func (h *ActionHandler) Names() []string {
	names := make([]string, 0, len(h.actions))
	for name := range h.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type idRef struct {
	ID string `json:"id"`
}

// Dispatch handles GET|POST /actions
// @Summary Run a named action
// @Description Legacy single-endpoint API. Parameters are read from the query string and the JSON or form body.
// @Tags actions
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param action query string true "Action name"
// @Success 200 {object} Response
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /actions [get]
// @Router /actions [post]
func (h *ActionHandler) Dispatch(c *gin.Context) {
	name := c.Query("action")
	if name == "" {
		name = c.PostForm("action")
	}
	act, ok := h.actions[name]
	if !ok {
		respondError(c, apperrors.ErrUnknownAction)
		return
	}

	principal, ok := auth.GetPrincipal(c)
	if !ok {
		respondError(c, apperrors.ErrMissingPrincipal)
		return
	}
	if !principal.HasRole(act.roles...) {
		respondError(c, apperrors.ErrForbidden)
		return
	}

	if act.withID {
		var ref idRef
		if err := bindRequest(c, &ref); err != nil {
			respondError(c, err)
			return
		}
		c.Params = append(c.Params, gin.Param{Key: "id", Value: ref.ID})
	}
	act.handle(c)
}
