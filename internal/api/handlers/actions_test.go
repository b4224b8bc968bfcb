package handlers_test

import (
	"net/http"
	"net/url"
	"testing"

	"staffing-backoffice/internal/api/handlers"
	"staffing-backoffice/internal/auth"
	"staffing-backoffice/internal/mocks"
	"staffing-backoffice/internal/service"
	"staffing-backoffice/internal/testutils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ActionHandlerTestSuite drives the dispatcher with mocked services
type ActionHandlerTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	teams    *mocks.MockTeamServiceInterface
	rosters  *mocks.MockRosterServiceInterface
	advances *mocks.MockAdvanceServiceInterface
	handler  *handlers.ActionHandler
}

func (suite *ActionHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.teams = mocks.NewMockTeamServiceInterface(suite.ctrl)
	suite.rosters = mocks.NewMockRosterServiceInterface(suite.ctrl)
	suite.advances = mocks.NewMockAdvanceServiceInterface(suite.ctrl)

	suite.handler = handlers.NewActionHandler(handlers.Handlers{
		Activity:   handlers.NewActivityHandler(mocks.NewMockActivityServiceInterface(suite.ctrl)),
		ClientType: handlers.NewClientTypeHandler(mocks.NewMockClientTypeServiceInterface(suite.ctrl)),
		Ticket:     handlers.NewTicketHandler(mocks.NewMockTicketServiceInterface(suite.ctrl)),
		Team:       handlers.NewTeamHandler(suite.teams),
		Roster:     handlers.NewRosterHandler(suite.rosters),
		Visit:      handlers.NewVisitHandler(mocks.NewMockVisitServiceInterface(suite.ctrl)),
		Advance:    handlers.NewAdvanceHandler(suite.advances),
	})
}

func (suite *ActionHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ActionHandlerTestSuite) router(p auth.Principal) *testutils.HTTPTestSuite {
	s := testutils.SetupAuthenticatedHTTPTest(p)
	s.Router.GET("/api/v1/actions", suite.handler.Dispatch)
	s.Router.POST("/api/v1/actions", suite.handler.Dispatch)
	return s
}

func (suite *ActionHandlerTestSuite) TestUnknownAction() {
	suite.router(manager).RunEnvelopeCases(suite.T(), []testutils.EnvelopeCase{
		{
			Name:    "unregistered name",
			Method:  http.MethodGet,
			URL:     "/api/v1/actions?action=launch_rockets",
			Status:  http.StatusOK,
			Message: "unknown action",
		},
		{
			Name:    "missing action",
			Method:  http.MethodGet,
			URL:     "/api/v1/actions",
			Status:  http.StatusOK,
			Message: "unknown action",
		},
		{
			Name:    "unregistered name in form",
			Form:    url.Values{"action": {"launch_rockets"}},
			URL:     "/api/v1/actions",
			Status:  http.StatusOK,
			Message: "unknown action",
		},
	})
}

func (suite *ActionHandlerTestSuite) TestRoleRestriction() {
	supervisor := auth.Principal{UserID: uuid.New(), Role: auth.RoleSupervisor}

	suite.router(supervisor).RunEnvelopeCases(suite.T(), []testutils.EnvelopeCase{
		{
			Name:    "assign roster",
			Method:  http.MethodPost,
			URL:     "/api/v1/actions?action=assign_roster",
			Body:    map[string]interface{}{"guard_id": uuid.New().String()},
			Status:  http.StatusForbidden,
			Message: "permission",
		},
		{
			Name:   "advance balances",
			Method: http.MethodGet,
			URL:    "/api/v1/actions?action=get_advance_balances",
			Status: http.StatusForbidden,
		},
		{
			Name: "delete team",
			Setup: func() {
				suite.teams.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)
			},
			Method: http.MethodPost,
			URL:    "/api/v1/actions?action=delete_team&id=" + uuid.New().String(),
			Status: http.StatusForbidden,
		},
	})
}

func (suite *ActionHandlerTestSuite) TestSupervisorReadsTeams() {
	supervisor := auth.Principal{UserID: uuid.New(), Role: auth.RoleSupervisor}
	s := suite.router(supervisor)

	suite.teams.EXPECT().
		List(gomock.Any(), &service.ListTeamsRequest{PageRequest: service.PageRequest{PerPage: 50}}).
		Return(&service.Page[service.TeamResponse]{Pagination: service.NewPagination(service.PageRequest{PerPage: 50}, 0)}, nil)

	recorder := s.MakeRequest(http.MethodGet, "/api/v1/actions?action=get_teams&limit=50", nil)

	var resp envelope[[]service.TeamResponse]
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.True(suite.T(), resp.Success)
	assert.Empty(suite.T(), resp.Data)
}

func (suite *ActionHandlerTestSuite) TestIDFromQuery() {
	id := uuid.New()
	suite.teams.EXPECT().Delete(gomock.Any(), id).Return(nil)

	recorder := suite.router(manager).MakeRequest(http.MethodPost, "/api/v1/actions?action=delete_team&id="+id.String(), nil)

	var resp envelope[interface{}]
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.Equal(suite.T(), "Team deleted", resp.Message)
}

func (suite *ActionHandlerTestSuite) TestIDFromJSONBody() {
	id := uuid.New()
	supervisorID := uuid.New()
	suite.teams.EXPECT().
		Update(gomock.Any(), id, &service.TeamRequest{Name: "East Wing", SupervisorID: supervisorID}).
		Return(&service.TeamResponse{ID: id, Name: "East Wing"}, nil)

	recorder := suite.router(manager).MakeRequest(http.MethodPost, "/api/v1/actions?action=update_team", map[string]interface{}{
		"id":            id.String(),
		"name":          "East Wing",
		"supervisor_id": supervisorID.String(),
	})

	var resp envelope[service.TeamResponse]
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.Equal(suite.T(), "East Wing", resp.Data.Name)
}

func (suite *ActionHandlerTestSuite) TestIDFromForm() {
	id := uuid.New()
	suite.rosters.EXPECT().Delete(gomock.Any(), id).Return(nil)

	form := url.Values{}
	form.Set("action", "delete_roster")
	form.Set("id", id.String())
	recorder := suite.router(manager).PostForm("/api/v1/actions", form)

	testutils.AssertSuccessResponse(suite.T(), recorder, http.StatusOK)
}

func (suite *ActionHandlerTestSuite) TestMissingID() {
	recorder := suite.router(manager).MakeRequest(http.MethodPost, "/api/v1/actions?action=delete_roster", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusOK, "invalid id")
}

func (suite *ActionHandlerTestSuite) TestCheckAdvanceBalance() {
	recordID := uuid.New()
	suite.advances.EXPECT().Check(gomock.Any(), recordID).Return(&service.BalanceResponse{
		SalaryRecordID: recordID,
		Recorded:       decimal.RequireFromString("1500"),
		Ledger:         decimal.RequireFromString("1500"),
		Balanced:       true,
	}, nil)

	recorder := suite.router(manager).MakeRequest(http.MethodGet, "/api/v1/actions?action=check_advance_balance&salary_record_id="+recordID.String(), nil)

	var resp envelope[service.BalanceResponse]
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.True(suite.T(), resp.Data.Balanced)
	assert.True(suite.T(), resp.Data.Recorded.Equal(decimal.NewFromInt(1500)))
}

func (suite *ActionHandlerTestSuite) TestBulkAssignFailureEnvelope() {
	guardA, guardB := uuid.New(), uuid.New()
	suite.rosters.EXPECT().BulkAssign(gomock.Any(), gomock.Any()).Return(&service.BulkAssignResponse{
		Success: false,
		Message: "1 of 2 guards could not be assigned; nothing was saved",
		Results: []service.BulkAssignItem{
			{GuardID: guardA, Success: true, Message: "not assigned: batch rejected"},
			{GuardID: guardB, Success: false, Message: "guard not found"},
		},
	}, nil)

	recorder := suite.router(manager).MakeRequest(http.MethodPost, "/api/v1/actions?action=bulk_assign_roster", map[string]interface{}{
		"guard_ids": []string{guardA.String(), guardB.String()},
	})

	var resp envelope[service.BulkAssignResponse]
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.False(suite.T(), resp.Success)
	assert.Contains(suite.T(), resp.Message, "nothing was saved")
	assert.Len(suite.T(), resp.Data.Results, 2)
}

func (suite *ActionHandlerTestSuite) TestNamesAreSorted() {
	names := suite.handler.Names()
	assert.Len(suite.T(), names, 24)
	assert.IsIncreasing(suite.T(), names)
}

func TestActionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ActionHandlerTestSuite))
}
