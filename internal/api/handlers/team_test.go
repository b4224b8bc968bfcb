package handlers_test

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"staffing-backoffice/internal/api/handlers"
	"staffing-backoffice/internal/auth"
	apperrors "staffing-backoffice/internal/errors"
	"staffing-backoffice/internal/mocks"
	"staffing-backoffice/internal/repository"
	"staffing-backoffice/internal/service"
	"staffing-backoffice/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var manager = auth.Principal{UserID: uuid.New(), Name: "Meera", Role: auth.RoleManager}

// envelope mirrors the response envelope with the data left raw
type envelope[T any] struct {
	Success    bool                `json:"success"`
	Message    string              `json:"message"`
	Data       T                   `json:"data"`
	Pagination *service.Pagination `json:"pagination"`
}

// TeamHandlerTestSuite defines the test suite for TeamHandler
type TeamHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTeamServiceInterface
	handler     *handlers.TeamHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *TeamHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTeamServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTeamHandler(suite.mockService)
	suite.httpSuite = testutils.SetupAuthenticatedHTTPTest(manager)

	teams := suite.httpSuite.Router.Group("/api/v1/teams")
	{
		teams.POST("", suite.handler.CreateTeam)
		teams.GET("/:id", suite.handler.GetTeam)
		teams.GET("", suite.handler.ListTeams)
		teams.PUT("/:id", suite.handler.UpdateTeam)
		teams.DELETE("/:id", suite.handler.DeleteTeam)
	}
}

// TearDownTest cleans up after each test
func (suite *TeamHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamHandlerTestSuite) TestCreateTeam() {
	supervisorID := uuid.New()
	memberA, memberB := uuid.New(), uuid.New()
	teamID := uuid.New()

	suite.T().Run("JSON body", func(t *testing.T) {
		expected := &service.TeamRequest{
			Name:         "North Gate",
			SupervisorID: supervisorID,
			MemberIDs:    []uuid.UUID{memberA, memberB},
		}
		suite.mockService.EXPECT().
			Create(gomock.Any(), expected).
			Return(&service.TeamResponse{ID: teamID, Name: "North Gate", MemberCount: 2}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams", map[string]interface{}{
			"name":          "North Gate",
			"supervisor_id": supervisorID.String(),
			"member_ids":    []string{memberA.String(), memberB.String()},
		})

		var resp envelope[service.TeamResponse]
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &resp)
		assert.True(t, resp.Success)
		assert.Equal(t, "Team created", resp.Message)
		assert.Equal(t, teamID, resp.Data.ID)
		assert.Equal(t, 2, resp.Data.MemberCount)
	})

	suite.T().Run("form body", func(t *testing.T) {
		expected := &service.TeamRequest{
			Name:         "North Gate",
			Description:  "night crew",
			SupervisorID: supervisorID,
			MemberIDs:    []uuid.UUID{memberA, memberB},
		}
		suite.mockService.EXPECT().
			Create(gomock.Any(), expected).
			Return(&service.TeamResponse{ID: teamID}, nil)

		form := url.Values{}
		form.Set("name", "North Gate")
		form.Set("description", "night crew")
		form.Set("supervisor_id", supervisorID.String())
		form.Add("member_ids[]", memberA.String())
		form.Add("member_ids[]", memberB.String())
		recorder := suite.httpSuite.PostForm("/api/v1/teams", form)

		testutils.AssertSuccessResponse(t, recorder, http.StatusOK)
	})

	suite.T().Run("comma separated members", func(t *testing.T) {
		expected := &service.TeamRequest{
			Name:         "North Gate",
			SupervisorID: supervisorID,
			MemberIDs:    []uuid.UUID{memberA, memberB},
		}
		suite.mockService.EXPECT().
			Create(gomock.Any(), expected).
			Return(&service.TeamResponse{ID: teamID}, nil)

		form := url.Values{}
		form.Set("name", "North Gate")
		form.Set("supervisor_id", supervisorID.String())
		form.Set("member_ids", memberA.String()+","+memberB.String())
		recorder := suite.httpSuite.PostForm("/api/v1/teams", form)

		testutils.AssertSuccessResponse(t, recorder, http.StatusOK)
	})

	suite.T().Run("business failure answers 200", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrSupervisorAlreadyAssigned)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams", map[string]interface{}{
			"name":          "North Gate",
			"supervisor_id": supervisorID.String(),
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusOK, "supervisor assignment already exists on another team")
	})

	suite.T().Run("malformed supervisor id", func(t *testing.T) {
		form := url.Values{}
		form.Set("name", "North Gate")
		form.Set("supervisor_id", "not-a-uuid")
		recorder := suite.httpSuite.PostForm("/api/v1/teams", form)

		testutils.AssertErrorResponse(t, recorder, http.StatusOK, "invalid parameters")
	})
}

func (suite *TeamHandlerTestSuite) TestGetTeam() {
	suite.T().Run("invalid id", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/nope", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusOK, "invalid id")
	})

	suite.T().Run("not found", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().GetByID(gomock.Any(), id).Return(nil, apperrors.ErrTeamNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/"+id.String(), nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusOK, "team not found")
	})

	suite.T().Run("infrastructure failure", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().GetByID(gomock.Any(), id).Return(nil, errors.New("connection reset"))

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/"+id.String(), nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "internal server error")
		assert.NotContains(t, recorder.Body.String(), "connection reset")
	})
}

func (suite *TeamHandlerTestSuite) TestListTeams() {
	expected := &service.ListTeamsRequest{
		PageRequest: service.PageRequest{Page: 2, PerPage: 5},
		Search:      "gate",
		Size:        repository.TeamSizeSmall,
	}
	page := &service.Page[service.TeamResponse]{
		Items:      []service.TeamResponse{{ID: uuid.New(), Name: "North Gate"}},
		Pagination: service.NewPagination(expected.PageRequest, 6),
	}
	suite.mockService.EXPECT().List(gomock.Any(), expected).Return(page, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams?search=gate&size=small&page=2&limit=5", nil)

	var resp envelope[[]service.TeamResponse]
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	require.NotNil(suite.T(), resp.Pagination)
	assert.Len(suite.T(), resp.Data, 1)
	assert.Equal(suite.T(), service.Pagination{CurrentPage: 2, TotalPages: 2, TotalItems: 6, PerPage: 5}, *resp.Pagination)
}

func (suite *TeamHandlerTestSuite) TestUpdateTeam() {
	id := uuid.New()
	supervisorID := uuid.New()
	suite.mockService.EXPECT().
		Update(gomock.Any(), id, &service.TeamRequest{Name: "South Gate", SupervisorID: supervisorID}).
		Return(&service.TeamResponse{ID: id, Name: "South Gate"}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/teams/"+id.String(), map[string]interface{}{
		"name":          "South Gate",
		"supervisor_id": supervisorID.String(),
	})

	var resp envelope[service.TeamResponse]
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.Equal(suite.T(), "Team updated", resp.Message)
	assert.Equal(suite.T(), "South Gate", resp.Data.Name)
}

func (suite *TeamHandlerTestSuite) TestDeleteTeam() {
	id := uuid.New()
	suite.mockService.EXPECT().Delete(gomock.Any(), id).Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/teams/"+id.String(), nil)

	var resp envelope[interface{}]
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.True(suite.T(), resp.Success)
	assert.Equal(suite.T(), "Team deleted", resp.Message)
	assert.Nil(suite.T(), resp.Data)
}

func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
