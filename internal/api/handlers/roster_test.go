package handlers_test

import (
	"net/http"
	"net/url"
	"testing"

	"staffing-backoffice/internal/api/handlers"
	apperrors "staffing-backoffice/internal/errors"
	"staffing-backoffice/internal/export"
	"staffing-backoffice/internal/mocks"
	"staffing-backoffice/internal/service"
	"staffing-backoffice/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// RosterHandlerTestSuite defines the test suite for RosterHandler
type RosterHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockRosterServiceInterface
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *RosterHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockRosterServiceInterface(suite.ctrl)
	handler := handlers.NewRosterHandler(suite.mockService)
	suite.httpSuite = testutils.SetupAuthenticatedHTTPTest(manager)

	rosters := suite.httpSuite.Router.Group("/api/v1/rosters")
	{
		rosters.POST("", handler.AssignRoster)
		rosters.POST("/bulk", handler.BulkAssignRoster)
		rosters.GET("", handler.ListRosters)
		rosters.GET("/export", handler.ExportRosters)
		rosters.GET("/:id", handler.GetRoster)
		rosters.PUT("/:id", handler.UpdateRoster)
		rosters.DELETE("/:id", handler.DeleteRoster)
	}
}

func (suite *RosterHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RosterHandlerTestSuite) TestAssignFromForm() {
	guardID, societyID, shiftID := uuid.New(), uuid.New(), uuid.New()
	allow := true
	suite.mockService.EXPECT().
		Assign(gomock.Any(), &service.AssignRosterRequest{
			GuardID:      guardID,
			SocietyID:    societyID,
			ShiftID:      shiftID,
			StartDate:    "2024-03-01",
			EndDate:      "2024-03-31",
			AllowOverlap: &allow,
		}).
		Return(&service.RosterResponse{GuardID: guardID, GuardName: "Arjun", StartDate: "2024-03-01", EndDate: "2024-03-31"}, nil)

	form := url.Values{}
	form.Set("guard_id", guardID.String())
	form.Set("society_id", societyID.String())
	form.Set("shift_id", shiftID.String())
	form.Set("start_date", "2024-03-01")
	form.Set("end_date", "2024-03-31")
	form.Set("allow_overlap", "1")
	recorder := suite.httpSuite.PostForm("/api/v1/rosters", form)

	var resp envelope[service.RosterResponse]
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.True(suite.T(), resp.Success)
	assert.Equal(suite.T(), "Guard rostered", resp.Message)
	assert.Equal(suite.T(), "Arjun", resp.Data.GuardName)
}

func (suite *RosterHandlerTestSuite) TestAssignConflict() {
	suite.mockService.EXPECT().
		Assign(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrScheduleConflict)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/rosters", map[string]interface{}{
		"guard_id": uuid.New().String(),
	})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusOK, "schedule conflict detected")
}

func (suite *RosterHandlerTestSuite) TestBulkAssignSuccess() {
	suite.mockService.EXPECT().
		BulkAssign(gomock.Any(), gomock.Any()).
		Return(&service.BulkAssignResponse{Success: true, Message: "2 guards assigned", Created: 2}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/rosters/bulk", map[string]interface{}{
		"guard_ids": []string{uuid.New().String(), uuid.New().String()},
	})

	var resp envelope[service.BulkAssignResponse]
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.True(suite.T(), resp.Success)
	assert.Equal(suite.T(), 2, resp.Data.Created)
}

func (suite *RosterHandlerTestSuite) TestListFilters() {
	societyID := uuid.New()
	suite.mockService.EXPECT().
		List(gomock.Any(), &service.ListRostersRequest{SocietyID: &societyID, ActiveOn: "2024-03-02"}).
		Return(&service.Page[service.RosterResponse]{Pagination: service.NewPagination(service.PageRequest{}, 0)}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/rosters?society_id="+societyID.String()+"&active_on=2024-03-02", nil)

	var resp envelope[[]service.RosterResponse]
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.Equal(suite.T(), 20, resp.Pagination.PerPage)
	assert.Equal(suite.T(), 0, resp.Pagination.TotalPages)
}

func (suite *RosterHandlerTestSuite) TestExport() {
	suite.mockService.EXPECT().Export(gomock.Any(), gomock.Any()).Return([]byte("xlsx"), nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/rosters/export", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Equal(suite.T(), export.ContentType, recorder.Header().Get("Content-Type"))
	assert.Regexp(suite.T(), `attachment; filename="roster-\d{8}\.xlsx"`, recorder.Header().Get("Content-Disposition"))
}

func (suite *RosterHandlerTestSuite) TestUpdateAndDelete() {
	id := uuid.New()
	notes := "relief guard"
	suite.mockService.EXPECT().
		Update(gomock.Any(), id, &service.UpdateRosterRequest{Notes: &notes}).
		Return(&service.RosterResponse{ID: id, Notes: notes}, nil)
	suite.mockService.EXPECT().Delete(gomock.Any(), id).Return(apperrors.ErrRosterAssignmentNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/rosters/"+id.String(), map[string]interface{}{"notes": notes})
	testutils.AssertSuccessResponse(suite.T(), recorder, http.StatusOK)

	recorder = suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/rosters/"+id.String(), nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusOK, "roster assignment not found")
}

func TestRosterHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RosterHandlerTestSuite))
}
