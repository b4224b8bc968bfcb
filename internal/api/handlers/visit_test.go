package handlers_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"staffing-backoffice/internal/api/handlers"
	"staffing-backoffice/internal/auth"
	apperrors "staffing-backoffice/internal/errors"
	"staffing-backoffice/internal/export"
	"staffing-backoffice/internal/mocks"
	"staffing-backoffice/internal/service"
	"staffing-backoffice/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func visitRouter(t *testing.T, p auth.Principal) (*testutils.HTTPTestSuite, *mocks.MockVisitServiceInterface) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockVisitServiceInterface(ctrl)
	h := handlers.NewVisitHandler(svc)

	s := testutils.SetupAuthenticatedHTTPTest(p)
	visits := s.Router.Group("/api/v1/visits")
	visits.POST("/checkin", h.CheckIn)
	visits.POST("/checkout", h.CheckOut)
	visits.GET("/performance", h.Performance)
	visits.GET("/performance/export", h.ExportPerformance)
	visits.GET("", h.ListVisits)
	return s, svc
}

func TestVisitCheckInAsSupervisor(t *testing.T) {
	supervisor := auth.Principal{UserID: uuid.New(), Name: "Ravi", Role: auth.RoleSupervisor}
	locationID := uuid.New()

	t.Run("defaults to the caller", func(t *testing.T) {
		s, svc := visitRouter(t, supervisor)
		svc.EXPECT().
			CheckIn(gomock.Any(), &service.CheckInRequest{SupervisorID: supervisor.UserID, LocationID: locationID}).
			Return(&service.VisitResponse{ID: uuid.New(), SupervisorID: supervisor.UserID, LocationID: locationID, Open: true}, nil)

		recorder := s.MakeRequest(http.MethodPost, "/api/v1/visits/checkin", map[string]interface{}{
			"location_id": locationID.String(),
		})

		var resp envelope[service.VisitResponse]
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &resp)
		assert.True(t, resp.Success)
		assert.Equal(t, "Checked in", resp.Message)
		assert.True(t, resp.Data.Open)
	})

	t.Run("own id is accepted", func(t *testing.T) {
		s, svc := visitRouter(t, supervisor)
		svc.EXPECT().CheckIn(gomock.Any(), gomock.Any()).Return(&service.VisitResponse{}, nil)

		recorder := s.MakeRequest(http.MethodPost, "/api/v1/visits/checkin", map[string]interface{}{
			"supervisor_id": supervisor.UserID.String(),
			"location_id":   locationID.String(),
		})
		testutils.AssertSuccessResponse(t, recorder, http.StatusOK)
	})

	t.Run("another supervisor is forbidden", func(t *testing.T) {
		s, _ := visitRouter(t, supervisor)

		recorder := s.MakeRequest(http.MethodPost, "/api/v1/visits/checkin", map[string]interface{}{
			"supervisor_id": uuid.New().String(),
			"location_id":   locationID.String(),
		})
		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "permission")
	})
}

func TestVisitCheckOutByManager(t *testing.T) {
	s, svc := visitRouter(t, manager)
	supervisorID := uuid.New()
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	minutes := 90

	svc.EXPECT().
		CheckOut(gomock.Any(), &service.CheckOutRequest{SupervisorID: supervisorID, At: &at, Notes: "all clear"}).
		Return(&service.VisitResponse{SupervisorID: supervisorID, DurationMinutes: &minutes}, nil)

	recorder := s.MakeRequest(http.MethodPost, "/api/v1/visits/checkout", map[string]interface{}{
		"supervisor_id": supervisorID.String(),
		"at":            "2024-03-01T12:00:00Z",
		"notes":         "all clear",
	})

	var resp envelope[service.VisitResponse]
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &resp)
	assert.Equal(t, "Checked out", resp.Message)
	if assert.NotNil(t, resp.Data.DurationMinutes) {
		assert.Equal(t, 90, *resp.Data.DurationMinutes)
	}
}

func TestVisitPerformance(t *testing.T) {
	supervisor := auth.Principal{UserID: uuid.New(), Name: "Ravi", Role: auth.RoleSupervisor}

	t.Run("supervisor gets own report", func(t *testing.T) {
		s, svc := visitRouter(t, supervisor)
		expected := &service.PerformanceRequest{
			PageRequest:  service.PageRequest{Page: 1, PerPage: 10},
			SupervisorID: supervisor.UserID,
			From:         "2024-03-01",
			To:           "2024-03-03",
		}
		svc.EXPECT().Performance(gomock.Any(), expected).Return(&service.PerformanceResponse{
			SupervisorID: supervisor.UserID,
			TotalVisits:  3,
			Attendance:   service.Attendance{TotalDays: 3, Present: 2, Absent: 1, Percentage: 66.67},
		}, nil)

		recorder := s.MakeRequest(http.MethodGet, "/api/v1/visits/performance?from=2024-03-01&to=2024-03-03&page=1&per_page=10", nil)

		var resp envelope[service.PerformanceResponse]
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &resp)
		assert.Equal(t, 3, resp.Data.TotalVisits)
		assert.Equal(t, 66.67, resp.Data.Attendance.Percentage)
	})

	t.Run("manager must name the supervisor", func(t *testing.T) {
		s, svc := visitRouter(t, manager)
		svc.EXPECT().
			Performance(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req *service.PerformanceRequest) (*service.PerformanceResponse, error) {
				assert.Equal(t, uuid.Nil, req.SupervisorID)
				return nil, apperrors.NewValidationError("supervisor_id", "is required")
			})

		recorder := s.MakeRequest(http.MethodGet, "/api/v1/visits/performance?from=2024-03-01&to=2024-03-03", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusOK, "supervisor_id")
	})

	t.Run("export sends a workbook", func(t *testing.T) {
		s, svc := visitRouter(t, supervisor)
		svc.EXPECT().ExportPerformance(gomock.Any(), gomock.Any()).Return([]byte("PK"), nil)

		recorder := s.MakeRequest(http.MethodGet, "/api/v1/visits/performance/export?from=2024-03-01&to=2024-03-03", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, export.ContentType, recorder.Header().Get("Content-Type"))
		assert.Contains(t, recorder.Header().Get("Content-Disposition"), "supervisor-performance-")
		assert.Equal(t, "PK", recorder.Body.String())
	})
}

func TestVisitListScopesSupervisors(t *testing.T) {
	supervisor := auth.Principal{UserID: uuid.New(), Role: auth.RoleSupervisor}
	s, svc := visitRouter(t, supervisor)

	svc.EXPECT().
		ListVisits(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *service.ListVisitsRequest) (*service.Page[service.VisitResponse], error) {
			if assert.NotNil(t, req.SupervisorID) {
				assert.Equal(t, supervisor.UserID, *req.SupervisorID)
			}
			assert.True(t, req.OpenOnly)
			return &service.Page[service.VisitResponse]{Pagination: service.NewPagination(req.PageRequest, 0)}, nil
		})

	recorder := s.MakeRequest(http.MethodGet, "/api/v1/visits?open_only=true", nil)
	testutils.AssertSuccessResponse(t, recorder, http.StatusOK)

	forbidden := s.MakeRequest(http.MethodGet, "/api/v1/visits?supervisor_id="+uuid.New().String(), nil)
	testutils.AssertErrorResponse(t, forbidden, http.StatusForbidden, "")
}
