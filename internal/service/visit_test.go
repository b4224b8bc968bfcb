package service_test

import (
	"context"
	"testing"
	"time"

	"staffing-backoffice/internal/database/models"
	apperrors "staffing-backoffice/internal/errors"
	"staffing-backoffice/internal/export"
	"staffing-backoffice/internal/mocks"
	"staffing-backoffice/internal/service"
	"staffing-backoffice/internal/timeutil"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// VisitServiceTestSuite defines the test suite for VisitService
type VisitServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	visitRepo    *mocks.MockSiteVisitRepositoryInterface
	employeeRepo *mocks.MockEmployeeRepositoryInterface
	societyRepo  *mocks.MockSocietyRepositoryInterface
	service      *service.VisitService
	ctx          context.Context

	supervisor *models.Employee
	siteA      *models.Society
	siteB      *models.Society
}

// SetupTest sets up the test suite
func (suite *VisitServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.visitRepo = mocks.NewMockSiteVisitRepositoryInterface(suite.ctrl)
	suite.employeeRepo = mocks.NewMockEmployeeRepositoryInterface(suite.ctrl)
	suite.societyRepo = mocks.NewMockSocietyRepositoryInterface(suite.ctrl)
	zone, err := timeutil.NewZone("Asia/Kolkata")
	suite.Require().NoError(err)
	suite.service = service.NewVisitService(service.VisitDeps{
		Visits:     suite.visitRepo,
		Employees:  suite.employeeRepo,
		Societies:  suite.societyRepo,
		Transactor: passThroughTransactor(suite.ctrl),
		Activity:   quietRecorder(suite.ctrl),
	}, service.NewValidator(), zone, 31)
	suite.ctx = context.Background()

	suite.supervisor = employee("Suresh Patil", models.EmployeeRoleSupervisor, true)
	suite.siteA = &models.Society{Name: "Blue Ridge"}
	suite.siteA.ID = uuid.New()
	suite.siteB = &models.Society{Name: "Amanora Park"}
	suite.siteB.ID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *VisitServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *VisitServiceTestSuite) visit(site *models.Society, checkin time.Time, minutes *int) models.SupervisorSiteVisit {
	v := models.SupervisorSiteVisit{
		SupervisorID: suite.supervisor.ID,
		LocationID:   site.ID,
		CheckinAt:    checkin,
		Location:     site,
	}
	v.ID = uuid.New()
	if minutes != nil {
		out := checkin.Add(time.Duration(*minutes) * time.Minute)
		v.CheckoutAt = &out
		v.DurationMinutes = minutes
	}
	return v
}

func (suite *VisitServiceTestSuite) checkInRequest(at time.Time) *service.CheckInRequest {
	return &service.CheckInRequest{SupervisorID: suite.supervisor.ID, LocationID: suite.siteA.ID, At: &at}
}

// TestCheckIn tests opening a visit
func (suite *VisitServiceTestSuite) TestCheckIn() {
	at := time.Date(2024, 3, 1, 4, 0, 0, 0, time.UTC)

	suite.employeeRepo.EXPECT().GetByID(gomock.Any(), suite.supervisor.ID).Return(suite.supervisor, nil)
	suite.societyRepo.EXPECT().GetByID(gomock.Any(), suite.siteA.ID).Return(suite.siteA, nil)
	suite.visitRepo.EXPECT().GetOpenBySupervisor(gomock.Any(), suite.supervisor.ID).Return(nil, gorm.ErrRecordNotFound)
	suite.visitRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, v *models.SupervisorSiteVisit) error {
		suite.Equal(at, v.CheckinAt)
		suite.Nil(v.CheckoutAt)
		v.ID = uuid.New()
		return nil
	})

	resp, err := suite.service.CheckIn(suite.ctx, suite.checkInRequest(at))

	suite.Require().NoError(err)
	suite.True(resp.Open)
	suite.Equal("Blue Ridge", resp.LocationName)
	suite.Equal("Suresh Patil", resp.SupervisorName)
	suite.Equal("Asia/Kolkata", resp.CheckinAt.Location().String())
	suite.Equal(9, resp.CheckinAt.Hour())
}

// TestCheckInWhileOpen tests that a second open visit is refused
func (suite *VisitServiceTestSuite) TestCheckInWhileOpen() {
	at := time.Date(2024, 3, 1, 4, 0, 0, 0, time.UTC)
	open := suite.visit(suite.siteB, at.Add(-time.Hour), nil)

	suite.employeeRepo.EXPECT().GetByID(gomock.Any(), suite.supervisor.ID).Return(suite.supervisor, nil)
	suite.societyRepo.EXPECT().GetByID(gomock.Any(), suite.siteA.ID).Return(suite.siteA, nil)
	suite.visitRepo.EXPECT().GetOpenBySupervisor(gomock.Any(), suite.supervisor.ID).Return(&open, nil)
	suite.visitRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	_, err := suite.service.CheckIn(suite.ctx, suite.checkInRequest(at))

	suite.ErrorIs(err, apperrors.ErrVisitAlreadyOpen)
}

// TestCheckInRaceLost tests that the open-visit index is reported as an open visit
func (suite *VisitServiceTestSuite) TestCheckInRaceLost() {
	at := time.Date(2024, 3, 1, 4, 0, 0, 0, time.UTC)

	suite.employeeRepo.EXPECT().GetByID(gomock.Any(), suite.supervisor.ID).Return(suite.supervisor, nil)
	suite.societyRepo.EXPECT().GetByID(gomock.Any(), suite.siteA.ID).Return(suite.siteA, nil)
	suite.visitRepo.EXPECT().GetOpenBySupervisor(gomock.Any(), suite.supervisor.ID).Return(nil, gorm.ErrRecordNotFound)
	suite.visitRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(&pgconn.PgError{Code: "23505", ConstraintName: "idx_site_visits_one_open"})

	_, err := suite.service.CheckIn(suite.ctx, suite.checkInRequest(at))

	suite.ErrorIs(err, apperrors.ErrVisitAlreadyOpen)
}

// TestCheckInRequiresSupervisor tests that guards cannot check in
func (suite *VisitServiceTestSuite) TestCheckInRequiresSupervisor() {
	guard := employee("Ramesh Yadav", models.EmployeeRoleGuard, true)
	req := suite.checkInRequest(time.Now())
	req.SupervisorID = guard.ID
	suite.employeeRepo.EXPECT().GetByID(gomock.Any(), guard.ID).Return(guard, nil)

	_, err := suite.service.CheckIn(suite.ctx, req)

	suite.ErrorIs(err, apperrors.ErrNotASupervisor)
}

// TestCheckOutFloorsMinutes tests that the duration is whole elapsed minutes
func (suite *VisitServiceTestSuite) TestCheckOutFloorsMinutes() {
	checkin := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	open := suite.visit(suite.siteA, checkin, nil)
	open.Notes = "gate 2"
	open.Location = nil
	out := checkin.Add(89*time.Minute + 59*time.Second)

	suite.visitRepo.EXPECT().GetOpenBySupervisor(gomock.Any(), suite.supervisor.ID).Return(&open, nil)
	suite.visitRepo.EXPECT().Close(gomock.Any(), &open).Return(nil)
	suite.visitRepo.EXPECT().GetByID(gomock.Any(), open.ID).DoAndReturn(func(_ context.Context, _ uuid.UUID) (*models.SupervisorSiteVisit, error) {
		closed := open
		closed.Location = suite.siteA
		return &closed, nil
	})

	resp, err := suite.service.CheckOut(suite.ctx, &service.CheckOutRequest{SupervisorID: suite.supervisor.ID, At: &out, Notes: "all clear"})

	suite.Require().NoError(err)
	suite.Equal("Blue Ridge", resp.LocationName)
	suite.False(resp.Open)
	suite.Require().NotNil(resp.DurationMinutes)
	suite.Equal(89, *resp.DurationMinutes)
	suite.Equal("gate 2\nall clear", resp.Notes)
}

// TestCheckOutRejections tests the checkout rules
func (suite *VisitServiceTestSuite) TestCheckOutRejections() {
	checkin := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	suite.Run("no open visit", func() {
		suite.visitRepo.EXPECT().GetOpenBySupervisor(gomock.Any(), suite.supervisor.ID).Return(nil, gorm.ErrRecordNotFound)
		_, err := suite.service.CheckOut(suite.ctx, &service.CheckOutRequest{SupervisorID: suite.supervisor.ID})
		suite.ErrorIs(err, apperrors.ErrNoOpenVisit)
	})

	suite.Run("before checkin", func() {
		open := suite.visit(suite.siteA, checkin, nil)
		early := checkin.Add(-time.Minute)
		suite.visitRepo.EXPECT().GetOpenBySupervisor(gomock.Any(), suite.supervisor.ID).Return(&open, nil)
		_, err := suite.service.CheckOut(suite.ctx, &service.CheckOutRequest{SupervisorID: suite.supervisor.ID, At: &early})
		suite.ErrorIs(err, apperrors.ErrCheckoutBeforeCheckin)
		suite.Nil(open.CheckoutAt)
	})

	suite.Run("missing supervisor", func() {
		_, err := suite.service.CheckOut(suite.ctx, &service.CheckOutRequest{})
		suite.True(apperrors.IsValidation(err))
	})
}

// TestPerformance tests the daily, per-site and attendance sections in local time
func (suite *VisitServiceTestSuite) TestPerformance() {
	sixty, thirty := 60, 30
	visits := []models.SupervisorSiteVisit{
		suite.visit(suite.siteA, time.Date(2024, 3, 1, 4, 0, 0, 0, time.UTC), &sixty),
		// 01:30 IST on 2 March
		suite.visit(suite.siteB, time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC), &thirty),
		suite.visit(suite.siteA, time.Date(2024, 3, 2, 5, 0, 0, 0, time.UTC), nil),
	}
	start := time.Date(2024, 2, 29, 18, 30, 0, 0, time.UTC)
	end := time.Date(2024, 3, 3, 18, 30, 0, 0, time.UTC)

	suite.employeeRepo.EXPECT().GetByID(gomock.Any(), suite.supervisor.ID).Return(suite.supervisor, nil)
	suite.visitRepo.EXPECT().ListInRange(gomock.Any(), suite.supervisor.ID, start, end).Return(visits, nil)
	suite.visitRepo.EXPECT().ListInRangePaged(gomock.Any(), suite.supervisor.ID, start, end, 2, 0).Return(visits[:2], int64(3), nil)

	report, err := suite.service.Performance(suite.ctx, &service.PerformanceRequest{
		PageRequest:  service.PageRequest{PerPage: 2},
		SupervisorID: suite.supervisor.ID,
		From:         "2024-03-01",
		To:           "2024-03-03",
	})

	suite.Require().NoError(err)
	suite.Equal("Suresh Patil", report.SupervisorName)
	suite.Equal("Asia/Kolkata", report.Timezone)
	suite.Equal(3, report.TotalVisits)
	suite.Equal(90, report.TotalMinutes)

	suite.Equal([]service.DailyVisits{
		{Date: "2024-03-01", Visits: 1, Minutes: 60},
		{Date: "2024-03-02", Visits: 2, Minutes: 30},
		{Date: "2024-03-03", Visits: 0, Minutes: 0},
	}, report.Daily)

	suite.Require().Len(report.Sites, 2)
	suite.Equal("Blue Ridge", report.Sites[0].LocationName)
	suite.Equal(2, report.Sites[0].Visits)
	suite.Equal(60, report.Sites[0].Minutes)
	suite.Equal(time.Date(2024, 3, 2, 5, 0, 0, 0, time.UTC), report.Sites[0].LastVisit.UTC())
	suite.Equal("Amanora Park", report.Sites[1].LocationName)

	suite.Equal(service.Attendance{TotalDays: 3, Present: 2, Absent: 1, Percentage: 66.67}, report.Attendance)

	suite.Len(report.Log.Items, 2)
	suite.Equal(2, report.Log.Pagination.TotalPages)
}

// TestPerformanceEmptyRange tests a report without visits
func (suite *VisitServiceTestSuite) TestPerformanceEmptyRange() {
	suite.employeeRepo.EXPECT().GetByID(gomock.Any(), suite.supervisor.ID).Return(suite.supervisor, nil)
	suite.visitRepo.EXPECT().ListInRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	suite.visitRepo.EXPECT().ListInRangePaged(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), 20, 0).Return(nil, int64(0), nil)

	report, err := suite.service.Performance(suite.ctx, &service.PerformanceRequest{
		SupervisorID: suite.supervisor.ID,
		From:         "2024-03-10",
		To:           "2024-03-10",
	})

	suite.Require().NoError(err)
	suite.Zero(report.TotalVisits)
	suite.Empty(report.Sites)
	suite.NotNil(report.Sites)
	suite.Equal(service.Attendance{TotalDays: 1, Present: 0, Absent: 1, Percentage: 0}, report.Attendance)
	suite.NotNil(report.Log.Items)
}

// TestPerformanceRangeChecks tests the date range validation
func (suite *VisitServiceTestSuite) TestPerformanceRangeChecks() {
	tests := []struct {
		name  string
		from  string
		to    string
		check func(error) bool
	}{
		{"too long", "2024-01-01", "2024-03-01", apperrors.IsRuleViolation},
		{"reversed", "2024-03-05", "2024-03-01", apperrors.IsValidation},
		{"malformed", "2024/03/01", "2024-03-05", apperrors.IsValidation},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.service.Performance(suite.ctx, &service.PerformanceRequest{
				SupervisorID: suite.supervisor.ID,
				From:         tt.from,
				To:           tt.to,
			})
			suite.Error(err)
			suite.True(tt.check(err))
		})
	}
}

// TestPerformanceRangeLimitIsInclusive tests that exactly the maximum number of days is accepted
func (suite *VisitServiceTestSuite) TestPerformanceRangeLimitIsInclusive() {
	suite.employeeRepo.EXPECT().GetByID(gomock.Any(), suite.supervisor.ID).Return(suite.supervisor, nil)
	suite.visitRepo.EXPECT().ListInRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	suite.visitRepo.EXPECT().ListInRangePaged(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, int64(0), nil)

	report, err := suite.service.Performance(suite.ctx, &service.PerformanceRequest{
		SupervisorID: suite.supervisor.ID,
		From:         "2024-03-01",
		To:           "2024-03-31",
	})

	suite.Require().NoError(err)
	suite.Len(report.Daily, 31)
}

// TestExportPerformance tests the xlsx export with its total row
func (suite *VisitServiceTestSuite) TestExportPerformance() {
	sixty := 60
	visits := []models.SupervisorSiteVisit{suite.visit(suite.siteA, time.Date(2024, 3, 1, 4, 0, 0, 0, time.UTC), &sixty)}

	suite.employeeRepo.EXPECT().GetByID(gomock.Any(), suite.supervisor.ID).Return(suite.supervisor, nil)
	suite.visitRepo.EXPECT().ListInRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(visits, nil)
	suite.visitRepo.EXPECT().ListInRangePaged(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(visits, int64(1), nil)

	data, err := suite.service.ExportPerformance(suite.ctx, &service.PerformanceRequest{
		SupervisorID: suite.supervisor.ID,
		From:         "2024-03-01",
		To:           "2024-03-02",
	})
	suite.Require().NoError(err)

	rows, err := export.ReadRows(data, "Performance")
	suite.Require().NoError(err)
	suite.Equal([][]string{
		{"Date", "Visits", "Minutes"},
		{"2024-03-01", "1", "60"},
		{"2024-03-02", "0", "0"},
		{"Total", "1", "60"},
	}, rows)
}

// TestVisitServiceTestSuite runs the test suite
func TestVisitServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VisitServiceTestSuite))
}
