package service_test

import (
	"context"
	"testing"

	"staffing-backoffice/internal/database/models"
	apperrors "staffing-backoffice/internal/errors"
	"staffing-backoffice/internal/export"
	"staffing-backoffice/internal/mocks"
	"staffing-backoffice/internal/repository"
	"staffing-backoffice/internal/service"
	"staffing-backoffice/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// RosterServiceTestSuite defines the test suite for RosterService
type RosterServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	rosterRepo   *mocks.MockRosterRepositoryInterface
	employeeRepo *mocks.MockEmployeeRepositoryInterface
	societyRepo  *mocks.MockSocietyRepositoryInterface
	shiftRepo    *mocks.MockShiftRepositoryInterface
	teamRepo     *mocks.MockTeamRepositoryInterface
	deps         service.RosterDeps
	service      *service.RosterService
	ctx          context.Context

	guard     *models.Employee
	societyID uuid.UUID
	shiftID   uuid.UUID
}

// SetupTest sets up the test suite
func (suite *RosterServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.rosterRepo = mocks.NewMockRosterRepositoryInterface(suite.ctrl)
	suite.employeeRepo = mocks.NewMockEmployeeRepositoryInterface(suite.ctrl)
	suite.societyRepo = mocks.NewMockSocietyRepositoryInterface(suite.ctrl)
	suite.shiftRepo = mocks.NewMockShiftRepositoryInterface(suite.ctrl)
	suite.teamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.deps = service.RosterDeps{
		Rosters:    suite.rosterRepo,
		Employees:  suite.employeeRepo,
		Societies:  suite.societyRepo,
		Shifts:     suite.shiftRepo,
		Teams:      suite.teamRepo,
		Transactor: passThroughTransactor(suite.ctrl),
		Activity:   quietRecorder(suite.ctrl),
	}
	suite.service = service.NewRosterService(suite.deps, service.NewValidator(), false)
	suite.ctx = context.Background()

	suite.guard = employee("Mahesh Pawar", models.EmployeeRoleGuard, true)
	suite.societyID = uuid.New()
	suite.shiftID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *RosterServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RosterServiceTestSuite) expectSlot() {
	suite.societyRepo.EXPECT().GetByID(gomock.Any(), suite.societyID).Return(&models.Society{Name: "Green Meadows"}, nil)
	suite.shiftRepo.EXPECT().GetByID(gomock.Any(), suite.shiftID).Return(&models.Shift{Name: "Day"}, nil)
}

func (suite *RosterServiceTestSuite) assignRequest() *service.AssignRosterRequest {
	return &service.AssignRosterRequest{
		GuardID:   suite.guard.ID,
		SocietyID: suite.societyID,
		ShiftID:   suite.shiftID,
		StartDate: "2024-03-01",
		EndDate:   "2024-03-31",
	}
}

func (suite *RosterServiceTestSuite) existing(start, end string) models.RosterAssignment {
	a := models.RosterAssignment{GuardID: suite.guard.ID, StartDate: testutils.Date(start), EndDate: testutils.Date(end)}
	a.ID = uuid.New()
	return a
}

// TestAssignDefaultsTeamFromMembership tests that team_id comes from the guard's team
func (suite *RosterServiceTestSuite) TestAssignDefaultsTeamFromMembership() {
	teamID := uuid.New()
	var created *models.RosterAssignment

	suite.employeeRepo.EXPECT().GetByID(gomock.Any(), suite.guard.ID).Return(suite.guard, nil)
	suite.expectSlot()
	suite.teamRepo.EXPECT().GetMemberships(gomock.Any(), []uuid.UUID{suite.guard.ID}, models.MembershipRoleMember).
		Return([]models.TeamMembership{{TeamID: teamID, EmployeeID: suite.guard.ID}}, nil)
	suite.rosterRepo.EXPECT().FindOverlapping(gomock.Any(), []uuid.UUID{suite.guard.ID}, testutils.Date("2024-03-01"), testutils.Date("2024-03-31"), nil).
		Return(nil, nil)
	suite.rosterRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *models.RosterAssignment) error {
		a.ID = uuid.New()
		created = a
		return nil
	})
	suite.rosterRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id uuid.UUID) (*models.RosterAssignment, error) {
		created.Guard = suite.guard
		return created, nil
	})

	resp, err := suite.service.Assign(suite.ctx, suite.assignRequest())

	suite.Require().NoError(err)
	suite.Require().NotNil(resp.TeamID)
	suite.Equal(teamID, *resp.TeamID)
	suite.Equal("2024-03-01", resp.StartDate)
	suite.Equal("2024-03-31", resp.EndDate)
	suite.Equal("Mahesh Pawar", resp.GuardName)
}

// TestAssignExplicitTeam tests that an explicit team must be the guard's own team
func (suite *RosterServiceTestSuite) TestAssignExplicitTeam() {
	ownTeam, otherTeam := uuid.New(), uuid.New()
	membership := []models.TeamMembership{{TeamID: ownTeam, EmployeeID: suite.guard.ID}}

	suite.Run("other team rejected", func() {
		suite.employeeRepo.EXPECT().GetByID(gomock.Any(), suite.guard.ID).Return(suite.guard, nil)
		suite.expectSlot()
		suite.teamRepo.EXPECT().GetByID(gomock.Any(), otherTeam).Return(&models.Team{Name: "Day Patrol"}, nil)
		suite.teamRepo.EXPECT().GetMemberships(gomock.Any(), []uuid.UUID{suite.guard.ID}, models.MembershipRoleMember).Return(membership, nil)

		req := suite.assignRequest()
		req.TeamID = &otherTeam
		_, err := suite.service.Assign(suite.ctx, req)

		suite.ErrorIs(err, apperrors.ErrGuardNotOnTeam)
	})

	suite.Run("guard without a team rejected", func() {
		suite.employeeRepo.EXPECT().GetByID(gomock.Any(), suite.guard.ID).Return(suite.guard, nil)
		suite.expectSlot()
		suite.teamRepo.EXPECT().GetByID(gomock.Any(), otherTeam).Return(&models.Team{Name: "Day Patrol"}, nil)
		suite.teamRepo.EXPECT().GetMemberships(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		req := suite.assignRequest()
		req.TeamID = &otherTeam
		_, err := suite.service.Assign(suite.ctx, req)

		suite.ErrorIs(err, apperrors.ErrGuardNotOnTeam)
	})

	suite.Run("unknown team", func() {
		suite.employeeRepo.EXPECT().GetByID(gomock.Any(), suite.guard.ID).Return(suite.guard, nil)
		suite.expectSlot()
		suite.teamRepo.EXPECT().GetByID(gomock.Any(), otherTeam).Return(nil, gorm.ErrRecordNotFound)

		req := suite.assignRequest()
		req.TeamID = &otherTeam
		_, err := suite.service.Assign(suite.ctx, req)

		suite.ErrorIs(err, apperrors.ErrTeamNotFound)
	})
}

// TestAssignConflict tests that an overlapping range is rejected when overlap is not allowed
func (suite *RosterServiceTestSuite) TestAssignConflict() {
	suite.employeeRepo.EXPECT().GetByID(gomock.Any(), suite.guard.ID).Return(suite.guard, nil)
	suite.expectSlot()
	suite.teamRepo.EXPECT().GetMemberships(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	suite.rosterRepo.EXPECT().FindOverlapping(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), nil).
		Return([]models.RosterAssignment{suite.existing("2024-03-31", "2024-04-05")}, nil)

	_, err := suite.service.Assign(suite.ctx, suite.assignRequest())

	suite.ErrorIs(err, apperrors.ErrScheduleConflict)
	suite.True(apperrors.IsRuleViolation(err))
	suite.Contains(err.Error(), "2024-03-31")
}

// TestAssignAllowOverlapSkipsCheck tests the per-request override
func (suite *RosterServiceTestSuite) TestAssignAllowOverlapSkipsCheck() {
	req := suite.assignRequest()
	req.AllowOverlap = ptr(true)

	suite.employeeRepo.EXPECT().GetByID(gomock.Any(), suite.guard.ID).Return(suite.guard, nil)
	suite.expectSlot()
	suite.teamRepo.EXPECT().GetMemberships(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	suite.rosterRepo.EXPECT().FindOverlapping(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	suite.rosterRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	suite.rosterRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(&models.RosterAssignment{}, nil)

	_, err := suite.service.Assign(suite.ctx, req)

	suite.NoError(err)
}

// TestAssignConfiguredOverlapDefault tests the configured default policy
func (suite *RosterServiceTestSuite) TestAssignConfiguredOverlapDefault() {
	lenient := service.NewRosterService(suite.deps, service.NewValidator(), true)

	suite.employeeRepo.EXPECT().GetByID(gomock.Any(), suite.guard.ID).Return(suite.guard, nil)
	suite.expectSlot()
	suite.teamRepo.EXPECT().GetMemberships(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	suite.rosterRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	suite.rosterRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(&models.RosterAssignment{}, nil)

	_, err := lenient.Assign(suite.ctx, suite.assignRequest())

	suite.NoError(err)
}

// TestAssignRejections tests the guard and date checks
func (suite *RosterServiceTestSuite) TestAssignRejections() {
	suite.Run("end before start", func() {
		req := suite.assignRequest()
		req.EndDate = "2024-02-28"
		_, err := suite.service.Assign(suite.ctx, req)
		suite.ErrorIs(err, apperrors.ErrInvalidDateRange)
	})

	suite.Run("malformed date", func() {
		req := suite.assignRequest()
		req.StartDate = "01/03/2024"
		_, err := suite.service.Assign(suite.ctx, req)
		suite.True(apperrors.IsValidation(err))
	})

	suite.Run("missing society", func() {
		req := suite.assignRequest()
		req.SocietyID = uuid.Nil
		_, err := suite.service.Assign(suite.ctx, req)
		suite.True(apperrors.IsValidation(err))
	})

	suite.Run("inactive guard", func() {
		inactive := employee("Old Guard", models.EmployeeRoleGuard, false)
		req := suite.assignRequest()
		req.GuardID = inactive.ID
		suite.employeeRepo.EXPECT().GetByID(gomock.Any(), inactive.ID).Return(inactive, nil)
		_, err := suite.service.Assign(suite.ctx, req)
		suite.ErrorIs(err, apperrors.ErrGuardInactive)
	})

	suite.Run("supervisor as guard", func() {
		sup := employee("Suresh Patil", models.EmployeeRoleSupervisor, true)
		req := suite.assignRequest()
		req.GuardID = sup.ID
		suite.employeeRepo.EXPECT().GetByID(gomock.Any(), sup.ID).Return(sup, nil)
		_, err := suite.service.Assign(suite.ctx, req)
		suite.ErrorIs(err, apperrors.ErrGuardIsSupervisor)
	})

	suite.Run("unknown shift", func() {
		suite.employeeRepo.EXPECT().GetByID(gomock.Any(), suite.guard.ID).Return(suite.guard, nil)
		suite.societyRepo.EXPECT().GetByID(gomock.Any(), suite.societyID).Return(&models.Society{}, nil)
		suite.shiftRepo.EXPECT().GetByID(gomock.Any(), suite.shiftID).Return(nil, gorm.ErrRecordNotFound)
		_, err := suite.service.Assign(suite.ctx, suite.assignRequest())
		suite.ErrorIs(err, apperrors.ErrShiftNotFound)
	})
}

func (suite *RosterServiceTestSuite) bulkRequest(ids ...uuid.UUID) *service.BulkAssignRequest {
	return &service.BulkAssignRequest{
		GuardIDs:  ids,
		SocietyID: suite.societyID,
		ShiftID:   suite.shiftID,
		StartDate: "2024-04-01",
		EndDate:   "2024-04-30",
	}
}

// TestBulkAssignAllSucceed tests that N distinct guards yield N identical rows in one batch
func (suite *RosterServiceTestSuite) TestBulkAssignAllSucceed() {
	other := employee("Sunil More", models.EmployeeRoleLadyGuard, true)
	ids := []uuid.UUID{suite.guard.ID, other.ID}

	suite.expectSlot()
	suite.employeeRepo.EXPECT().GetByIDs(gomock.Any(), ids).Return([]models.Employee{*suite.guard, *other}, nil)
	suite.teamRepo.EXPECT().GetMemberships(gomock.Any(), ids, models.MembershipRoleMember).Return(nil, nil)
	suite.rosterRepo.EXPECT().FindOverlapping(gomock.Any(), ids, gomock.Any(), gomock.Any(), nil).Return(nil, nil)
	suite.rosterRepo.EXPECT().CreateBatch(gomock.Any(), gomock.Len(2)).DoAndReturn(func(_ context.Context, rows []models.RosterAssignment) error {
		for i := range rows {
			suite.Equal(suite.societyID, rows[i].SocietyID)
			suite.Equal(suite.shiftID, rows[i].ShiftID)
			suite.Equal(testutils.Date("2024-04-01"), rows[i].StartDate)
			suite.Equal(testutils.Date("2024-04-30"), rows[i].EndDate)
			rows[i].ID = uuid.New()
		}
		return nil
	})

	resp, err := suite.service.BulkAssign(suite.ctx, suite.bulkRequest(suite.guard.ID, other.ID, suite.guard.ID))

	suite.Require().NoError(err)
	suite.True(resp.Success)
	suite.Equal(2, resp.Created)
	suite.Require().Len(resp.Results, 2)
	for _, item := range resp.Results {
		suite.True(item.Success)
		suite.Require().NotNil(item.RosterID)
		suite.NotEqual(uuid.Nil, *item.RosterID)
	}
}

// TestBulkAssignOneFailureWritesNothing tests the all-or-nothing behaviour
func (suite *RosterServiceTestSuite) TestBulkAssignOneFailureWritesNothing() {
	busy := employee("Busy Guard", models.EmployeeRoleGuard, true)
	missing := uuid.New()
	ids := []uuid.UUID{suite.guard.ID, busy.ID, missing}

	clash := suite.existing("2024-04-15", "2024-05-15")
	clash.GuardID = busy.ID

	suite.expectSlot()
	suite.employeeRepo.EXPECT().GetByIDs(gomock.Any(), ids).Return([]models.Employee{*suite.guard, *busy}, nil)
	suite.teamRepo.EXPECT().GetMemberships(gomock.Any(), ids, models.MembershipRoleMember).Return(nil, nil)
	suite.rosterRepo.EXPECT().FindOverlapping(gomock.Any(), ids, gomock.Any(), gomock.Any(), nil).
		Return([]models.RosterAssignment{clash}, nil)
	suite.rosterRepo.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).Times(0)

	resp, err := suite.service.BulkAssign(suite.ctx, suite.bulkRequest(ids...))

	suite.Require().NoError(err)
	suite.False(resp.Success)
	suite.Zero(resp.Created)
	suite.Require().Len(resp.Results, 3)
	suite.Equal("not assigned: batch rejected", resp.Results[0].Message)
	suite.Contains(resp.Results[1].Message, "schedule conflict detected")
	suite.Equal("guard not found", resp.Results[2].Message)
	for _, item := range resp.Results {
		suite.False(item.Success)
		suite.Nil(item.RosterID)
	}
}

// TestBulkAssignEmpty tests that a batch needs at least one guard
func (suite *RosterServiceTestSuite) TestBulkAssignEmpty() {
	_, err := suite.service.BulkAssign(suite.ctx, suite.bulkRequest(uuid.Nil))

	suite.ErrorIs(err, apperrors.ErrEmptyBatch)
}

// TestUpdateExcludesItself tests that the overlap check ignores the row being updated
func (suite *RosterServiceTestSuite) TestUpdateExcludesItself() {
	current := suite.existing("2024-03-01", "2024-03-31")
	current.SocietyID = suite.societyID
	current.ShiftID = suite.shiftID

	suite.rosterRepo.EXPECT().GetByID(gomock.Any(), current.ID).Return(&current, nil).Times(2)
	suite.expectSlot()
	suite.rosterRepo.EXPECT().FindOverlapping(gomock.Any(), []uuid.UUID{suite.guard.ID}, testutils.Date("2024-03-01"), testutils.Date("2024-03-15"), &current.ID).
		Return(nil, nil)
	suite.rosterRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	resp, err := suite.service.Update(suite.ctx, current.ID, &service.UpdateRosterRequest{EndDate: ptr("2024-03-15")})

	suite.Require().NoError(err)
	suite.Equal("2024-03-15", resp.EndDate)
}

// TestDeleteNotFound tests deleting a missing assignment
func (suite *RosterServiceTestSuite) TestDeleteNotFound() {
	suite.rosterRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(gorm.ErrRecordNotFound)

	suite.ErrorIs(suite.service.Delete(suite.ctx, uuid.New()), apperrors.ErrRosterAssignmentNotFound)
}

// TestListParsesActiveOn tests the filter mapping
func (suite *RosterServiceTestSuite) TestListParsesActiveOn() {
	day := testutils.Date("2024-03-15")
	suite.rosterRepo.EXPECT().
		List(gomock.Any(), repository.RosterFilter{SocietyID: &suite.societyID, ActiveOn: &day, Search: "pawar"}, 20, 0).
		Return(nil, int64(0), nil)

	page, err := suite.service.List(suite.ctx, &service.ListRostersRequest{
		PageRequest: service.PageRequest{PerPage: 500},
		SocietyID:   &suite.societyID,
		ActiveOn:    "2024-03-15",
		Search:      "pawar",
	})

	suite.Require().NoError(err)
	suite.NotNil(page.Items)
	suite.Equal(20, page.Pagination.PerPage)
	suite.Zero(page.Pagination.TotalPages)

	_, err = suite.service.List(suite.ctx, &service.ListRostersRequest{ActiveOn: "15-03-2024"})
	suite.True(apperrors.IsValidation(err))
}

// TestExportWritesWorkbook tests the xlsx export
func (suite *RosterServiceTestSuite) TestExportWritesWorkbook() {
	row := suite.existing("2024-03-01", "2024-03-10")
	row.Guard = suite.guard
	row.Society = &models.Society{Name: "Green Meadows"}
	row.Shift = &models.Shift{Name: "Day", StartTime: "08:00", EndTime: "20:00"}
	suite.rosterRepo.EXPECT().ListAll(gomock.Any(), gomock.Any()).Return([]models.RosterAssignment{row}, nil)

	data, err := suite.service.Export(suite.ctx, &service.ListRostersRequest{})
	suite.Require().NoError(err)

	rows, err := export.ReadRows(data, "Roster")
	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)
	suite.Equal("Guard", rows[0][0])
	suite.Equal("Mahesh Pawar", rows[1][0])
	suite.Equal("Green Meadows", rows[1][1])
	suite.Equal("10", rows[1][8])
}

// TestRosterServiceTestSuite runs the test suite
func TestRosterServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RosterServiceTestSuite))
}
