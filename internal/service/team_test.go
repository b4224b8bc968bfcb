package service_test

import (
	"context"
	"errors"
	"testing"

	"staffing-backoffice/internal/database/models"
	apperrors "staffing-backoffice/internal/errors"
	"staffing-backoffice/internal/mocks"
	"staffing-backoffice/internal/repository"
	"staffing-backoffice/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// TeamServiceTestSuite defines the test suite for TeamService
type TeamServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	teamRepo     *mocks.MockTeamRepositoryInterface
	employeeRepo *mocks.MockEmployeeRepositoryInterface
	rosterRepo   *mocks.MockRosterRepositoryInterface
	service      *service.TeamService
	ctx          context.Context

	supervisor *models.Employee
	guard      *models.Employee
}

// SetupTest sets up the test suite
func (suite *TeamServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.teamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.employeeRepo = mocks.NewMockEmployeeRepositoryInterface(suite.ctrl)
	suite.rosterRepo = mocks.NewMockRosterRepositoryInterface(suite.ctrl)
	suite.service = service.NewTeamService(suite.teamRepo, suite.employeeRepo, suite.rosterRepo,
		passThroughTransactor(suite.ctrl), quietRecorder(suite.ctrl), service.NewValidator())
	suite.ctx = context.Background()

	suite.supervisor = employee("Suresh Patil", models.EmployeeRoleSupervisor, true)
	suite.guard = employee("Ramesh Yadav", models.EmployeeRoleGuard, true)
}

// TearDownTest cleans up after each test
func (suite *TeamServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamServiceTestSuite) request() *service.TeamRequest {
	return &service.TeamRequest{
		Name:         "Night Watch",
		SupervisorID: suite.supervisor.ID,
		MemberIDs:    []uuid.UUID{suite.guard.ID, suite.guard.ID},
	}
}

// expectChecksPass primes the lookups made before any write
func (suite *TeamServiceTestSuite) expectChecksPass() {
	suite.employeeRepo.EXPECT().GetByID(gomock.Any(), suite.supervisor.ID).Return(suite.supervisor, nil)
	suite.employeeRepo.EXPECT().GetByIDs(gomock.Any(), []uuid.UUID{suite.guard.ID}).Return([]models.Employee{*suite.guard}, nil)
	suite.teamRepo.EXPECT().GetByName(gomock.Any(), "Night Watch").Return(nil, gorm.ErrRecordNotFound)
	suite.teamRepo.EXPECT().GetSupervisedTeam(gomock.Any(), suite.supervisor.ID).Return(nil, gorm.ErrRecordNotFound)
	suite.teamRepo.EXPECT().GetMemberships(gomock.Any(), []uuid.UUID{suite.guard.ID}, models.MembershipRoleMember).Return(nil, nil)
}

func (suite *TeamServiceTestSuite) storedTeam(id uuid.UUID) *models.Team {
	team := &models.Team{Name: "Night Watch"}
	team.ID = id
	team.Memberships = []models.TeamMembership{
		{EmployeeID: suite.supervisor.ID, Role: models.MembershipRoleSupervisor, Employee: suite.supervisor},
		{EmployeeID: suite.guard.ID, Role: models.MembershipRoleMember, Employee: suite.guard},
	}
	return team
}

// TestCreateWritesTeamAndMemberships tests the happy path and member deduplication
func (suite *TeamServiceTestSuite) TestCreateWritesTeamAndMemberships() {
	suite.expectChecksPass()
	teamID := uuid.New()

	suite.teamRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, team *models.Team) error {
		team.ID = teamID
		return nil
	})
	suite.teamRepo.EXPECT().ReplaceMemberships(gomock.Any(), teamID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, rows []models.TeamMembership) error {
			suite.Require().Len(rows, 2)
			suite.Equal(suite.supervisor.ID, rows[0].EmployeeID)
			suite.Equal(models.MembershipRoleSupervisor, rows[0].Role)
			suite.Equal(suite.guard.ID, rows[1].EmployeeID)
			suite.Equal(models.MembershipRoleMember, rows[1].Role)
			return nil
		})
	suite.teamRepo.EXPECT().GetByID(gomock.Any(), teamID).Return(suite.storedTeam(teamID), nil)

	resp, err := suite.service.Create(suite.ctx, suite.request())

	suite.Require().NoError(err)
	suite.Equal("Night Watch", resp.Name)
	suite.Require().NotNil(resp.Supervisor)
	suite.Equal("Suresh Patil", resp.Supervisor.FullName)
	suite.Equal(1, resp.MemberCount)
}

// TestCreateValidation tests request validation before any lookup
func (suite *TeamServiceTestSuite) TestCreateValidation() {
	testCases := []struct {
		name     string
		mutate   func(r *service.TeamRequest)
		field    string
		sentinel error
	}{
		{name: "empty name", mutate: func(r *service.TeamRequest) { r.Name = "" }, field: "name"},
		{name: "whitespace name", mutate: func(r *service.TeamRequest) { r.Name = "   " }, field: "name"},
		{name: "missing supervisor", mutate: func(r *service.TeamRequest) { r.SupervisorID = uuid.Nil }, field: "supervisor_id"},
		{
			name:     "supervisor listed as member",
			mutate:   func(r *service.TeamRequest) { r.MemberIDs = append(r.MemberIDs, r.SupervisorID) },
			sentinel: apperrors.ErrSupervisorListedTwice,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			req := suite.request()
			tc.mutate(req)

			_, err := suite.service.Create(suite.ctx, req)

			suite.Require().Error(err)
			suite.True(apperrors.IsValidation(err))
			if tc.sentinel != nil {
				suite.ErrorIs(err, tc.sentinel)
			}
			var verr *apperrors.ValidationError
			if tc.field != "" && errors.As(err, &verr) {
				suite.Equal(tc.field, verr.Field)
			}
		})
	}
}

// TestCreateRejectsNonSupervisor tests the supervisor role check
func (suite *TeamServiceTestSuite) TestCreateRejectsNonSupervisor() {
	req := suite.request()
	req.SupervisorID = suite.guard.ID
	req.MemberIDs = nil
	suite.employeeRepo.EXPECT().GetByID(gomock.Any(), suite.guard.ID).Return(suite.guard, nil)

	_, err := suite.service.Create(suite.ctx, req)

	suite.ErrorIs(err, apperrors.ErrNotASupervisor)
}

// TestCreateRejectsSupervisorAsMember tests that members must be guard-type employees
func (suite *TeamServiceTestSuite) TestCreateRejectsSupervisorAsMember() {
	other := employee("Kavita Shinde", models.EmployeeRoleSupervisor, true)
	req := suite.request()
	req.MemberIDs = []uuid.UUID{suite.guard.ID, other.ID}
	suite.employeeRepo.EXPECT().GetByID(gomock.Any(), suite.supervisor.ID).Return(suite.supervisor, nil)
	suite.employeeRepo.EXPECT().GetByIDs(gomock.Any(), req.MemberIDs).Return([]models.Employee{*suite.guard, *other}, nil)

	_, err := suite.service.Create(suite.ctx, req)

	suite.ErrorIs(err, apperrors.ErrMemberIsSupervisor)
	suite.True(apperrors.IsValidation(err))
	suite.Contains(err.Error(), "Kavita Shinde")
}

// TestCreateSupervisorNotFound tests a missing supervisor
func (suite *TeamServiceTestSuite) TestCreateSupervisorNotFound() {
	suite.employeeRepo.EXPECT().GetByID(gomock.Any(), suite.supervisor.ID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Create(suite.ctx, suite.request())

	suite.ErrorIs(err, apperrors.ErrSupervisorNotFound)
}

// TestCreateNameTaken tests the duplicate name check
func (suite *TeamServiceTestSuite) TestCreateNameTaken() {
	suite.employeeRepo.EXPECT().GetByID(gomock.Any(), suite.supervisor.ID).Return(suite.supervisor, nil)
	suite.employeeRepo.EXPECT().GetByIDs(gomock.Any(), gomock.Any()).Return([]models.Employee{*suite.guard}, nil)
	suite.teamRepo.EXPECT().GetByName(gomock.Any(), "Night Watch").Return(suite.storedTeam(uuid.New()), nil)

	_, err := suite.service.Create(suite.ctx, suite.request())

	suite.ErrorIs(err, apperrors.ErrTeamExists)
	suite.True(apperrors.IsAlreadyExists(err))
}

// TestCreateSupervisorLeadsAnotherTeam tests that a supervisor leads one team
func (suite *TeamServiceTestSuite) TestCreateSupervisorLeadsAnotherTeam() {
	suite.employeeRepo.EXPECT().GetByID(gomock.Any(), suite.supervisor.ID).Return(suite.supervisor, nil)
	suite.employeeRepo.EXPECT().GetByIDs(gomock.Any(), gomock.Any()).Return([]models.Employee{*suite.guard}, nil)
	suite.teamRepo.EXPECT().GetByName(gomock.Any(), gomock.Any()).Return(nil, gorm.ErrRecordNotFound)
	suite.teamRepo.EXPECT().GetSupervisedTeam(gomock.Any(), suite.supervisor.ID).
		Return(&models.TeamMembership{TeamID: uuid.New(), Team: &models.Team{Name: "Day Patrol"}}, nil)

	_, err := suite.service.Create(suite.ctx, suite.request())

	suite.ErrorIs(err, apperrors.ErrSupervisorAlreadyAssigned)
	suite.Contains(err.Error(), "Day Patrol")
}

// TestCreateMemberOnAnotherTeam tests that a guard belongs to one team
func (suite *TeamServiceTestSuite) TestCreateMemberOnAnotherTeam() {
	suite.employeeRepo.EXPECT().GetByID(gomock.Any(), suite.supervisor.ID).Return(suite.supervisor, nil)
	suite.employeeRepo.EXPECT().GetByIDs(gomock.Any(), gomock.Any()).Return([]models.Employee{*suite.guard}, nil)
	suite.teamRepo.EXPECT().GetByName(gomock.Any(), gomock.Any()).Return(nil, gorm.ErrRecordNotFound)
	suite.teamRepo.EXPECT().GetSupervisedTeam(gomock.Any(), gomock.Any()).Return(nil, gorm.ErrRecordNotFound)
	suite.teamRepo.EXPECT().GetMemberships(gomock.Any(), gomock.Any(), models.MembershipRoleMember).
		Return([]models.TeamMembership{{TeamID: uuid.New(), EmployeeID: suite.guard.ID}}, nil)

	_, err := suite.service.Create(suite.ctx, suite.request())

	suite.ErrorIs(err, apperrors.ErrMemberOnAnotherTeam)
}

// TestCreateUnknownMember tests that every member id must exist
func (suite *TeamServiceTestSuite) TestCreateUnknownMember() {
	suite.employeeRepo.EXPECT().GetByID(gomock.Any(), suite.supervisor.ID).Return(suite.supervisor, nil)
	suite.employeeRepo.EXPECT().GetByIDs(gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := suite.service.Create(suite.ctx, suite.request())

	suite.ErrorIs(err, apperrors.ErrEmployeeNotFound)
}

// TestUpdateKeepsOwnNameAndSupervisor tests that the team's own rows do not conflict
func (suite *TeamServiceTestSuite) TestUpdateKeepsOwnNameAndSupervisor() {
	teamID := uuid.New()
	current := suite.storedTeam(teamID)

	suite.teamRepo.EXPECT().GetByID(gomock.Any(), teamID).Return(current, nil).Times(2)
	suite.employeeRepo.EXPECT().GetByID(gomock.Any(), suite.supervisor.ID).Return(suite.supervisor, nil)
	suite.employeeRepo.EXPECT().GetByIDs(gomock.Any(), gomock.Any()).Return([]models.Employee{*suite.guard}, nil)
	suite.teamRepo.EXPECT().GetByName(gomock.Any(), "Night Watch").Return(current, nil)
	suite.teamRepo.EXPECT().GetSupervisedTeam(gomock.Any(), suite.supervisor.ID).Return(&models.TeamMembership{TeamID: teamID}, nil)
	suite.teamRepo.EXPECT().GetMemberships(gomock.Any(), gomock.Any(), models.MembershipRoleMember).
		Return([]models.TeamMembership{{TeamID: teamID, EmployeeID: suite.guard.ID}}, nil)
	suite.teamRepo.EXPECT().Update(gomock.Any(), current).Return(nil)
	suite.teamRepo.EXPECT().ReplaceMemberships(gomock.Any(), teamID, gomock.Len(2)).Return(nil)

	resp, err := suite.service.Update(suite.ctx, teamID, suite.request())

	suite.Require().NoError(err)
	suite.Equal(teamID, resp.ID)
}

// TestUpdateNotFound tests updating a missing team
func (suite *TeamServiceTestSuite) TestUpdateNotFound() {
	suite.teamRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Update(suite.ctx, uuid.New(), suite.request())

	suite.ErrorIs(err, apperrors.ErrTeamNotFound)
}

// TestCreateInfrastructureFailure tests that storage errors are not reported as business errors
func (suite *TeamServiceTestSuite) TestCreateInfrastructureFailure() {
	suite.expectChecksPass()
	suite.teamRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	suite.teamRepo.EXPECT().ReplaceMemberships(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

	_, err := suite.service.Create(suite.ctx, suite.request())

	suite.Error(err)
	suite.False(apperrors.IsBusiness(err))
}

// TestDeleteDetachesRostersFirst tests the delete order inside the transaction
func (suite *TeamServiceTestSuite) TestDeleteDetachesRostersFirst() {
	teamID := uuid.New()
	gomock.InOrder(
		suite.rosterRepo.EXPECT().DetachTeam(gomock.Any(), teamID).Return(nil),
		suite.teamRepo.EXPECT().Delete(gomock.Any(), teamID).Return(nil),
	)

	suite.NoError(suite.service.Delete(suite.ctx, teamID))
}

// TestDeleteNotFound tests deleting a missing team
func (suite *TeamServiceTestSuite) TestDeleteNotFound() {
	suite.rosterRepo.EXPECT().DetachTeam(gomock.Any(), gomock.Any()).Return(nil)
	suite.teamRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(gorm.ErrRecordNotFound)

	err := suite.service.Delete(suite.ctx, uuid.New())

	suite.ErrorIs(err, apperrors.ErrTeamNotFound)
}

// TestListPaginationAndSize tests paging and the size filter
func (suite *TeamServiceTestSuite) TestListPaginationAndSize() {
	suite.teamRepo.EXPECT().
		List(gomock.Any(), repository.TeamFilter{Search: "watch", Size: repository.TeamSizeSmall}, 2, 2).
		Return([]models.Team{*suite.storedTeam(uuid.New())}, int64(5), nil)

	page, err := suite.service.List(suite.ctx, &service.ListTeamsRequest{
		PageRequest: service.PageRequest{Page: 2, PerPage: 2},
		Search:      "watch",
		Size:        repository.TeamSizeSmall,
	})

	suite.Require().NoError(err)
	suite.Len(page.Items, 1)
	suite.Equal(3, page.Pagination.TotalPages)
	suite.Equal(2, page.Pagination.CurrentPage)
	suite.Equal(int64(5), page.Pagination.TotalItems)
}

// TestListRejectsUnknownSize tests the size bucket validation
func (suite *TeamServiceTestSuite) TestListRejectsUnknownSize() {
	_, err := suite.service.List(suite.ctx, &service.ListTeamsRequest{Size: "huge"})

	suite.True(apperrors.IsValidation(err))
}

// TestTeamServiceTestSuite runs the test suite
func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}
