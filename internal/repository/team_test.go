//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"staffing-backoffice/internal/database/models"
	"staffing-backoffice/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamRepositoryTestSuite tests the TeamRepository
type TeamRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamRepository
	employees     *EmployeeRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *TeamRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.employees = NewEmployeeRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *TeamRepositoryTestSuite) createEmployee(e *models.Employee) *models.Employee {
	suite.Require().NoError(suite.employees.Create(suite.ctx, e))
	return e
}

// createTeam stores a team with a supervisor and n members
func (suite *TeamRepositoryTestSuite) createTeam(name, supervisorName string, n int) *models.Team {
	team := suite.factories.Team.WithName(name)
	suite.Require().NoError(suite.repo.Create(suite.ctx, team))

	sup := suite.createEmployee(suite.factories.Employee.Supervisor(supervisorName))
	memberships := []models.TeamMembership{
		suite.factories.Team.Membership(team.ID, sup.ID, models.MembershipRoleSupervisor),
	}
	for i := 0; i < n; i++ {
		g := suite.createEmployee(suite.factories.Employee.Create())
		memberships = append(memberships, suite.factories.Team.Membership(team.ID, g.ID, models.MembershipRoleMember))
	}
	suite.Require().NoError(suite.repo.ReplaceMemberships(suite.ctx, team.ID, memberships))
	return team
}

// TestCreate tests creating a new team
func (suite *TeamRepositoryTestSuite) TestCreate() {
	team := suite.factories.Team.Create()

	err := suite.repo.Create(suite.ctx, team)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, team.ID)
	suite.NotZero(team.CreatedAt)
}

// TestCreateDuplicateName tests the unique team name index
func (suite *TeamRepositoryTestSuite) TestCreateDuplicateName() {
	suite.Require().NoError(suite.repo.Create(suite.ctx, suite.factories.Team.WithName("Alpha")))

	err := suite.repo.Create(suite.ctx, suite.factories.Team.WithName("Alpha"))

	suite.Error(err)
	_, unique := UniqueViolation(err)
	suite.True(unique)
}

// TestGetByIDLoadsMemberships tests that memberships and employees are preloaded
func (suite *TeamRepositoryTestSuite) TestGetByIDLoadsMemberships() {
	team := suite.createTeam("Alpha", "Suresh Patil", 2)

	found, err := suite.repo.GetByID(suite.ctx, team.ID)

	suite.Require().NoError(err)
	suite.Len(found.Memberships, 3)
	suite.Require().NotNil(found.Supervisor())
	suite.Equal("Suresh Patil", found.Supervisor().Employee.FullName)
	suite.Len(found.Members(), 2)
}

// TestGetByIDNotFound tests retrieving a missing team
func (suite *TeamRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(suite.ctx, uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestOneSupervisorPerTeam tests the partial unique index on team supervisors
func (suite *TeamRepositoryTestSuite) TestOneSupervisorPerTeam() {
	team := suite.factories.Team.Create()
	suite.Require().NoError(suite.repo.Create(suite.ctx, team))
	a := suite.createEmployee(suite.factories.Employee.Supervisor("A"))
	b := suite.createEmployee(suite.factories.Employee.Supervisor("B"))

	err := suite.repo.ReplaceMemberships(suite.ctx, team.ID, []models.TeamMembership{
		suite.factories.Team.Membership(team.ID, a.ID, models.MembershipRoleSupervisor),
		suite.factories.Team.Membership(team.ID, b.ID, models.MembershipRoleSupervisor),
	})

	suite.Error(err)
	constraint, unique := UniqueViolation(err)
	suite.True(unique)
	suite.Equal("idx_team_memberships_one_supervisor", constraint)
}

// TestMemberOfOneTeam tests that an employee holds one non-supervisor membership
func (suite *TeamRepositoryTestSuite) TestMemberOfOneTeam() {
	first := suite.createTeam("Alpha", "A", 0)
	second := suite.createTeam("Bravo", "B", 0)
	guard := suite.createEmployee(suite.factories.Employee.Create())

	suite.Require().NoError(suite.repo.ReplaceMemberships(suite.ctx, first.ID, []models.TeamMembership{
		suite.factories.Team.Membership(first.ID, guard.ID, models.MembershipRoleMember),
	}))
	err := suite.repo.ReplaceMemberships(suite.ctx, second.ID, []models.TeamMembership{
		suite.factories.Team.Membership(second.ID, guard.ID, models.MembershipRoleMember),
	})

	constraint, unique := UniqueViolation(err)
	suite.True(unique)
	suite.Equal("idx_team_memberships_member_of_one", constraint)
}

// TestListSearch tests searching by team name and by supervisor name
func (suite *TeamRepositoryTestSuite) TestListSearch() {
	suite.createTeam("Night Watch", "Vikram Singh", 1)
	suite.createTeam("Day Patrol", "Anil Joshi", 1)

	byName, total, err := suite.repo.List(suite.ctx, TeamFilter{Search: "night"}, 20, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal("Night Watch", byName[0].Name)

	bySupervisor, total, err := suite.repo.List(suite.ctx, TeamFilter{Search: "joshi"}, 20, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal("Day Patrol", bySupervisor[0].Name)

	// wildcards in the search text match literally
	suite.createTeam("Gate_3 100%", "Ravi Kale", 1)
	for search, want := range map[string]int64{"%": 1, "_": 1, "e_3": 1, "100%": 1, "t%w": 0} {
		_, total, err := suite.repo.List(suite.ctx, TeamFilter{Search: search}, 20, 0)
		suite.NoError(err)
		suite.Equal(want, total, search)
	}
}

// TestListSizeBuckets tests filtering by member count
func (suite *TeamRepositoryTestSuite) TestListSizeBuckets() {
	suite.createTeam("Empty", "S0", 0)
	suite.createTeam("Small", "S1", 3)
	suite.createTeam("Medium", "S2", 4)
	suite.createTeam("Large", "S3", 11)

	cases := map[TeamSize]string{
		TeamSizeSmall:  "Small",
		TeamSizeMedium: "Medium",
		TeamSizeLarge:  "Large",
	}
	for size, name := range cases {
		teams, total, err := suite.repo.List(suite.ctx, TeamFilter{Size: size}, 20, 0)
		suite.NoError(err)
		suite.Equal(int64(1), total, string(size))
		suite.Equal(name, teams[0].Name)
	}

	_, total, err := suite.repo.List(suite.ctx, TeamFilter{}, 20, 0)
	suite.NoError(err)
	suite.Equal(int64(4), total)
}

// TestListPagination tests page boundaries
func (suite *TeamRepositoryTestSuite) TestListPagination() {
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		suite.Require().NoError(suite.repo.Create(suite.ctx, suite.factories.Team.WithName(name)))
	}

	page, total, err := suite.repo.List(suite.ctx, TeamFilter{}, 2, 2)

	suite.NoError(err)
	suite.Equal(int64(5), total)
	suite.Require().Len(page, 2)
	suite.Equal("C", page[0].Name)
	suite.Equal("D", page[1].Name)
}

// TestDeleteKeepsEmployees tests that deleting a team removes memberships only
func (suite *TeamRepositoryTestSuite) TestDeleteKeepsEmployees() {
	team := suite.createTeam("Alpha", "A", 2)

	suite.Require().NoError(suite.repo.Delete(suite.ctx, team.ID))

	var memberships int64
	suite.baseTestSuite.DB.Model(&models.TeamMembership{}).Where("team_id = ?", team.ID).Count(&memberships)
	suite.Zero(memberships)

	var employees int64
	suite.baseTestSuite.DB.Model(&models.Employee{}).Count(&employees)
	suite.Equal(int64(3), employees)

	suite.ErrorIs(suite.repo.Delete(suite.ctx, team.ID), gorm.ErrRecordNotFound)
}

// TestGetMemberships tests membership lookups by employee
func (suite *TeamRepositoryTestSuite) TestGetMemberships() {
	team := suite.createTeam("Alpha", "A", 1)
	loaded, err := suite.repo.GetByID(suite.ctx, team.ID)
	suite.Require().NoError(err)

	sup, err := suite.repo.GetSupervisedTeam(suite.ctx, loaded.Supervisor().EmployeeID)
	suite.NoError(err)
	suite.Equal(team.ID, sup.TeamID)

	memberID := loaded.Members()[0].EmployeeID
	memberships, err := suite.repo.GetMemberships(suite.ctx, []uuid.UUID{memberID, uuid.New()}, models.MembershipRoleMember)
	suite.NoError(err)
	suite.Require().Len(memberships, 1)
	suite.Equal("Alpha", memberships[0].Team.Name)
}

// TestTransactorRollsBack tests that a failed transaction writes nothing
func (suite *TeamRepositoryTestSuite) TestTransactorRollsBack() {
	tx := NewTransactor(suite.baseTestSuite.DB)
	team := suite.factories.Team.WithName("Rollback")

	err := tx.WithinTransaction(suite.ctx, func(ctx context.Context) error {
		if err := suite.repo.Create(ctx, team); err != nil {
			return err
		}
		return suite.repo.Create(ctx, suite.factories.Team.WithName("Rollback"))
	})

	suite.Error(err)
	_, err = suite.repo.GetByName(suite.ctx, "Rollback")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestTeamRepositoryTestSuite runs the test suite
func TestTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamRepositoryTestSuite))
}
