//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"
	"time"

	"staffing-backoffice/internal/database/models"
	"staffing-backoffice/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// SiteVisitRepositoryTestSuite tests the SiteVisitRepository
type SiteVisitRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *SiteVisitRepository
	factories     *testutils.FactorySet
	ctx           context.Context

	supervisor *models.Employee
	society    *models.Society
}

func (suite *SiteVisitRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewSiteVisitRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

func (suite *SiteVisitRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *SiteVisitRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	db := suite.baseTestSuite.DB

	clientType := suite.factories.ClientType.Create()
	suite.Require().NoError(NewClientTypeRepository(db).Create(suite.ctx, clientType))
	suite.society = suite.factories.Society.Create(clientType.ID)
	suite.Require().NoError(NewSocietyRepository(db).Create(suite.ctx, suite.society))
	suite.supervisor = suite.factories.Employee.Supervisor("Prakash Rao")
	suite.Require().NoError(NewEmployeeRepository(db).Create(suite.ctx, suite.supervisor))
}

func (suite *SiteVisitRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *SiteVisitRepositoryTestSuite) TestSingleOpenVisitPerSupervisor() {
	now := time.Now().UTC()
	suite.Require().NoError(suite.repo.Create(suite.ctx, suite.factories.Visit.Open(suite.supervisor.ID, suite.society.ID, now)))

	err := suite.repo.Create(suite.ctx, suite.factories.Visit.Open(suite.supervisor.ID, suite.society.ID, now.Add(time.Minute)))

	constraint, unique := UniqueViolation(err)
	suite.True(unique)
	suite.Equal("idx_site_visits_one_open", constraint)
}

func (suite *SiteVisitRepositoryTestSuite) TestCloseVisit() {
	checkin := time.Date(2024, 3, 1, 4, 0, 0, 0, time.UTC)
	visit := suite.factories.Visit.Open(suite.supervisor.ID, suite.society.ID, checkin)
	suite.Require().NoError(suite.repo.Create(suite.ctx, visit))

	open, err := suite.repo.GetOpenBySupervisor(suite.ctx, suite.supervisor.ID)
	suite.Require().NoError(err)
	suite.Equal(visit.ID, open.ID)

	out := checkin.Add(95 * time.Minute)
	minutes := 95
	open.CheckoutAt = &out
	open.DurationMinutes = &minutes
	suite.Require().NoError(suite.repo.Close(suite.ctx, open))

	_, err = suite.repo.GetOpenBySupervisor(suite.ctx, suite.supervisor.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	closed, err := suite.repo.GetByID(suite.ctx, visit.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(closed.DurationMinutes)
	suite.Equal(95, *closed.DurationMinutes)

	suite.ErrorIs(suite.repo.Close(suite.ctx, open), gorm.ErrRecordNotFound)

	// A new visit may be opened once the previous one is closed
	suite.NoError(suite.repo.Create(suite.ctx, suite.factories.Visit.Open(suite.supervisor.ID, suite.society.ID, out)))
}

func (suite *SiteVisitRepositoryTestSuite) TestListInRangeIsHalfOpen() {
	start := time.Date(2024, 2, 29, 18, 30, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	for _, ts := range []time.Time{start.Add(-time.Minute), start, end.Add(-time.Minute), end} {
		suite.Require().NoError(suite.repo.Create(suite.ctx, suite.factories.Visit.Closed(suite.supervisor.ID, suite.society.ID, ts, 30*time.Second)))
	}

	visits, err := suite.repo.ListInRange(suite.ctx, suite.supervisor.ID, start, end)
	suite.NoError(err)
	suite.Len(visits, 2)

	page, total, err := suite.repo.ListInRangePaged(suite.ctx, suite.supervisor.ID, start, end, 1, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Require().Len(page, 1)
	suite.True(page[0].CheckinAt.Equal(end.Add(-time.Minute)))
}

func (suite *SiteVisitRepositoryTestSuite) TestListOpenOnly() {
	base := time.Date(2024, 3, 1, 4, 0, 0, 0, time.UTC)
	suite.Require().NoError(suite.repo.Create(suite.ctx, suite.factories.Visit.Closed(suite.supervisor.ID, suite.society.ID, base, time.Hour)))
	suite.Require().NoError(suite.repo.Create(suite.ctx, suite.factories.Visit.Open(suite.supervisor.ID, suite.society.ID, base.Add(2*time.Hour))))

	visits, total, err := suite.repo.List(suite.ctx, VisitFilter{SupervisorID: &suite.supervisor.ID, OpenOnly: true}, 20, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.True(visits[0].IsOpen())
	suite.Equal("Prakash Rao", visits[0].Supervisor.FullName)

	_, total, err = suite.repo.List(suite.ctx, VisitFilter{LocationID: &suite.society.ID}, 20, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
}

func TestSiteVisitRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SiteVisitRepositoryTestSuite))
}
