package planner_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/teamplan/backend/internal/models"
	"github.com/teamplan/backend/internal/planner"
	"github.com/teamplan/backend/internal/types"
)

func (suite *TestSuiteStandard) TestOccupancy() {
	person := suite.createTestPerson(models.Person{Capacity: decimal.NewFromInt(8)})
	project := suite.createTestProject(models.Project{})

	// Monday and Tuesday of a regular five day week.
	suite.createTestAllocation(models.Allocation{PersonID: person.ID, ProjectID: project.ID, Date: testDate(2026, time.March, 2), Hours: decimal.NewFromInt(8)})
	suite.createTestAllocation(models.Allocation{PersonID: person.ID, ProjectID: project.ID, Date: testDate(2026, time.March, 3), Hours: decimal.NewFromInt(8)})

	buckets, err := planner.Occupancy(person.ID, testDate(2026, time.March, 2), testDate(2026, time.March, 8))
	suite.Assert().Nil(err)
	suite.Require().Len(buckets, 1)

	suite.Assert().Equal(2026, buckets[0].Year)
	suite.Assert().Equal(10, buckets[0].Week)
	suite.Assert().Equal(5, buckets[0].WorkingDays)
	suite.Assert().True(buckets[0].Allocated.Equal(decimal.NewFromInt(16)))
	suite.Assert().True(buckets[0].Occupancy.Equal(decimal.NewFromInt(40)), "Occupancy is %s, expected 40", buckets[0].Occupancy)
}

func (suite *TestSuiteStandard) TestOccupancyMultiWeek() {
	person := suite.createTestPerson(models.Person{Capacity: decimal.NewFromInt(8)})
	project := suite.createTestProject(models.Project{})

	suite.createTestAllocation(models.Allocation{PersonID: person.ID, ProjectID: project.ID, Date: testDate(2026, time.March, 9), Hours: decimal.NewFromInt(4)})

	buckets, err := planner.Occupancy(person.ID, testDate(2026, time.March, 2), testDate(2026, time.March, 15))
	suite.Assert().Nil(err)
	suite.Require().Len(buckets, 2)

	suite.Assert().Equal(10, buckets[0].Week)
	suite.Assert().True(buckets[0].Occupancy.IsZero())
	suite.Assert().Equal(11, buckets[1].Week)
	suite.Assert().True(buckets[1].Allocated.Equal(decimal.NewFromInt(4)))
	suite.Assert().True(buckets[1].Occupancy.Equal(decimal.NewFromInt(10)))
}

func (suite *TestSuiteStandard) TestOccupancyNoWorkingDays() {
	person := suite.createTestPerson(models.Person{})
	project := suite.createTestProject(models.Project{})

	// Saturday allocation in a weekend-only range.
	suite.createTestAllocation(models.Allocation{PersonID: person.ID, ProjectID: project.ID, Date: testDate(2026, time.March, 7), Hours: decimal.NewFromInt(4)})

	buckets, err := planner.Occupancy(person.ID, testDate(2026, time.March, 7), testDate(2026, time.March, 8))
	suite.Assert().Nil(err)
	suite.Require().Len(buckets, 1)

	suite.Assert().Equal(0, buckets[0].WorkingDays)
	suite.Assert().True(buckets[0].Allocated.Equal(decimal.NewFromInt(4)))
	suite.Assert().True(buckets[0].Occupancy.IsZero(), "Occupancy without working days must be zero")
}

func (suite *TestSuiteStandard) TestOccupancyInvertedRange() {
	person := suite.createTestPerson(models.Person{})

	buckets, err := planner.Occupancy(person.ID, testDate(2026, time.March, 8), testDate(2026, time.March, 2))
	suite.Assert().Nil(err)
	suite.Assert().Len(buckets, 0)
}

func (suite *TestSuiteStandard) TestOccupancyUnknownPerson() {
	_, err := planner.Occupancy(uuid.New(), testDate(2026, time.March, 2), testDate(2026, time.March, 8))
	suite.Assert().NotNil(err)
}

func (suite *TestSuiteStandard) TestTeamOverview() {
	person := suite.createTestPerson(models.Person{Name: "Anna"})
	website := suite.createTestProject(models.Project{Name: "Website"})
	backend := suite.createTestProject(models.Project{Name: "Backend"})

	workingDays := []types.Date{
		testDate(2026, time.March, 2),
		testDate(2026, time.March, 3),
		testDate(2026, time.March, 4),
	}

	// Absence on a day that also has allocations: the absence wins.
	suite.createTestAbsence(models.Absence{PersonID: person.ID, Date: testDate(2026, time.March, 2), Type: models.AbsenceSick})
	suite.createTestAllocation(models.Allocation{PersonID: person.ID, ProjectID: website.ID, Date: testDate(2026, time.March, 2), Hours: decimal.NewFromInt(8)})

	suite.createTestAllocation(models.Allocation{PersonID: person.ID, ProjectID: website.ID, Date: testDate(2026, time.March, 3), Hours: decimal.NewFromInt(5)})
	suite.createTestAllocation(models.Allocation{PersonID: person.ID, ProjectID: backend.ID, Date: testDate(2026, time.March, 3), Hours: decimal.NewFromInt(3)})

	overview, err := planner.TeamOverview(testDate(2026, time.March, 2), testDate(2026, time.March, 4), workingDays)
	suite.Assert().Nil(err)
	suite.Require().Len(overview, 1)
	suite.Assert().Equal("Anna", overview[0].Name)
	suite.Require().Len(overview[0].Days, 3)

	monday := overview[0].Days[0]
	suite.Assert().Equal(planner.StateAbsent, monday.State)
	suite.Assert().Equal(models.AbsenceSick, monday.AbsenceType)
	suite.Assert().Len(monday.Projects, 0)

	tuesday := overview[0].Days[1]
	suite.Assert().Equal(planner.StateAllocated, tuesday.State)
	suite.Require().Len(tuesday.Projects, 2)
	suite.Assert().True(tuesday.Total.Equal(decimal.NewFromInt(8)))
	suite.Assert().Equal("Website", tuesday.Projects[0].ProjectName)

	wednesday := overview[0].Days[2]
	suite.Assert().Equal(planner.StateFree, wednesday.State)
	suite.Assert().True(wednesday.Total.IsZero())
}

func (suite *TestSuiteStandard) TestTeamOverviewSkipsArchived() {
	suite.createTestPerson(models.Person{Name: "Gone", Archived: true})
	active := suite.createTestPerson(models.Person{Name: "Here"})

	overview, err := planner.TeamOverview(testDate(2026, time.March, 2), testDate(2026, time.March, 2), []types.Date{testDate(2026, time.March, 2)})
	suite.Assert().Nil(err)
	suite.Require().Len(overview, 1)
	suite.Assert().Equal(active.ID, overview[0].PersonID)
}
