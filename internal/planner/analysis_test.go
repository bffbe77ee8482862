package planner_test

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/teamplan/backend/internal/models"
	"github.com/teamplan/backend/internal/planner"
	"github.com/teamplan/backend/internal/types"
)

func (suite *TestSuiteStandard) TestFindOverloadedBoundary() {
	person := suite.createTestPerson(models.Person{Capacity: decimal.NewFromInt(8)})
	project := suite.createTestProject(models.Project{})

	// Exactly at capacity is not an overload, one hundredth above it is.
	suite.createTestAllocation(models.Allocation{
		PersonID:  person.ID,
		ProjectID: project.ID,
		Date:      testDate(2026, time.March, 2),
		Hours:     decimal.NewFromInt(8),
	})
	suite.createTestAllocation(models.Allocation{
		PersonID:  person.ID,
		ProjectID: project.ID,
		Date:      testDate(2026, time.March, 3),
		Hours:     decimal.NewFromFloat(8.01),
	})

	overloaded, err := planner.FindOverloaded(testDate(2026, time.March, 1), testDate(2026, time.March, 31))
	suite.Assert().Nil(err)
	suite.Require().Len(overloaded, 1)
	suite.Assert().Equal(testDate(2026, time.March, 3).String(), overloaded[0].Date.String())
	suite.Assert().True(overloaded[0].Overtime.Equal(decimal.NewFromFloat(0.01)), "Overtime is %s, expected 0.01", overloaded[0].Overtime)
}

func (suite *TestSuiteStandard) TestFindOverloadedSumsProjects() {
	person := suite.createTestPerson(models.Person{Capacity: decimal.NewFromInt(8)})
	first := suite.createTestProject(models.Project{Name: "First"})
	second := suite.createTestProject(models.Project{Name: "Second"})
	date := testDate(2026, time.March, 2)

	suite.createTestAllocation(models.Allocation{PersonID: person.ID, ProjectID: first.ID, Date: date, Hours: decimal.NewFromInt(6)})
	suite.createTestAllocation(models.Allocation{PersonID: person.ID, ProjectID: second.ID, Date: date, Hours: decimal.NewFromInt(4)})

	overloaded, err := planner.FindOverloaded(date, date)
	suite.Assert().Nil(err)
	suite.Require().Len(overloaded, 1)
	suite.Assert().True(overloaded[0].TotalHours.Equal(decimal.NewFromInt(10)))
	suite.Assert().True(overloaded[0].Overtime.Equal(decimal.NewFromInt(2)))
}

func (suite *TestSuiteStandard) TestFindOverloadedIgnoresArchived() {
	person := suite.createTestPerson(models.Person{Archived: true})
	project := suite.createTestProject(models.Project{})

	suite.createTestAllocation(models.Allocation{
		PersonID:  person.ID,
		ProjectID: project.ID,
		Date:      testDate(2026, time.March, 2),
		Hours:     decimal.NewFromInt(12),
	})

	overloaded, err := planner.FindOverloaded(testDate(2026, time.March, 1), testDate(2026, time.March, 31))
	suite.Assert().Nil(err)
	suite.Assert().Len(overloaded, 0)
}

func (suite *TestSuiteStandard) TestFindOverloadedOrder() {
	anna := suite.createTestPerson(models.Person{Name: "Anna"})
	bertil := suite.createTestPerson(models.Person{Name: "Bertil"})
	project := suite.createTestProject(models.Project{})

	suite.createTestAllocation(models.Allocation{PersonID: bertil.ID, ProjectID: project.ID, Date: testDate(2026, time.March, 2), Hours: decimal.NewFromInt(9)})
	suite.createTestAllocation(models.Allocation{PersonID: anna.ID, ProjectID: project.ID, Date: testDate(2026, time.March, 2), Hours: decimal.NewFromInt(9)})
	suite.createTestAllocation(models.Allocation{PersonID: anna.ID, ProjectID: project.ID, Date: testDate(2026, time.March, 1), Hours: decimal.NewFromInt(9)})

	overloaded, err := planner.FindOverloaded(testDate(2026, time.March, 1), testDate(2026, time.March, 31))
	suite.Assert().Nil(err)
	suite.Require().Len(overloaded, 3)
	suite.Assert().Equal("Anna", overloaded[0].PersonName)
	suite.Assert().Equal(testDate(2026, time.March, 1).String(), overloaded[0].Date.String())
	suite.Assert().Equal("Anna", overloaded[1].PersonName)
	suite.Assert().Equal("Bertil", overloaded[2].PersonName)
}

func (suite *TestSuiteStandard) TestFindUnallocated() {
	person := suite.createTestPerson(models.Person{})
	project := suite.createTestProject(models.Project{})

	workingDays := []types.Date{
		testDate(2026, time.March, 2),
		testDate(2026, time.March, 3),
		testDate(2026, time.March, 4),
	}

	suite.createTestAllocation(models.Allocation{
		PersonID:  person.ID,
		ProjectID: project.ID,
		Date:      testDate(2026, time.March, 2),
		Hours:     decimal.NewFromInt(8),
	})
	// An absence also counts as covered.
	suite.createTestAbsence(models.Absence{PersonID: person.ID, Date: testDate(2026, time.March, 3)})

	unallocated, err := planner.FindUnallocated(testDate(2026, time.March, 2), testDate(2026, time.March, 4), workingDays)
	suite.Assert().Nil(err)
	suite.Require().Len(unallocated, 1)
	suite.Assert().Equal(testDate(2026, time.March, 4).String(), unallocated[0].Date.String())
	suite.Assert().Equal(person.ID, unallocated[0].PersonID)
}

func (suite *TestSuiteStandard) TestFindUnallocatedIgnoresArchived() {
	suite.createTestPerson(models.Person{Archived: true})

	workingDays := []types.Date{testDate(2026, time.March, 2)}

	unallocated, err := planner.FindUnallocated(testDate(2026, time.March, 2), testDate(2026, time.March, 2), workingDays)
	suite.Assert().Nil(err)
	suite.Assert().Len(unallocated, 0)
}

func (suite *TestSuiteStandard) TestFindAvailable() {
	busy := suite.createTestPerson(models.Person{Name: "Busy"})
	free := suite.createTestPerson(models.Person{Name: "Free"})
	partial := suite.createTestPerson(models.Person{Name: "Partial"})
	away := suite.createTestPerson(models.Person{Name: "Away"})
	project := suite.createTestProject(models.Project{})
	date := testDate(2026, time.March, 2)

	suite.createTestAllocation(models.Allocation{PersonID: busy.ID, ProjectID: project.ID, Date: date, Hours: decimal.NewFromInt(8)})
	suite.createTestAllocation(models.Allocation{PersonID: partial.ID, ProjectID: project.ID, Date: date, Hours: decimal.NewFromInt(5)})
	suite.createTestAbsence(models.Absence{PersonID: away.ID, Date: date})

	available, err := planner.FindAvailable(date, "")
	suite.Assert().Nil(err)
	suite.Require().Len(available, 2)

	// Sorted by free capacity, most free first.
	suite.Assert().Equal(free.ID, available[0].PersonID)
	suite.Assert().Equal("Free", available[0].Name)
	suite.Assert().True(available[0].Free.Equal(decimal.NewFromInt(8)))
	suite.Assert().Equal("Partial", available[1].Name)
	suite.Assert().True(available[1].Free.Equal(decimal.NewFromInt(3)))
}

func (suite *TestSuiteStandard) TestFindAvailableSkillFilter() {
	golang := suite.createTestPerson(models.Person{Name: "Gopher"})
	python := suite.createTestPerson(models.Person{Name: "Pythonista"})

	suite.Assert().Nil(models.ReplaceSkills(golang.ID, []string{"go", "sql"}))
	suite.Assert().Nil(models.ReplaceSkills(python.ID, []string{"python"}))

	available, err := planner.FindAvailable(testDate(2026, time.March, 2), "go*")
	suite.Assert().Nil(err)
	suite.Require().Len(available, 1)
	suite.Assert().Equal("Gopher", available[0].Name)
	suite.Assert().Equal([]string{"go", "sql"}, available[0].Skills)
}
