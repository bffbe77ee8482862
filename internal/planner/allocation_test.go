package planner_test

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/teamplan/backend/internal/models"
	"github.com/teamplan/backend/internal/planner"
	"github.com/teamplan/backend/internal/types"
)

func (suite *TestSuiteStandard) TestSetAllocationCreates() {
	person := suite.createTestPerson(models.Person{})
	project := suite.createTestProject(models.Project{})
	date := testDate(2026, time.March, 2)

	err := planner.SetAllocation(person.ID, project.ID, date, decimal.NewFromFloat(6.5))
	suite.Assert().Nil(err)

	var allocation models.Allocation
	err = models.DB.Where(&models.Allocation{PersonID: person.ID, ProjectID: project.ID, Date: date}).First(&allocation).Error
	suite.Assert().Nil(err)
	suite.Assert().True(allocation.Hours.Equal(decimal.NewFromFloat(6.5)), "Hours are %s, expected 6.5", allocation.Hours)
}

func (suite *TestSuiteStandard) TestSetAllocationOverwrites() {
	person := suite.createTestPerson(models.Person{})
	project := suite.createTestProject(models.Project{})
	date := testDate(2026, time.March, 2)

	suite.Assert().Nil(planner.SetAllocation(person.ID, project.ID, date, decimal.NewFromInt(4)))
	suite.Assert().Nil(planner.SetAllocation(person.ID, project.ID, date, decimal.NewFromInt(7)))

	var allocations []models.Allocation
	suite.Assert().Nil(models.DB.Find(&allocations).Error)
	suite.Assert().Len(allocations, 1, "Overwriting a slot must not create a second row")
	suite.Assert().True(allocations[0].Hours.Equal(decimal.NewFromInt(7)))
}

func (suite *TestSuiteStandard) TestSetAllocationZeroDeletes() {
	person := suite.createTestPerson(models.Person{})
	project := suite.createTestProject(models.Project{})
	date := testDate(2026, time.March, 2)

	suite.Assert().Nil(planner.SetAllocation(person.ID, project.ID, date, decimal.NewFromInt(4)))
	suite.Assert().Nil(planner.SetAllocation(person.ID, project.ID, date, decimal.Zero))

	var allocation models.Allocation
	err := models.DB.Where(&models.Allocation{PersonID: person.ID, ProjectID: project.ID, Date: date}).First(&allocation).Error
	suite.Assert().True(errors.Is(err, models.ErrResourceNotFound), "Row must be gone after setting zero hours, got %v", err)
}

func (suite *TestSuiteStandard) TestSetAllocationNegativeDeletes() {
	person := suite.createTestPerson(models.Person{})
	project := suite.createTestProject(models.Project{})
	date := testDate(2026, time.March, 2)

	suite.Assert().Nil(planner.SetAllocation(person.ID, project.ID, date, decimal.NewFromInt(4)))
	suite.Assert().Nil(planner.SetAllocation(person.ID, project.ID, date, decimal.NewFromInt(-1)))

	var count int64
	suite.Assert().Nil(models.DB.Model(&models.Allocation{}).Count(&count).Error)
	suite.Assert().Equal(int64(0), count)
}

func (suite *TestSuiteStandard) TestSetAllocationDeleteMissingSlot() {
	person := suite.createTestPerson(models.Person{})
	project := suite.createTestProject(models.Project{})

	// Deleting a slot that never existed is not an error.
	err := planner.SetAllocation(person.ID, project.ID, testDate(2026, time.March, 2), decimal.Zero)
	suite.Assert().Nil(err)
}

func (suite *TestSuiteStandard) TestBulkAllocate() {
	person := suite.createTestPerson(models.Person{})
	project := suite.createTestProject(models.Project{})

	dates := []types.Date{
		testDate(2026, time.March, 2),
		testDate(2026, time.March, 3),
		testDate(2026, time.March, 4),
	}

	err := planner.BulkAllocate(person.ID, project.ID, dates, decimal.NewFromInt(8))
	suite.Assert().Nil(err)

	var count int64
	suite.Assert().Nil(models.DB.Model(&models.Allocation{}).Count(&count).Error)
	suite.Assert().Equal(int64(3), count)
}

func (suite *TestSuiteStandard) TestBulkAllocateZeroClears() {
	person := suite.createTestPerson(models.Person{})
	project := suite.createTestProject(models.Project{})

	dates := []types.Date{
		testDate(2026, time.March, 2),
		testDate(2026, time.March, 3),
	}

	suite.Assert().Nil(planner.BulkAllocate(person.ID, project.ID, dates, decimal.NewFromInt(8)))
	suite.Assert().Nil(planner.BulkAllocate(person.ID, project.ID, dates, decimal.Zero))

	var count int64
	suite.Assert().Nil(models.DB.Model(&models.Allocation{}).Count(&count).Error)
	suite.Assert().Equal(int64(0), count)
}

func (suite *TestSuiteStandard) TestCopyWeek() {
	person := suite.createTestPerson(models.Person{})
	project := suite.createTestProject(models.Project{})

	fromMonday := testDate(2026, time.March, 2)
	toMonday := testDate(2026, time.March, 9)

	suite.createTestAllocation(models.Allocation{
		PersonID:  person.ID,
		ProjectID: project.ID,
		Date:      fromMonday,
		Hours:     decimal.NewFromInt(8),
	})
	suite.createTestAllocation(models.Allocation{
		PersonID:  person.ID,
		ProjectID: project.ID,
		Date:      testDate(2026, time.March, 4),
		Hours:     decimal.NewFromInt(4),
	})

	// An unrelated slot in the destination week must stay untouched.
	other := suite.createTestProject(models.Project{Name: "Other"})
	suite.createTestAllocation(models.Allocation{
		PersonID:  person.ID,
		ProjectID: other.ID,
		Date:      testDate(2026, time.March, 10),
		Hours:     decimal.NewFromInt(3),
	})

	copied, err := planner.CopyWeek(person.ID, fromMonday, toMonday)
	suite.Assert().Nil(err)
	suite.Assert().Equal(2, copied)

	var monday models.Allocation
	suite.Assert().Nil(models.DB.Where(&models.Allocation{PersonID: person.ID, ProjectID: project.ID, Date: toMonday}).First(&monday).Error)
	suite.Assert().True(monday.Hours.Equal(decimal.NewFromInt(8)))

	var wednesday models.Allocation
	suite.Assert().Nil(models.DB.Where(&models.Allocation{PersonID: person.ID, ProjectID: project.ID, Date: testDate(2026, time.March, 11)}).First(&wednesday).Error)
	suite.Assert().True(wednesday.Hours.Equal(decimal.NewFromInt(4)))

	var untouched models.Allocation
	suite.Assert().Nil(models.DB.Where(&models.Allocation{PersonID: person.ID, ProjectID: other.ID, Date: testDate(2026, time.March, 10)}).First(&untouched).Error)
	suite.Assert().True(untouched.Hours.Equal(decimal.NewFromInt(3)))
}

func (suite *TestSuiteStandard) TestCopyWeekOverwritesDestination() {
	person := suite.createTestPerson(models.Person{})
	project := suite.createTestProject(models.Project{})

	fromMonday := testDate(2026, time.March, 2)
	toMonday := testDate(2026, time.March, 9)

	suite.createTestAllocation(models.Allocation{
		PersonID:  person.ID,
		ProjectID: project.ID,
		Date:      fromMonday,
		Hours:     decimal.NewFromInt(6),
	})
	suite.createTestAllocation(models.Allocation{
		PersonID:  person.ID,
		ProjectID: project.ID,
		Date:      toMonday,
		Hours:     decimal.NewFromInt(2),
	})

	copied, err := planner.CopyWeek(person.ID, fromMonday, toMonday)
	suite.Assert().Nil(err)
	suite.Assert().Equal(1, copied)

	var allocation models.Allocation
	suite.Assert().Nil(models.DB.Where(&models.Allocation{PersonID: person.ID, ProjectID: project.ID, Date: toMonday}).First(&allocation).Error)
	suite.Assert().True(allocation.Hours.Equal(decimal.NewFromInt(6)))
}

func (suite *TestSuiteStandard) TestCopyWeekEmptySource() {
	person := suite.createTestPerson(models.Person{})

	copied, err := planner.CopyWeek(person.ID, testDate(2026, time.March, 2), testDate(2026, time.March, 9))
	suite.Assert().Nil(err)
	suite.Assert().Equal(0, copied)
}

func (suite *TestSuiteStandard) TestDailyLoad() {
	person := suite.createTestPerson(models.Person{})
	first := suite.createTestProject(models.Project{Name: "First"})
	second := suite.createTestProject(models.Project{Name: "Second"})
	date := testDate(2026, time.March, 2)

	suite.createTestAllocation(models.Allocation{PersonID: person.ID, ProjectID: first.ID, Date: date, Hours: decimal.NewFromInt(5)})
	suite.createTestAllocation(models.Allocation{PersonID: person.ID, ProjectID: second.ID, Date: date, Hours: decimal.NewFromFloat(2.5)})

	// A different day must not count.
	suite.createTestAllocation(models.Allocation{PersonID: person.ID, ProjectID: first.ID, Date: testDate(2026, time.March, 3), Hours: decimal.NewFromInt(8)})

	load, err := planner.DailyLoad(person.ID, date)
	suite.Assert().Nil(err)
	suite.Assert().True(load.Equal(decimal.NewFromFloat(7.5)), "Load is %s, expected 7.5", load)
}

func (suite *TestSuiteStandard) TestDailyLoadEmpty() {
	person := suite.createTestPerson(models.Person{})

	load, err := planner.DailyLoad(person.ID, testDate(2026, time.March, 2))
	suite.Assert().Nil(err)
	suite.Assert().True(load.IsZero())
}
