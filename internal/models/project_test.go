package models_test

import (
	"github.com/stretchr/testify/assert"
	"github.com/teamplan/backend/internal/models"
)

func (suite *TestSuiteStandard) TestProjectDefaultColor() {
	project := suite.createTestProject(models.Project{})
	assert.Equal(suite.T(), "#3498db", project.Color)

	custom := suite.createTestProject(models.Project{Name: "Custom", Color: "#e74c3c"})
	assert.Equal(suite.T(), "#e74c3c", custom.Color)
}

func (suite *TestSuiteStandard) TestProjectNameNotUnique() {
	_ = suite.createTestProject(models.Project{Name: "Website"})

	err := models.DB.Create(&models.Project{Name: "Website"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrProjectNameNotUnique)
}

func (suite *TestSuiteStandard) TestProjectDeleteCascades() {
	t := suite.T()
	person := suite.createTestPerson(models.Person{})
	project := suite.createTestProject(models.Project{})

	_ = suite.createTestAllocation(models.Allocation{PersonID: person.ID, ProjectID: project.ID, Date: testDate(2026, 3, 2)})

	err := models.DB.Delete(&project).Error
	if err != nil {
		t.Fatalf("deleting project failed: %s", err)
	}

	var count int64
	err = models.DB.Model(&models.Allocation{}).Count(&count).Error
	if err != nil {
		t.Fatalf("counting failed: %s", err)
	}
	assert.Zero(t, count, "allocations were not cascaded")

	// The person is untouched
	err = models.DB.First(&models.Person{}, person.ID).Error
	assert.Nil(t, err)
}

func (suite *TestSuiteStandard) TestProjectDates() {
	start := testDate(2026, 1, 12)
	end := testDate(2026, 6, 30)

	project := suite.createTestProject(models.Project{Name: "Dated", StartDate: &start, EndDate: &end})

	var reread models.Project
	err := models.DB.First(&reread, project.ID).Error
	if err != nil {
		suite.T().Fatalf("re-reading project failed: %s", err)
	}

	assert.True(suite.T(), start.Equal(*reread.StartDate))
	assert.True(suite.T(), end.Equal(*reread.EndDate))
}
