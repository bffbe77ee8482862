package models_test

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/teamplan/backend/internal/models"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestAbsenceTypeValidation() {
	tests := []struct {
		absenceType models.AbsenceType
		err         error
	}{
		{models.AbsenceVacation, nil},
		{models.AbsenceSick, nil},
		{models.AbsenceChildcare, nil},
		{models.AbsenceUnpaid, nil},
		{models.AbsenceTraining, nil},
		{models.AbsenceOther, nil},
		{"SABBATICAL", models.ErrAbsenceTypeInvalid},
		{"", models.ErrAbsenceTypeInvalid},
	}

	for _, tt := range tests {
		a := models.Absence{Type: tt.absenceType}

		err := a.BeforeSave(&gorm.DB{})
		assert.Equal(suite.T(), tt.err, err, "wrong validation result for %q", tt.absenceType)
	}
}

func (suite *TestSuiteStandard) TestAbsenceUniquePerDay() {
	person := suite.createTestPerson(models.Person{})
	date := testDate(2026, 3, 2)

	_ = suite.createTestAbsence(models.Absence{PersonID: person.ID, Date: date, Type: models.AbsenceVacation})

	err := models.DB.Create(&models.Absence{PersonID: person.ID, Date: date, Type: models.AbsenceSick}).Error
	assert.NotNil(suite.T(), err, "two absences on the same day must not both be stored")

	// A second absence on another day is fine
	_ = suite.createTestAbsence(models.Absence{PersonID: person.ID, Date: date.AddDays(1), Type: models.AbsenceSick})
}

// Referencing a person that does not exist is a recoverable error value,
// not a general database error.
func (suite *TestSuiteStandard) TestAbsenceReferenceInvalid() {
	err := models.DB.Create(&models.Absence{PersonID: uuid.New(), Date: testDate(2026, 3, 2), Type: models.AbsenceSick}).Error
	assert.ErrorIs(suite.T(), err, models.ErrReferenceInvalid)
}

func (suite *TestSuiteStandard) TestCommentUniquePerDay() {
	person := suite.createTestPerson(models.Person{})
	date := testDate(2026, 3, 2)

	_ = suite.createTestComment(models.Comment{PersonID: person.ID, Date: date, Text: "on-site"})

	err := models.DB.Create(&models.Comment{PersonID: person.ID, Date: date, Text: "remote"}).Error
	assert.NotNil(suite.T(), err)
}
