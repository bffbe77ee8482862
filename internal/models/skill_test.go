package models_test

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamplan/backend/internal/models"
)

func (suite *TestSuiteStandard) TestReplaceSkills() {
	t := suite.T()
	person := suite.createTestPerson(models.Person{})

	err := models.ReplaceSkills(person.ID, []string{"Go", "SQL", "Projektledning"})
	require.Nil(t, err)

	skills, err := models.Skills(person.ID)
	require.Nil(t, err)
	assert.Equal(t, []string{"Go", "Projektledning", "SQL"}, skills)

	// Replacement is wholesale, not a diff
	err = models.ReplaceSkills(person.ID, []string{"Kotlin"})
	require.Nil(t, err)

	skills, err = models.Skills(person.ID)
	require.Nil(t, err)
	assert.Equal(t, []string{"Kotlin"}, skills)
}

// Duplicate and empty tags are skipped without an error, and matching is
// case-sensitive.
func (suite *TestSuiteStandard) TestReplaceSkillsDuplicates() {
	t := suite.T()
	person := suite.createTestPerson(models.Person{})

	err := models.ReplaceSkills(person.ID, []string{"Go", "go", "Go", "", "  "})
	require.Nil(t, err)

	skills, err := models.Skills(person.ID)
	require.Nil(t, err)
	assert.Equal(t, []string{"Go", "go"}, skills)
}

func (suite *TestSuiteStandard) TestAllSkills() {
	t := suite.T()
	anna := suite.createTestPerson(models.Person{Name: "Anna"})
	bjorn := suite.createTestPerson(models.Person{Name: "Björn"})

	require.Nil(t, models.ReplaceSkills(anna.ID, []string{"Go", "SQL"}))
	require.Nil(t, models.ReplaceSkills(bjorn.ID, []string{"SQL", "React"}))

	skills, err := models.AllSkills()
	require.Nil(t, err)
	assert.Equal(t, []string{"Go", "React", "SQL"}, skills)
}
