package v1_test

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	v1 "github.com/teamplan/backend/internal/controllers/v1"
	"github.com/teamplan/backend/internal/types"
	"github.com/teamplan/backend/test"
)

// TestCleanup verifies that all resources are deleted.
func (suite *TestSuiteStandard) TestCleanup() {
	person := createTestPerson(suite.T(), v1.PersonEditable{Skills: []string{"go"}})
	project := createTestProject(suite.T(), v1.ProjectEditable{})

	_ = createTestAllocation(suite.T(), v1.AllocationEditable{
		PersonID:  person.Data.ID,
		ProjectID: project.Data.ID,
		Date:      types.NewDate(2026, 3, 2),
		Hours:     decimal.NewFromInt(8),
	})
	_ = createTestAbsence(suite.T(), v1.AbsenceEditable{
		PersonID: person.Data.ID,
		Date:     types.NewDate(2026, 3, 3),
	})
	_ = createTestComment(suite.T(), v1.CommentEditable{
		PersonID: person.Data.ID,
		Date:     types.NewDate(2026, 3, 2),
		Text:     "Short day",
	})

	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	for _, path := range []string{"persons", "projects", "allocations", "absences", "comments"} {
		r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/"+path, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

		var response struct {
			Data []any `json:"data"`
		}
		test.DecodeResponse(suite.T(), &r, &response)
		assert.Len(suite.T(), response.Data, 0, "Resources left in %s", path)
	}
}

// TestCleanupFails verifies that the confirmation parameter is required.
func (suite *TestSuiteStandard) TestCleanupFails() {
	tests := []struct {
		name string
		path string
	}{
		{"Without confirmation", "http://example.com/v1"},
		{"Wrong confirmation", "http://example.com/v1?confirm=on-second-thought-rather-not"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodDelete, tt.path, "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

// TestCleanupDBError verifies that database errors are reported.
func (suite *TestSuiteStandard) TestCleanupDBError() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
