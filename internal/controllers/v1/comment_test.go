package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	v1 "github.com/teamplan/backend/internal/controllers/v1"
	"github.com/teamplan/backend/internal/types"
	"github.com/teamplan/backend/test"
)

func createTestComment(t *testing.T, c v1.CommentEditable, expectedStatus ...int) v1.CommentResponse {
	// Default to 200 OK as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusOK)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/comments", c)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.CommentResponse
	test.DecodeResponse(t, &r, &response)
	return response
}

// TestCommentsSetOverwrites verifies that a day note is overwritten when
// set again for the same person and day.
func (suite *TestSuiteStandard) TestCommentsSetOverwrites() {
	person := createTestPerson(suite.T(), v1.PersonEditable{})

	editable := v1.CommentEditable{
		PersonID: person.Data.ID,
		Date:     types.NewDate(2026, 3, 2),
		Text:     "Works from the Malmö office",
	}
	_ = createTestComment(suite.T(), editable)

	editable.Text = "On site with the customer"
	response := createTestComment(suite.T(), editable)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "On site with the customer", response.Data.Text)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/comments", "")
	var list v1.CommentListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	assert.Len(suite.T(), list.Data, 1)
}

// TestCommentsGetFilter verifies the query string filters of the comment list.
func (suite *TestSuiteStandard) TestCommentsGetFilter() {
	anna := createTestPerson(suite.T(), v1.PersonEditable{})
	bertil := createTestPerson(suite.T(), v1.PersonEditable{})

	for _, c := range []v1.CommentEditable{
		{PersonID: anna.Data.ID, Date: types.NewDate(2026, 3, 2), Text: "First"},
		{PersonID: anna.Data.ID, Date: types.NewDate(2026, 3, 9), Text: "Second"},
		{PersonID: bertil.Data.ID, Date: types.NewDate(2026, 3, 2), Text: "Third"},
	} {
		_ = createTestComment(suite.T(), c)
	}

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"No filter", "", 3},
		{"Person", fmt.Sprintf("person=%s", anna.Data.ID), 2},
		{"Range", "from=2026-03-01&until=2026-03-06", 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/comments?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.CommentListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, tt.len, len(response.Data))
		})
	}
}

// TestCommentsDelete verifies that comments are deleted by ID.
func (suite *TestSuiteStandard) TestCommentsDelete() {
	person := createTestPerson(suite.T(), v1.PersonEditable{})
	c := createTestComment(suite.T(), v1.CommentEditable{
		PersonID: person.Data.ID,
		Date:     types.NewDate(2026, 3, 2),
		Text:     "Short day",
	})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/comments/%s", c.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/comments", "")
	var list v1.CommentListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	assert.Empty(suite.T(), list.Data)
}
