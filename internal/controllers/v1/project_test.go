package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	v1 "github.com/teamplan/backend/internal/controllers/v1"
	"github.com/teamplan/backend/internal/types"
	"github.com/teamplan/backend/test"
)

func createTestProject(t *testing.T, p v1.ProjectEditable, expectedStatus ...int) v1.ProjectResponse {
	if p.Name == "" {
		p.Name = uuid.NewString()
	}

	if p.Color == "" {
		p.Color = "#3498db"
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.ProjectEditable{p}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/projects", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.ProjectCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.ProjectResponse{}
}

// TestProjectsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestProjectsOptions() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"No Project with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Project exists", createTestProject(suite.T(), v1.ProjectEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/projects", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestProjectsCreate verifies that project creation works.
func (suite *TestSuiteStandard) TestProjectsCreate() {
	start := types.NewDate(2026, 3, 1)
	end := types.NewDate(2026, 6, 30)

	p := createTestProject(suite.T(), v1.ProjectEditable{
		Name:      "Website relaunch",
		Color:     "#e74c3c",
		StartDate: &start,
		EndDate:   &end,
	})

	require.NotNil(suite.T(), p.Data)
	assert.Equal(suite.T(), "Website relaunch", p.Data.Name)
	assert.Equal(suite.T(), "#e74c3c", p.Data.Color)
	require.NotNil(suite.T(), p.Data.StartDate)
	assert.True(suite.T(), p.Data.StartDate.Equal(start))
}

// TestProjectsGetFilter verifies the query string filters of the project list.
func (suite *TestSuiteStandard) TestProjectsGetFilter() {
	_ = createTestProject(suite.T(), v1.ProjectEditable{Name: "Website relaunch"})
	_ = createTestProject(suite.T(), v1.ProjectEditable{Name: "Backend migration"})
	_ = createTestProject(suite.T(), v1.ProjectEditable{Name: "Old intranet", Archived: true})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"No filter", "", 3},
		{"Name", "name=Website relaunch", 1},
		{"Search", "search=migration", 1},
		{"Archived", "archived=true", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/projects?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ProjectListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, tt.len, len(response.Data))
		})
	}
}

// TestProjectsUpdate verifies that PATCH only touches the fields sent.
func (suite *TestSuiteStandard) TestProjectsUpdate() {
	p := createTestProject(suite.T(), v1.ProjectEditable{Name: "Website relaunch", Color: "#e74c3c"})

	r := test.Request(suite.T(), http.MethodPatch, p.Data.Links.Self, map[string]any{
		"archived": true,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.ProjectResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	require.NotNil(suite.T(), updated.Data)
	assert.True(suite.T(), updated.Data.Archived)
	assert.Equal(suite.T(), "Website relaunch", updated.Data.Name)
	assert.Equal(suite.T(), "#e74c3c", updated.Data.Color)
}

// TestProjectsDelete verifies that deleting a project works.
func (suite *TestSuiteStandard) TestProjectsDelete() {
	p := createTestProject(suite.T(), v1.ProjectEditable{})

	r := test.Request(suite.T(), http.MethodDelete, p.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, p.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
