package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	v1 "github.com/teamplan/backend/internal/controllers/v1"
	"github.com/teamplan/backend/internal/types"
	"github.com/teamplan/backend/test"
)

func createTestAllocation(t *testing.T, a v1.AllocationEditable, expectedStatus ...int) v1.AllocationResponse {
	// Default to 200 OK as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusOK)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/allocations", a)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.AllocationResponse
	test.DecodeResponse(t, &r, &response)
	return response
}

// TestAllocationsSet verifies that setting a slot returns the joined row.
func (suite *TestSuiteStandard) TestAllocationsSet() {
	person := createTestPerson(suite.T(), v1.PersonEditable{Name: "Anna Lindqvist"})
	project := createTestProject(suite.T(), v1.ProjectEditable{Name: "Website relaunch", Color: "#e74c3c"})

	response := createTestAllocation(suite.T(), v1.AllocationEditable{
		PersonID:  person.Data.ID,
		ProjectID: project.Data.ID,
		Date:      types.NewDate(2026, 3, 2),
		Hours:     decimal.NewFromFloat(6.5),
	})

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "Anna Lindqvist", response.Data.PersonName)
	assert.Equal(suite.T(), "Website relaunch", response.Data.ProjectName)
	assert.Equal(suite.T(), "#e74c3c", response.Data.Color)
	assert.True(suite.T(), response.Data.Hours.Equal(decimal.NewFromFloat(6.5)))
}

// TestAllocationsSetOverwrites verifies that setting the same slot again
// overwrites the hours instead of creating a second row.
func (suite *TestSuiteStandard) TestAllocationsSetOverwrites() {
	person := createTestPerson(suite.T(), v1.PersonEditable{})
	project := createTestProject(suite.T(), v1.ProjectEditable{})

	editable := v1.AllocationEditable{
		PersonID:  person.Data.ID,
		ProjectID: project.Data.ID,
		Date:      types.NewDate(2026, 3, 2),
		Hours:     decimal.NewFromInt(4),
	}

	_ = createTestAllocation(suite.T(), editable)
	editable.Hours = decimal.NewFromInt(7)
	_ = createTestAllocation(suite.T(), editable)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/allocations", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.AllocationListResponse
	test.DecodeResponse(suite.T(), &r, &list)

	require.Len(suite.T(), list.Data, 1)
	assert.True(suite.T(), list.Data[0].Hours.Equal(decimal.NewFromInt(7)))
}

// TestAllocationsSetZeroDeletes verifies that zero hours delete the slot.
func (suite *TestSuiteStandard) TestAllocationsSetZeroDeletes() {
	person := createTestPerson(suite.T(), v1.PersonEditable{})
	project := createTestProject(suite.T(), v1.ProjectEditable{})

	editable := v1.AllocationEditable{
		PersonID:  person.Data.ID,
		ProjectID: project.Data.ID,
		Date:      types.NewDate(2026, 3, 2),
		Hours:     decimal.NewFromInt(4),
	}
	_ = createTestAllocation(suite.T(), editable)

	editable.Hours = decimal.Zero
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/allocations", editable)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/allocations", "")
	var list v1.AllocationListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	assert.Empty(suite.T(), list.Data)
}

// TestAllocationsSetMissingReferences verifies that slots for unknown
// persons or projects are rejected.
func (suite *TestSuiteStandard) TestAllocationsSetMissingReferences() {
	_ = createTestAllocation(suite.T(), v1.AllocationEditable{
		PersonID:  uuid.New(),
		ProjectID: uuid.New(),
		Date:      types.NewDate(2026, 3, 2),
		Hours:     decimal.NewFromInt(4),
	}, http.StatusBadRequest)
}

// TestAllocationsGetFilter verifies the query string filters of the
// allocation list.
func (suite *TestSuiteStandard) TestAllocationsGetFilter() {
	anna := createTestPerson(suite.T(), v1.PersonEditable{Name: "Anna Lindqvist"})
	bertil := createTestPerson(suite.T(), v1.PersonEditable{Name: "Bertil Ek"})
	website := createTestProject(suite.T(), v1.ProjectEditable{Name: "Website relaunch"})
	backend := createTestProject(suite.T(), v1.ProjectEditable{Name: "Backend migration"})

	for _, a := range []v1.AllocationEditable{
		{PersonID: anna.Data.ID, ProjectID: website.Data.ID, Date: types.NewDate(2026, 3, 2), Hours: decimal.NewFromInt(4)},
		{PersonID: anna.Data.ID, ProjectID: backend.Data.ID, Date: types.NewDate(2026, 3, 3), Hours: decimal.NewFromInt(4)},
		{PersonID: bertil.Data.ID, ProjectID: website.Data.ID, Date: types.NewDate(2026, 3, 9), Hours: decimal.NewFromInt(8)},
	} {
		_ = createTestAllocation(suite.T(), a)
	}

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"No filter", "", 3},
		{"Person", fmt.Sprintf("person=%s", anna.Data.ID), 2},
		{"Project", fmt.Sprintf("project=%s", website.Data.ID), 2},
		{"Range", "from=2026-03-02&until=2026-03-06", 2},
		{"Person and range", fmt.Sprintf("person=%s&from=2026-03-09&until=2026-03-13", bertil.Data.ID), 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/allocations?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.AllocationListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, tt.len, len(response.Data))
		})
	}
}

// TestAllocationsBulk verifies that bulk allocation plans several days
// in one request.
func (suite *TestSuiteStandard) TestAllocationsBulk() {
	person := createTestPerson(suite.T(), v1.PersonEditable{})
	project := createTestProject(suite.T(), v1.ProjectEditable{})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/allocations/bulk", v1.BulkAllocationEditable{
		PersonID:  person.Data.ID,
		ProjectID: project.Data.ID,
		Dates: []types.Date{
			types.NewDate(2026, 3, 2),
			types.NewDate(2026, 3, 3),
			types.NewDate(2026, 3, 4),
		},
		Hours: decimal.NewFromInt(8),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/allocations", "")
	var list v1.AllocationListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	assert.Len(suite.T(), list.Data, 3)
}

// TestAllocationsCopyWeek verifies that a week is copied onto another week.
func (suite *TestSuiteStandard) TestAllocationsCopyWeek() {
	person := createTestPerson(suite.T(), v1.PersonEditable{})
	project := createTestProject(suite.T(), v1.ProjectEditable{})

	for _, date := range []types.Date{types.NewDate(2026, 3, 2), types.NewDate(2026, 3, 4)} {
		_ = createTestAllocation(suite.T(), v1.AllocationEditable{
			PersonID:  person.Data.ID,
			ProjectID: project.Data.ID,
			Date:      date,
			Hours:     decimal.NewFromInt(6),
		})
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/allocations/copy-week", v1.CopyWeekEditable{
		PersonID: person.Data.ID,
		// Wednesday, gets normalized to the Monday of the week
		From: types.NewDate(2026, 3, 4),
		To:   types.NewDate(2026, 3, 9),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CopyWeekResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), 2, response.Data.Copied)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/allocations?from=2026-03-09&until=2026-03-15", "")
	var list v1.AllocationListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	assert.Len(suite.T(), list.Data, 2)
}

// TestAllocationsInvalidBody verifies that invalid bodies are rejected
// on all allocation endpoints.
func (suite *TestSuiteStandard) TestAllocationsInvalidBody() {
	for _, path := range []string{"", "/bulk", "/copy-week"} {
		r := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/allocations%s", path), `{ Invalid request": Body }`)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	}
}
