package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	v1 "github.com/teamplan/backend/internal/controllers/v1"
	"github.com/teamplan/backend/internal/types"
	"github.com/teamplan/backend/test"
)

// TestExportsRangeValidation verifies that the range based exports reject
// missing ranges.
func (suite *TestSuiteStandard) TestExportsRangeValidation() {
	endpoints := []string{
		"allocations.csv",
		"allocations.xlsx",
		"occupancy.csv",
		"occupancy.pdf",
	}

	for _, endpoint := range endpoints {
		suite.T().Run(endpoint, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/exports/%s", endpoint), "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

// TestExportsAllocationsCSV verifies the CSV download of allocations.
func (suite *TestSuiteStandard) TestExportsAllocationsCSV() {
	person := createTestPerson(suite.T(), v1.PersonEditable{Name: "Anna Lindqvist"})
	project := createTestProject(suite.T(), v1.ProjectEditable{Name: "Website relaunch"})

	_ = createTestAllocation(suite.T(), v1.AllocationEditable{
		PersonID:  person.Data.ID,
		ProjectID: project.Data.ID,
		Date:      types.NewDate(2026, 3, 2),
		Hours:     decimal.NewFromFloat(6.5),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/exports/allocations.csv?from=2026-03-01&until=2026-03-31", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	assert.Equal(suite.T(), "text/csv; charset=utf-8", r.Header().Get("Content-Type"))
	assert.Equal(suite.T(), "attachment; filename=allocations_2026-03-01_2026-03-31.csv", r.Header().Get("Content-Disposition"))
	assert.Contains(suite.T(), r.Body.String(), "Person;Project;Date;Hours")
	assert.Contains(suite.T(), r.Body.String(), "Anna Lindqvist;Website relaunch;2026-03-02;6.5")
}

// TestExportsAllocationsXLSX verifies the XLSX download of allocations.
func (suite *TestSuiteStandard) TestExportsAllocationsXLSX() {
	person := createTestPerson(suite.T(), v1.PersonEditable{})
	project := createTestProject(suite.T(), v1.ProjectEditable{})

	_ = createTestAllocation(suite.T(), v1.AllocationEditable{
		PersonID:  person.Data.ID,
		ProjectID: project.Data.ID,
		Date:      types.NewDate(2026, 3, 2),
		Hours:     decimal.NewFromInt(8),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/exports/allocations.xlsx?from=2026-03-01&until=2026-03-31", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	assert.Equal(suite.T(), "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", r.Header().Get("Content-Type"))
	// XLSX files are zip archives
	assert.Equal(suite.T(), "PK", r.Body.String()[:2])
}

// TestExportsPersonnelCSV verifies the personnel CSV download.
func (suite *TestSuiteStandard) TestExportsPersonnelCSV() {
	_ = createTestPerson(suite.T(), v1.PersonEditable{Name: "Anna Lindqvist", Role: "Backend Developer", Skills: []string{"go", "sql"}})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/exports/personnel.csv", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	assert.Contains(suite.T(), r.Body.String(), "Name;Role;Capacity;Status;Skills")
	assert.Contains(suite.T(), r.Body.String(), "Anna Lindqvist;Backend Developer;8;active;go, sql")
}

// TestExportsBackup verifies the full JSON export.
func (suite *TestSuiteStandard) TestExportsBackup() {
	person := createTestPerson(suite.T(), v1.PersonEditable{Name: "Anna Lindqvist"})
	project := createTestProject(suite.T(), v1.ProjectEditable{})

	_ = createTestAllocation(suite.T(), v1.AllocationEditable{
		PersonID:  person.Data.ID,
		ProjectID: project.Data.ID,
		Date:      types.NewDate(2026, 3, 2),
		Hours:     decimal.NewFromInt(8),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/exports/backup.json", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BackupResponse
	test.DecodeResponse(suite.T(), &r, &response)

	for _, resource := range []string{"Person", "Project", "Allocation", "Absence", "Comment", "SkillTag"} {
		assert.Contains(suite.T(), response.Data, resource)
	}
	assert.Contains(suite.T(), string(response.Data["Person"]), "Anna Lindqvist")
}

// TestExportsOccupancyPDF verifies the PDF download of the occupancy report.
func (suite *TestSuiteStandard) TestExportsOccupancyPDF() {
	_ = createTestPerson(suite.T(), v1.PersonEditable{})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/exports/occupancy.pdf?from=2026-03-01&until=2026-03-31", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	assert.Equal(suite.T(), "application/pdf", r.Header().Get("Content-Type"))
	assert.Equal(suite.T(), "%PDF", r.Body.String()[:4])
}
