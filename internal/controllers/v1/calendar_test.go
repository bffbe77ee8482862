package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamplan/backend/internal/calendar"
	v1 "github.com/teamplan/backend/internal/controllers/v1"
	"github.com/teamplan/backend/internal/types"
	"github.com/teamplan/backend/test"
)

// TestCalendarHolidays verifies the holiday list endpoint.
func (suite *TestSuiteStandard) TestCalendarHolidays() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/calendar/holidays?from=2026&until=2026", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.HolidayListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotEmpty(suite.T(), response.Data)

	// New Year's Day is always first
	assert.True(suite.T(), response.Data[0].Date.Equal(types.NewDate(2026, 1, 1)))
	assert.Equal(suite.T(), "Nyårsdagen", response.Data[0].Name)

	// The list is sorted by date
	for i := 1; i < len(response.Data); i++ {
		assert.True(suite.T(), response.Data[i-1].Date.Before(response.Data[i].Date))
	}
}

// TestCalendarHolidaysErrors verifies the error handling of the holiday
// list endpoint.
func (suite *TestSuiteStandard) TestCalendarHolidaysErrors() {
	tests := []struct {
		name  string
		query string
	}{
		{"No years", ""},
		{"Only from", "from=2026"},
		{"Inverted range", "from=2027&until=2026"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/calendar/holidays?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

// TestCalendarWorkingDays verifies the working day endpoint. The first
// week of March 2026 has five working days.
func (suite *TestSuiteStandard) TestCalendarWorkingDays() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/calendar/working-days?from=2026-03-02&until=2026-03-08", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.WorkingDaysResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), 5, response.Data.Count)
	require.Len(suite.T(), response.Data.Days, 5)
	assert.True(suite.T(), response.Data.Days[0].Equal(types.NewDate(2026, 3, 2)))
	assert.True(suite.T(), response.Data.Days[4].Equal(types.NewDate(2026, 3, 6)))
}

// TestCalendarWorkingDaysErrors verifies range validation of the working
// day endpoint.
func (suite *TestSuiteStandard) TestCalendarWorkingDaysErrors() {
	tests := []struct {
		name  string
		query string
	}{
		{"No range", ""},
		{"Only from", "from=2026-03-02"},
		{"Inverted range", "from=2026-03-08&until=2026-03-02"},
		{"Unparseable date", "from=yesterday&until=tomorrow"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/calendar/working-days?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

// TestCalendarMonth verifies the month grid endpoint.
func (suite *TestSuiteStandard) TestCalendarMonth() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/calendar/months/2026/3", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), 2026, response.Data.Year)
	assert.Equal(suite.T(), 3, response.Data.Month)
	assert.Equal(suite.T(), 22, response.Data.WorkingDays)
	require.Len(suite.T(), response.Data.Days, 31)

	// March 1st 2026 is a Sunday
	assert.Equal(suite.T(), calendar.DayWeekend, response.Data.Days[0].Kind)
	assert.Equal(suite.T(), calendar.DayWorking, response.Data.Days[1].Kind)
}

// TestCalendarMonthErrors verifies validation of the month grid endpoint.
func (suite *TestSuiteStandard) TestCalendarMonthErrors() {
	tests := []struct {
		name string
		path string
	}{
		{"Month too large", "2026/13"},
		{"Month not a number", "2026/March"},
		{"Year not a number", "twentytwentysix/3"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/calendar/months/%s", tt.path), "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}
