package v1

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/teamplan/backend/internal/calendar"
	"github.com/teamplan/backend/internal/httputil"
	"github.com/teamplan/backend/internal/types"
)

// RegisterCalendarRoutes registers the routes for the calendar with
// the RouterGroup that is passed.
func RegisterCalendarRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/holidays", httputil.OptionsGet)
	r.GET("/holidays", GetHolidays)

	r.OPTIONS("/working-days", httputil.OptionsGet)
	r.GET("/working-days", GetWorkingDays)

	r.OPTIONS("/months/:year/:month", httputil.OptionsGet)
	r.GET("/months/:year/:month", GetMonth)
}

type Holiday struct {
	Date types.Date `json:"date" example:"2026-04-03"`   // The holiday's date
	Name string     `json:"name" example:"Långfredagen"` // Swedish name of the holiday
}

type HolidayListResponse struct {
	Data  []Holiday `json:"data"`                                               // List of holidays
	Error *string   `json:"error" example:"the month must be between 1 and 12"` // The error, if any occurred
}

type WorkingDaysResponse struct {
	Data  *WorkingDays `json:"data"`                                                               // The working days of the range
	Error *string      `json:"error" example:"the 'from' date must not be after the 'until' date"` // The error, if any occurred
}

type WorkingDays struct {
	Days  []types.Date `json:"days"`               // Working days of the range in order
	Count int          `json:"count" example:"21"` // Number of working days
}

type MonthResponse struct {
	Data  *Month  `json:"data"`                                               // The month
	Error *string `json:"error" example:"the month must be between 1 and 12"` // The error, if any occurred
}

type Month struct {
	Year        int            `json:"year" example:"2026"`       // The year
	Month       int            `json:"month" example:"3"`         // The month, 1 is January
	WorkingDays int            `json:"workingDays" example:"22"`  // Number of working days in the month
	Days        []calendar.Day `json:"days"`                      // All days of the month
}

// @Summary		Get holidays
// @Description	Returns the Swedish public holidays of the given year range
// @Tags			Calendar
// @Produce		json
// @Success		200	{object}	HolidayListResponse
// @Failure		400	{object}	HolidayListResponse
// @Router			/v1/calendar/holidays [get]
// @Param			from	query	int	true	"First year of the range"
// @Param			until	query	int	true	"Last year of the range"
func GetHolidays(c *gin.Context) {
	var params struct {
		From  int `form:"from" binding:"required"`
		Until int `form:"until" binding:"required"`
	}

	err := c.ShouldBindQuery(&params)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, HolidayListResponse{
			Error: &s,
		})
		return
	}

	if params.From > params.Until {
		s := errYearRangeInverted.Error()
		c.JSON(http.StatusBadRequest, HolidayListResponse{
			Error: &s,
		})
		return
	}

	holidays := calendar.Holidays(params.From, params.Until)

	data := make([]Holiday, 0, len(holidays))
	for date, name := range holidays {
		data = append(data, Holiday{Date: date, Name: name})
	}
	sort.Slice(data, func(i, j int) bool {
		return data[i].Date.Before(data[j].Date)
	})

	c.JSON(http.StatusOK, HolidayListResponse{Data: data})
}

// @Summary		Get working days
// @Description	Returns the working days of the inclusive date range
// @Tags			Calendar
// @Produce		json
// @Success		200	{object}	WorkingDaysResponse
// @Failure		400	{object}	WorkingDaysResponse
// @Router			/v1/calendar/working-days [get]
// @Param			from	query	string	true	"Start of the inclusive date range"
// @Param			until	query	string	true	"End of the inclusive date range"
func GetWorkingDays(c *gin.Context) {
	r, err := bindRange(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, WorkingDaysResponse{
			Error: &s,
		})
		return
	}

	days := calendar.WorkingDaysBetween(r.From, r.Until)

	c.JSON(http.StatusOK, WorkingDaysResponse{Data: &WorkingDays{
		Days:  days,
		Count: len(days),
	}})
}

// @Summary		Get month
// @Description	Returns the day grid and working day count of one month
// @Tags			Calendar
// @Produce		json
// @Success		200	{object}	MonthResponse
// @Failure		400	{object}	MonthResponse
// @Router			/v1/calendar/months/{year}/{month} [get]
// @Param			year	path	int	true	"The year"
// @Param			month	path	int	true	"The month, 1 is January"
func GetMonth(c *gin.Context) {
	var uri struct {
		Year  int `uri:"year" binding:"required"`
		Month int `uri:"month" binding:"required"`
	}

	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, MonthResponse{
			Error: &s,
		})
		return
	}

	if uri.Month < 1 || uri.Month > 12 {
		s := errMonthOutOfRange.Error()
		c.JSON(http.StatusBadRequest, MonthResponse{
			Error: &s,
		})
		return
	}

	month := time.Month(uri.Month)

	c.JSON(http.StatusOK, MonthResponse{Data: &Month{
		Year:        uri.Year,
		Month:       uri.Month,
		WorkingDays: calendar.WorkingDayCount(uri.Year, month),
		Days:        calendar.MonthGrid(uri.Year, month),
	}})
}
