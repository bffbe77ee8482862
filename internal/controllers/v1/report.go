package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teamplan/backend/internal/calendar"
	"github.com/teamplan/backend/internal/httputil"
	"github.com/teamplan/backend/internal/planner"
	"github.com/teamplan/backend/internal/reports"
	"github.com/teamplan/backend/internal/types"
	tp_uuid "github.com/teamplan/backend/internal/uuid"
)

// RegisterReportRoutes registers the routes for reports with
// the RouterGroup that is passed.
func RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/overview", httputil.OptionsGet)
	r.GET("/overview", GetOverview)

	r.OPTIONS("/heatmap", httputil.OptionsGet)
	r.GET("/heatmap", GetHeatmap)

	r.OPTIONS("/weekly-projects", httputil.OptionsGet)
	r.GET("/weekly-projects", GetWeeklyProjects)

	r.OPTIONS("/breakdown", httputil.OptionsGet)
	r.GET("/breakdown", GetBreakdown)

	r.OPTIONS("/warnings", httputil.OptionsGet)
	r.GET("/warnings", GetWarnings)

	r.OPTIONS("/gantt", httputil.OptionsGet)
	r.GET("/gantt", GetGantt)

	r.OPTIONS("/occupancy", httputil.OptionsGet)
	r.GET("/occupancy", GetOccupancy)

	r.OPTIONS("/available", httputil.OptionsGet)
	r.GET("/available", GetAvailable)

	r.OPTIONS("/unallocated", httputil.OptionsGet)
	r.GET("/unallocated", GetUnallocated)
}

type OverviewResponse struct {
	Data  []planner.PersonOverview `json:"data"`                                                               // Day-by-day state per person
	Error *string                  `json:"error" example:"the 'from' date must not be after the 'until' date"` // The error, if any occurred
}

type HeatmapResponse struct {
	Data  *reports.Heatmap `json:"data"`                                                               // The occupancy matrix
	Error *string          `json:"error" example:"the 'from' date must not be after the 'until' date"` // The error, if any occurred
}

type WeeklyProjectsResponse struct {
	Data  []reports.WeeklyProjectHours `json:"data"`                                                               // Summed hours per week and project
	Error *string                      `json:"error" example:"the 'from' date must not be after the 'until' date"` // The error, if any occurred
}

type BreakdownResponse struct {
	Data  []reports.BreakdownSlice `json:"data"`                                             // Hours and share per project
	Error *string                  `json:"error" example:"the person parameter must be set"` // The error, if any occurred
}

type WarningsResponse struct {
	Data  []reports.WarningRow `json:"data"`                                                               // Overload findings
	Error *string              `json:"error" example:"the 'from' date must not be after the 'until' date"` // The error, if any occurred
}

type GanttResponse struct {
	Data  []reports.GanttRow `json:"data"`                                                               // Timeline bars per project
	Error *string            `json:"error" example:"the 'from' date must not be after the 'until' date"` // The error, if any occurred
}

type OccupancyResponse struct {
	Data  []reports.OccupancyRow `json:"data"`                                                               // Utilization per person
	Error *string                `json:"error" example:"the 'from' date must not be after the 'until' date"` // The error, if any occurred
}

type AvailableResponse struct {
	Data  []planner.AvailablePerson `json:"data"`                                                 // Persons with free capacity
	Error *string                   `json:"error" example:"the date query parameter must be set"` // The error, if any occurred
}

type UnallocatedResponse struct {
	Data  []planner.UnallocatedDay `json:"data"`                                                               // Working days without allocation or absence
	Error *string                  `json:"error" example:"the 'from' date must not be after the 'until' date"` // The error, if any occurred
}

// @Summary		Team overview
// @Description	Returns, per active person and working day of the range, whether they are absent, allocated or free
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	OverviewResponse
// @Failure		400	{object}	OverviewResponse
// @Failure		500	{object}	OverviewResponse
// @Router			/v1/reports/overview [get]
// @Param			from	query	string	true	"Start of the inclusive date range"
// @Param			until	query	string	true	"End of the inclusive date range"
func GetOverview(c *gin.Context) {
	r, err := bindRange(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, OverviewResponse{
			Error: &s,
		})
		return
	}

	workingDays := calendar.WorkingDaysBetween(r.From, r.Until)

	overview, err := planner.TeamOverview(r.From, r.Until, workingDays)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), OverviewResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, OverviewResponse{Data: overview})
}

// @Summary		Occupancy heatmap
// @Description	Returns the persons by ISO weeks occupancy matrix of the range
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	HeatmapResponse
// @Failure		400	{object}	HeatmapResponse
// @Failure		500	{object}	HeatmapResponse
// @Router			/v1/reports/heatmap [get]
// @Param			from	query	string	true	"Start of the inclusive date range"
// @Param			until	query	string	true	"End of the inclusive date range"
func GetHeatmap(c *gin.Context) {
	r, err := bindRange(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, HeatmapResponse{
			Error: &s,
		})
		return
	}

	heatmap, err := reports.HeatmapGrid(r.From, r.Until)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HeatmapResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, HeatmapResponse{Data: &heatmap})
}

// @Summary		Weekly project series
// @Description	Returns the summed allocated hours per ISO week and project of the range
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	WeeklyProjectsResponse
// @Failure		400	{object}	WeeklyProjectsResponse
// @Failure		500	{object}	WeeklyProjectsResponse
// @Router			/v1/reports/weekly-projects [get]
// @Param			from	query	string	true	"Start of the inclusive date range"
// @Param			until	query	string	true	"End of the inclusive date range"
func GetWeeklyProjects(c *gin.Context) {
	r, err := bindRange(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, WeeklyProjectsResponse{
			Error: &s,
		})
		return
	}

	series, err := reports.WeeklyProjectSeries(r.From, r.Until)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WeeklyProjectsResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, WeeklyProjectsResponse{Data: series})
}

// @Summary		Project breakdown
// @Description	Returns one person's hours per project and each project's share of the total
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	BreakdownResponse
// @Failure		400	{object}	BreakdownResponse
// @Failure		500	{object}	BreakdownResponse
// @Router			/v1/reports/breakdown [get]
// @Param			person	query	string	true	"ID of the person"
// @Param			from	query	string	true	"Start of the inclusive date range"
// @Param			until	query	string	true	"End of the inclusive date range"
func GetBreakdown(c *gin.Context) {
	var params struct {
		PersonID tp_uuid.UUID `form:"person"`
	}

	if err := c.ShouldBindQuery(&params); err != nil || params.PersonID == tp_uuid.Nil {
		s := errPersonIDParameter.Error()
		c.JSON(http.StatusBadRequest, BreakdownResponse{
			Error: &s,
		})
		return
	}

	r, err := bindRange(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BreakdownResponse{
			Error: &s,
		})
		return
	}

	slices, err := reports.ProjectBreakdown(params.PersonID.UUID, r.From, r.Until)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BreakdownResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, BreakdownResponse{Data: slices})
}

// @Summary		Overload warnings
// @Description	Returns every person-day of the range where the summed allocation exceeds the person's capacity
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	WarningsResponse
// @Failure		400	{object}	WarningsResponse
// @Failure		500	{object}	WarningsResponse
// @Router			/v1/reports/warnings [get]
// @Param			from	query	string	true	"Start of the inclusive date range"
// @Param			until	query	string	true	"End of the inclusive date range"
func GetWarnings(c *gin.Context) {
	r, err := bindRange(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, WarningsResponse{
			Error: &s,
		})
		return
	}

	rows, err := reports.WarningRows(r.From, r.Until)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WarningsResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, WarningsResponse{Data: rows})
}

// @Summary		Project timeline
// @Description	Returns one timeline bar per project with allocations in the range
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	GanttResponse
// @Failure		400	{object}	GanttResponse
// @Failure		500	{object}	GanttResponse
// @Router			/v1/reports/gantt [get]
// @Param			from	query	string	true	"Start of the inclusive date range"
// @Param			until	query	string	true	"End of the inclusive date range"
func GetGantt(c *gin.Context) {
	r, err := bindRange(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, GanttResponse{
			Error: &s,
		})
		return
	}

	rows, err := reports.GanttRows(r.From, r.Until)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GanttResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, GanttResponse{Data: rows})
}

// @Summary		Occupancy report
// @Description	Returns per active person the available and allocated hours of the range
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	OccupancyResponse
// @Failure		400	{object}	OccupancyResponse
// @Failure		500	{object}	OccupancyResponse
// @Router			/v1/reports/occupancy [get]
// @Param			from	query	string	true	"Start of the inclusive date range"
// @Param			until	query	string	true	"End of the inclusive date range"
func GetOccupancy(c *gin.Context) {
	r, err := bindRange(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, OccupancyResponse{
			Error: &s,
		})
		return
	}

	rows, err := reports.OccupancyReport(r.From, r.Until)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), OccupancyResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, OccupancyResponse{Data: rows})
}

// @Summary		Available persons
// @Description	Returns the persons with free capacity on a date, optionally filtered by a skill glob
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	AvailableResponse
// @Failure		400	{object}	AvailableResponse
// @Failure		500	{object}	AvailableResponse
// @Router			/v1/reports/available [get]
// @Param			date	query	string	true	"The date to check"
// @Param			skill	query	string	false	"Glob pattern matched against the skill tags"
func GetAvailable(c *gin.Context) {
	var params struct {
		Date  types.Date `form:"date"`
		Skill string     `form:"skill"`
	}

	err := c.ShouldBindQuery(&params)
	if err != nil || params.Date.IsZero() {
		s := errDateNotSetInQuery.Error()
		c.JSON(http.StatusBadRequest, AvailableResponse{
			Error: &s,
		})
		return
	}

	available, err := planner.FindAvailable(params.Date, params.Skill)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AvailableResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, AvailableResponse{Data: available})
}

// @Summary		Unallocated person-days
// @Description	Returns the working days of the range on which an active person has neither an allocation nor an absence
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	UnallocatedResponse
// @Failure		400	{object}	UnallocatedResponse
// @Failure		500	{object}	UnallocatedResponse
// @Router			/v1/reports/unallocated [get]
// @Param			from	query	string	true	"Start of the inclusive date range"
// @Param			until	query	string	true	"End of the inclusive date range"
func GetUnallocated(c *gin.Context) {
	r, err := bindRange(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, UnallocatedResponse{
			Error: &s,
		})
		return
	}

	workingDays := calendar.WorkingDaysBetween(r.From, r.Until)

	days, err := planner.FindUnallocated(r.From, r.Until, workingDays)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UnallocatedResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, UnallocatedResponse{Data: days})
}
