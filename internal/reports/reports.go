// Package reports turns the raw planning data into the aggregated shapes
// the frontend charts and file exports are fed with. All functions operate
// on inclusive date ranges and return empty results for empty or inverted
// ranges.
package reports

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/teamplan/backend/internal/calendar"
	"github.com/teamplan/backend/internal/models"
	"github.com/teamplan/backend/internal/planner"
	"github.com/teamplan/backend/internal/types"
)

// WeekColumn identifies one ISO week column of the heatmap.
type WeekColumn struct {
	Year int `json:"year" example:"2026"`
	Week int `json:"week" example:"10"`
}

// HeatmapRow is one person's occupancy per week column.
type HeatmapRow struct {
	PersonID uuid.UUID         `json:"personId" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Name     string            `json:"name" example:"Anna Lindqvist"`
	Cells    []decimal.Decimal `json:"cells"` // Occupancy percent, aligned with the week columns
}

// Heatmap is the persons x ISO weeks occupancy matrix.
type Heatmap struct {
	Weeks []WeekColumn `json:"weeks"`
	Rows  []HeatmapRow `json:"rows"`
}

// HeatmapGrid computes the occupancy of every active person for every ISO
// week touching the range. Rows are ordered by person name.
func HeatmapGrid(from, until types.Date) (Heatmap, error) {
	heatmap := Heatmap{Weeks: []WeekColumn{}, Rows: []HeatmapRow{}}
	if from.After(until) {
		return heatmap, nil
	}

	var persons []models.Person
	err := models.DB.
		Where("archived = ?", false).
		Order("name ASC").
		Find(&persons).
		Error
	if err != nil {
		return Heatmap{}, err
	}

	for _, person := range persons {
		buckets, err := planner.Occupancy(person.ID, from, until)
		if err != nil {
			return Heatmap{}, err
		}

		if len(heatmap.Weeks) == 0 {
			for _, bucket := range buckets {
				heatmap.Weeks = append(heatmap.Weeks, WeekColumn{Year: bucket.Year, Week: bucket.Week})
			}
		}

		row := HeatmapRow{PersonID: person.ID, Name: person.Name}
		for _, bucket := range buckets {
			row.Cells = append(row.Cells, bucket.Occupancy)
		}
		heatmap.Rows = append(heatmap.Rows, row)
	}

	return heatmap, nil
}

// WeeklyProjectHours is the summed allocation of one project in one ISO
// week, a point of the stacked weekly chart.
type WeeklyProjectHours struct {
	Year        int             `json:"year" example:"2026"`
	Week        int             `json:"week" example:"10"`
	ProjectID   uuid.UUID       `json:"projectId" example:"10b9705d-3356-459e-9d5a-28d42a6c4547"`
	ProjectName string          `json:"projectName" example:"Website"`
	Color       string          `json:"color" example:"#3498db"`
	Hours       decimal.Decimal `json:"hours" example:"24"`
}

// WeeklyProjectSeries sums the allocated hours per ISO week and project
// over the range, ordered by week, then project name.
func WeeklyProjectSeries(from, until types.Date) ([]WeeklyProjectHours, error) {
	var allocations []models.Allocation
	err := models.DB.
		Preload("Project").
		Where("date(date) >= date(?) AND date(date) <= date(?)", from, until).
		Find(&allocations).
		Error
	if err != nil {
		return nil, err
	}

	type seriesKey struct {
		year, week int
		projectID  uuid.UUID
	}

	points := map[seriesKey]*WeeklyProjectHours{}
	for _, allocation := range allocations {
		year, week := allocation.Date.ISOWeek()
		key := seriesKey{year, week, allocation.ProjectID}

		point, ok := points[key]
		if !ok {
			point = &WeeklyProjectHours{
				Year:        year,
				Week:        week,
				ProjectID:   allocation.ProjectID,
				ProjectName: allocation.Project.Name,
				Color:       allocation.Project.Color,
			}
			points[key] = point
		}
		point.Hours = point.Hours.Add(allocation.Hours)
	}

	series := make([]WeeklyProjectHours, 0, len(points))
	for _, point := range points {
		series = append(series, *point)
	}

	sort.Slice(series, func(i, j int) bool {
		if series[i].Year != series[j].Year {
			return series[i].Year < series[j].Year
		}
		if series[i].Week != series[j].Week {
			return series[i].Week < series[j].Week
		}
		return series[i].ProjectName < series[j].ProjectName
	})

	return series, nil
}

// BreakdownSlice is one project's share of a person's allocated hours.
type BreakdownSlice struct {
	ProjectID   uuid.UUID       `json:"projectId" example:"10b9705d-3356-459e-9d5a-28d42a6c4547"`
	ProjectName string          `json:"projectName" example:"Website"`
	Color       string          `json:"color" example:"#3498db"`
	Hours       decimal.Decimal `json:"hours" example:"32"`
	Share       decimal.Decimal `json:"share" example:"40"` // Percent of the person's total in the range
}

// ProjectBreakdown sums one person's hours per project over the range and
// computes each project's share of the total, largest slice first.
func ProjectBreakdown(personID uuid.UUID, from, until types.Date) ([]BreakdownSlice, error) {
	var allocations []models.Allocation
	err := models.DB.
		Preload("Project").
		Where(&models.Allocation{PersonID: personID}).
		Where("date(date) >= date(?) AND date(date) <= date(?)", from, until).
		Find(&allocations).
		Error
	if err != nil {
		return nil, err
	}

	perProject := map[uuid.UUID]*BreakdownSlice{}
	total := decimal.Zero
	for _, allocation := range allocations {
		slice, ok := perProject[allocation.ProjectID]
		if !ok {
			slice = &BreakdownSlice{
				ProjectID:   allocation.ProjectID,
				ProjectName: allocation.Project.Name,
				Color:       allocation.Project.Color,
			}
			perProject[allocation.ProjectID] = slice
		}
		slice.Hours = slice.Hours.Add(allocation.Hours)
		total = total.Add(allocation.Hours)
	}

	slices := make([]BreakdownSlice, 0, len(perProject))
	hundred := decimal.NewFromInt(100)
	for _, slice := range perProject {
		if total.IsPositive() {
			slice.Share = slice.Hours.Mul(hundred).Div(total).Round(1)
		}
		slices = append(slices, *slice)
	}

	sort.Slice(slices, func(i, j int) bool {
		if !slices[i].Hours.Equal(slices[j].Hours) {
			return slices[i].Hours.GreaterThan(slices[j].Hours)
		}
		return slices[i].ProjectName < slices[j].ProjectName
	})

	return slices, nil
}

// WarningRow is an overload finding prepared for tabular display.
type WarningRow struct {
	PersonID   uuid.UUID       `json:"personId" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	PersonName string          `json:"personName" example:"Anna Lindqvist"`
	Date       types.Date      `json:"date" example:"2026-03-02"`
	Week       int             `json:"week" example:"10"`
	Allocated  decimal.Decimal `json:"allocated" example:"9.5"`
	Capacity   decimal.Decimal `json:"capacity" example:"8"`
	Overtime   decimal.Decimal `json:"overtime" example:"1.5"`
}

// WarningRows reshapes the overload findings of the range for display,
// adding the ISO week of each finding.
func WarningRows(from, until types.Date) ([]WarningRow, error) {
	overloaded, err := planner.FindOverloaded(from, until)
	if err != nil {
		return nil, err
	}

	rows := make([]WarningRow, 0, len(overloaded))
	for _, day := range overloaded {
		_, week := day.Date.ISOWeek()
		rows = append(rows, WarningRow{
			PersonID:   day.PersonID,
			PersonName: day.PersonName,
			Date:       day.Date,
			Week:       week,
			Allocated:  day.TotalHours,
			Capacity:   day.Capacity,
			Overtime:   day.Overtime,
		})
	}

	return rows, nil
}

// GanttRow is one project's bar in the timeline chart.
type GanttRow struct {
	ProjectID   uuid.UUID       `json:"projectId" example:"10b9705d-3356-459e-9d5a-28d42a6c4547"`
	ProjectName string          `json:"projectName" example:"Website"`
	Color       string          `json:"color" example:"#3498db"`
	Start       types.Date      `json:"start" example:"2026-03-02"`
	End         types.Date      `json:"end" example:"2026-04-24"`
	TotalHours  decimal.Decimal `json:"totalHours" example:"160"`
	PeopleCount int             `json:"peopleCount" example:"3"`
}

// GanttRows builds one bar per project with allocations in the range. The
// bar spans the first to the last allocated date, narrowed by the
// project's informational start and end dates where those are tighter.
func GanttRows(from, until types.Date) ([]GanttRow, error) {
	var allocations []models.Allocation
	err := models.DB.
		Preload("Project").
		Where("date(date) >= date(?) AND date(date) <= date(?)", from, until).
		Find(&allocations).
		Error
	if err != nil {
		return nil, err
	}

	type ganttAccumulator struct {
		row    GanttRow
		people map[uuid.UUID]bool
	}

	perProject := map[uuid.UUID]*ganttAccumulator{}
	for _, allocation := range allocations {
		acc, ok := perProject[allocation.ProjectID]
		if !ok {
			acc = &ganttAccumulator{
				row: GanttRow{
					ProjectID:   allocation.ProjectID,
					ProjectName: allocation.Project.Name,
					Color:       allocation.Project.Color,
					Start:       allocation.Date,
					End:         allocation.Date,
				},
				people: map[uuid.UUID]bool{},
			}
			perProject[allocation.ProjectID] = acc
		}

		if allocation.Date.Before(acc.row.Start) {
			acc.row.Start = allocation.Date
		}
		if allocation.Date.After(acc.row.End) {
			acc.row.End = allocation.Date
		}
		acc.row.TotalHours = acc.row.TotalHours.Add(allocation.Hours)
		acc.people[allocation.PersonID] = true

		if project := allocation.Project; project.StartDate != nil && project.StartDate.After(acc.row.Start) {
			acc.row.Start = *project.StartDate
		}
		if project := allocation.Project; project.EndDate != nil && project.EndDate.Before(acc.row.End) {
			acc.row.End = *project.EndDate
		}
	}

	rows := make([]GanttRow, 0, len(perProject))
	for _, acc := range perProject {
		acc.row.PeopleCount = len(acc.people)
		rows = append(rows, acc.row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Start.Equal(rows[j].Start) {
			return rows[i].Start.Before(rows[j].Start)
		}
		return rows[i].ProjectName < rows[j].ProjectName
	})

	return rows, nil
}

// OccupancyRow is one person's utilization over a range.
type OccupancyRow struct {
	PersonID    uuid.UUID       `json:"personId" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Name        string          `json:"name" example:"Anna Lindqvist"`
	Role        string          `json:"role" example:"Backend Developer"`
	WorkingDays int             `json:"workingDays" example:"20"`
	Available   decimal.Decimal `json:"available" example:"160"` // Capacity times working days
	Allocated   decimal.Decimal `json:"allocated" example:"120"`
	Occupancy   decimal.Decimal `json:"occupancy" example:"75"` // Percent, 0 when no working days
}

// OccupancyReport computes per active person the available and allocated
// hours of the range and the resulting occupancy percentage. It feeds the
// CSV and PDF exports.
func OccupancyReport(from, until types.Date) ([]OccupancyRow, error) {
	var persons []models.Person
	err := models.DB.
		Where("archived = ?", false).
		Order("name ASC").
		Find(&persons).
		Error
	if err != nil {
		return nil, err
	}

	workingDays := len(calendar.WorkingDaysBetween(from, until))

	type allocatedSum struct {
		PersonID uuid.UUID
		Hours    decimal.Decimal
	}
	var sums []allocatedSum
	err = models.DB.
		Table("allocations").
		Select("person_id, SUM(hours) AS hours").
		Where("date(date) >= date(?) AND date(date) <= date(?)", from, until).
		Group("person_id").
		Find(&sums).
		Error
	if err != nil {
		return nil, err
	}

	allocated := make(map[uuid.UUID]decimal.Decimal, len(sums))
	for _, sum := range sums {
		allocated[sum.PersonID] = sum.Hours
	}

	hundred := decimal.NewFromInt(100)
	rows := make([]OccupancyRow, 0, len(persons))
	for _, person := range persons {
		row := OccupancyRow{
			PersonID:    person.ID,
			Name:        person.Name,
			Role:        person.Role,
			WorkingDays: workingDays,
			Available:   person.Capacity.Mul(decimal.NewFromInt(int64(workingDays))),
			Allocated:   allocated[person.ID],
		}
		if row.Available.IsPositive() {
			row.Occupancy = row.Allocated.Mul(hundred).Div(row.Available).Round(1)
		}
		rows = append(rows, row)
	}

	return rows, nil
}
