package planner

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/teamplan/backend/internal/calendar"
	"github.com/teamplan/backend/internal/models"
	"github.com/teamplan/backend/internal/types"
)

// WeekBucket is the occupancy of one person in one ISO week of a range.
type WeekBucket struct {
	Year        int             `json:"year" example:"2026"`
	Week        int             `json:"week" example:"10"`
	WorkingDays int             `json:"workingDays" example:"5"`       // Working days of the week that fall in the range
	Allocated   decimal.Decimal `json:"allocated" example:"32"`        // Summed allocated hours in the bucket
	Occupancy   decimal.Decimal `json:"occupancy" example:"80"`        // Percent of available capacity, 0 if no working days
}

// DayState classifies one person-day in the team overview.
type DayState string

const (
	StateAbsent    DayState = "ABSENT"
	StateAllocated DayState = "ALLOCATED"
	StateFree      DayState = "FREE"
)

// ProjectHours is an allocation of one day grouped by project.
type ProjectHours struct {
	ProjectID   uuid.UUID       `json:"projectId" example:"10b9705d-3356-459e-9d5a-28d42a6c4547"`
	ProjectName string          `json:"projectName" example:"Website"`
	Color       string          `json:"color" example:"#3498db"`
	Hours       decimal.Decimal `json:"hours" example:"4"`
}

// PersonDay is the state of one person on one working day. The three
// states are mutually exclusive and an absence always wins over any
// allocation rows stored for the same day.
type PersonDay struct {
	Date        types.Date         `json:"date" example:"2026-03-02"`
	State       DayState           `json:"state" example:"ALLOCATED"`
	AbsenceType models.AbsenceType `json:"absenceType,omitempty" example:""`
	Projects    []ProjectHours     `json:"projects,omitempty"`
	Total       decimal.Decimal    `json:"total" example:"8"`
}

// PersonOverview is the day-by-day state of one person over a range.
type PersonOverview struct {
	PersonID uuid.UUID       `json:"personId" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Name     string          `json:"name" example:"Anna Lindqvist"`
	Role     string          `json:"role" example:"Backend Developer"`
	Capacity decimal.Decimal `json:"capacity" example:"8"`
	Days     []PersonDay     `json:"days"`
}

// Occupancy partitions the inclusive range into ISO (year, week) buckets
// for one person. Per bucket, the working days falling both in the week
// and in the range are counted and the occupancy percentage is computed
// against them. A bucket without working days has an occupancy of zero.
func Occupancy(personID uuid.UUID, from, until types.Date) ([]WeekBucket, error) {
	buckets := []WeekBucket{}
	if from.After(until) {
		return buckets, nil
	}

	var person models.Person
	err := models.DB.First(&person, personID).Error
	if err != nil {
		return nil, err
	}

	hoursPerDay, err := dailyHours(&models.Allocation{PersonID: personID}, from, until)
	if err != nil {
		return nil, err
	}

	holidays := calendar.Holidays(from.Year(), until.Year())
	index := map[[2]int]int{}

	for date := from; !date.After(until); date = date.AddDays(1) {
		year, week := date.ISOWeek()

		i, ok := index[[2]int{year, week}]
		if !ok {
			i = len(buckets)
			index[[2]int{year, week}] = i
			buckets = append(buckets, WeekBucket{Year: year, Week: week})
		}

		if calendar.IsWorkingDay(date, holidays) {
			buckets[i].WorkingDays++
		}

		buckets[i].Allocated = buckets[i].Allocated.Add(hoursPerDay[date.String()])
	}

	hundred := decimal.NewFromInt(100)
	for i := range buckets {
		if buckets[i].WorkingDays == 0 {
			buckets[i].Occupancy = decimal.Zero
			continue
		}

		available := person.Capacity.Mul(decimal.NewFromInt(int64(buckets[i].WorkingDays)))
		buckets[i].Occupancy = buckets[i].Allocated.Mul(hundred).Div(available).Round(1)
	}

	return buckets, nil
}

// TeamOverview reports, per active person and per given working day,
// exactly one of three states: absent, allocated or free.
func TeamOverview(from, until types.Date, workingDays []types.Date) ([]PersonOverview, error) {
	persons, err := activePersons()
	if err != nil {
		return nil, err
	}

	var allocations []models.Allocation
	err = models.DB.
		Preload("Project").
		Where("date(date) >= date(?) AND date(date) <= date(?)", from, until).
		Order("date ASC").
		Find(&allocations).
		Error
	if err != nil {
		return nil, err
	}

	byDay := make(map[dayKey][]models.Allocation)
	for _, allocation := range allocations {
		key := dayKey{allocation.PersonID, allocation.Date.String()}
		byDay[key] = append(byDay[key], allocation)
	}

	absent, err := absenceDays(from, until)
	if err != nil {
		return nil, err
	}

	overview := make([]PersonOverview, 0, len(persons))
	for _, person := range persons {
		row := PersonOverview{
			PersonID: person.ID,
			Name:     person.Name,
			Role:     person.Role,
			Capacity: person.Capacity,
			Days:     make([]PersonDay, 0, len(workingDays)),
		}

		for _, date := range workingDays {
			key := dayKey{person.ID, date.String()}
			day := PersonDay{Date: date}

			switch {
			case absent[key] != "":
				day.State = StateAbsent
				day.AbsenceType = absent[key]
			case len(byDay[key]) > 0:
				day.State = StateAllocated
				for _, allocation := range byDay[key] {
					day.Projects = append(day.Projects, ProjectHours{
						ProjectID:   allocation.ProjectID,
						ProjectName: allocation.Project.Name,
						Color:       allocation.Project.Color,
						Hours:       allocation.Hours,
					})
					day.Total = day.Total.Add(allocation.Hours)
				}
			default:
				day.State = StateFree
			}

			row.Days = append(row.Days, day)
		}

		overview = append(overview, row)
	}

	return overview, nil
}

// dailyHours returns the summed hours per date for allocations matching
// the condition in the inclusive range, keyed by the date string.
func dailyHours(condition *models.Allocation, from, until types.Date) (map[string]decimal.Decimal, error) {
	var allocations []models.Allocation
	err := models.DB.
		Where(condition).
		Where("date(date) >= date(?) AND date(date) <= date(?)", from, until).
		Find(&allocations).
		Error
	if err != nil {
		return nil, err
	}

	hours := make(map[string]decimal.Decimal, len(allocations))
	for _, allocation := range allocations {
		key := allocation.Date.String()
		hours[key] = hours[key].Add(allocation.Hours)
	}

	return hours, nil
}
