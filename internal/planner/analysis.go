package planner

import (
	"sort"

	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"github.com/teamplan/backend/internal/models"
	"github.com/teamplan/backend/internal/types"
)

// OverloadedDay is one day on which a person's summed allocation exceeds
// their daily capacity.
type OverloadedDay struct {
	PersonID   uuid.UUID       `json:"personId" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	PersonName string          `json:"personName" example:"Anna Lindqvist"`
	Date       types.Date      `json:"date" example:"2026-03-02"`
	TotalHours decimal.Decimal `json:"totalHours" example:"9.5"` // Summed allocation on the day
	Capacity   decimal.Decimal `json:"capacity" example:"8"`     // The person's daily capacity
	Overtime   decimal.Decimal `json:"overtime" example:"1.5"`   // Hours above capacity
}

// UnallocatedDay is a working day on which an active person has neither
// an allocation nor an absence.
type UnallocatedDay struct {
	PersonID   uuid.UUID  `json:"personId" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	PersonName string     `json:"personName" example:"Anna Lindqvist"`
	Date       types.Date `json:"date" example:"2026-03-02"`
}

// AvailablePerson is a person with free capacity on a date.
type AvailablePerson struct {
	PersonID  uuid.UUID       `json:"personId" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Name      string          `json:"name" example:"Anna Lindqvist"`
	Role      string          `json:"role" example:"Backend Developer"`
	Capacity  decimal.Decimal `json:"capacity" example:"8"`
	Allocated decimal.Decimal `json:"allocated" example:"5"`
	Free      decimal.Decimal `json:"free" example:"3"`
	Skills    []string        `json:"skills"`
}

// FindOverloaded returns every (person, date) pair in the inclusive range
// where the summed allocation exceeds the person's capacity. Only active
// persons are considered. The result is ordered by date, then person name.
func FindOverloaded(from, until types.Date) ([]OverloadedDay, error) {
	days := []OverloadedDay{}

	err := models.DB.Table("allocations").
		Select("allocations.person_id AS person_id, people.name AS person_name, allocations.date AS date, SUM(allocations.hours) AS total_hours, people.capacity AS capacity").
		Joins("JOIN people ON people.id = allocations.person_id").
		Where("date(allocations.date) >= date(?) AND date(allocations.date) <= date(?)", from, until).
		Where("people.archived = ?", false).
		Group("allocations.person_id, allocations.date, people.name, people.capacity").
		Having("SUM(allocations.hours) > people.capacity").
		Order("allocations.date ASC, people.name ASC").
		Scan(&days).
		Error
	if err != nil {
		return nil, err
	}

	for i := range days {
		days[i].Overtime = days[i].TotalHours.Sub(days[i].Capacity)
	}

	return days, nil
}

// FindUnallocated returns, for every active person and every date in
// workingDays, the pairs where the person has no absence and no
// allocation. A person with an absence on a date is never reported for
// that date, independent of allocation state.
func FindUnallocated(from, until types.Date, workingDays []types.Date) ([]UnallocatedDay, error) {
	persons, err := activePersons()
	if err != nil {
		return nil, err
	}

	allocated, err := allocatedDays(from, until)
	if err != nil {
		return nil, err
	}

	absent, err := absenceDays(from, until)
	if err != nil {
		return nil, err
	}

	days := []UnallocatedDay{}
	for _, date := range workingDays {
		for _, person := range persons {
			key := dayKey{person.ID, date.String()}
			if allocated[key] || absent[key] != "" {
				continue
			}

			days = append(days, UnallocatedDay{
				PersonID:   person.ID,
				PersonName: person.Name,
				Date:       date,
			})
		}
	}

	return days, nil
}

// FindAvailable returns the active persons that have free capacity on the
// date, sorted by free hours in descending order. Persons with an absence
// on the date are never reported. If skillGlob is not empty, only persons
// with at least one skill tag matching the glob pattern are returned.
func FindAvailable(date types.Date, skillGlob string) ([]AvailablePerson, error) {
	persons, err := activePersons()
	if err != nil {
		return nil, err
	}

	absent, err := absenceDays(date, date)
	if err != nil {
		return nil, err
	}

	available := []AvailablePerson{}
	for _, person := range persons {
		if absent[dayKey{person.ID, date.String()}] != "" {
			continue
		}

		allocated, err := DailyLoad(person.ID, date)
		if err != nil {
			return nil, err
		}

		free := person.Capacity.Sub(allocated)
		if !free.IsPositive() {
			continue
		}

		skills, err := models.Skills(person.ID)
		if err != nil {
			return nil, err
		}

		if skillGlob != "" && !matchesSkill(skillGlob, skills) {
			continue
		}

		available = append(available, AvailablePerson{
			PersonID:  person.ID,
			Name:      person.Name,
			Role:      person.Role,
			Capacity:  person.Capacity,
			Allocated: allocated,
			Free:      free,
			Skills:    skills,
		})
	}

	sort.SliceStable(available, func(i, j int) bool {
		return available[i].Free.GreaterThan(available[j].Free)
	})

	return available, nil
}

func matchesSkill(pattern string, skills []string) bool {
	for _, skill := range skills {
		if glob.Glob(pattern, skill) {
			return true
		}
	}

	return false
}

type dayKey struct {
	personID uuid.UUID
	date     string
}

func activePersons() ([]models.Person, error) {
	var persons []models.Person
	err := models.DB.
		Where("archived = ?", false).
		Order("name ASC").
		Find(&persons).
		Error
	if err != nil {
		return nil, err
	}

	return persons, nil
}

// allocatedDays returns the set of (person, date) pairs in the range that
// have at least one allocation row.
func allocatedDays(from, until types.Date) (map[dayKey]bool, error) {
	var allocations []models.Allocation
	err := models.DB.
		Where("date(date) >= date(?) AND date(date) <= date(?)", from, until).
		Find(&allocations).
		Error
	if err != nil {
		return nil, err
	}

	days := make(map[dayKey]bool, len(allocations))
	for _, allocation := range allocations {
		days[dayKey{allocation.PersonID, allocation.Date.String()}] = true
	}

	return days, nil
}

// absenceDays returns the absence type per (person, date) pair in the
// range.
func absenceDays(from, until types.Date) (map[dayKey]models.AbsenceType, error) {
	var absences []models.Absence
	err := models.DB.
		Where("date(date) >= date(?) AND date(date) <= date(?)", from, until).
		Find(&absences).
		Error
	if err != nil {
		return nil, err
	}

	days := make(map[dayKey]models.AbsenceType, len(absences))
	for _, absence := range absences {
		days[dayKey{absence.PersonID, absence.Date.String()}] = absence.Type
	}

	return days, nil
}
