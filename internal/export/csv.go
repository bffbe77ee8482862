// Package export renders planning data into downloadable files. All
// functions return an in-memory buffer so the HTTP layer only has to set
// the response headers and stream it out.
package export

import (
	"bytes"
	"encoding/csv"
	"sort"
	"strconv"
	"strings"

	"github.com/teamplan/backend/internal/models"
	"github.com/teamplan/backend/internal/reports"
	"github.com/teamplan/backend/internal/types"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// csvSeparator keeps the files openable in spreadsheet tools configured
// for European locales.
const csvSeparator = ';'

// AllocationsCSV renders every allocation in the inclusive range, ordered
// by date, person name, then project name.
func AllocationsCSV(from, until types.Date) (*bytes.Buffer, error) {
	var allocations []models.Allocation
	err := models.DB.
		Preload("Person").
		Preload("Project").
		Where("date(date) >= date(?) AND date(date) <= date(?)", from, until).
		Find(&allocations).
		Error
	if err != nil {
		return nil, err
	}

	sort.Slice(allocations, func(i, j int) bool {
		if !allocations[i].Date.Equal(allocations[j].Date) {
			return allocations[i].Date.Before(allocations[j].Date)
		}
		if allocations[i].Person.Name != allocations[j].Person.Name {
			return allocations[i].Person.Name < allocations[j].Person.Name
		}
		return allocations[i].Project.Name < allocations[j].Project.Name
	})

	buffer := &bytes.Buffer{}
	writer := csv.NewWriter(buffer)
	writer.Comma = csvSeparator

	records := [][]string{{"Person", "Project", "Date", "Hours"}}
	for _, allocation := range allocations {
		records = append(records, []string{
			allocation.Person.Name,
			allocation.Project.Name,
			allocation.Date.String(),
			allocation.Hours.String(),
		})
	}

	err = writer.WriteAll(records)
	if err != nil {
		return nil, err
	}

	return buffer, nil
}

// PersonnelCSV renders the whole roster, archived persons included, with
// the skill tags joined into one column. Names sort with Swedish
// collation so Å, Ä and Ö end up after Z.
func PersonnelCSV() (*bytes.Buffer, error) {
	var persons []models.Person
	err := models.DB.Find(&persons).Error
	if err != nil {
		return nil, err
	}

	collator := collate.New(language.Swedish)
	sort.Slice(persons, func(i, j int) bool {
		return collator.CompareString(persons[i].Name, persons[j].Name) < 0
	})

	buffer := &bytes.Buffer{}
	writer := csv.NewWriter(buffer)
	writer.Comma = csvSeparator

	records := [][]string{{"Name", "Role", "Capacity", "Status", "Skills"}}
	for _, person := range persons {
		status := "active"
		if person.Archived {
			status = "archived"
		}

		skills, err := models.Skills(person.ID)
		if err != nil {
			return nil, err
		}

		records = append(records, []string{
			person.Name,
			person.Role,
			person.Capacity.String(),
			status,
			strings.Join(skills, ", "),
		})
	}

	err = writer.WriteAll(records)
	if err != nil {
		return nil, err
	}

	return buffer, nil
}

// OccupancyCSV renders the occupancy report of the inclusive range.
func OccupancyCSV(from, until types.Date) (*bytes.Buffer, error) {
	rows, err := reports.OccupancyReport(from, until)
	if err != nil {
		return nil, err
	}

	buffer := &bytes.Buffer{}
	writer := csv.NewWriter(buffer)
	writer.Comma = csvSeparator

	records := [][]string{{"Name", "Role", "Working days", "Available hours", "Allocated hours", "Occupancy %"}}
	for _, row := range rows {
		records = append(records, []string{
			row.Name,
			row.Role,
			strconv.Itoa(row.WorkingDays),
			row.Available.String(),
			row.Allocated.String(),
			row.Occupancy.String(),
		})
	}

	err = writer.WriteAll(records)
	if err != nil {
		return nil, err
	}

	return buffer, nil
}
