package export

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/teamplan/backend/internal/models"
	"github.com/teamplan/backend/internal/types"
	"github.com/xuri/excelize/v2"
)

// AllocationsXLSX renders the allocations of the inclusive range as a
// workbook with one sheet per ISO week. Dates form the columns, persons
// the rows and every cell holds the summed hours of that person-day.
func AllocationsXLSX(from, until types.Date) (*bytes.Buffer, error) {
	var allocations []models.Allocation
	err := models.DB.
		Preload("Person").
		Where("date(date) >= date(?) AND date(date) <= date(?)", from, until).
		Find(&allocations).
		Error
	if err != nil {
		return nil, err
	}

	type weekID struct {
		year, week int
	}
	type cellKey struct {
		personID uuid.UUID
		date     string
	}

	weeks := map[weekID]map[string]bool{}  // week -> allocated date strings
	names := map[uuid.UUID]string{}        // person -> display name
	cells := map[cellKey]decimal.Decimal{} // person-day -> summed hours
	personsPerWeek := map[weekID]map[uuid.UUID]bool{}

	for _, allocation := range allocations {
		year, week := allocation.Date.ISOWeek()
		id := weekID{year, week}

		if weeks[id] == nil {
			weeks[id] = map[string]bool{}
			personsPerWeek[id] = map[uuid.UUID]bool{}
		}
		weeks[id][allocation.Date.String()] = true
		personsPerWeek[id][allocation.PersonID] = true
		names[allocation.PersonID] = allocation.Person.Name

		key := cellKey{allocation.PersonID, allocation.Date.String()}
		cells[key] = cells[key].Add(allocation.Hours)
	}

	orderedWeeks := make([]weekID, 0, len(weeks))
	for id := range weeks {
		orderedWeeks = append(orderedWeeks, id)
	}
	sort.Slice(orderedWeeks, func(i, j int) bool {
		if orderedWeeks[i].year != orderedWeeks[j].year {
			return orderedWeeks[i].year < orderedWeeks[j].year
		}
		return orderedWeeks[i].week < orderedWeeks[j].week
	})

	file := excelize.NewFile()
	defer file.Close()

	for _, id := range orderedWeeks {
		sheet := fmt.Sprintf("Vecka %d %d", id.week, id.year)
		_, err := file.NewSheet(sheet)
		if err != nil {
			return nil, err
		}

		dates := make([]string, 0, len(weeks[id]))
		for date := range weeks[id] {
			dates = append(dates, date)
		}
		sort.Strings(dates)

		persons := make([]uuid.UUID, 0, len(personsPerWeek[id]))
		for personID := range personsPerWeek[id] {
			persons = append(persons, personID)
		}
		sort.Slice(persons, func(i, j int) bool {
			return names[persons[i]] < names[persons[j]]
		})

		err = file.SetCellValue(sheet, "A1", "Person")
		if err != nil {
			return nil, err
		}
		for i, date := range dates {
			cell, err := excelize.CoordinatesToCellName(i+2, 1)
			if err != nil {
				return nil, err
			}
			if err := file.SetCellValue(sheet, cell, date); err != nil {
				return nil, err
			}
		}

		for r, personID := range persons {
			cell, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return nil, err
			}
			if err := file.SetCellValue(sheet, cell, names[personID]); err != nil {
				return nil, err
			}

			for c, date := range dates {
				hours, ok := cells[cellKey{personID, date}]
				if !ok {
					continue
				}

				cell, err := excelize.CoordinatesToCellName(c+2, r+2)
				if err != nil {
					return nil, err
				}
				value, _ := hours.Float64()
				if err := file.SetCellValue(sheet, cell, value); err != nil {
					return nil, err
				}
			}
		}

		err = file.SetColWidth(sheet, "A", "A", 24)
		if err != nil {
			return nil, err
		}
	}

	if len(orderedWeeks) > 0 {
		err = file.DeleteSheet("Sheet1")
		if err != nil {
			return nil, err
		}
	}

	return file.WriteToBuffer()
}
