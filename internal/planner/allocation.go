// Package planner implements the allocation engine: slot mutations, load
// aggregation and capacity analysis on top of the entity store.
//
// All aggregates are computed on demand, nothing is materialized. Every
// operation takes its full input explicitly, there is no ambient selection
// state.
package planner

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/teamplan/backend/internal/models"
	"github.com/teamplan/backend/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SetAllocation sets the hour value for one (person, project, date) slot.
//
// A value of zero or below deletes the slot, a positive value inserts or
// overwrites it. The operation is idempotent.
func SetAllocation(personID, projectID uuid.UUID, date types.Date, hours decimal.Decimal) error {
	return setAllocation(models.DB, personID, projectID, date, hours)
}

func setAllocation(tx *gorm.DB, personID, projectID uuid.UUID, date types.Date, hours decimal.Decimal) error {
	if !hours.IsPositive() {
		return tx.
			Where(&models.Allocation{PersonID: personID, ProjectID: projectID, Date: date}).
			Delete(&models.Allocation{}).
			Error
	}

	allocation := models.Allocation{
		PersonID:  personID,
		ProjectID: projectID,
		Date:      date,
		Hours:     hours,
	}

	return tx.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "person_id"}, {Name: "project_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"hours", "updated_at"}),
		}).
		Create(&allocation).
		Error
}

// BulkAllocate applies the single-slot rule to every date in the list as
// one transaction: a concurrent reader never observes a partial batch.
// Non-positive hours delete all listed slots for the (person, project)
// pair.
func BulkAllocate(personID, projectID uuid.UUID, dates []types.Date, hours decimal.Decimal) error {
	return models.DB.Transaction(func(tx *gorm.DB) error {
		for _, date := range dates {
			err := setAllocation(tx, personID, projectID, date, hours)
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// CopyWeek copies a person's allocations from the five-day window starting
// at fromMonday onto the week starting at toMonday and returns the number
// of slots copied.
//
// The window is a fixed Monday to Friday span regardless of working days.
// Copied slots overwrite their destination; destination slots outside of
// the copied set are left untouched.
func CopyWeek(personID uuid.UUID, fromMonday, toMonday types.Date) (int, error) {
	var source []models.Allocation
	err := models.DB.
		Where(&models.Allocation{PersonID: personID}).
		Where("date(date) >= date(?) AND date(date) <= date(?)", fromMonday, fromMonday.AddDays(4)).
		Find(&source).
		Error
	if err != nil {
		return 0, err
	}

	offset := fromMonday.DaysUntil(toMonday)

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		for _, allocation := range source {
			err := setAllocation(tx, personID, allocation.ProjectID, allocation.Date.AddDays(offset), allocation.Hours)
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(source), nil
}

// DailyLoad returns the summed allocated hours of a person on a date
// across all projects, zero if there are none.
func DailyLoad(personID uuid.UUID, date types.Date) (decimal.Decimal, error) {
	var total decimal.NullDecimal

	err := models.DB.Table("allocations").
		Where("person_id = ?", personID).
		Where("date(date) = date(?)", date).
		Select("SUM(hours)").
		Row().
		Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}

	return total.Decimal, nil
}
