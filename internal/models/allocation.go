package models

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/teamplan/backend/internal/types"
)

// Allocation assigns hours of one person to one project on one date.
//
// There is at most one row per (person, project, date). A row only exists
// while its hour value is positive: setting a slot to zero or below deletes
// the row, so readers never need to distinguish an explicit zero from an
// absent record.
type Allocation struct {
	DefaultModel
	PersonID  uuid.UUID       `gorm:"uniqueIndex:allocation_slot"`
	Person    Person          `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	ProjectID uuid.UUID       `gorm:"uniqueIndex:allocation_slot"`
	Project   Project         `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Date      types.Date      `gorm:"uniqueIndex:allocation_slot"`
	Hours     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

// Returns all allocations on this instance for export
func (Allocation) Export() (json.RawMessage, error) {
	var allocations []Allocation
	err := DB.Where(&Allocation{}).Find(&allocations).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&allocations)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
