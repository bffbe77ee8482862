package models

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/teamplan/backend/internal/types"
	"gorm.io/gorm"
)

// AbsenceType is the reason a person is unavailable on a date.
//
// swagger:enum AbsenceType
type AbsenceType string

const (
	AbsenceVacation  AbsenceType = "VACATION"
	AbsenceSick      AbsenceType = "SICK"
	AbsenceChildcare AbsenceType = "CHILDCARE"
	AbsenceUnpaid    AbsenceType = "UNPAID"
	AbsenceTraining  AbsenceType = "TRAINING"
	AbsenceOther     AbsenceType = "OTHER"
)

// Absence marks a person as unavailable on a date.
//
// There is at most one absence per (person, date); setting a new type for
// the same day overwrites the old one. An absence takes precedence over any
// allocation rows for the same day in all derived views, but allocations
// are neither rejected nor cleaned up while it exists.
type Absence struct {
	DefaultModel
	PersonID uuid.UUID   `gorm:"uniqueIndex:absence_day"`
	Person   Person      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Date     types.Date  `gorm:"uniqueIndex:absence_day"`
	Type     AbsenceType
	Note     string
}

func (a *Absence) BeforeSave(_ *gorm.DB) error {
	a.Note = strings.TrimSpace(a.Note)

	switch a.Type {
	case AbsenceVacation, AbsenceSick, AbsenceChildcare, AbsenceUnpaid, AbsenceTraining, AbsenceOther:
		return nil
	}

	return ErrAbsenceTypeInvalid
}

// Returns all absences on this instance for export
func (Absence) Export() (json.RawMessage, error) {
	var absences []Absence
	err := DB.Where(&Absence{}).Find(&absences).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&absences)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
