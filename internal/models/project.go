package models

import (
	"encoding/json"
	"strings"

	"github.com/teamplan/backend/internal/types"
	"gorm.io/gorm"
)

// Project is an activity that hours are allocated to. The start and end
// dates are informational and are not enforced against allocations.
type Project struct {
	DefaultModel
	Name      string `gorm:"uniqueIndex"`
	Color     string
	StartDate *types.Date
	EndDate   *types.Date
	Archived  bool
}

func (p *Project) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)

	if p.Name == "" {
		return ErrNameRequired
	}

	return nil
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	_ = p.DefaultModel.BeforeCreate(tx)

	if p.Color == "" {
		p.Color = "#3498db"
	}

	return nil
}

// Returns all projects on this instance for export
func (Project) Export() (json.RawMessage, error) {
	var projects []Project
	err := DB.Where(&Project{}).Find(&projects).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&projects)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
