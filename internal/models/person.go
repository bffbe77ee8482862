package models

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Person is a member of the team that work can be allocated to.
type Person struct {
	DefaultModel
	Name     string          `gorm:"uniqueIndex"`
	Role     string
	Capacity decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Available hours per working day
	Archived bool
}

func (p *Person) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Role = strings.TrimSpace(p.Role)

	if p.Name == "" {
		return ErrNameRequired
	}

	return nil
}

func (p *Person) BeforeCreate(tx *gorm.DB) error {
	_ = p.DefaultModel.BeforeCreate(tx)

	// A person works a standard eight hour day unless configured otherwise
	if p.Capacity.IsZero() {
		p.Capacity = decimal.NewFromInt(8)
	}

	return nil
}

// Returns all persons on this instance for export
func (Person) Export() (json.RawMessage, error) {
	var persons []Person
	err := DB.Where(&Person{}).Find(&persons).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&persons)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
