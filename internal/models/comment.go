package models

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/teamplan/backend/internal/types"
	"gorm.io/gorm"
)

// Comment is a free-text annotation for a person on a date. It never
// affects computed metrics.
type Comment struct {
	DefaultModel
	PersonID uuid.UUID  `gorm:"uniqueIndex:comment_day"`
	Person   Person     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Date     types.Date `gorm:"uniqueIndex:comment_day"`
	Text     string
}

func (c *Comment) BeforeSave(_ *gorm.DB) error {
	c.Text = strings.TrimSpace(c.Text)
	return nil
}

// Returns all comments on this instance for export
func (Comment) Export() (json.RawMessage, error) {
	var comments []Comment
	err := DB.Where(&Comment{}).Find(&comments).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&comments)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
