package models

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
)

// SkillTag is a free-form competence label for a person, unique per person.
type SkillTag struct {
	DefaultModel
	PersonID uuid.UUID `gorm:"uniqueIndex:skill_tag"`
	Person   Person    `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Tag      string    `gorm:"uniqueIndex:skill_tag"`
}

// ReplaceSkills sets the skill tags for a person, replacing the existing
// set wholesale. Empty tags and exact duplicates are silently skipped.
func ReplaceSkills(personID uuid.UUID, tags []string) error {
	tx := DB.Begin()

	err := tx.Where(&SkillTag{PersonID: personID}).Delete(&SkillTag{}).Error
	if err != nil {
		tx.Rollback()
		return err
	}

	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true

		err = tx.Create(&SkillTag{PersonID: personID, Tag: tag}).Error
		if err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit().Error
}

// Skills returns the skill tags of a person in alphabetical order.
func Skills(personID uuid.UUID) ([]string, error) {
	var tags []string
	err := DB.Model(&SkillTag{}).
		Where(&SkillTag{PersonID: personID}).
		Order("tag ASC").
		Pluck("tag", &tags).
		Error
	if err != nil {
		return nil, err
	}

	return tags, nil
}

// AllSkills returns every distinct skill tag in the system.
func AllSkills() ([]string, error) {
	var tags []string
	err := DB.Model(&SkillTag{}).
		Distinct("tag").
		Order("tag ASC").
		Pluck("tag", &tags).
		Error
	if err != nil {
		return nil, err
	}

	return tags, nil
}

// Returns all skill tags on this instance for export
func (SkillTag) Export() (json.RawMessage, error) {
	var skills []SkillTag
	err := DB.Where(&SkillTag{}).Find(&skills).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&skills)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
