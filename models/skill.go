package models

import "github.com/rpupo63/portfolio-backend/errs"

// Skill represents a single skill bar, grouped by category on the client
type Skill struct {
	ID          int     `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Name        string  `json:"name" db:"name" gorm:"type:text;not null"`
	Category    string  `json:"category" db:"category" gorm:"type:text;not null"`
	Proficiency int     `json:"proficiency" db:"proficiency" gorm:"not null"`
	Icon        *string `json:"icon" db:"icon" gorm:"type:text"`
}

// NewSkill is the set of fields accepted when creating a skill. The icon is an
// opaque identifier resolved by the presentation layer; no integrity check here.
type NewSkill struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Proficiency int     `json:"proficiency"`
	Icon        *string `json:"icon"`
}

// Validate reports the first failing field, or nil when the input is acceptable.
func (s NewSkill) Validate() *errs.ApiErr {
	if s.Name == "" {
		return errs.NewMissingRequiredFieldError("name")
	}
	if s.Category == "" {
		return errs.NewMissingRequiredFieldError("category")
	}
	if s.Proficiency < 0 || s.Proficiency > 100 {
		return errs.NewInvalidFieldError("proficiency", "must be between 0 and 100")
	}
	return nil
}

// Model converts the validated input into a persistable Skill.
func (s NewSkill) Model() Skill {
	return Skill{
		Name:        s.Name,
		Category:    s.Category,
		Proficiency: s.Proficiency,
		Icon:        s.Icon,
	}
}
