package models

import "github.com/rpupo63/portfolio-backend/errs"

// Project represents a portfolio project shown in the work grid
type Project struct {
	ID          int      `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Title       string   `json:"title" db:"title" gorm:"type:text;not null"`
	Description string   `json:"description" db:"description" gorm:"type:text;not null"`
	ImageURL    string   `json:"imageUrl" db:"image_url" gorm:"column:image_url;type:text;not null"`
	LiveLink    *string  `json:"liveLink" db:"live_link" gorm:"column:live_link;type:text"`
	GithubLink  *string  `json:"githubLink" db:"github_link" gorm:"column:github_link;type:text"`
	Tags        []string `json:"tags" db:"tags" gorm:"serializer:json;not null"`
	Category    string   `json:"category" db:"category" gorm:"type:text;not null"`
	Featured    bool     `json:"featured" db:"featured" gorm:"not null;default:false"`
}

// NewProject is the set of fields accepted when creating a project. The id is
// always server-assigned and never accepted from input.
type NewProject struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	LiveLink    *string  `json:"liveLink"`
	GithubLink  *string  `json:"githubLink"`
	Tags        []string `json:"tags"`
	Category    string   `json:"category"`
	Featured    bool     `json:"featured"`
}

// Validate reports the first failing field, or nil when the input is acceptable.
func (p NewProject) Validate() *errs.ApiErr {
	if p.Title == "" {
		return errs.NewMissingRequiredFieldError("title")
	}
	if p.Description == "" {
		return errs.NewMissingRequiredFieldError("description")
	}
	if p.ImageURL == "" {
		return errs.NewMissingRequiredFieldError("imageUrl")
	}
	if len(p.Tags) == 0 {
		return errs.NewMissingRequiredFieldError("tags")
	}
	if p.Category == "" {
		return errs.NewMissingRequiredFieldError("category")
	}
	return nil
}

// Model converts the validated input into a persistable Project.
func (p NewProject) Model() Project {
	return Project{
		Title:       p.Title,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		LiveLink:    p.LiveLink,
		GithubLink:  p.GithubLink,
		Tags:        p.Tags,
		Category:    p.Category,
		Featured:    p.Featured,
	}
}
