package database

import (
	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
)

type SkillRepo struct {
	db *gorm.DB
}

func NewSkillRepo(db *gorm.DB) *SkillRepo {
	return &SkillRepo{db}
}

// FindAll returns all skills from the database
func (r *SkillRepo) FindAll() ([]models.Skill, error) {
	var skills []models.Skill
	err := r.db.Find(&skills).Error
	return skills, err
}

// AddBatch inserts skills in a single statement. Used by the seed routine only.
func (r *SkillRepo) AddBatch(skills []models.Skill) error {
	return r.db.Create(&skills).Error
}
