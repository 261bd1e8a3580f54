package database

import (
	"gorm.io/gorm"
)

type Database struct {
	projectRepo *ProjectRepo
	skillRepo   *SkillRepo
	messageRepo *MessageRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		projectRepo: NewProjectRepo(db),
		skillRepo:   NewSkillRepo(db),
		messageRepo: NewMessageRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}

func (d Database) MessageRepo() *MessageRepo {
	return d.messageRepo
}
