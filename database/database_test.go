package database

import (
	"path/filepath"
	"testing"
	"time"

	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-backend/models"
)

func setupDatabase(t *testing.T) Database {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "portfolio.sqlite")
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	if err := db.AutoMigrate(&models.Project{}, &models.Skill{}, &models.Message{}); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return New(db)
}

func TestSeedPopulatesReferenceTables(t *testing.T) {
	db := setupDatabase(t)

	if err := Seed(db); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	projects, err := db.ProjectRepo().FindAll()
	if err != nil {
		t.Fatalf("FindAll() projects error = %v", err)
	}
	if len(projects) != 4 {
		t.Fatalf("projects len = %d, want 4", len(projects))
	}
	for _, p := range projects {
		if p.ID <= 0 {
			t.Errorf("project %q id = %d, want > 0", p.Title, p.ID)
		}
		if p.Title == "" || p.Description == "" || p.ImageURL == "" || p.Category == "" {
			t.Errorf("project %q has an empty required field", p.Title)
		}
		if len(p.Tags) == 0 {
			t.Errorf("project %q has no tags", p.Title)
		}
	}

	skills, err := db.SkillRepo().FindAll()
	if err != nil {
		t.Fatalf("FindAll() skills error = %v", err)
	}
	if len(skills) != 9 {
		t.Fatalf("skills len = %d, want 9", len(skills))
	}
	for _, s := range skills {
		if s.Name == "" || s.Category == "" {
			t.Errorf("skill %q has an empty required field", s.Name)
		}
		if s.Proficiency < 0 || s.Proficiency > 100 {
			t.Errorf("skill %q proficiency = %d, want 0..100", s.Name, s.Proficiency)
		}
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	db := setupDatabase(t)

	if err := Seed(db); err != nil {
		t.Fatalf("first Seed() error = %v", err)
	}
	if err := Seed(db); err != nil {
		t.Fatalf("second Seed() error = %v", err)
	}

	projectCount, err := db.ProjectRepo().Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if projectCount != 4 {
		t.Fatalf("project count after reseed = %d, want 4", projectCount)
	}

	skills, err := db.SkillRepo().FindAll()
	if err != nil {
		t.Fatalf("FindAll() skills error = %v", err)
	}
	if len(skills) != 9 {
		t.Fatalf("skill count after reseed = %d, want 9", len(skills))
	}
}

func TestProjectFindByID(t *testing.T) {
	db := setupDatabase(t)

	if err := Seed(db); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	projects, err := db.ProjectRepo().FindAll()
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}

	found, err := db.ProjectRepo().FindByID(projects[0].ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if found == nil {
		t.Fatal("FindByID() = nil, want project")
	}
	if found.ID != projects[0].ID {
		t.Fatalf("FindByID() id = %d, want %d", found.ID, projects[0].ID)
	}
	if found.Title != projects[0].Title {
		t.Fatalf("FindByID() title = %q, want %q", found.Title, projects[0].Title)
	}
}

func TestProjectFindByIDMissingRowIsNotAnError(t *testing.T) {
	db := setupDatabase(t)

	found, err := db.ProjectRepo().FindByID(987654321)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if found != nil {
		t.Fatalf("FindByID() = %+v, want nil", found)
	}
}

func TestMessageAddAssignsServerFields(t *testing.T) {
	db := setupDatabase(t)

	before := time.Now().UTC()
	message := models.Message{
		Name:    "Ada",
		Email:   "ada@example.com",
		Message: "Hello there",
	}
	if err := db.MessageRepo().Add(&message); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if message.ID <= 0 {
		t.Fatalf("Add() id = %d, want > 0", message.ID)
	}
	if message.CreatedAt.Before(before.Add(-time.Second)) || message.CreatedAt.After(time.Now().UTC().Add(time.Second)) {
		t.Fatalf("Add() createdAt = %v, want around now", message.CreatedAt)
	}
}
