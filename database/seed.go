package database

import (
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rs/zerolog/log"
)

// defaultProjects is the fixed catalogue inserted on first start.
var defaultProjects = []models.Project{
	{
		Title:       "E-Commerce Platform",
		Description: "A full-featured Shopify store with custom theme development and app integration.",
		ImageURL:    "https://images.unsplash.com/photo-1557821552-17105176677c?w=800&q=80",
		Tags:        []string{"Shopify", "Liquid", "JavaScript"},
		Category:    "Shopify",
		LiveLink:    strPtr("https://example.com"),
		Featured:    true,
	},
	{
		Title:       "Corporate Website",
		Description: "Custom WordPress theme development for a corporate client with heavy traffic.",
		ImageURL:    "https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=800&q=80",
		Tags:        []string{"WordPress", "PHP", "MySQL"},
		Category:    "WordPress",
		Featured:    true,
	},
	{
		Title:       "SaaS Dashboard",
		Description: "A Laravel-based dashboard for managing user subscriptions and analytics.",
		ImageURL:    "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=800&q=80",
		Tags:        []string{"Laravel", "Vue.js", "Tailwind"},
		Category:    "Laravel",
		Featured:    true,
	},
	{
		Title:       "Portfolio v1",
		Description: "My previous portfolio built with pure HTML/CSS and JavaScript.",
		ImageURL:    "https://images.unsplash.com/photo-1507238691740-187a5b1d37b8?w=800&q=80",
		Tags:        []string{"HTML", "CSS", "JavaScript"},
		Category:    "Frontend",
		Featured:    false,
	},
}

var defaultSkills = []models.Skill{
	{Name: "HTML/CSS", Category: "Frontend", Proficiency: 95},
	{Name: "JavaScript", Category: "Frontend", Proficiency: 90},
	{Name: "React", Category: "Frontend", Proficiency: 75, Icon: strPtr("SiReact")},
	{Name: "Next.js", Category: "Frontend", Proficiency: 70, Icon: strPtr("SiNextdotjs")},
	{Name: "PHP", Category: "Backend", Proficiency: 85, Icon: strPtr("SiPhp")},
	{Name: "Laravel", Category: "Backend", Proficiency: 80, Icon: strPtr("SiLaravel")},
	{Name: "Node.js", Category: "Backend", Proficiency: 60, Icon: strPtr("SiNodedotjs")},
	{Name: "WordPress", Category: "CMS", Proficiency: 95, Icon: strPtr("SiWordpress")},
	{Name: "Shopify", Category: "E-commerce", Proficiency: 85, Icon: strPtr("SiShopify")},
}

// Seed populates the reference tables with the default catalogue when the
// project table is empty, and does nothing otherwise. Skills ride on the same
// emptiness check so both tables fill together on first start. Run once at
// startup, before serving; never per request.
func Seed(db Database) error {
	count, err := db.ProjectRepo().Count()
	if err != nil {
		return err
	}

	if count > 0 {
		log.Debug().Int64("projects", count).Msg("reference tables already seeded")
		return nil
	}

	// Insert copies so GORM's id back-fill never mutates the catalogue.
	projects := make([]models.Project, len(defaultProjects))
	copy(projects, defaultProjects)
	if err := db.ProjectRepo().AddBatch(projects); err != nil {
		return err
	}

	skills := make([]models.Skill, len(defaultSkills))
	copy(skills, defaultSkills)
	if err := db.SkillRepo().AddBatch(skills); err != nil {
		return err
	}

	log.Info().
		Int("projects", len(defaultProjects)).
		Int("skills", len(defaultSkills)).
		Msg("seeded reference tables")
	return nil
}

func strPtr(s string) *string {
	return &s
}
