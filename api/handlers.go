package api

import (
	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, notifier *services.ContactNotifier) *routeHandlers {
	return &routeHandlers{
		projectHandler: newProjectHandler(database.ProjectRepo()),
		skillHandler:   newSkillHandler(database.SkillRepo()),
		contactHandler: newContactHandler(database.MessageRepo(), notifier),
	}
}
