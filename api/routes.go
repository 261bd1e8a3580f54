package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// setupRoutes registers the public API surface. Everything outside these four
// routes, including unknown methods on known paths, answers with the generic
// not-found body.
func setupRoutes(r chi.Router, handlers *routeHandlers) {
	r.Group(func(r chi.Router) {
		r.Use(RequestIDMiddleware)
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/projects", handlers.projectHandler.getAllProjects())
		// A non-numeric id never matches and falls through to NotFound.
		r.Get("/projects/{projectID:[0-9]+}", handlers.projectHandler.getProject())

		r.Get("/skills", handlers.skillHandler.getAllSkills())

		r.Post("/contact", handlers.contactHandler.submitMessage())
	})

	routingMiss := func(w http.ResponseWriter, r *http.Request) {
		responder := NewResponder(log.Logger)
		responder.WriteJSONStatus(w, http.StatusNotFound, ErrorResponse{Message: "Not found"})
	}
	r.NotFound(routingMiss)
	r.MethodNotAllowed(routingMiss)
}
