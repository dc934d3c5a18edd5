package api

import (
	"github.com/go-chi/chi/v5"
)

// setupFrontendRoutes sets up all routes consumed by the editor frontend
func setupFrontendRoutes(r chi.Router, handlers *routeHandlers) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Project Handler endpoints
		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/project/{projectID}", handlers.projectHandler.getProject())
		r.Get("/project/{projectID}/view", handlers.projectHandler.viewProject())
		r.Post("/project", handlers.projectHandler.createProject())
		r.Put("/project/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/project/{projectID}", handlers.projectHandler.deleteProject())

		// Upload Handler endpoints
		r.Post("/upload-image", handlers.uploadHandler.uploadImage())
		r.Get("/upload-image", handlers.uploadHandler.uploadStatus())

		// Draft Handler endpoints
		r.Put("/draft/{draftKey}", handlers.draftHandler.saveDraft())
		r.Get("/draft/{draftKey}", handlers.draftHandler.getDraft())
		r.Delete("/draft/{draftKey}", handlers.draftHandler.deleteDraft())
	})
}
