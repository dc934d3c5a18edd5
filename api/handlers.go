package api

import (
	"github.com/rpupo63/project-editor-backend/database"
	"github.com/rpupo63/project-editor-backend/services"
	"github.com/rpupo63/project-editor-backend/storage"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler projectHandler
	uploadHandler  uploadHandler
	draftHandler   draftHandler
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, store storage.Store) *routeHandlers {
	assembler := services.NewAssembler(database.ProjectRepo())
	uploader := services.NewUploader(store)

	return &routeHandlers{
		projectHandler: newProjectHandler(assembler, database.ProjectRepo()),
		uploadHandler:  newUploadHandler(uploader),
		draftHandler:   newDraftHandler(database.DraftRepo()),
	}
}
