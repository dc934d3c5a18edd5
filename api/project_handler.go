package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/project-editor-backend/document"
	"github.com/rpupo63/project-editor-backend/errs"
	"github.com/rpupo63/project-editor-backend/models"
	"github.com/rpupo63/project-editor-backend/render"
	"github.com/rpupo63/project-editor-backend/services"
)

// projectReader is the read/delete surface the handler needs from the project
// repository.
type projectReader interface {
	FindAll() ([]*models.Project, error)
	FindByID(id uuid.UUID) (*models.Project, error)
	Delete(id uuid.UUID) error
}

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	assembler   services.Assembler
	projectRepo projectReader
}

func newProjectHandler(assembler services.Assembler, projectRepo projectReader) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		assembler:   assembler,
		projectRepo: projectRepo,
	}
}

// projectRequest is the submission payload: form metadata plus the document
// saved out of the block editor.
type projectRequest struct {
	services.FormInput
	ContentJSON document.Document `json:"contentJson"`
}

// ProjectCollection represents multiple projects
type ProjectCollection struct {
	Projects []*models.Project `json:"projects"`
	Total    int               `json:"total"`
}

// RenderedProject is the read-only view of one project.
type RenderedProject struct {
	Title string        `json:"title"`
	Units []render.Unit `json:"units"`
	HTML  string        `json:"html"`
}

// getAllProjects retrieves all projects
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		h.responder.WriteJSON(w, ProjectCollection{
			Projects: projects,
			Total:    len(projects),
		})
	}
}

// getProject retrieves a specific project by ID
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project, ok := h.findProject(w, r)
		if !ok {
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// viewProject renders a project's document to read-only HTML, block by block
func (h projectHandler) viewProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project, ok := h.findProject(w, r)
		if !ok {
			return
		}

		result := render.RenderDocument(project.Title, project.ContentJSON.Document())

		h.responder.WriteJSON(w, RenderedProject{
			Title: result.Title,
			Units: result.Units,
			HTML:  result.HTML(),
		})
	}
}

// createProject assembles, validates and persists a new project
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req projectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("project", err))
			return
		}

		project, err := h.assembler.Submit(r.Context(), services.StaticDocument(req.ContentJSON), req.FormInput)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, project)
	}
}

// updateProject recreates an existing project wholesale under its ID
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := h.parseProjectID(w, r)
		if !ok {
			return
		}

		// Verify project exists
		existing, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		var req projectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("project", err))
			return
		}

		project, err := h.assembler.Resubmit(r.Context(), projectID, services.StaticDocument(req.ContentJSON), req.FormInput)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// deleteProject deletes a project by ID
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project, ok := h.findProject(w, r)
		if !ok {
			return
		}

		if err := h.projectRepo.Delete(project.ID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}

func (h projectHandler) parseProjectID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	projectIDStr := chi.URLParam(r, "projectID")
	if projectIDStr == "" {
		h.responder.WriteError(w, errs.NewBadRequestError("missing projectID"))
		return uuid.Nil, false
	}

	projectID, err := uuid.Parse(projectIDStr)
	if err != nil {
		h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
		return uuid.Nil, false
	}
	return projectID, true
}

func (h projectHandler) findProject(w http.ResponseWriter, r *http.Request) (*models.Project, bool) {
	projectID, ok := h.parseProjectID(w, r)
	if !ok {
		return nil, false
	}

	project, err := h.projectRepo.FindByID(projectID)
	if err != nil {
		h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
		return nil, false
	}
	if project == nil {
		h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
		return nil, false
	}
	return project, true
}
