package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/project-editor-backend/document"
	"github.com/rpupo63/project-editor-backend/errs"
	"github.com/rpupo63/project-editor-backend/models"
	"github.com/rpupo63/project-editor-backend/schema"
	"github.com/rpupo63/project-editor-backend/summary"
)

// DefaultEditorVersion stamps documents and projects that arrive without a
// version of their own.
const DefaultEditorVersion = "2.31.0"

// DocumentSource provides the editor's current document on demand. It replaces
// a direct handle on an editor instance: the host asks for exactly one save
// when it needs one.
type DocumentSource interface {
	Save(ctx context.Context) (document.Document, error)
}

// StaticDocument adapts an already-saved document to DocumentSource.
type StaticDocument document.Document

func (d StaticDocument) Save(context.Context) (document.Document, error) {
	return document.Document(d), nil
}

// ProjectStore is the persistence surface the assembler hands validated
// projects to.
type ProjectStore interface {
	Add(project *models.Project) error
	Update(project *models.Project) error
}

// FormInput carries the independently edited metadata fields as they arrive
// from the form, before defaulting.
type FormInput struct {
	Title         string   `json:"title"`
	SubTitle      string   `json:"subTitle"`
	Thumbnail1    string   `json:"thumbnail1"`
	HashTag       []string `json:"hashTag"`
	StartDate     string   `json:"startDate"`
	EndDate       string   `json:"endDate"`
	Advisor       string   `json:"advisor"`
	Participants  []string `json:"participants"`
	Summary       string   `json:"summary"`
	EditorVersion string   `json:"editorVersion"`
}

// Assembler merges form metadata with a saved document into one project,
// validates the merged result and hands it to persistence.
type Assembler struct {
	store  ProjectStore
	logger zerolog.Logger
	now    func() time.Time
}

func NewAssembler(store ProjectStore) Assembler {
	logger := log.With().Str("serviceName", "assembler").Logger()

	return Assembler{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Assemble builds one project record from form fields and a saved document.
// Absent optional fields default to their canonical empty values, the document
// is stamped with time/version when the editor left them unset, and the
// summary is derived from the structured fields when not supplied. Assemble
// has no side effects; the same inputs produce the same record.
func (a Assembler) Assemble(form FormInput, doc document.Document) models.Project {
	if doc.Time == 0 {
		doc.Time = a.now().UnixMilli()
	}
	if doc.Version == "" {
		doc.Version = DefaultEditorVersion
	}

	editorVersion := form.EditorVersion
	if editorVersion == "" {
		editorVersion = DefaultEditorVersion
	}

	summaryText := form.Summary
	if summaryText == "" {
		summaryText = summary.Format(summary.Data{
			StartDate:    form.StartDate,
			EndDate:      form.EndDate,
			Advisor:      form.Advisor,
			Participants: form.Participants,
		})
	}

	hashTag := form.HashTag
	if hashTag == nil {
		hashTag = []string{}
	}
	participants := form.Participants
	if participants == nil {
		participants = []string{}
	}

	return models.Project{
		Title:         form.Title,
		SubTitle:      form.SubTitle,
		Thumbnail1:    form.Thumbnail1,
		HashTag:       models.StringList(hashTag),
		StartDate:     form.StartDate,
		EndDate:       form.EndDate,
		Advisor:       form.Advisor,
		Participants:  models.StringList(participants),
		Summary:       summaryText,
		ContentJSON:   models.DocumentColumn(doc),
		EditorVersion: editorVersion,
	}
}

// Submit assembles, validates and persists a new project. On validation
// failure the aggregated issue list comes back as the error and nothing is
// persisted. A nil source is a programmer error, surfaced to the caller.
func (a Assembler) Submit(ctx context.Context, src DocumentSource, form FormInput) (*models.Project, error) {
	project, err := a.assembleFromSource(ctx, src, form)
	if err != nil {
		return nil, err
	}

	if err := a.store.Add(project); err != nil {
		return nil, errs.NewDatabaseError("create", "project", err)
	}

	a.logger.Info().Str("projectId", project.ID.String()).Str("title", project.Title).Msg("project created")
	return project, nil
}

// Resubmit re-derives and re-validates the whole project under an existing ID.
// Edits have no partial-patch semantics: the record is recreated wholesale.
func (a Assembler) Resubmit(ctx context.Context, id uuid.UUID, src DocumentSource, form FormInput) (*models.Project, error) {
	project, err := a.assembleFromSource(ctx, src, form)
	if err != nil {
		return nil, err
	}

	project.ID = id
	if err := a.store.Update(project); err != nil {
		return nil, errs.NewDatabaseError("update", "project", err)
	}

	a.logger.Info().Str("projectId", id.String()).Msg("project updated")
	return project, nil
}

func (a Assembler) assembleFromSource(ctx context.Context, src DocumentSource, form FormInput) (*models.Project, error) {
	if src == nil {
		return nil, errs.NewInternalError("editor is not initialized")
	}

	doc, err := src.Save(ctx)
	if err != nil {
		return nil, errs.NewInternalErrorWithCause("saving editor document failed", err)
	}

	project := a.Assemble(form, doc)
	if issues := schema.ValidateComplete(&project); issues != nil {
		return nil, issues
	}

	return &project, nil
}
