package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/project-editor-backend/database"
	"github.com/rpupo63/project-editor-backend/document"
	"github.com/rpupo63/project-editor-backend/errs"
)

type draftHandler struct {
	responder Responder
	logger    zerolog.Logger
	draftRepo *database.DraftRepo
}

func newDraftHandler(draftRepo *database.DraftRepo) draftHandler {
	logger := log.With().Str("handlerName", "draftHandler").Logger()

	return draftHandler{
		responder: NewResponder(logger),
		logger:    logger,
		draftRepo: draftRepo,
	}
}

// saveDraft overwrites the autosave slot for an editor key with the posted
// document
func (h draftHandler) saveDraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		draftKey := chi.URLParam(r, "draftKey")
		if draftKey == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing draftKey"))
			return
		}

		var doc document.Document
		if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode draft request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("draft", err))
			return
		}

		draft, err := h.draftRepo.Save(r.Context(), draftKey, doc)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to save draft", err))
			return
		}

		h.responder.WriteJSON(w, draft)
	}
}

// getDraft returns the autosaved document for an editor key
func (h draftHandler) getDraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		draftKey := chi.URLParam(r, "draftKey")
		if draftKey == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing draftKey"))
			return
		}

		draft, err := h.draftRepo.Find(r.Context(), draftKey)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to load draft", err))
			return
		}
		if draft == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("draft not found"))
			return
		}

		h.responder.WriteJSON(w, draft)
	}
}

// deleteDraft discards the autosave slot for an editor key
func (h draftHandler) deleteDraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		draftKey := chi.URLParam(r, "draftKey")
		if draftKey == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing draftKey"))
			return
		}

		if err := h.draftRepo.Delete(r.Context(), draftKey); err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to delete draft", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "draft deleted successfully",
		})
	}
}
