package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/project-editor-backend/errs"
	"github.com/rpupo63/project-editor-backend/services"
)

type uploadHandler struct {
	responder Responder
	logger    zerolog.Logger
	uploader  services.Uploader
}

func newUploadHandler(uploader services.Uploader) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder: NewResponder(logger),
		logger:    logger,
		uploader:  uploader,
	}
}

// uploadImage accepts a multipart upload under the "image" field and answers
// with the editor image tool's contract: {success:1, file:{url,width,height}}
// on success, {success:0, error} otherwise.
func (h uploadHandler) uploadImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Leave headroom for the multipart framing around a max-size image.
		r.Body = http.MaxBytesReader(w, r.Body, services.MaxImageSize+1024*1024)

		if err := r.ParseMultipartForm(services.MaxImageSize); err != nil {
			h.writeUploadError(w, http.StatusBadRequest, "file size exceeds maximum limit (5MB)")
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			h.writeUploadError(w, http.StatusBadRequest, "no image file provided")
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read uploaded file")
			h.writeUploadError(w, http.StatusInternalServerError, "failed to upload image")
			return
		}

		uploaded, err := h.uploader.UploadImage(r.Context(), header.Filename, header.Header.Get("Content-Type"), data)
		if err != nil {
			status := http.StatusInternalServerError
			message := "failed to upload image"

			var apiErr *errs.ApiErr
			if errors.As(err, &apiErr) && apiErr.StatusCode < http.StatusInternalServerError {
				status = apiErr.StatusCode
				message = apiErr.Error()
			} else {
				h.logger.Error().Err(err).Msg("Image upload failed")
			}

			h.writeUploadError(w, status, message)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success": 1,
			"file":    uploaded,
		})
	}
}

// uploadStatus reports the endpoint's limits, for editor configuration checks
func (h uploadHandler) uploadStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, map[string]any{
			"status":       "ok",
			"message":      "image upload API is ready",
			"maxFileSize":  fmt.Sprintf("%dMB", services.MaxImageSize/1024/1024),
			"allowedTypes": services.AllowedImageTypes,
		})
	}
}

func (h uploadHandler) writeUploadError(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	h.responder.WriteJSON(w, map[string]any{
		"success": 0,
		"error":   message,
	})
}
