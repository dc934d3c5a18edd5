package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	// Dimension probing for the accepted upload formats. webp has no stdlib
	// decoder.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/project-editor-backend/errs"
	"github.com/rpupo63/project-editor-backend/storage"
)

// MaxImageSize is the upload size limit: 5 MiB.
const MaxImageSize = 5 * 1024 * 1024

// AllowedImageTypes are the MIME types the upload endpoint accepts.
var AllowedImageTypes = []string{"image/jpeg", "image/jpg", "image/png", "image/webp", "image/gif"}

// UploadedFile matches the editor image tool's response contract.
type UploadedFile struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Uploader validates incoming images, probes their dimensions and hands the
// bytes to a blob store.
type Uploader struct {
	store  storage.Store
	logger zerolog.Logger
}

func NewUploader(store storage.Store) Uploader {
	logger := log.With().Str("serviceName", "uploader").Logger()

	return Uploader{
		store:  store,
		logger: logger,
	}
}

// UploadImage stores one image under a fresh UUID filename and returns its
// public URL and pixel dimensions. Validation failures come back as 400-class
// ApiErrs; storage and decode failures as 500-class.
func (u Uploader) UploadImage(ctx context.Context, filename, contentType string, data []byte) (UploadedFile, error) {
	if len(data) == 0 {
		return UploadedFile{}, errs.NewBadRequestError("no image file provided")
	}

	if !allowedImageType(contentType) {
		return UploadedFile{}, errs.NewBadRequestError(
			fmt.Sprintf("invalid file type. allowed: %s", strings.Join(AllowedImageTypes, ", ")))
	}

	if len(data) > MaxImageSize {
		return UploadedFile{}, errs.NewBadRequestError(
			fmt.Sprintf("file too large. max size: %dMB", MaxImageSize/1024/1024))
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return UploadedFile{}, errs.NewInternalErrorWithCause("failed to read image dimensions", err)
	}

	uniqueFilename := uuid.New().String() + strings.ToLower(filepath.Ext(filename))
	url, err := u.store.Put(ctx, uniqueFilename, contentType, data)
	if err != nil {
		return UploadedFile{}, errs.NewInternalErrorWithCause("failed to store image", err)
	}

	u.logger.Info().
		Str("filename", uniqueFilename).
		Str("format", format).
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Int("size", len(data)).
		Msg("image uploaded")

	return UploadedFile{URL: url, Width: cfg.Width, Height: cfg.Height}, nil
}

func allowedImageType(contentType string) bool {
	for _, allowed := range AllowedImageTypes {
		if strings.EqualFold(contentType, allowed) {
			return true
		}
	}
	return false
}
