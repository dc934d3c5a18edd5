package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/project-editor-backend/services"
)

type uploadStoreStub struct {
	putName string
	err     error
}

func (s *uploadStoreStub) Put(_ context.Context, filename, _ string, _ []byte) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.putName = filename
	return "/uploads/" + filename, nil
}

func newUploadTestRouter(store *uploadStoreStub) *chi.Mux {
	h := newUploadHandler(services.NewUploader(store))

	r := chi.NewRouter()
	r.Post("/upload-image", h.uploadImage())
	r.Get("/upload-image", h.uploadStatus())
	return r
}

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))))
	return buf.Bytes()
}

func imageForm(t *testing.T, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

type uploadResponse struct {
	Success int    `json:"success"`
	Error   string `json:"error"`
	File    struct {
		URL    string `json:"url"`
		Width  int    `json:"width"`
		Height int    `json:"height"`
	} `json:"file"`
}

func TestUploadImageEndpoint(t *testing.T) {
	t.Run("answers the editor contract on success", func(t *testing.T) {
		store := &uploadStoreStub{}
		router := newUploadTestRouter(store)

		body, contentType := imageForm(t, "photo.png", "image/png", encodePNG(t, 2, 3))
		req := httptest.NewRequest(http.MethodPost, "/upload-image", body)
		req.Header.Set("Content-Type", contentType)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp uploadResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Success)
		assert.Equal(t, "/uploads/"+store.putName, resp.File.URL)
		assert.Equal(t, 2, resp.File.Width)
		assert.Equal(t, 3, resp.File.Height)
	})

	t.Run("missing image field answers success 0", func(t *testing.T) {
		router := newUploadTestRouter(&uploadStoreStub{})

		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		require.NoError(t, writer.WriteField("other", "value"))
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/upload-image", &buf)
		req.Header.Set("Content-Type", writer.FormDataContentType())

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp uploadResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 0, resp.Success)
		assert.Equal(t, "no image file provided", resp.Error)
	})

	t.Run("disallowed content type answers success 0", func(t *testing.T) {
		router := newUploadTestRouter(&uploadStoreStub{})

		body, contentType := imageForm(t, "doc.pdf", "application/pdf", []byte("%PDF-"))
		req := httptest.NewRequest(http.MethodPost, "/upload-image", body)
		req.Header.Set("Content-Type", contentType)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp uploadResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 0, resp.Success)
		assert.Contains(t, resp.Error, "invalid file type")
	})

	t.Run("store failure answers a generic 500", func(t *testing.T) {
		router := newUploadTestRouter(&uploadStoreStub{err: assert.AnError})

		body, contentType := imageForm(t, "photo.png", "image/png", encodePNG(t, 1, 1))
		req := httptest.NewRequest(http.MethodPost, "/upload-image", body)
		req.Header.Set("Content-Type", contentType)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		var resp uploadResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 0, resp.Success)
		assert.Equal(t, "failed to upload image", resp.Error)
	})
}

func TestUploadStatusEndpoint(t *testing.T) {
	router := newUploadTestRouter(&uploadStoreStub{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/upload-image", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, "5MB", resp["maxFileSize"])
}
