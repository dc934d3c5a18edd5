package services

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/project-editor-backend/errs"
)

type fakeBlobStore struct {
	putName        string
	putContentType string
	putData        []byte
	err            error
}

func (s *fakeBlobStore) Put(_ context.Context, filename, contentType string, data []byte) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.putName = filename
	s.putContentType = contentType
	s.putData = data
	return "/uploads/" + filename, nil
}

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))))
	return buf.Bytes()
}

func TestUploadImage(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the image and reports its dimensions", func(t *testing.T) {
		store := &fakeBlobStore{}
		u := NewUploader(store)

		uploaded, err := u.UploadImage(ctx, "photo.PNG", "image/png", pngBytes(t, 2, 3))
		require.NoError(t, err)

		assert.Equal(t, 2, uploaded.Width)
		assert.Equal(t, 3, uploaded.Height)
		assert.Equal(t, "/uploads/"+store.putName, uploaded.URL)
		assert.True(t, strings.HasSuffix(store.putName, ".png"), "extension should be lowercased: %s", store.putName)
		assert.NotEqual(t, "photo.png", store.putName)
		assert.Equal(t, "image/png", store.putContentType)
	})

	t.Run("rejects an empty upload", func(t *testing.T) {
		u := NewUploader(&fakeBlobStore{})

		_, err := u.UploadImage(ctx, "photo.png", "image/png", nil)
		var apiErr *errs.ApiErr
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 400, apiErr.StatusCode)
		assert.Contains(t, err.Error(), "no image file provided")
	})

	t.Run("rejects a disallowed content type", func(t *testing.T) {
		u := NewUploader(&fakeBlobStore{})

		_, err := u.UploadImage(ctx, "doc.pdf", "application/pdf", pngBytes(t, 1, 1))
		var apiErr *errs.ApiErr
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 400, apiErr.StatusCode)
		assert.Contains(t, err.Error(), "invalid file type")
	})

	t.Run("rejects an oversized upload before decoding it", func(t *testing.T) {
		u := NewUploader(&fakeBlobStore{})

		_, err := u.UploadImage(ctx, "big.png", "image/png", make([]byte, MaxImageSize+1))
		var apiErr *errs.ApiErr
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 400, apiErr.StatusCode)
		assert.Contains(t, err.Error(), "file too large")
	})

	t.Run("undecodable bytes are an internal error", func(t *testing.T) {
		u := NewUploader(&fakeBlobStore{})

		_, err := u.UploadImage(ctx, "fake.png", "image/png", []byte("not an image"))
		var apiErr *errs.ApiErr
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 500, apiErr.StatusCode)
	})

	t.Run("store failure is an internal error", func(t *testing.T) {
		u := NewUploader(&fakeBlobStore{err: assert.AnError})

		_, err := u.UploadImage(ctx, "photo.png", "image/png", pngBytes(t, 1, 1))
		var apiErr *errs.ApiErr
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 500, apiErr.StatusCode)
	})
}
