package storage_test

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traveljournal/tj_backend/internal/apperrors"
	"github.com/traveljournal/tj_backend/internal/platform/storage"
)

func makeFileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="photo"; filename="%s"`, filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["photo"][0]
}

func TestPhotoStore_SaveValidJpeg(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewPhotoStore(dir, 1024)
	require.NoError(t, err)

	content := []byte("fake jpeg bytes")
	fh := makeFileHeader(t, "holiday.jpg", "image/jpeg", content)

	fileName, err := store.Save(fh)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(fileName, ".jpg"))
	// Stored name is generated, never the client's name.
	assert.NotEqual(t, "holiday.jpg", fileName)

	stored, err := os.ReadFile(filepath.Join(dir, fileName))
	require.NoError(t, err)
	assert.Equal(t, content, stored)
}

func TestPhotoStore_RejectsGif(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewPhotoStore(dir, 1024)
	require.NoError(t, err)

	fh := makeFileHeader(t, "animation.gif", "image/gif", []byte("GIF89a"))

	_, err = store.Save(fh)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	// Nothing must reach disk on rejection.
	dirEntries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, dirEntries)
}

func TestPhotoStore_RejectsMismatchedContentType(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewPhotoStore(dir, 1024)
	require.NoError(t, err)

	fh := makeFileHeader(t, "disguised.png", "application/octet-stream", []byte("not an image"))

	_, err = store.Save(fh)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestPhotoStore_RejectsOversizedFile(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewPhotoStore(dir, 10)
	require.NoError(t, err)

	fh := makeFileHeader(t, "big.jpg", "image/jpeg", bytes.Repeat([]byte("x"), 100))

	_, err = store.Save(fh)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestPhotoStore_DeleteToleratesMissingFile(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewPhotoStore(dir, 1024)
	require.NoError(t, err)

	assert.NoError(t, store.Delete("never-existed.jpg"))
	assert.NoError(t, store.Delete(""))
}

func TestPhotoStore_DeleteRemovesStoredFile(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewPhotoStore(dir, 1024)
	require.NoError(t, err)

	fh := makeFileHeader(t, "gone.png", "image/png", []byte("png bytes"))
	fileName, err := store.Save(fh)
	require.NoError(t, err)

	require.NoError(t, store.Delete(fileName))
	_, statErr := os.Stat(filepath.Join(dir, fileName))
	assert.True(t, os.IsNotExist(statErr))
}
