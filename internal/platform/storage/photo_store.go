// Package storage persists uploaded photo files to local disk. Services only
// record the relative path it returns.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/traveljournal/tj_backend/internal/apperrors"
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

var allowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// PhotoStore saves uploaded image files under a fixed directory with
// generated unique filenames.
type PhotoStore struct {
	baseDir  string
	maxBytes int64
}

// NewPhotoStore creates the store and its base directory.
func NewPhotoStore(baseDir string, maxBytes int64) (*PhotoStore, error) {
	if maxBytes <= 0 {
		maxBytes = 5 * 1024 * 1024
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", baseDir, err)
	}
	return &PhotoStore{baseDir: baseDir, maxBytes: maxBytes}, nil
}

// Save validates and writes the uploaded file, returning the stored file's
// path relative to the base directory. Validation failures wrap
// apperrors.ErrValidation so handlers can map them to 400 before any bytes
// reach disk.
func (s *PhotoStore) Save(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader == nil || fileHeader.Size <= 0 {
		return "", fmt.Errorf("%w: no file provided", apperrors.ErrValidation)
	}
	if fileHeader.Size > s.maxBytes {
		return "", fmt.Errorf("%w: file too large, max allowed size is %d bytes", apperrors.ErrValidation, s.maxBytes)
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("%w: invalid file type, allowed: .jpg, .jpeg, .png, .webp", apperrors.ErrValidation)
	}

	// The declared content type is not tamper-proof but filters honest mistakes.
	contentType := strings.ToLower(fileHeader.Header.Get("Content-Type"))
	if !allowedContentTypes[contentType] {
		return "", fmt.Errorf("%w: invalid image content type %q", apperrors.ErrValidation, contentType)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	fileName := strings.ReplaceAll(uuid.NewString(), "-", "") + ext
	absolutePath := filepath.Join(s.baseDir, fileName)

	dst, err := os.Create(absolutePath)
	if err != nil {
		return "", fmt.Errorf("failed to create photo file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(absolutePath)
		return "", fmt.Errorf("failed to write photo file: %w", err)
	}

	return fileName, nil
}

// Delete removes a stored file. A missing file is not an error, the record is
// authoritative.
func (s *PhotoStore) Delete(relativePath string) error {
	if relativePath == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.baseDir, filepath.Clean(relativePath)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete photo file %s: %w", relativePath, err)
	}
	return nil
}
