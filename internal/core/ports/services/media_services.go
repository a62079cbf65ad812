package services

import (
	"context"

	"github.com/traveljournal/tj_backend/internal/core/domain"
	"github.com/traveljournal/tj_backend/internal/dto"
)

// MediaSvcFacade is the gated-upload service for media metadata.
type MediaSvcFacade interface {
	// GetByEntry retrieves all media records attached to an entry.
	GetByEntry(ctx context.Context, entryID int64) ([]domain.Media, error)

	// Upload records media metadata if the uploader's plan allows it.
	Upload(ctx context.Context, req dto.CreateMediaRequest, entryID int64, userID int64) (*domain.Media, error)

	// Delete removes a media record.
	Delete(ctx context.Context, mediaID int64) error
}

// PhotoSvcFacade is the gated-upload service for photos stored on disk.
type PhotoSvcFacade interface {
	// GetByEntry retrieves all photos attached to an entry.
	GetByEntry(ctx context.Context, entryID int64) ([]domain.Photo, error)

	// Upload records a stored photo's path if the uploader's plan allows it.
	Upload(ctx context.Context, filePath string, entryID int64, userID int64) (*domain.Photo, error)

	// Delete removes a photo record, enforcing that the caller owns the
	// photo's entry.
	Delete(ctx context.Context, photoID int64, userID int64) error
}
