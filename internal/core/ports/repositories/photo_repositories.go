package repositories

import (
	"context"

	"github.com/traveljournal/tj_backend/internal/core/domain"
)

// PhotoReader defines read operations for photo records
type PhotoReader interface {
	// FindPhotoByID retrieves a photo record by ID.
	FindPhotoByID(ctx context.Context, photoID int64) (*domain.Photo, error)

	// FindPhotosByEntry retrieves all photos attached to an entry.
	FindPhotosByEntry(ctx context.Context, entryID int64) ([]domain.Photo, error)
}

// PhotoWriter defines write operations for photo records
type PhotoWriter interface {
	// SavePhoto persists a new photo record and fills in its generated ID.
	SavePhoto(ctx context.Context, photo *domain.Photo) error

	// DeletePhoto removes a photo record.
	DeletePhoto(ctx context.Context, photoID int64) error
}

// PhotoRepositoryFacade combines all photo-related repository interfaces.
type PhotoRepositoryFacade interface {
	PhotoReader
	PhotoWriter
}
