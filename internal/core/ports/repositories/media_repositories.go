package repositories

import (
	"context"

	"github.com/traveljournal/tj_backend/internal/core/domain"
)

// MediaReader defines read operations for media metadata
type MediaReader interface {
	// FindMediaByID retrieves a media record by ID.
	FindMediaByID(ctx context.Context, mediaID int64) (*domain.Media, error)

	// FindMediaByEntry retrieves all media attached to an entry.
	FindMediaByEntry(ctx context.Context, entryID int64) ([]domain.Media, error)
}

// MediaWriter defines write operations for media metadata
type MediaWriter interface {
	// SaveMedia persists a new media record and fills in its generated ID.
	SaveMedia(ctx context.Context, media *domain.Media) error

	// DeleteMedia removes a media record.
	DeleteMedia(ctx context.Context, mediaID int64) error
}

// MediaRepositoryFacade combines all media-related repository interfaces.
type MediaRepositoryFacade interface {
	MediaReader
	MediaWriter
}
