package services

import (
	"context"

	"github.com/traveljournal/tj_backend/internal/core/domain"
	"github.com/traveljournal/tj_backend/internal/dto"
)

// JournalReaderSvc defines read operations for journals.
type JournalReaderSvc interface {
	// GetByUser retrieves a user's journals. Cached per user.
	GetByUser(ctx context.Context, userID int64) ([]domain.Journal, error)

	// GetByID retrieves a journal without an ownership check. Cached per journal.
	GetByID(ctx context.Context, journalID int64) (*domain.Journal, error)

	// GetByIDForUser retrieves a journal only if it is owned by userID.
	// Uncached: correctness over performance on the ownership path.
	GetByIDForUser(ctx context.Context, journalID int64, userID int64) (*domain.Journal, error)

	// GetAll retrieves every journal, optionally with entries. Admin path, uncached.
	GetAll(ctx context.Context, includeEntries bool) ([]domain.Journal, error)
}

// JournalWriterSvc defines write operations for journals.
type JournalWriterSvc interface {
	// Create persists a new journal for its owner.
	Create(ctx context.Context, req dto.CreateJournalRequest, userID int64) (*domain.Journal, error)

	// Update applies the request to an owned journal.
	Update(ctx context.Context, journalID int64, req dto.UpdateJournalRequest, userID int64) (*domain.Journal, error)

	// Delete removes an owned journal and cascades to its entries, media and photos.
	Delete(ctx context.Context, journalID int64, userID int64) error
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
