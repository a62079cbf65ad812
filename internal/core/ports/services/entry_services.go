package services

import (
	"context"

	"github.com/traveljournal/tj_backend/internal/core/domain"
	"github.com/traveljournal/tj_backend/internal/dto"
)

// EntryReaderSvc defines read operations for entries.
type EntryReaderSvc interface {
	// GetByJournal retrieves a journal's non-deleted entries. Cached per journal.
	GetByJournal(ctx context.Context, journalID int64) ([]domain.Entry, error)

	// GetDeletedByJournal retrieves a journal's soft-deleted entries.
	// Uncached, admin/trash view.
	GetDeletedByJournal(ctx context.Context, journalID int64) ([]domain.Entry, error)

	// GetByID retrieves an entry regardless of owner or deletion state.
	GetByID(ctx context.Context, entryID int64) (*domain.Entry, error)

	// GetByIDForUser retrieves an entry only if it is owned by userID and not
	// soft-deleted.
	GetByIDForUser(ctx context.Context, entryID int64, userID int64) (*domain.Entry, error)
}

// EntryWriterSvc defines write operations for entries.
type EntryWriterSvc interface {
	// Create persists a new entry under the plan's entry-count gate.
	Create(ctx context.Context, req dto.CreateEntryRequest, journalID int64, userID int64) (*domain.Entry, error)

	// Update applies the request to an owned entry.
	Update(ctx context.Context, entryID int64, req dto.UpdateEntryRequest, userID int64) (*domain.Entry, error)

	// Delete soft-deletes an entry. The row survives and can be restored.
	Delete(ctx context.Context, entryID int64) error

	// Restore clears an entry's soft-delete flag.
	Restore(ctx context.Context, entryID int64) error
}

// EntrySvcFacade combines all entry-related service interfaces
type EntrySvcFacade interface {
	EntryReaderSvc
	EntryWriterSvc
}
