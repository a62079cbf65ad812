package repositories

import (
	"context"

	"github.com/traveljournal/tj_backend/internal/core/domain"
)

// JournalReader defines read operations for journal data
type JournalReader interface {
	// FindJournalByID retrieves a journal by its ID.
	FindJournalByID(ctx context.Context, journalID int64) (*domain.Journal, error)

	// FindJournalsByUser retrieves all journals owned by a user.
	FindJournalsByUser(ctx context.Context, userID int64) ([]domain.Journal, error)

	// FindAllJournals retrieves every journal, optionally eager-loading each
	// journal's entries. Admin listing path.
	FindAllJournals(ctx context.Context, includeEntries bool) ([]domain.Journal, error)
}

// JournalWriter defines write operations for journal data
type JournalWriter interface {
	// SaveJournal persists a new journal and fills in its generated ID.
	SaveJournal(ctx context.Context, journal *domain.Journal) error

	// UpdateJournal updates an existing journal.
	UpdateJournal(ctx context.Context, journal domain.Journal) error

	// DeleteJournalCascade removes the journal, its entries and each entry's
	// media and photos inside a single database transaction.
	DeleteJournalCascade(ctx context.Context, journalID int64) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces.
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
