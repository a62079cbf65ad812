package repositories

import (
	"context"

	"github.com/traveljournal/tj_backend/internal/core/domain"
)

// EntryReader defines read operations for entry data
type EntryReader interface {
	// FindEntryByID retrieves an entry by ID, deleted or not.
	FindEntryByID(ctx context.Context, entryID int64) (*domain.Entry, error)

	// FindEntriesByJournal retrieves the journal's non-deleted entries.
	FindEntriesByJournal(ctx context.Context, journalID int64) ([]domain.Entry, error)

	// FindDeletedEntriesByJournal retrieves the journal's soft-deleted entries.
	FindDeletedEntriesByJournal(ctx context.Context, journalID int64) ([]domain.Entry, error)

	// CountActiveEntriesByJournal counts the journal's non-deleted entries.
	// This is the number compared against the plan's entry limit.
	CountActiveEntriesByJournal(ctx context.Context, journalID int64) (int, error)
}

// EntryWriter defines write operations for entry data
type EntryWriter interface {
	// SaveEntry persists a new entry and fills in its generated ID.
	SaveEntry(ctx context.Context, entry *domain.Entry) error

	// UpdateEntry updates an existing entry's editable fields.
	UpdateEntry(ctx context.Context, entry domain.Entry) error

	// MarkEntryDeleted sets the soft-delete flag.
	MarkEntryDeleted(ctx context.Context, entryID int64) error

	// RestoreEntry clears the soft-delete flag.
	RestoreEntry(ctx context.Context, entryID int64) error
}

// EntryRepositoryFacade combines all entry-related repository interfaces.
type EntryRepositoryFacade interface {
	EntryReader
	EntryWriter
}
