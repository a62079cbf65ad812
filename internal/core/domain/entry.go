package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry is a single dated record inside a journal. Entries are soft-deleted:
// IsDeleted flips to true on delete and back on restore, the row is never
// removed on its own (only a journal cascade removes it for good).
type Entry struct {
	EntryID   int64            `json:"entryID"`
	Title     string           `json:"title"`
	Content   string           `json:"content"`
	Location  string           `json:"location"`
	Latitude  *decimal.Decimal `json:"latitude,omitempty"`
	Longitude *decimal.Decimal `json:"longitude,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
	JournalID int64            `json:"journalID"`
	UserID    int64            `json:"userID"`
	IsDeleted bool             `json:"isDeleted"`
}
