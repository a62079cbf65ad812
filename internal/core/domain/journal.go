package domain

import "time"

// Journal is a collection of travel entries owned by a single user.
type Journal struct {
	JournalID   int64     `json:"journalID"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	IsPublic    bool      `json:"isPublic"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	UserID      int64     `json:"userID"`

	// Entries is populated only on eager-loading paths (admin listing).
	Entries []Entry `json:"entries,omitempty"`
}
