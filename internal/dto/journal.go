package dto

import (
	"time"

	"github.com/traveljournal/tj_backend/internal/core/domain"
)

// CreateJournalRequest carries a new journal.
type CreateJournalRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"max=2000"`
	IsPublic    bool   `json:"isPublic"`
}

// UpdateJournalRequest defines the data allowed for updating a journal.
type UpdateJournalRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=200"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	IsPublic    *bool   `json:"isPublic"`
}

// JournalResponse is the public representation of a journal.
type JournalResponse struct {
	JournalID   int64           `json:"journalID"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	IsPublic    bool            `json:"isPublic"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	UserID      int64           `json:"userID"`
	Entries     []EntryResponse `json:"entries,omitempty"`
}

// ListJournalsResponse wraps the list of journals.
type ListJournalsResponse struct {
	Journals []JournalResponse `json:"journals"`
}

// ToJournalResponse converts a domain.Journal to its response DTO.
func ToJournalResponse(journal *domain.Journal) JournalResponse {
	resp := JournalResponse{
		JournalID:   journal.JournalID,
		Title:       journal.Title,
		Description: journal.Description,
		IsPublic:    journal.IsPublic,
		CreatedAt:   journal.CreatedAt,
		UpdatedAt:   journal.UpdatedAt,
		UserID:      journal.UserID,
	}
	if len(journal.Entries) > 0 {
		resp.Entries = make([]EntryResponse, len(journal.Entries))
		for i, entry := range journal.Entries {
			resp.Entries[i] = ToEntryResponse(&entry)
		}
	}
	return resp
}

// ToListJournalsResponse converts a slice of domain.Journal to ListJournalsResponse.
func ToListJournalsResponse(journals []domain.Journal) ListJournalsResponse {
	journalResponses := make([]JournalResponse, len(journals))
	for i, journal := range journals {
		journalResponses[i] = ToJournalResponse(&journal)
	}
	return ListJournalsResponse{Journals: journalResponses}
}
