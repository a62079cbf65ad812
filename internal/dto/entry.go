package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/traveljournal/tj_backend/internal/core/domain"
)

// CreateEntryRequest carries a new entry. The owning journal and user come
// from the route and the authenticated caller, never from the body.
type CreateEntryRequest struct {
	Title     string           `json:"title" binding:"required,max=200"`
	Content   string           `json:"content"`
	Location  string           `json:"location" binding:"max=200"`
	Latitude  *decimal.Decimal `json:"latitude"`
	Longitude *decimal.Decimal `json:"longitude"`
}

// UpdateEntryRequest defines the data allowed for updating an entry.
type UpdateEntryRequest struct {
	Title     *string          `json:"title" binding:"omitempty,max=200"`
	Content   *string          `json:"content"`
	Location  *string          `json:"location" binding:"omitempty,max=200"`
	Latitude  *decimal.Decimal `json:"latitude"`
	Longitude *decimal.Decimal `json:"longitude"`
}

// EntryResponse is the public representation of an entry.
type EntryResponse struct {
	EntryID   int64            `json:"entryID"`
	Title     string           `json:"title"`
	Content   string           `json:"content"`
	Location  string           `json:"location"`
	Latitude  *decimal.Decimal `json:"latitude,omitempty"`
	Longitude *decimal.Decimal `json:"longitude,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
	JournalID int64            `json:"journalID"`
	IsDeleted bool             `json:"isDeleted"`
}

// ListEntriesResponse wraps the list of entries.
type ListEntriesResponse struct {
	Entries []EntryResponse `json:"entries"`
}

// ToEntryResponse converts a domain.Entry to its response DTO.
func ToEntryResponse(entry *domain.Entry) EntryResponse {
	return EntryResponse{
		EntryID:   entry.EntryID,
		Title:     entry.Title,
		Content:   entry.Content,
		Location:  entry.Location,
		Latitude:  entry.Latitude,
		Longitude: entry.Longitude,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
		JournalID: entry.JournalID,
		IsDeleted: entry.IsDeleted,
	}
}

// ToListEntriesResponse converts a slice of domain.Entry to ListEntriesResponse.
func ToListEntriesResponse(entries []domain.Entry) ListEntriesResponse {
	entryResponses := make([]EntryResponse, len(entries))
	for i, entry := range entries {
		entryResponses[i] = ToEntryResponse(&entry)
	}
	return ListEntriesResponse{Entries: entryResponses}
}
