package dto

import (
	"time"

	"github.com/traveljournal/tj_backend/internal/core/domain"
)

// CreateMediaRequest carries an uploaded attachment's metadata. The bytes
// themselves live at URL, stored by an external collaborator.
type CreateMediaRequest struct {
	FileName string `json:"fileName" binding:"required,max=255"`
	FileType string `json:"fileType" binding:"required,max=100"`
	FileSize int    `json:"fileSize" binding:"required,gt=0"`
	URL      string `json:"url" binding:"required,url"`
}

// MediaResponse is the public representation of a media record.
type MediaResponse struct {
	MediaID    int64     `json:"mediaID"`
	FileName   string    `json:"fileName"`
	FileType   string    `json:"fileType"`
	FileSize   int       `json:"fileSize"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploadedAt"`
	EntryID    int64     `json:"entryID"`
}

// ListMediaResponse wraps the list of media records.
type ListMediaResponse struct {
	Media []MediaResponse `json:"media"`
}

// ToMediaResponse converts a domain.Media to its response DTO.
func ToMediaResponse(media *domain.Media) MediaResponse {
	return MediaResponse{
		MediaID:    media.MediaID,
		FileName:   media.FileName,
		FileType:   media.FileType,
		FileSize:   media.FileSize,
		URL:        media.URL,
		UploadedAt: media.UploadedAt,
		EntryID:    media.EntryID,
	}
}

// ToListMediaResponse converts a slice of domain.Media to ListMediaResponse.
func ToListMediaResponse(media []domain.Media) ListMediaResponse {
	mediaResponses := make([]MediaResponse, len(media))
	for i, m := range media {
		mediaResponses[i] = ToMediaResponse(&m)
	}
	return ListMediaResponse{Media: mediaResponses}
}
