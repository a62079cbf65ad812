package dto

import (
	"github.com/traveljournal/tj_backend/internal/core/domain"
)

// PhotoResponse is the public representation of a photo record.
type PhotoResponse struct {
	PhotoID  int64  `json:"photoID"`
	FilePath string `json:"filePath"`
	EntryID  int64  `json:"entryID"`
}

// ListPhotosResponse wraps the list of photos.
type ListPhotosResponse struct {
	Photos []PhotoResponse `json:"photos"`
}

// ToPhotoResponse converts a domain.Photo to its response DTO.
func ToPhotoResponse(photo *domain.Photo) PhotoResponse {
	return PhotoResponse{
		PhotoID:  photo.PhotoID,
		FilePath: photo.FilePath,
		EntryID:  photo.EntryID,
	}
}

// ToListPhotosResponse converts a slice of domain.Photo to ListPhotosResponse.
func ToListPhotosResponse(photos []domain.Photo) ListPhotosResponse {
	photoResponses := make([]PhotoResponse, len(photos))
	for i, p := range photos {
		photoResponses[i] = ToPhotoResponse(&p)
	}
	return ListPhotosResponse{Photos: photoResponses}
}
