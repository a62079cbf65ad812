package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/traveljournal/tj_backend/internal/apperrors"
	"github.com/traveljournal/tj_backend/internal/core/domain"
	portsrepo "github.com/traveljournal/tj_backend/internal/core/ports/repositories"
	portssvc "github.com/traveljournal/tj_backend/internal/core/ports/services"
)

// PhotoFileRemover removes a stored photo file by its relative path.
type PhotoFileRemover interface {
	Delete(relativePath string) error
}

type photoService struct {
	BaseService
	photoRepo    portsrepo.PhotoRepositoryFacade
	entryRepo    portsrepo.EntryReader
	userRepo     portsrepo.UserReader
	subscription portssvc.SubscriptionPolicySvc
	files        PhotoFileRemover
}

// NewPhotoService creates the gated photo service. files may be nil when no
// disk cleanup is wanted (tests).
func NewPhotoService(
	photoRepo portsrepo.PhotoRepositoryFacade,
	entryRepo portsrepo.EntryReader,
	userRepo portsrepo.UserReader,
	subscription portssvc.SubscriptionPolicySvc,
	files PhotoFileRemover,
) portssvc.PhotoSvcFacade {
	return &photoService{
		photoRepo:    photoRepo,
		entryRepo:    entryRepo,
		userRepo:     userRepo,
		subscription: subscription,
		files:        files,
	}
}

func (s *photoService) GetByEntry(ctx context.Context, entryID int64) ([]domain.Photo, error) {
	if entryID <= 0 {
		return nil, fmt.Errorf("%w: entry ID must be positive", apperrors.ErrValidation)
	}
	photos, err := s.photoRepo.FindPhotosByEntry(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get photos for entry %d: %w", entryID, err)
	}
	return photos, nil
}

func (s *photoService) Upload(ctx context.Context, filePath string, entryID int64, userID int64) (*domain.Photo, error) {
	if entryID <= 0 || userID <= 0 {
		return nil, fmt.Errorf("%w: entry ID and user ID must be positive", apperrors.ErrValidation)
	}
	if filePath == "" {
		return nil, fmt.Errorf("%w: file path is required", apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user %d: %w", userID, err)
	}

	allowed, err := s.subscription.CanUploadMedia(ctx, user.SubscriptionID)
	if err != nil {
		return nil, fmt.Errorf("failed to check photo entitlement for user %d: %w", userID, err)
	}
	if !allowed {
		return nil, apperrors.NewSubscriptionGateError("your subscription does not allow photo upload")
	}

	photo := domain.Photo{FilePath: filePath, EntryID: entryID}
	if err := s.photoRepo.SavePhoto(ctx, &photo); err != nil {
		return nil, fmt.Errorf("failed to save photo: %w", err)
	}

	s.LogInfo(ctx, "Photo uploaded", slog.Int64("photo_id", photo.PhotoID), slog.Int64("entry_id", entryID))
	return &photo, nil
}

// Delete enforces ownership through the photo's entry: a photo on someone
// else's entry is reported as absent.
func (s *photoService) Delete(ctx context.Context, photoID int64, userID int64) error {
	if photoID <= 0 || userID <= 0 {
		return apperrors.ErrNotFound
	}

	photo, err := s.photoRepo.FindPhotoByID(ctx, photoID)
	if err != nil {
		return err
	}

	entry, err := s.entryRepo.FindEntryByID(ctx, photo.EntryID)
	if err != nil {
		return err
	}
	if entry.UserID != userID {
		return apperrors.ErrNotFound
	}

	if err := s.photoRepo.DeletePhoto(ctx, photoID); err != nil {
		return fmt.Errorf("failed to delete photo %d: %w", photoID, err)
	}

	// The record is gone; a leftover file is only worth a warning.
	if s.files != nil {
		if err := s.files.Delete(photo.FilePath); err != nil {
			s.LogWarn(ctx, "Failed to remove stored photo file", slog.String("file", photo.FilePath), slog.String("error", err.Error()))
		}
	}
	s.LogInfo(ctx, "Photo deleted", slog.Int64("photo_id", photoID))
	return nil
}
