package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/traveljournal/tj_backend/internal/apperrors"
	"github.com/traveljournal/tj_backend/internal/core/domain"
	portsrepo "github.com/traveljournal/tj_backend/internal/core/ports/repositories"
	portssvc "github.com/traveljournal/tj_backend/internal/core/ports/services"
	"github.com/traveljournal/tj_backend/internal/dto"
)

type mediaService struct {
	BaseService
	mediaRepo    portsrepo.MediaRepositoryFacade
	userRepo     portsrepo.UserReader
	subscription portssvc.SubscriptionPolicySvc
}

// NewMediaService creates the gated media upload service.
func NewMediaService(
	mediaRepo portsrepo.MediaRepositoryFacade,
	userRepo portsrepo.UserReader,
	subscription portssvc.SubscriptionPolicySvc,
) portssvc.MediaSvcFacade {
	return &mediaService{
		mediaRepo:    mediaRepo,
		userRepo:     userRepo,
		subscription: subscription,
	}
}

func (s *mediaService) GetByEntry(ctx context.Context, entryID int64) ([]domain.Media, error) {
	if entryID <= 0 {
		return nil, fmt.Errorf("%w: entry ID must be positive", apperrors.ErrValidation)
	}
	media, err := s.mediaRepo.FindMediaByEntry(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get media for entry %d: %w", entryID, err)
	}
	return media, nil
}

func (s *mediaService) Upload(ctx context.Context, req dto.CreateMediaRequest, entryID int64, userID int64) (*domain.Media, error) {
	if entryID <= 0 || userID <= 0 {
		return nil, fmt.Errorf("%w: entry ID and user ID must be positive", apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user %d: %w", userID, err)
	}

	allowed, err := s.subscription.CanUploadMedia(ctx, user.SubscriptionID)
	if err != nil {
		return nil, fmt.Errorf("failed to check media entitlement for user %d: %w", userID, err)
	}
	if !allowed {
		return nil, apperrors.NewSubscriptionGateError("your subscription does not allow uploading images")
	}

	media := domain.Media{
		FileName:   req.FileName,
		FileType:   req.FileType,
		FileSize:   req.FileSize,
		URL:        req.URL,
		UploadedAt: time.Now(),
		EntryID:    entryID,
	}
	if err := s.mediaRepo.SaveMedia(ctx, &media); err != nil {
		return nil, fmt.Errorf("failed to save media: %w", err)
	}

	s.LogInfo(ctx, "Media uploaded", slog.Int64("media_id", media.MediaID), slog.Int64("entry_id", entryID))
	return &media, nil
}

func (s *mediaService) Delete(ctx context.Context, mediaID int64) error {
	if mediaID <= 0 {
		return fmt.Errorf("%w: media ID must be positive", apperrors.ErrValidation)
	}
	return s.mediaRepo.DeleteMedia(ctx, mediaID)
}
