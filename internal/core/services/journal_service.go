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
	"github.com/traveljournal/tj_backend/internal/platform/cache"
)

type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	cache       cache.Cache
}

// NewJournalService creates the journal service.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, c cache.Cache) portssvc.JournalSvcFacade {
	return &journalService{journalRepo: journalRepo, cache: c}
}

func (s *journalService) GetByUser(ctx context.Context, userID int64) ([]domain.Journal, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user ID must be positive", apperrors.ErrValidation)
	}

	key := journalsUserKey(userID)
	var cached []domain.Journal
	hit, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		// A broken cache read falls through to the store; it must never
		// fail the request.
		s.LogWarn(ctx, "Cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	}
	if hit {
		s.LogDebug(ctx, "Cache hit", slog.String("key", key))
		return cached, nil
	}

	journals, err := s.journalRepo.FindJournalsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get journals for user %d: %w", userID, err)
	}

	if err := s.cache.Set(ctx, key, journals, 0); err != nil {
		s.LogWarn(ctx, "Cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
	return journals, nil
}

func (s *journalService) GetByID(ctx context.Context, journalID int64) (*domain.Journal, error) {
	if journalID <= 0 {
		return nil, fmt.Errorf("%w: journal ID must be positive", apperrors.ErrValidation)
	}

	key := journalKey(journalID)
	var cached domain.Journal
	hit, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		s.LogWarn(ctx, "Cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	}
	if hit {
		s.LogDebug(ctx, "Cache hit", slog.String("key", key))
		return &cached, nil
	}

	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, journal, 0); err != nil {
		s.LogWarn(ctx, "Cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
	return journal, nil
}

// GetByIDForUser enforces ownership. Deliberately uncached so a stale entry
// can never leak another user's journal.
func (s *journalService) GetByIDForUser(ctx context.Context, journalID int64, userID int64) (*domain.Journal, error) {
	if journalID <= 0 || userID <= 0 {
		return nil, apperrors.ErrNotFound
	}

	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		return nil, err
	}
	if journal.UserID != userID {
		// Not-owned is indistinguishable from absent.
		return nil, apperrors.ErrNotFound
	}
	return journal, nil
}

func (s *journalService) GetAll(ctx context.Context, includeEntries bool) ([]domain.Journal, error) {
	journals, err := s.journalRepo.FindAllJournals(ctx, includeEntries)
	if err != nil {
		return nil, fmt.Errorf("failed to get all journals: %w", err)
	}
	return journals, nil
}

func (s *journalService) Create(ctx context.Context, req dto.CreateJournalRequest, userID int64) (*domain.Journal, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user ID must be positive", apperrors.ErrValidation)
	}

	now := time.Now()
	journal := domain.Journal{
		Title:       req.Title,
		Description: req.Description,
		IsPublic:    req.IsPublic,
		CreatedAt:   now,
		UpdatedAt:   now,
		UserID:      userID,
	}

	if err := s.journalRepo.SaveJournal(ctx, &journal); err != nil {
		return nil, fmt.Errorf("failed to create journal: %w", err)
	}

	s.invalidate(ctx, 0, userID)
	s.LogInfo(ctx, "Journal created", slog.Int64("journal_id", journal.JournalID))
	return &journal, nil
}

func (s *journalService) Update(ctx context.Context, journalID int64, req dto.UpdateJournalRequest, userID int64) (*domain.Journal, error) {
	journal, err := s.GetByIDForUser(ctx, journalID, userID)
	if err != nil {
		return nil, err
	}

	updated := *journal
	if req.Title != nil {
		updated.Title = *req.Title
	}
	if req.Description != nil {
		updated.Description = *req.Description
	}
	if req.IsPublic != nil {
		updated.IsPublic = *req.IsPublic
	}
	updated.UpdatedAt = time.Now()

	if err := s.journalRepo.UpdateJournal(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update journal %d: %w", journalID, err)
	}

	s.invalidate(ctx, journalID, journal.UserID)
	return &updated, nil
}

func (s *journalService) Delete(ctx context.Context, journalID int64, userID int64) error {
	journal, err := s.GetByIDForUser(ctx, journalID, userID)
	if err != nil {
		return err
	}

	if err := s.journalRepo.DeleteJournalCascade(ctx, journalID); err != nil {
		return fmt.Errorf("failed to delete journal %d: %w", journalID, err)
	}

	s.invalidate(ctx, journalID, journal.UserID)
	// Entries are gone with the cascade, their list cache must go too.
	if err := s.cache.Remove(ctx, entriesJournalKey(journalID)); err != nil {
		s.LogWarn(ctx, "Cache invalidation failed", slog.String("key", entriesJournalKey(journalID)), slog.String("error", err.Error()))
	}
	s.LogInfo(ctx, "Journal deleted", slog.Int64("journal_id", journalID))
	return nil
}

// invalidate removes the journal's own key when known and the owner's list
// key; when the owner is unknown it sweeps the whole per-user list prefix.
func (s *journalService) invalidate(ctx context.Context, journalID int64, ownerID int64) {
	if journalID > 0 {
		if err := s.cache.Remove(ctx, journalKey(journalID)); err != nil {
			s.LogWarn(ctx, "Cache invalidation failed", slog.String("key", journalKey(journalID)), slog.String("error", err.Error()))
		}
	}
	if ownerID > 0 {
		if err := s.cache.Remove(ctx, journalsUserKey(ownerID)); err != nil {
			s.LogWarn(ctx, "Cache invalidation failed", slog.String("key", journalsUserKey(ownerID)), slog.String("error", err.Error()))
		}
		return
	}
	if err := s.cache.RemoveByPrefix(ctx, journalsUserKeyPrefix); err != nil {
		s.LogWarn(ctx, "Cache prefix invalidation failed", slog.String("prefix", journalsUserKeyPrefix), slog.String("error", err.Error()))
	}
}
