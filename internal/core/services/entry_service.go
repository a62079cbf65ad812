package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/traveljournal/tj_backend/internal/apperrors"
	"github.com/traveljournal/tj_backend/internal/core/domain"
	portsrepo "github.com/traveljournal/tj_backend/internal/core/ports/repositories"
	portssvc "github.com/traveljournal/tj_backend/internal/core/ports/services"
	"github.com/traveljournal/tj_backend/internal/dto"
	"github.com/traveljournal/tj_backend/internal/platform/cache"
)

type entryService struct {
	BaseService
	entryRepo        portsrepo.EntryRepositoryFacade
	userRepo         portsrepo.UserReader
	subscriptionRepo portsrepo.SubscriptionReader
	cache            cache.Cache
}

// NewEntryService creates the entry service.
func NewEntryService(
	entryRepo portsrepo.EntryRepositoryFacade,
	userRepo portsrepo.UserReader,
	subscriptionRepo portsrepo.SubscriptionReader,
	c cache.Cache,
) portssvc.EntrySvcFacade {
	return &entryService{
		entryRepo:        entryRepo,
		userRepo:         userRepo,
		subscriptionRepo: subscriptionRepo,
		cache:            c,
	}
}

func (s *entryService) GetByJournal(ctx context.Context, journalID int64) ([]domain.Entry, error) {
	if journalID <= 0 {
		return nil, fmt.Errorf("%w: journal ID must be positive", apperrors.ErrValidation)
	}

	key := entriesJournalKey(journalID)
	var cached []domain.Entry
	hit, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		s.LogWarn(ctx, "Cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	}
	if hit {
		s.LogDebug(ctx, "Cache hit", slog.String("key", key))
		return cached, nil
	}

	entries, err := s.entryRepo.FindEntriesByJournal(ctx, journalID)
	if err != nil {
		return nil, fmt.Errorf("failed to get entries for journal %d: %w", journalID, err)
	}

	if err := s.cache.Set(ctx, key, entries, 0); err != nil {
		s.LogWarn(ctx, "Cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
	return entries, nil
}

func (s *entryService) GetDeletedByJournal(ctx context.Context, journalID int64) ([]domain.Entry, error) {
	if journalID <= 0 {
		return nil, fmt.Errorf("%w: journal ID must be positive", apperrors.ErrValidation)
	}
	entries, err := s.entryRepo.FindDeletedEntriesByJournal(ctx, journalID)
	if err != nil {
		return nil, fmt.Errorf("failed to get deleted entries for journal %d: %w", journalID, err)
	}
	return entries, nil
}

func (s *entryService) GetByID(ctx context.Context, entryID int64) (*domain.Entry, error) {
	if entryID <= 0 {
		return nil, fmt.Errorf("%w: entry ID must be positive", apperrors.ErrValidation)
	}
	return s.entryRepo.FindEntryByID(ctx, entryID)
}

// GetByIDForUser hides entries that are soft-deleted or owned by someone else.
func (s *entryService) GetByIDForUser(ctx context.Context, entryID int64, userID int64) (*domain.Entry, error) {
	if entryID <= 0 || userID <= 0 {
		return nil, apperrors.ErrNotFound
	}

	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.IsDeleted || entry.UserID != userID {
		return nil, apperrors.ErrNotFound
	}
	return entry, nil
}

// Create persists a new entry after walking the full validation chain:
// positive ids, non-empty title, existing user, active subscription, and the
// plan's entry limit against the journal's active entry count.
func (s *entryService) Create(ctx context.Context, req dto.CreateEntryRequest, journalID int64, userID int64) (*domain.Entry, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user ID must be positive", apperrors.ErrValidation)
	}
	if journalID <= 0 {
		return nil, fmt.Errorf("%w: journal ID must be positive", apperrors.ErrValidation)
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user %d: %w", userID, err)
	}

	subscription, err := s.subscriptionRepo.FindSubscriptionByID(ctx, user.SubscriptionID)
	if err != nil || !subscription.IsActive {
		return nil, apperrors.NewSubscriptionGateError("your subscription plan is missing or inactive")
	}

	if !subscription.UnlimitedEntries() {
		existingCount, err := s.entryRepo.CountActiveEntriesByJournal(ctx, journalID)
		if err != nil {
			return nil, fmt.Errorf("failed to count entries for journal %d: %w", journalID, err)
		}
		if existingCount >= subscription.EntryLimit {
			limitErr := apperrors.NewEntryLimitError(subscription.Name, subscription.EntryLimit)
			s.LogWarn(ctx, "Entry limit reached",
				slog.String("plan", subscription.Name),
				slog.Int("limit", subscription.EntryLimit),
				slog.Int64("journal_id", journalID))
			return nil, limitErr
		}
	}

	now := time.Now()
	entry := domain.Entry{
		Title:     req.Title,
		Content:   req.Content,
		Location:  req.Location,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		CreatedAt: now,
		UpdatedAt: now,
		JournalID: journalID,
		// UserID comes from the authenticated caller, never from input.
		UserID:    userID,
		IsDeleted: false,
	}

	if err := s.entryRepo.SaveEntry(ctx, &entry); err != nil {
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}

	s.invalidateJournal(ctx, journalID)
	s.LogInfo(ctx, "Entry created", slog.Int64("entry_id", entry.EntryID), slog.Int64("journal_id", journalID))
	return &entry, nil
}

func (s *entryService) Update(ctx context.Context, entryID int64, req dto.UpdateEntryRequest, userID int64) (*domain.Entry, error) {
	entry, err := s.GetByIDForUser(ctx, entryID, userID)
	if err != nil {
		return nil, err
	}

	updated := *entry
	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, fmt.Errorf("%w: title is required", apperrors.ErrValidation)
		}
		updated.Title = *req.Title
	}
	if req.Content != nil {
		updated.Content = *req.Content
	}
	if req.Location != nil {
		updated.Location = *req.Location
	}
	if req.Latitude != nil {
		updated.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		updated.Longitude = req.Longitude
	}
	updated.UpdatedAt = time.Now()

	if err := s.entryRepo.UpdateEntry(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update entry %d: %w", entryID, err)
	}

	s.invalidateJournal(ctx, updated.JournalID)
	return &updated, nil
}

// Delete soft-deletes: the row stays put with is_deleted set so Restore can
// bring it back. Hard removal only happens via the journal cascade.
func (s *entryService) Delete(ctx context.Context, entryID int64) error {
	if entryID <= 0 {
		return fmt.Errorf("%w: entry ID must be positive", apperrors.ErrValidation)
	}

	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		// Defensive invalidation: the precise journal key is unknown.
		s.invalidateAllJournals(ctx)
		return err
	}

	if err := s.entryRepo.MarkEntryDeleted(ctx, entryID); err != nil {
		return fmt.Errorf("failed to soft-delete entry %d: %w", entryID, err)
	}

	s.invalidateJournal(ctx, entry.JournalID)
	s.LogInfo(ctx, "Entry soft-deleted", slog.Int64("entry_id", entryID))
	return nil
}

func (s *entryService) Restore(ctx context.Context, entryID int64) error {
	if entryID <= 0 {
		return fmt.Errorf("%w: entry ID must be positive", apperrors.ErrValidation)
	}

	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		s.invalidateAllJournals(ctx)
		return err
	}

	if err := s.entryRepo.RestoreEntry(ctx, entryID); err != nil {
		return fmt.Errorf("failed to restore entry %d: %w", entryID, err)
	}

	s.invalidateJournal(ctx, entry.JournalID)
	s.LogInfo(ctx, "Entry restored", slog.Int64("entry_id", entryID))
	return nil
}

func (s *entryService) invalidateJournal(ctx context.Context, journalID int64) {
	key := entriesJournalKey(journalID)
	if err := s.cache.Remove(ctx, key); err != nil {
		s.LogWarn(ctx, "Cache invalidation failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

func (s *entryService) invalidateAllJournals(ctx context.Context) {
	if err := s.cache.RemoveByPrefix(ctx, entriesJournalPrefix); err != nil {
		s.LogWarn(ctx, "Cache prefix invalidation failed", slog.String("prefix", entriesJournalPrefix), slog.String("error", err.Error()))
	}
}
