package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/traveljournal/tj_backend/internal/apperrors"
	"github.com/traveljournal/tj_backend/internal/core/domain"
	portssvc "github.com/traveljournal/tj_backend/internal/core/ports/services"
	"github.com/traveljournal/tj_backend/internal/core/services"
	"github.com/traveljournal/tj_backend/internal/dto"
	"github.com/traveljournal/tj_backend/internal/platform/cache"
)

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

func (m *MockJournalRepository) FindJournalByID(ctx context.Context, journalID int64) (*domain.Journal, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) FindJournalsByUser(ctx context.Context, userID int64) ([]domain.Journal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) FindAllJournals(ctx context.Context, includeEntries bool) ([]domain.Journal, error) {
	args := m.Called(ctx, includeEntries)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) SaveJournal(ctx context.Context, journal *domain.Journal) error {
	args := m.Called(ctx, journal)
	return args.Error(0)
}

func (m *MockJournalRepository) UpdateJournal(ctx context.Context, journal domain.Journal) error {
	args := m.Called(ctx, journal)
	return args.Error(0)
}

func (m *MockJournalRepository) DeleteJournalCascade(ctx context.Context, journalID int64) error {
	args := m.Called(ctx, journalID)
	return args.Error(0)
}

// --- Test Suite ---
type JournalServiceTestSuite struct {
	suite.Suite
	mockRepo *MockJournalRepository
	cache    cache.Cache
	service  portssvc.JournalSvcFacade
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockJournalRepository)
	suite.cache = cache.NewMemoryCache(time.Minute)
	suite.service = services.NewJournalService(suite.mockRepo, suite.cache)
}

func (suite *JournalServiceTestSuite) TearDownTest() {
	suite.cache.Close()
}

// --- Cached reads ---

func (suite *JournalServiceTestSuite) TestGetByUser_SecondReadServedFromCache() {
	ctx := context.Background()
	journals := []domain.Journal{{JournalID: 1, Title: "Portugal 2025", UserID: 7}}
	suite.mockRepo.On("FindJournalsByUser", ctx, int64(7)).Return(journals, nil).Once()

	first, err := suite.service.GetByUser(ctx, 7)
	suite.Require().NoError(err)
	second, err := suite.service.GetByUser(ctx, 7)
	suite.Require().NoError(err)

	suite.Equal(first, second)
	suite.mockRepo.AssertNumberOfCalls(suite.T(), "FindJournalsByUser", 1)
}

func (suite *JournalServiceTestSuite) TestCreate_InvalidatesOwnerList() {
	ctx := context.Background()

	// Prime the owner's list cache.
	suite.mockRepo.On("FindJournalsByUser", ctx, int64(7)).Return([]domain.Journal{}, nil).Once()
	_, err := suite.service.GetByUser(ctx, 7)
	suite.Require().NoError(err)

	req := dto.CreateJournalRequest{Title: "New trip"}
	suite.mockRepo.On("SaveJournal", ctx, mock.MatchedBy(func(j *domain.Journal) bool {
		return j.Title == req.Title && j.UserID == 7
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Journal).JournalID = 11
	}).Return(nil).Once()

	journal, err := suite.service.Create(ctx, req, 7)
	suite.Require().NoError(err)
	suite.Equal(int64(11), journal.JournalID)

	// The stale empty list must not be served after the write.
	fresh := []domain.Journal{{JournalID: 11, Title: "New trip", UserID: 7}}
	suite.mockRepo.On("FindJournalsByUser", ctx, int64(7)).Return(fresh, nil).Once()
	got, err := suite.service.GetByUser(ctx, 7)
	suite.Require().NoError(err)
	suite.Len(got, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestGetByIDForUser_NotOwnedReportsNotFound() {
	ctx := context.Background()
	foreign := &domain.Journal{JournalID: 1, UserID: 99}
	suite.mockRepo.On("FindJournalByID", ctx, int64(1)).Return(foreign, nil).Once()

	journal, err := suite.service.GetByIDForUser(ctx, 1, 7)

	suite.Require().Error(err)
	suite.Nil(journal)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *JournalServiceTestSuite) TestUpdate_MergesFieldsAndInvalidates() {
	ctx := context.Background()
	existing := &domain.Journal{JournalID: 1, Title: "Old", Description: "keep me", UserID: 7}
	newTitle := "New"

	suite.mockRepo.On("FindJournalByID", ctx, int64(1)).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateJournal", ctx, mock.MatchedBy(func(j domain.Journal) bool {
		return j.Title == newTitle && j.Description == "keep me"
	})).Return(nil).Once()

	updated, err := suite.service.Update(ctx, 1, dto.UpdateJournalRequest{Title: &newTitle}, 7)

	suite.Require().NoError(err)
	suite.Equal(newTitle, updated.Title)
	suite.Equal("keep me", updated.Description)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestDelete_CascadesAndInvalidatesJournalCache() {
	ctx := context.Background()
	owned := &domain.Journal{JournalID: 1, Title: "Doomed", UserID: 7}

	// Prime the per-journal cache.
	suite.mockRepo.On("FindJournalByID", ctx, int64(1)).Return(owned, nil).Times(2)
	_, err := suite.service.GetByID(ctx, 1)
	suite.Require().NoError(err)

	suite.mockRepo.On("DeleteJournalCascade", ctx, int64(1)).Return(nil).Once()
	suite.Require().NoError(suite.service.Delete(ctx, 1, 7))

	// A fresh read must go back to the store.
	suite.mockRepo.On("FindJournalByID", ctx, int64(1)).Return(nil, apperrors.ErrNotFound).Once()
	_, err = suite.service.GetByID(ctx, 1)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestDelete_NotOwnedDoesNotCascade() {
	ctx := context.Background()
	foreign := &domain.Journal{JournalID: 1, UserID: 99}
	suite.mockRepo.On("FindJournalByID", ctx, int64(1)).Return(foreign, nil).Once()

	err := suite.service.Delete(ctx, 1, 7)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteJournalCascade", mock.Anything, mock.Anything)
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
