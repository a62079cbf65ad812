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

// --- Mock EntryRepository ---
type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) FindEntryByID(ctx context.Context, entryID int64) (*domain.Entry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *MockEntryRepository) FindEntriesByJournal(ctx context.Context, journalID int64) ([]domain.Entry, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entry), args.Error(1)
}

func (m *MockEntryRepository) FindDeletedEntriesByJournal(ctx context.Context, journalID int64) ([]domain.Entry, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entry), args.Error(1)
}

func (m *MockEntryRepository) CountActiveEntriesByJournal(ctx context.Context, journalID int64) (int, error) {
	args := m.Called(ctx, journalID)
	return args.Int(0), args.Error(1)
}

func (m *MockEntryRepository) SaveEntry(ctx context.Context, entry *domain.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEntryRepository) UpdateEntry(ctx context.Context, entry domain.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEntryRepository) MarkEntryDeleted(ctx context.Context, entryID int64) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

func (m *MockEntryRepository) RestoreEntry(ctx context.Context, entryID int64) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

// --- Mock UserRepository (reader) ---
type MockUserReader struct {
	mock.Mock
}

func (m *MockUserReader) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserReader) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserReader) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// --- Test Suite ---
type EntryServiceTestSuite struct {
	suite.Suite
	mockEntryRepo *MockEntryRepository
	mockUserRepo  *MockUserReader
	mockSubRepo   *MockSubscriptionRepository
	cache         cache.Cache
	service       portssvc.EntrySvcFacade
}

func (suite *EntryServiceTestSuite) SetupTest() {
	suite.mockEntryRepo = new(MockEntryRepository)
	suite.mockUserRepo = new(MockUserReader)
	suite.mockSubRepo = new(MockSubscriptionRepository)
	suite.cache = cache.NewMemoryCache(time.Minute)
	suite.service = services.NewEntryService(suite.mockEntryRepo, suite.mockUserRepo, suite.mockSubRepo, suite.cache)
}

func (suite *EntryServiceTestSuite) TearDownTest() {
	suite.cache.Close()
}

func testUser(subscriptionID int64) *domain.User {
	return &domain.User{UserID: 7, Username: "wanderer", Role: domain.RoleUser, SubscriptionID: subscriptionID}
}

// --- Create / entry limit ---

func (suite *EntryServiceTestSuite) TestCreate_Success() {
	ctx := context.Background()
	req := dto.CreateEntryRequest{Title: "Day one", Content: "Arrived in Lisbon"}

	suite.mockUserRepo.On("FindUserByID", ctx, int64(7)).Return(testUser(1), nil).Once()
	suite.mockSubRepo.On("FindSubscriptionByID", ctx, int64(1)).Return(freePlan(), nil).Once()
	suite.mockEntryRepo.On("CountActiveEntriesByJournal", ctx, int64(3)).Return(2, nil).Once()
	suite.mockEntryRepo.On("SaveEntry", ctx, mock.MatchedBy(func(e *domain.Entry) bool {
		return e.Title == req.Title && e.JournalID == 3 && e.UserID == 7 && !e.IsDeleted
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Entry).EntryID = 42
	}).Return(nil).Once()

	entry, err := suite.service.Create(ctx, req, 3, 7)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.Equal(int64(42), entry.EntryID)
	suite.Equal(req.Title, entry.Title)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestCreate_LimitReached() {
	ctx := context.Background()
	req := dto.CreateEntryRequest{Title: "One too many"}

	suite.mockUserRepo.On("FindUserByID", ctx, int64(7)).Return(testUser(1), nil).Once()
	suite.mockSubRepo.On("FindSubscriptionByID", ctx, int64(1)).Return(freePlan(), nil).Once()
	suite.mockEntryRepo.On("CountActiveEntriesByJournal", ctx, int64(3)).Return(50, nil).Once()

	entry, err := suite.service.Create(ctx, req, 3, 7)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrSubscriptionLimit)
	// The message surfaces the plan name and the limit for the upgrade prompt.
	suite.Contains(err.Error(), domain.PlanFree)
	suite.Contains(err.Error(), "50")
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *EntryServiceTestSuite) TestCreate_UnlimitedPlanSkipsCount() {
	ctx := context.Background()
	req := dto.CreateEntryRequest{Title: "Entry 5001"}

	suite.mockUserRepo.On("FindUserByID", ctx, int64(7)).Return(testUser(3), nil).Once()
	suite.mockSubRepo.On("FindSubscriptionByID", ctx, int64(3)).Return(premiumPlan(), nil).Once()
	suite.mockEntryRepo.On("SaveEntry", ctx, mock.AnythingOfType("*domain.Entry")).Return(nil).Once()

	entry, err := suite.service.Create(ctx, req, 3, 7)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "CountActiveEntriesByJournal", mock.Anything, mock.Anything)
}

func (suite *EntryServiceTestSuite) TestCreate_InactiveSubscriptionBlocked() {
	ctx := context.Background()
	inactive := &domain.Subscription{SubscriptionID: 1, Name: domain.PlanFree, EntryLimit: 50, IsActive: false}

	suite.mockUserRepo.On("FindUserByID", ctx, int64(7)).Return(testUser(1), nil).Once()
	suite.mockSubRepo.On("FindSubscriptionByID", ctx, int64(1)).Return(inactive, nil).Once()

	entry, err := suite.service.Create(ctx, dto.CreateEntryRequest{Title: "Blocked"}, 3, 7)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrSubscriptionLimit)
}

func (suite *EntryServiceTestSuite) TestCreate_EmptyTitleRejected() {
	entry, err := suite.service.Create(context.Background(), dto.CreateEntryRequest{Title: "   "}, 3, 7)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- Ownership and soft-delete visibility ---

func (suite *EntryServiceTestSuite) TestGetByIDForUser_ForeignEntryNotFound() {
	ctx := context.Background()
	foreign := &domain.Entry{EntryID: 5, JournalID: 3, UserID: 99}
	suite.mockEntryRepo.On("FindEntryByID", ctx, int64(5)).Return(foreign, nil).Once()

	entry, err := suite.service.GetByIDForUser(ctx, 5, 7)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *EntryServiceTestSuite) TestGetByIDForUser_DeletedEntryNotFound() {
	ctx := context.Background()
	deleted := &domain.Entry{EntryID: 5, JournalID: 3, UserID: 7, IsDeleted: true}
	suite.mockEntryRepo.On("FindEntryByID", ctx, int64(5)).Return(deleted, nil).Once()

	entry, err := suite.service.GetByIDForUser(ctx, 5, 7)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *EntryServiceTestSuite) TestDeleteAndRestore_ListingSemantics() {
	ctx := context.Background()
	active := []domain.Entry{{EntryID: 1, JournalID: 3, UserID: 7, Title: "kept"}}
	deleted := []domain.Entry{{EntryID: 2, JournalID: 3, UserID: 7, Title: "trashed", IsDeleted: true}}

	suite.mockEntryRepo.On("FindEntriesByJournal", ctx, int64(3)).Return(active, nil).Once()
	suite.mockEntryRepo.On("FindDeletedEntriesByJournal", ctx, int64(3)).Return(deleted, nil).Once()

	got, err := suite.service.GetByJournal(ctx, 3)
	suite.Require().NoError(err)
	suite.Len(got, 1)
	suite.Equal("kept", got[0].Title)

	trash, err := suite.service.GetDeletedByJournal(ctx, 3)
	suite.Require().NoError(err)
	suite.Len(trash, 1)
	suite.Equal("trashed", trash[0].Title)
	suite.True(trash[0].IsDeleted)
}

func (suite *EntryServiceTestSuite) TestDelete_SoftDeletesAndInvalidatesCache() {
	ctx := context.Background()
	entry := &domain.Entry{EntryID: 5, JournalID: 3, UserID: 7}

	// Prime the cache for journal 3.
	suite.mockEntryRepo.On("FindEntriesByJournal", ctx, int64(3)).Return([]domain.Entry{*entry}, nil).Once()
	_, err := suite.service.GetByJournal(ctx, 3)
	suite.Require().NoError(err)

	suite.mockEntryRepo.On("FindEntryByID", ctx, int64(5)).Return(entry, nil).Once()
	suite.mockEntryRepo.On("MarkEntryDeleted", ctx, int64(5)).Return(nil).Once()

	suite.Require().NoError(suite.service.Delete(ctx, 5))

	// The next listing must come from the store, not the stale cache.
	suite.mockEntryRepo.On("FindEntriesByJournal", ctx, int64(3)).Return([]domain.Entry{}, nil).Once()
	got, err := suite.service.GetByJournal(ctx, 3)
	suite.Require().NoError(err)
	suite.Empty(got)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestRestore_Success() {
	ctx := context.Background()
	entry := &domain.Entry{EntryID: 5, JournalID: 3, UserID: 7, IsDeleted: true}

	suite.mockEntryRepo.On("FindEntryByID", ctx, int64(5)).Return(entry, nil).Once()
	suite.mockEntryRepo.On("RestoreEntry", ctx, int64(5)).Return(nil).Once()

	suite.Require().NoError(suite.service.Restore(ctx, 5))
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestGetByJournal_SecondReadServedFromCache() {
	ctx := context.Background()
	entries := []domain.Entry{{EntryID: 1, JournalID: 3, UserID: 7, Title: "cached"}}
	suite.mockEntryRepo.On("FindEntriesByJournal", ctx, int64(3)).Return(entries, nil).Once()

	first, err := suite.service.GetByJournal(ctx, 3)
	suite.Require().NoError(err)
	second, err := suite.service.GetByJournal(ctx, 3)
	suite.Require().NoError(err)

	suite.Equal(first, second)
	suite.mockEntryRepo.AssertNumberOfCalls(suite.T(), "FindEntriesByJournal", 1)
}

func TestEntryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EntryServiceTestSuite))
}
