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
)

type ExportServiceTestSuite struct {
	suite.Suite
	mockJournalRepo *MockJournalRepository
	mockEntryRepo   *MockEntryRepository
	mockUserRepo    *MockUserReader
	mockSubRepo     *MockSubscriptionRepository
	service         portssvc.ExportSvcFacade
}

func (suite *ExportServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockEntryRepo = new(MockEntryRepository)
	suite.mockUserRepo = new(MockUserReader)
	suite.mockSubRepo = new(MockSubscriptionRepository)

	policy := services.NewSubscriptionService(suite.mockSubRepo)
	suite.service = services.NewExportService(suite.mockJournalRepo, suite.mockEntryRepo, suite.mockUserRepo, policy)
}

func (suite *ExportServiceTestSuite) TestJournalPDF_FreePlanBlocked() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByID", ctx, int64(7)).Return(testUser(1), nil).Once()
	suite.mockSubRepo.On("FindSubscriptionByID", ctx, int64(1)).Return(freePlan(), nil).Once()

	pdfBytes, err := suite.service.JournalPDF(ctx, 3, 7)

	suite.Require().Error(err)
	suite.Nil(pdfBytes)
	suite.ErrorIs(err, apperrors.ErrSubscriptionLimit)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "FindJournalByID", mock.Anything, mock.Anything)
}

func (suite *ExportServiceTestSuite) TestJournalPDF_ForeignJournalNotFound() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByID", ctx, int64(7)).Return(testUser(3), nil).Once()
	suite.mockSubRepo.On("FindSubscriptionByID", ctx, int64(3)).Return(premiumPlan(), nil).Once()
	suite.mockJournalRepo.On("FindJournalByID", ctx, int64(3)).Return(&domain.Journal{JournalID: 3, UserID: 99}, nil).Once()

	pdfBytes, err := suite.service.JournalPDF(ctx, 3, 7)

	suite.Require().Error(err)
	suite.Nil(pdfBytes)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ExportServiceTestSuite) TestJournalPDF_RendersActiveEntries() {
	ctx := context.Background()
	journal := &domain.Journal{JournalID: 3, Title: "Portugal 2025", UserID: 7, CreatedAt: time.Now()}
	entries := []domain.Entry{
		{EntryID: 1, Title: "Lisbon", Content: "Pastel de nata", CreatedAt: time.Now(), JournalID: 3, UserID: 7},
		{EntryID: 2, Title: "Porto", Location: "Ribeira", CreatedAt: time.Now(), JournalID: 3, UserID: 7},
	}

	suite.mockUserRepo.On("FindUserByID", ctx, int64(7)).Return(testUser(3), nil).Once()
	suite.mockSubRepo.On("FindSubscriptionByID", ctx, int64(3)).Return(premiumPlan(), nil).Once()
	suite.mockJournalRepo.On("FindJournalByID", ctx, int64(3)).Return(journal, nil).Once()
	suite.mockEntryRepo.On("FindEntriesByJournal", ctx, int64(3)).Return(entries, nil).Once()

	pdfBytes, err := suite.service.JournalPDF(ctx, 3, 7)

	suite.Require().NoError(err)
	suite.Require().NotEmpty(pdfBytes)
	suite.Equal("%PDF", string(pdfBytes[:4]))
}

func TestExportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExportServiceTestSuite))
}
