package services_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/traveljournal/tj_backend/internal/apperrors"
	"github.com/traveljournal/tj_backend/internal/core/domain"
	portssvc "github.com/traveljournal/tj_backend/internal/core/ports/services"
	"github.com/traveljournal/tj_backend/internal/core/services"
)

// --- Mock SubscriptionRepository ---
type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) FindSubscriptionByID(ctx context.Context, subscriptionID int64) (*domain.Subscription, error) {
	args := m.Called(ctx, subscriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) FindSubscriptionByName(ctx context.Context, name string) (*domain.Subscription, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) FindSubscriptions(ctx context.Context) ([]domain.Subscription, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Subscription), args.Error(1)
}

// --- Test Suite ---
type SubscriptionServiceTestSuite struct {
	suite.Suite
	mockRepo *MockSubscriptionRepository
	service  portssvc.SubscriptionSvcFacade
}

func (suite *SubscriptionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockSubscriptionRepository)
	suite.service = services.NewSubscriptionService(suite.mockRepo)
}

func freePlan() *domain.Subscription {
	return &domain.Subscription{SubscriptionID: 1, Name: domain.PlanFree, EntryLimit: 50, IsActive: true}
}

func explorerPlan() *domain.Subscription {
	return &domain.Subscription{SubscriptionID: 2, Name: domain.PlanExplorer, EntryLimit: 50, IsActive: true}
}

func premiumPlan() *domain.Subscription {
	return &domain.Subscription{SubscriptionID: 3, Name: domain.PlanPremium, EntryLimit: math.MaxInt32, IsActive: true}
}

// --- Gating matrix ---

func (suite *SubscriptionServiceTestSuite) TestGates_FreePlanUnlocksNothing() {
	ctx := context.Background()
	suite.mockRepo.On("FindSubscriptionByID", ctx, int64(1)).Return(freePlan(), nil).Times(3)

	canUpload, err := suite.service.CanUploadMedia(ctx, 1)
	suite.Require().NoError(err)
	suite.False(canUpload)

	canExport, err := suite.service.CanExportPdf(ctx, 1)
	suite.Require().NoError(err)
	suite.False(canExport)

	canMap, err := suite.service.CanUseMap(ctx, 1)
	suite.Require().NoError(err)
	suite.False(canMap)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SubscriptionServiceTestSuite) TestGates_ExplorerPlanUnlocksAll() {
	ctx := context.Background()
	suite.mockRepo.On("FindSubscriptionByID", ctx, int64(2)).Return(explorerPlan(), nil).Times(3)

	canUpload, err := suite.service.CanUploadMedia(ctx, 2)
	suite.Require().NoError(err)
	suite.True(canUpload)

	canExport, err := suite.service.CanExportPdf(ctx, 2)
	suite.Require().NoError(err)
	suite.True(canExport)

	canMap, err := suite.service.CanUseMap(ctx, 2)
	suite.Require().NoError(err)
	suite.True(canMap)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SubscriptionServiceTestSuite) TestGates_PremiumPlanUnlocksAll() {
	ctx := context.Background()
	suite.mockRepo.On("FindSubscriptionByID", ctx, int64(3)).Return(premiumPlan(), nil).Times(3)

	canUpload, err := suite.service.CanUploadMedia(ctx, 3)
	suite.Require().NoError(err)
	suite.True(canUpload)

	canExport, err := suite.service.CanExportPdf(ctx, 3)
	suite.Require().NoError(err)
	suite.True(canExport)

	canMap, err := suite.service.CanUseMap(ctx, 3)
	suite.Require().NoError(err)
	suite.True(canMap)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SubscriptionServiceTestSuite) TestGates_MissingSubscriptionYieldsFalse() {
	ctx := context.Background()
	suite.mockRepo.On("FindSubscriptionByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	canUpload, err := suite.service.CanUploadMedia(ctx, 99)

	suite.Require().NoError(err)
	suite.False(canUpload)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Plan reads ---

func (suite *SubscriptionServiceTestSuite) TestListPlans_Success() {
	ctx := context.Background()
	plans := []domain.Subscription{*freePlan(), *explorerPlan(), *premiumPlan()}
	suite.mockRepo.On("FindSubscriptions", ctx).Return(plans, nil).Once()

	got, err := suite.service.ListPlans(ctx)

	suite.Require().NoError(err)
	suite.Len(got, 3)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SubscriptionServiceTestSuite) TestGetPlanByID_InvalidID() {
	got, err := suite.service.GetPlanByID(context.Background(), 0)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *SubscriptionServiceTestSuite) TestUnlimitedEntries() {
	suite.True(premiumPlan().UnlimitedEntries())
	suite.False(freePlan().UnlimitedEntries())
	suite.False(explorerPlan().UnlimitedEntries())

	zeroLimit := &domain.Subscription{EntryLimit: 0}
	suite.True(zeroLimit.UnlimitedEntries())
}

func TestSubscriptionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SubscriptionServiceTestSuite))
}
