package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/traveljournal/tj_backend/internal/apperrors"
	"github.com/traveljournal/tj_backend/internal/core/domain"
	portssvc "github.com/traveljournal/tj_backend/internal/core/ports/services"
	"github.com/traveljournal/tj_backend/internal/core/services"
	"github.com/traveljournal/tj_backend/internal/dto"
	"github.com/traveljournal/tj_backend/internal/utils"
)

// --- Mock UserRepository (full facade) ---
type MockUserRepository struct {
	MockUserReader
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUserSubscription(ctx context.Context, userID int64, subscriptionID int64) error {
	args := m.Called(ctx, userID, subscriptionID)
	return args.Error(0)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	mockSubRepo  *MockSubscriptionRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockSubRepo = new(MockSubscriptionRepository)
	suite.service = services.NewUserService(suite.mockUserRepo, suite.mockSubRepo, nil)
}

func (suite *UserServiceTestSuite) TestRegister_DefaultsToFreePlan() {
	ctx := context.Background()
	req := dto.RegisterRequest{Username: "wanderer", Email: "w@example.com", Password: "hunter2hunter2"}

	suite.mockSubRepo.On("FindSubscriptionByName", ctx, domain.PlanFree).Return(freePlan(), nil).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.Username == req.Username &&
			u.SubscriptionID == freePlan().SubscriptionID &&
			u.Role == domain.RoleUser &&
			u.PasswordHash != "" && u.PasswordHash != req.Password
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.User).UserID = 7
	}).Return(nil).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Equal(int64(7), user.UserID)
	// Empty display name falls back to the username.
	suite.Equal(req.Username, user.DisplayName)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegister_DuplicateUsername() {
	ctx := context.Background()
	req := dto.RegisterRequest{Username: "wanderer", Email: "w@example.com", Password: "hunter2hunter2"}

	suite.mockSubRepo.On("FindSubscriptionByName", ctx, domain.PlanFree).Return(freePlan(), nil).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("*domain.User")).Return(apperrors.ErrDuplicate).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *UserServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct horse")
	suite.Require().NoError(err)
	stored := &domain.User{UserID: 7, Username: "wanderer", PasswordHash: hash}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "wanderer").Return(stored, nil).Once()

	user, err := suite.service.Authenticate(ctx, "wanderer", "correct horse")

	suite.Require().NoError(err)
	suite.Equal(int64(7), user.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct horse")
	suite.Require().NoError(err)
	stored := &domain.User{UserID: 7, Username: "wanderer", PasswordHash: hash}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "wanderer").Return(stored, nil).Once()

	user, err := suite.service.Authenticate(ctx, "wanderer", "wrong")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownUserSameError() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.Authenticate(ctx, "ghost", "whatever")

	suite.Require().Error(err)
	suite.Nil(user)
	// Unknown users and wrong passwords are indistinguishable.
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestChangePlan_Success() {
	ctx := context.Background()
	suite.mockSubRepo.On("FindSubscriptionByID", ctx, int64(3)).Return(premiumPlan(), nil).Once()
	suite.mockUserRepo.On("UpdateUserSubscription", ctx, int64(7), int64(3)).Return(nil).Once()

	plan, err := suite.service.ChangePlan(ctx, 7, 3)

	suite.Require().NoError(err)
	suite.Equal(domain.PlanPremium, plan.Name)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestChangePlan_InactivePlanRejected() {
	ctx := context.Background()
	retired := &domain.Subscription{SubscriptionID: 4, Name: "Legacy", IsActive: false}
	suite.mockSubRepo.On("FindSubscriptionByID", ctx, int64(4)).Return(retired, nil).Once()

	plan, err := suite.service.ChangePlan(ctx, 7, 4)

	suite.Require().Error(err)
	suite.Nil(plan)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateUserSubscription", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestChangePlan_UnknownPlanRejected() {
	ctx := context.Background()
	suite.mockSubRepo.On("FindSubscriptionByID", ctx, int64(999)).Return(nil, apperrors.ErrNotFound).Once()

	plan, err := suite.service.ChangePlan(ctx, 7, 999)

	suite.Require().Error(err)
	suite.Nil(plan)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *UserServiceTestSuite) TestUpdateUser_OtherUserForbidden() {
	user, err := suite.service.UpdateUser(context.Background(), 8, dto.UpdateUserRequest{}, 7)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
