package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/traveljournal/tj_backend/internal/apperrors"
	"github.com/traveljournal/tj_backend/internal/core/domain"
	portsrepo "github.com/traveljournal/tj_backend/internal/core/ports/repositories"
	portssvc "github.com/traveljournal/tj_backend/internal/core/ports/services"
	"github.com/traveljournal/tj_backend/internal/dto"
	"github.com/traveljournal/tj_backend/internal/utils"
)

type userService struct {
	BaseService
	userRepo         portsrepo.UserRepositoryFacade
	subscriptionRepo portsrepo.SubscriptionRepositoryFacade
	analytics        *utils.PosthogClientWrapper
}

// NewUserService creates the user service. analytics may be a no-op wrapper.
func NewUserService(
	userRepo portsrepo.UserRepositoryFacade,
	subscriptionRepo portsrepo.SubscriptionRepositoryFacade,
	analytics *utils.PosthogClientWrapper,
) portssvc.UserSvcFacade {
	return &userService{
		userRepo:         userRepo,
		subscriptionRepo: subscriptionRepo,
		analytics:        analytics,
	}
}

// Register creates a new account on the Free plan with a bcrypt-hashed password.
func (s *userService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	freePlan, err := s.subscriptionRepo.FindSubscriptionByName(ctx, domain.PlanFree)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve default plan: %w", err)
	}

	displayName := req.DisplayName
	if displayName == "" {
		displayName = req.Username
	}

	now := time.Now()
	user := domain.User{
		Username:       req.Username,
		Email:          req.Email,
		DisplayName:    displayName,
		PasswordHash:   passwordHash,
		Role:           domain.RoleUser,
		SubscriptionID: freePlan.SubscriptionID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.userRepo.SaveUser(ctx, &user); err != nil {
		return nil, err
	}

	if s.analytics != nil {
		s.analytics.Enqueue(fmt.Sprintf("user_%d", user.UserID), "user_registered", map[string]any{
			"plan": freePlan.Name,
		})
	}
	s.LogInfo(ctx, "User registered", slog.Int64("user_id", user.UserID))
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user ID must be positive", apperrors.ErrValidation)
	}
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", apperrors.ErrValidation)
	}
	return s.userRepo.FindUserByUsername(ctx, username)
}

func (s *userService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	users, err := s.userRepo.FindUsers(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetSubscription resolves the user, then their plan.
func (s *userService) GetSubscription(ctx context.Context, userID int64) (*domain.Subscription, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.subscriptionRepo.FindSubscriptionByID(ctx, user.SubscriptionID)
}

func (s *userService) UpdateUser(ctx context.Context, userID int64, req dto.UpdateUserRequest, requestingUserID int64) (*domain.User, error) {
	if userID != requestingUserID {
		return nil, apperrors.ErrForbidden
	}

	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	updated := *user
	if req.DisplayName != nil {
		updated.DisplayName = *req.DisplayName
	}
	if req.Email != nil {
		updated.Email = *req.Email
	}
	updated.UpdatedAt = time.Now()

	if err := s.userRepo.UpdateUser(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update user %d: %w", userID, err)
	}
	return &updated, nil
}

// ChangePlan re-points the user's subscription after validating the target
// plan exists and is active.
func (s *userService) ChangePlan(ctx context.Context, userID int64, planID int64) (*domain.Subscription, error) {
	plan, err := s.subscriptionRepo.FindSubscriptionByID(ctx, planID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: plan %d does not exist", apperrors.ErrValidation, planID)
		}
		return nil, err
	}
	if !plan.IsActive {
		return nil, fmt.Errorf("%w: plan %q is not active", apperrors.ErrValidation, plan.Name)
	}

	if err := s.userRepo.UpdateUserSubscription(ctx, userID, planID); err != nil {
		return nil, err
	}

	if s.analytics != nil {
		s.analytics.Enqueue(fmt.Sprintf("user_%d", userID), "plan_changed", map[string]any{
			"plan": plan.Name,
		})
	}
	s.LogInfo(ctx, "Plan changed", slog.Int64("user_id", userID), slog.String("plan", plan.Name))
	return plan, nil
}

// Authenticate verifies credentials without revealing which part failed.
func (s *userService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrForbidden
		}
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrForbidden
	}
	return user, nil
}
