package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/traveljournal/tj_backend/internal/apperrors"
	"github.com/traveljournal/tj_backend/internal/core/domain"
	portsrepo "github.com/traveljournal/tj_backend/internal/core/ports/repositories"
	portssvc "github.com/traveljournal/tj_backend/internal/core/ports/services"
)

// subscriptionService maps plans to feature entitlements. Entitlements derive
// from the plan name: Explorer and Premium unlock media upload, PDF export
// and the map feature, Free unlocks none of them.
type subscriptionService struct {
	BaseService
	subscriptionRepo portsrepo.SubscriptionRepositoryFacade
}

// NewSubscriptionService creates the subscription policy service.
func NewSubscriptionService(subscriptionRepo portsrepo.SubscriptionRepositoryFacade) portssvc.SubscriptionSvcFacade {
	return &subscriptionService{subscriptionRepo: subscriptionRepo}
}

func (s *subscriptionService) ListPlans(ctx context.Context) ([]domain.Subscription, error) {
	plans, err := s.subscriptionRepo.FindSubscriptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscription plans: %w", err)
	}
	return plans, nil
}

func (s *subscriptionService) GetPlanByID(ctx context.Context, subscriptionID int64) (*domain.Subscription, error) {
	if subscriptionID <= 0 {
		return nil, fmt.Errorf("%w: subscription ID must be positive", apperrors.ErrValidation)
	}
	plan, err := s.subscriptionRepo.FindSubscriptionByID(ctx, subscriptionID)
	if err != nil {
		return nil, err
	}
	return plan, nil
}

// paidPlan reports whether the plan name unlocks the paid feature set.
// A missing subscription yields false rather than an error.
func (s *subscriptionService) paidPlan(ctx context.Context, subscriptionID int64) (bool, error) {
	plan, err := s.subscriptionRepo.FindSubscriptionByID(ctx, subscriptionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return plan.Name == domain.PlanPremium || plan.Name == domain.PlanExplorer, nil
}

func (s *subscriptionService) CanUploadMedia(ctx context.Context, subscriptionID int64) (bool, error) {
	return s.paidPlan(ctx, subscriptionID)
}

func (s *subscriptionService) CanExportPdf(ctx context.Context, subscriptionID int64) (bool, error) {
	return s.paidPlan(ctx, subscriptionID)
}

func (s *subscriptionService) CanUseMap(ctx context.Context, subscriptionID int64) (bool, error) {
	return s.paidPlan(ctx, subscriptionID)
}
