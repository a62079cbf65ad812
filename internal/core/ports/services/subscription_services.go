package services

import (
	"context"

	"github.com/traveljournal/tj_backend/internal/core/domain"
)

// SubscriptionReaderSvc defines read operations over subscription plans.
type SubscriptionReaderSvc interface {
	// ListPlans retrieves all subscription plans.
	ListPlans(ctx context.Context) ([]domain.Subscription, error)

	// GetPlanByID retrieves a plan by ID.
	GetPlanByID(ctx context.Context, subscriptionID int64) (*domain.Subscription, error)
}

// SubscriptionPolicySvc maps a subscription to feature entitlements. A missing
// subscription yields false for every gate.
type SubscriptionPolicySvc interface {
	// CanUploadMedia reports whether the plan unlocks media/photo upload.
	CanUploadMedia(ctx context.Context, subscriptionID int64) (bool, error)

	// CanExportPdf reports whether the plan unlocks PDF export.
	CanExportPdf(ctx context.Context, subscriptionID int64) (bool, error)

	// CanUseMap reports whether the plan unlocks the map feature.
	CanUseMap(ctx context.Context, subscriptionID int64) (bool, error)
}

// SubscriptionSvcFacade combines all subscription-related service interfaces
type SubscriptionSvcFacade interface {
	SubscriptionReaderSvc
	SubscriptionPolicySvc
}
