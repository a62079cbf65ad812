package repositories

import (
	"context"

	"github.com/traveljournal/tj_backend/internal/core/domain"
)

// SubscriptionReader defines read operations for subscription plans.
// Plans are seeded by migrations and rarely mutated, so there is no writer.
type SubscriptionReader interface {
	// FindSubscriptionByID retrieves a plan by ID.
	FindSubscriptionByID(ctx context.Context, subscriptionID int64) (*domain.Subscription, error)

	// FindSubscriptionByName retrieves a plan by its unique name.
	FindSubscriptionByName(ctx context.Context, name string) (*domain.Subscription, error)

	// FindSubscriptions retrieves all plans.
	FindSubscriptions(ctx context.Context) ([]domain.Subscription, error)
}

// SubscriptionRepositoryFacade combines all subscription repository interfaces.
type SubscriptionRepositoryFacade interface {
	SubscriptionReader
}
