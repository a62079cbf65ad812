package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/traveljournal/tj_backend/internal/apperrors"
	"github.com/traveljournal/tj_backend/internal/core/domain"
	portsrepo "github.com/traveljournal/tj_backend/internal/core/ports/repositories"
)

type PgxSubscriptionRepository struct {
	pool *pgxpool.Pool
}

// NewPgxSubscriptionRepository creates a new repository for subscription plans.
func NewPgxSubscriptionRepository(pool *pgxpool.Pool) portsrepo.SubscriptionRepositoryFacade {
	return &PgxSubscriptionRepository{pool: pool}
}

const subscriptionColumns = `subscription_id, name, description, price, storage_limit_mb, entry_limit, is_active`

func scanSubscription(row pgx.Row) (*domain.Subscription, error) {
	var sub domain.Subscription
	err := row.Scan(
		&sub.SubscriptionID,
		&sub.Name,
		&sub.Description,
		&sub.Price,
		&sub.StorageLimitMB,
		&sub.EntryLimit,
		&sub.IsActive,
	)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *PgxSubscriptionRepository) FindSubscriptionByID(ctx context.Context, subscriptionID int64) (*domain.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions WHERE subscription_id = $1;`
	sub, err := scanSubscription(r.pool.QueryRow(ctx, query, subscriptionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find subscription by ID %d: %w", subscriptionID, err)
	}
	return sub, nil
}

func (r *PgxSubscriptionRepository) FindSubscriptionByName(ctx context.Context, name string) (*domain.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions WHERE name = $1;`
	sub, err := scanSubscription(r.pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find subscription by name %s: %w", name, err)
	}
	return sub, nil
}

func (r *PgxSubscriptionRepository) FindSubscriptions(ctx context.Context) ([]domain.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions ORDER BY subscription_id;`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query subscriptions: %w", err)
	}
	defer rows.Close()

	subs := []domain.Subscription{}
	for rows.Next() {
		sub, err := scanSubscription(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subscription row: %w", err)
		}
		subs = append(subs, *sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subscription rows: %w", err)
	}
	return subs, nil
}
