package dto

import (
	"github.com/shopspring/decimal"

	"github.com/traveljournal/tj_backend/internal/core/domain"
)

// ChangePlanRequest re-points the caller's subscription.
type ChangePlanRequest struct {
	PlanID int64 `json:"planID" binding:"required,gt=0"`
}

// SubscriptionResponse is the public representation of a plan.
type SubscriptionResponse struct {
	SubscriptionID int64           `json:"subscriptionID"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	StorageLimitMB int             `json:"storageLimitMB"`
	EntryLimit     int             `json:"entryLimit"`
	IsActive       bool            `json:"isActive"`
	Unlimited      bool            `json:"unlimited"`
}

// ListSubscriptionsResponse wraps the list of plans.
type ListSubscriptionsResponse struct {
	Subscriptions []SubscriptionResponse `json:"subscriptions"`
}

// MySubscriptionResponse describes the caller's plan and entitlements.
type MySubscriptionResponse struct {
	Plan           SubscriptionResponse `json:"plan"`
	CanUploadMedia bool                 `json:"canUploadMedia"`
	CanExportPdf   bool                 `json:"canExportPdf"`
	CanUseMap      bool                 `json:"canUseMap"`
}

// ToSubscriptionResponse converts a domain.Subscription to its response DTO.
func ToSubscriptionResponse(sub *domain.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		SubscriptionID: sub.SubscriptionID,
		Name:           sub.Name,
		Description:    sub.Description,
		Price:          sub.Price,
		StorageLimitMB: sub.StorageLimitMB,
		EntryLimit:     sub.EntryLimit,
		IsActive:       sub.IsActive,
		Unlimited:      sub.UnlimitedEntries(),
	}
}

// ToListSubscriptionsResponse converts a slice of domain.Subscription to ListSubscriptionsResponse.
func ToListSubscriptionsResponse(subs []domain.Subscription) ListSubscriptionsResponse {
	subResponses := make([]SubscriptionResponse, len(subs))
	for i, s := range subs {
		subResponses[i] = ToSubscriptionResponse(&s)
	}
	return ListSubscriptionsResponse{Subscriptions: subResponses}
}
