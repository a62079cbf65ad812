package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// Plan names seeded by the migrations. Feature entitlements derive from these.
const (
	PlanFree     = "Free"
	PlanExplorer = "Explorer"
	PlanPremium  = "Premium"
)

// Subscription is a plan record referenced by users. EntryLimit of zero or
// math.MaxInt32 means unlimited.
type Subscription struct {
	SubscriptionID int64           `json:"subscriptionID"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	StorageLimitMB int             `json:"storageLimitMB"`
	EntryLimit     int             `json:"entryLimit"`
	IsActive       bool            `json:"isActive"`
}

// UnlimitedEntries reports whether the plan imposes no entry count limit.
func (s *Subscription) UnlimitedEntries() bool {
	return s.EntryLimit <= 0 || s.EntryLimit == math.MaxInt32
}
