package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found,
// or that the caller is not allowed to see it.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the caller is authenticated but not allowed to perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrSubscriptionLimit is the sentinel for all subscription gating failures.
// Use errors.Is against this to detect them regardless of the concrete type.
var ErrSubscriptionLimit = errors.New("subscription limit")

// SubscriptionLimitError carries plan context for a gating failure so handlers
// can surface a human-readable message with the plan name and limit.
type SubscriptionLimitError struct {
	PlanName string
	Limit    int
	Reason   string
}

func (e *SubscriptionLimitError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	return fmt.Sprintf("entry limit reached for plan %q: limit=%d entries per journal, upgrade to add more entries", e.PlanName, e.Limit)
}

func (e *SubscriptionLimitError) Is(target error) bool {
	return target == ErrSubscriptionLimit
}

// NewEntryLimitError reports that a journal already holds the plan's maximum number of active entries.
func NewEntryLimitError(planName string, limit int) *SubscriptionLimitError {
	return &SubscriptionLimitError{PlanName: planName, Limit: limit}
}

// NewSubscriptionGateError reports a feature gate failure with a specific message.
func NewSubscriptionGateError(reason string) *SubscriptionLimitError {
	return &SubscriptionLimitError{Reason: reason}
}
