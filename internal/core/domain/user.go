package domain

import "time"

// User represents an account holder. Every user references exactly one
// subscription plan, which gates entry counts and media features.
type User struct {
	UserID         int64     `json:"userID"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	DisplayName    string    `json:"displayName"`
	PasswordHash   string    `json:"-"`
	Role           Role      `json:"role"`
	SubscriptionID int64     `json:"subscriptionID"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// IsAdmin reports whether the user may access the admin area.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
