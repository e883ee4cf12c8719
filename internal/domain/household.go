package domain

import "time"

// ============================================================
// Households & Members
// ============================================================

// Member is an authenticated person in a household.
type Member struct {
	ID           string     `json:"id"`
	HouseholdID  string     `json:"household_id"`
	Email        string     `json:"email"`
	FullName     string     `json:"full_name"`
	PasswordHash string     `json:"password_hash,omitempty"`
	IsActive     bool       `json:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// RegisterRequest creates a new member. When HouseholdID is empty a new
// household is created for the member.
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FullName    string `json:"full_name"`
	HouseholdID string `json:"household_id,omitempty"`
}

// LoginRequest authenticates a member by email and password.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest exchanges a refresh token for a new token pair.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// LoginResponse carries the issued token pair.
type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	MemberID     string `json:"member_id"`
	HouseholdID  string `json:"household_id"`
	FullName     string `json:"full_name,omitempty"`
}

// AuthRefreshToken is a stored (hashed) refresh token.
type AuthRefreshToken struct {
	ID          string    `json:"id"`
	MemberID    string    `json:"member_id"`
	HouseholdID string    `json:"household_id"`
	TokenHash   string    `json:"token_hash"`
	ExpiresAt   time.Time `json:"expires_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// ============================================================
// Notifications
// ============================================================

// Notification is an in-app notification for a household, e.g. a warning
// that a freshly computed projection contains danger days.
type Notification struct {
	ID          string     `json:"id"`
	HouseholdID string     `json:"household_id"`
	Type        string     `json:"type"`
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	IsRead      bool       `json:"is_read"`
	ReadAt      *time.Time `json:"read_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// NotificationDangerDays is the Type of notifications created when a
// projection first reports danger days.
const NotificationDangerDays = "danger_days"
