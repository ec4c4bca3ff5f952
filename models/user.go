package models

import "time"

// OAuth provider identifiers accepted by the application. A User's
// OAuthProvider field always holds one of these values.
const (
	ProviderGoogle    = "google"
	ProviderMicrosoft = "microsoft"
	ProviderGitHub    = "github"
)

// User represents an account created from a successful OAuth login.
// A user is uniquely identified by the (Email, OAuthProvider) pair:
// logging in again with the same provider and email updates the existing
// record instead of creating a new one.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is the address resolved from the OAuth provider's profile.
	// Unique per provider.
	Email string `json:"email"`

	// Name is the display name reported by the provider.
	// Refreshed on every login.
	Name string `json:"name"`

	// AvatarURL is an optional profile picture URL. Empty when the
	// provider does not expose one (e.g. Microsoft Graph basic profile).
	AvatarURL string `json:"avatar_url,omitempty"`

	// OAuthProvider is the identity provider that vouched for this user:
	// "google", "microsoft" or "github".
	OAuthProvider string `json:"oauth_provider"`

	// OAuthID is the provider-scoped subject identifier. It is opaque to
	// this application and never shown in UI.
	OAuthID string `json:"-"`

	// IsActive marks whether the account may log in. Accounts are never
	// hard-deleted by the application.
	IsActive bool `json:"-"`

	// CreatedAt is the timestamp of the first successful login.
	CreatedAt time.Time `json:"created_at"`

	// LastLogin is refreshed on every successful OAuth callback.
	LastLogin time.Time `json:"last_login"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
