package models

// Profile is the normalized user profile returned by an identity
// provider after a successful authorization-code exchange. The three
// provider APIs use different field names and endpoints; this shape is
// the single contract the rest of the application sees.
type Profile struct {
	// Email is the primary address resolved from the provider.
	// Always non-empty: an exchange that cannot resolve an email fails.
	Email string `json:"email"`

	// Name is the display name, falling back to the provider login when
	// the profile has no name set (GitHub).
	Name string `json:"name"`

	// AvatarURL is optional; empty when the provider exposes none.
	AvatarURL string `json:"avatar_url,omitempty"`

	// OAuthProvider names the provider that produced this profile.
	OAuthProvider string `json:"oauth_provider"`

	// OAuthID is the provider-scoped subject identifier, stringified.
	OAuthID string `json:"oauth_id"`
}
