package models

import "time"

// Session is the server-side proof of authentication minted at login.
// The opaque Token value is the only artifact handed to the client; every
// later request resolves it back to a user through the session store.
//
// A session is valid iff IsActive is true and ExpiresAt is in the future.
// Sessions are invalidated in place on logout and are never physically
// deleted, so the table doubles as a login audit trail.
type Session struct {
	// SessionID is the internal unique identifier of the session row.
	SessionID int64 `json:"-"`

	// Token is a cryptographically random, URL-safe value with at least
	// 256 bits of entropy. It must never be logged.
	Token string `json:"token"`

	// UserID is the owner of this session.
	UserID int64 `json:"-"`

	// ExpiresAt is the absolute expiry timestamp (creation time + TTL).
	ExpiresAt time.Time `json:"expires_at"`

	// IsActive is cleared on logout. An inactive session is never
	// accepted regardless of ExpiresAt.
	IsActive bool `json:"-"`

	// CreatedAt is the timestamp the session was minted.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}
