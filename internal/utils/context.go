// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, secure token
// generation, HTTP response writing, and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key under which the session-auth middleware stores
// the authenticated user's identifier in the request context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, int64(42))
var UserIDCtxKey = contextKey("userID")

// SessionTokenCtxKey is the key under which the session-auth middleware
// stores the raw bearer token in the request context. Handlers that act
// on the session itself (logout, identity lookup) read it from here so
// they never re-parse the "Authorization" header.
var SessionTokenCtxKey = contextKey("sessionToken")

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns the user ID of type int64 and an ok flag:
//   - ok == true  — value is found and has the correct int64 type
//   - ok == false — value is missing or has an unexpected type
//
// A false flag means the request carries no authenticated identity and
// must be treated as anonymous.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetSessionTokenFromContext retrieves the raw session token stored by
// the auth middleware. ok is false when the request carries no token.
func GetSessionTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(SessionTokenCtxKey).(string)
	return token, ok
}
