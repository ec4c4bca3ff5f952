package oauth

import "errors"

// Sentinel errors returned by the provider client. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrProviderNotConfigured is returned when the requested provider is
	// missing a client id or secret. Surfaced to the UI as a hidden login
	// option rather than a runtime failure.
	ErrProviderNotConfigured = errors.New("oauth provider is not configured")

	// ErrProviderError is returned when a token or profile endpoint
	// responds with a non-2xx status. The login fails and nothing is
	// persisted; the user may simply retry.
	ErrProviderError = errors.New("oauth provider returned an error")

	// ErrIncompleteProfile is returned when the exchange succeeds but a
	// required profile field (the email) cannot be resolved.
	ErrIncompleteProfile = errors.New("oauth profile is incomplete")
)
