package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, missing listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a non-positive session TTL or provider timeout).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidOAuthConfigs indicates invalid OAuth flow settings
	// (for example, missing redirect URI).
	ErrInvalidOAuthConfigs = errors.New("invalid oauth configuration")
)
