// SPDX-License-Identifier: Apache-2.0

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Missing provider credentials are deliberately NOT an error: an
// unconfigured provider is simply hidden from the login options.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DatabaseURL == "" || strings.Contains(cfg.Storage.DatabaseURL, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.App.SessionTTL <= 0 || cfg.App.ProviderTimeout <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.OAuth.RedirectURI == "" {
		return ErrInvalidOAuthConfigs
	}

	return nil
}
