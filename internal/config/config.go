// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"

	"github.com/aidocs/doc-browser/models"
)

// Defaults applied after all configuration sources have been merged.
const (
	// DefaultRedirectURI is the OAuth callback URL used when
	// OAUTH_REDIRECT_URI is not set. It matches the address the server
	// listens on by default.
	DefaultRedirectURI = "http://localhost:8500/auth/callback"

	// DefaultDatabaseURL is the local file-backed SQLite store used when
	// DATABASE_URL is not set.
	DefaultDatabaseURL = "document_browser.db"

	// DefaultServerAddress is the HTTP listen address.
	DefaultServerAddress = ":8500"

	// DefaultSessionTTL is how long a minted session remains valid.
	DefaultSessionTTL = 24 * time.Hour

	// DefaultProviderTimeout bounds every outbound call to an identity
	// provider's token or profile endpoint.
	DefaultProviderTimeout = 10 * time.Second

	// DefaultMicrosoftTenant is the multi-tenant Microsoft endpoint
	// segment used when MICROSOFT_TENANT_ID is not set.
	DefaultMicrosoftTenant = "common"
)

// StructuredConfig is the top-level configuration container for the
// doc-browser application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - env — direct environment variable name for scalar fields. The OAuth
//     keys deliberately carry no prefix: they are the well-known names the
//     providers' own setup guides tell operators to export.
type StructuredConfig struct {
	// App holds application-level settings such as the session TTL and
	// the application version.
	App App

	// OAuth holds per-provider client credentials and the shared
	// redirect URI.
	OAuth OAuth

	// Storage holds the relational database connection settings.
	Storage Storage

	// Server holds network address and timeout settings for the HTTP
	// server.
	Server Server

	// Catalog holds the location of the document manifest and content
	// directory consumed by the catalog collaborator.
	Catalog Catalog

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged under the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// SessionTTL is how long a newly minted session remains valid.
	// Env: SESSION_TTL
	SessionTTL time.Duration `env:"SESSION_TTL"`

	// ProviderTimeout is the timeout applied to every outbound HTTP call
	// to an identity provider.
	// Env: OAUTH_PROVIDER_TIMEOUT
	ProviderTimeout time.Duration `env:"OAUTH_PROVIDER_TIMEOUT"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"APP_VERSION"`
}

// OAuth holds the identity-provider credentials. A provider is
// "configured" iff both its client id and secret are present; only
// configured providers are offered as login options.
type OAuth struct {
	// GoogleClientID / GoogleClientSecret configure the Google provider.
	// Env: GOOGLE_CLIENT_ID / GOOGLE_CLIENT_SECRET
	GoogleClientID     string `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET"`

	// MicrosoftClientID / MicrosoftClientSecret configure the Microsoft
	// provider. MicrosoftTenantID selects the Azure AD tenant endpoint
	// and defaults to "common".
	// Env: MICROSOFT_CLIENT_ID / MICROSOFT_CLIENT_SECRET / MICROSOFT_TENANT_ID
	MicrosoftClientID     string `env:"MICROSOFT_CLIENT_ID"`
	MicrosoftClientSecret string `env:"MICROSOFT_CLIENT_SECRET"`
	MicrosoftTenantID     string `env:"MICROSOFT_TENANT_ID"`

	// GitHubClientID / GitHubClientSecret configure the GitHub provider.
	// Env: GITHUB_CLIENT_ID / GITHUB_CLIENT_SECRET
	GitHubClientID     string `env:"GITHUB_CLIENT_ID"`
	GitHubClientSecret string `env:"GITHUB_CLIENT_SECRET"`

	// RedirectURI is the callback URL registered with every provider.
	// Env: OAUTH_REDIRECT_URI
	RedirectURI string `env:"OAUTH_REDIRECT_URI"`
}

// Configured reports whether the named provider has both a client id and
// a client secret. Unknown provider names are never configured.
func (o OAuth) Configured(provider string) bool {
	switch provider {
	case models.ProviderGoogle:
		return o.GoogleClientID != "" && o.GoogleClientSecret != ""
	case models.ProviderMicrosoft:
		return o.MicrosoftClientID != "" && o.MicrosoftClientSecret != ""
	case models.ProviderGitHub:
		return o.GitHubClientID != "" && o.GitHubClientSecret != ""
	}

	return false
}

// Storage holds connection settings for the relational database backend.
type Storage struct {
	// DatabaseURL is the connection string used to open the database.
	// A "postgres://" URL selects the pgx driver; anything else is
	// treated as a SQLite file path.
	// Env: DATABASE_URL
	DatabaseURL string `env:"DATABASE_URL"`
}

// Server holds network and timeout settings for the inbound HTTP layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8500").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"SERVER_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT"`
}

// Catalog holds the document-catalog input locations.
type Catalog struct {
	// ManifestPath is the JSON manifest listing known documents.
	// Env: DOCUMENTS_MANIFEST
	ManifestPath string `env:"DOCUMENTS_MANIFEST"`

	// ContentDir is the directory scanned for {name}_{date}.html|pdf
	// document files.
	// Env: DOCUMENTS_DIR
	ContentDir string `env:"DOCUMENTS_DIR"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Fields left unset by every source fall back to the package defaults.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// setDefaults fills every field still zero after all sources have been
// merged. Kept separate from parsing so that flags can override a value
// the environment left unset.
func (cfg *StructuredConfig) setDefaults() {
	if cfg.OAuth.RedirectURI == "" {
		cfg.OAuth.RedirectURI = DefaultRedirectURI
	}
	if cfg.OAuth.MicrosoftTenantID == "" {
		cfg.OAuth.MicrosoftTenantID = DefaultMicrosoftTenant
	}
	if cfg.Storage.DatabaseURL == "" {
		cfg.Storage.DatabaseURL = DefaultDatabaseURL
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultServerAddress
	}
	if cfg.App.SessionTTL == 0 {
		cfg.App.SessionTTL = DefaultSessionTTL
	}
	if cfg.App.ProviderTimeout == 0 {
		cfg.App.ProviderTimeout = DefaultProviderTimeout
	}
}
