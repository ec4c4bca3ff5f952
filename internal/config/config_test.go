// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"
	"time"

	"github.com/aidocs/doc-browser/models"
	"github.com/stretchr/testify/assert"
)

func TestOAuth_Configured(t *testing.T) {
	oauth := OAuth{
		GoogleClientID:     "google-id",
		GoogleClientSecret: "google-secret",
		GitHubClientID:     "gh-id",
		// GitHub secret deliberately missing.
		MicrosoftClientID:     "ms-id",
		MicrosoftClientSecret: "ms-secret",
	}

	tests := []struct {
		name     string
		provider string
		expected bool
	}{
		{name: "google fully configured", provider: models.ProviderGoogle, expected: true},
		{name: "microsoft fully configured", provider: models.ProviderMicrosoft, expected: true},
		{name: "github missing secret", provider: models.ProviderGitHub, expected: false},
		{name: "unknown provider", provider: "gitlab", expected: false},
		{name: "empty provider", provider: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, oauth.Configured(tt.provider))
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() *StructuredConfig {
		return &StructuredConfig{
			App: App{
				SessionTTL:      24 * time.Hour,
				ProviderTimeout: 10 * time.Second,
			},
			OAuth:   OAuth{RedirectURI: "http://localhost:8500/auth/callback"},
			Storage: Storage{DatabaseURL: "docs.db"},
			Server:  Server{HTTPAddress: ":8500"},
		}
	}

	tests := []struct {
		name     string
		mutate   func(cfg *StructuredConfig)
		expected error
	}{
		{
			name:   "valid config",
			mutate: func(*StructuredConfig) {},
		},
		{
			name:     "empty database url",
			mutate:   func(cfg *StructuredConfig) { cfg.Storage.DatabaseURL = "" },
			expected: ErrInvalidStorageConfigs,
		},
		{
			name:     "in-memory database",
			mutate:   func(cfg *StructuredConfig) { cfg.Storage.DatabaseURL = "file::memory:?cache=shared" },
			expected: ErrInvalidStorageConfigs,
		},
		{
			name:     "empty server address",
			mutate:   func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			expected: ErrInvalidServerConfigs,
		},
		{
			name:     "zero session ttl",
			mutate:   func(cfg *StructuredConfig) { cfg.App.SessionTTL = 0 },
			expected: ErrInvalidAppConfigs,
		},
		{
			name:     "negative provider timeout",
			mutate:   func(cfg *StructuredConfig) { cfg.App.ProviderTimeout = -time.Second },
			expected: ErrInvalidAppConfigs,
		},
		{
			name:     "empty redirect uri",
			mutate:   func(cfg *StructuredConfig) { cfg.OAuth.RedirectURI = "" },
			expected: ErrInvalidOAuthConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestSetDefaults_DoesNotOverrideExplicitValues(t *testing.T) {
	cfg := &StructuredConfig{
		App: App{
			SessionTTL:      time.Hour,
			ProviderTimeout: time.Second,
		},
		OAuth: OAuth{
			RedirectURI:       "https://docs.internal/auth/callback",
			MicrosoftTenantID: "tenant-42",
		},
		Storage: Storage{DatabaseURL: "postgres://localhost/docs"},
		Server:  Server{HTTPAddress: ":9000"},
	}

	cfg.setDefaults()

	assert.Equal(t, time.Hour, cfg.App.SessionTTL)
	assert.Equal(t, time.Second, cfg.App.ProviderTimeout)
	assert.Equal(t, "https://docs.internal/auth/callback", cfg.OAuth.RedirectURI)
	assert.Equal(t, "tenant-42", cfg.OAuth.MicrosoftTenantID)
	assert.Equal(t, "postgres://localhost/docs", cfg.Storage.DatabaseURL)
	assert.Equal(t, ":9000", cfg.Server.HTTPAddress)
}
