// SPDX-License-Identifier: Apache-2.0

package oauth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidocs/doc-browser/internal/config"
	"github.com/aidocs/doc-browser/internal/logger"
	"github.com/aidocs/doc-browser/models"
)

func TestNewRegistry_OnlyConfiguredProviders(t *testing.T) {
	cfg := config.OAuth{
		GoogleClientID:     "g-id",
		GoogleClientSecret: "g-secret",
		GitHubClientID:     "gh-id",
		GitHubClientSecret: "gh-secret",
		// Microsoft has no credentials and must be absent.
		RedirectURI: "http://localhost:8500/auth/callback",
	}

	registry := NewRegistry(cfg, time.Second, logger.Nop())

	assert.Equal(t, []string{models.ProviderGoogle, models.ProviderGitHub}, registry.Names())

	_, err := registry.Get(models.ProviderMicrosoft)
	require.ErrorIs(t, err, ErrProviderNotConfigured)

	p, err := registry.Get(models.ProviderGoogle)
	require.NoError(t, err)
	assert.Equal(t, models.ProviderGoogle, p.Name())
}

func TestNewRegistry_Empty(t *testing.T) {
	registry := NewRegistry(config.OAuth{}, time.Second, logger.Nop())

	assert.Empty(t, registry.Names())

	_, err := registry.Get(models.ProviderGoogle)
	require.ErrorIs(t, err, ErrProviderNotConfigured)
}

func TestNewRegistry_NamesReturnsCopy(t *testing.T) {
	cfg := config.OAuth{
		GoogleClientID:     "g-id",
		GoogleClientSecret: "g-secret",
	}
	registry := NewRegistry(cfg, time.Second, logger.Nop())

	names := registry.Names()
	names[0] = "mutated"

	assert.Equal(t, []string{models.ProviderGoogle}, registry.Names())
}
