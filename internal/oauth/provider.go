// Package oauth implements the identity-provider client: building
// authorization URLs and performing the authorization-code → access-token
// → user-profile exchange for Google, Microsoft, and GitHub.
//
// Each provider speaks a slightly different dialect (endpoints, scope
// strings, profile field names), so there is one implementation per
// provider behind a single [Provider] interface. The package contains
// translation only — no business logic.
package oauth

import (
	"context"
	"time"

	"github.com/aidocs/doc-browser/internal/config"
	"github.com/aidocs/doc-browser/internal/logger"
	"github.com/aidocs/doc-browser/models"
)

// Provider is the capability interface every identity provider implements.
type Provider interface {
	// Name returns the provider identifier ("google", "microsoft", "github").
	Name() string

	// AuthorizeURL returns the fully-formed external authorization
	// endpoint URL, with the caller-supplied CSRF state echoed back by
	// the provider on callback.
	AuthorizeURL(state string) string

	// Exchange performs the server-to-server code-for-token exchange and
	// fetches the user profile with the resulting access token.
	//
	// Returns [ErrProviderError] on any non-2xx provider response and
	// [ErrIncompleteProfile] when no email can be resolved.
	Exchange(ctx context.Context, code string) (models.Profile, error)
}

// Registry holds the providers that have configured credentials.
// Providers missing a client id or secret are simply absent: an
// unconfigured provider is a hidden login option, not an error.
type Registry struct {
	providers map[string]Provider
	order     []string
}

// NewRegistry builds the provider set from configuration. timeout bounds
// every outbound call to a provider endpoint.
func NewRegistry(cfg config.OAuth, timeout time.Duration, log *logger.Logger) *Registry {
	r := &Registry{providers: make(map[string]Provider)}

	if cfg.Configured(models.ProviderGoogle) {
		r.add(NewGoogleProvider(cfg, timeout))
	}
	if cfg.Configured(models.ProviderMicrosoft) {
		r.add(NewMicrosoftProvider(cfg, timeout))
	}
	if cfg.Configured(models.ProviderGitHub) {
		r.add(NewGitHubProvider(cfg, timeout))
	}

	log.Info().Strs("providers", r.order).Msg("oauth provider registry created")

	return r
}

func (r *Registry) add(p Provider) {
	r.providers[p.Name()] = p
	r.order = append(r.order, p.Name())
}

// Get returns the named provider or [ErrProviderNotConfigured].
func (r *Registry) Get(name string) (Provider, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, ErrProviderNotConfigured
	}

	return p, nil
}

// Names returns the configured provider names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}
