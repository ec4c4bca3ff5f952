// SPDX-License-Identifier: Apache-2.0

package oauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidocs/doc-browser/internal/config"
	"github.com/aidocs/doc-browser/models"
)

func newTestMicrosoftProvider(serverURL string) *microsoftProvider {
	p := NewMicrosoftProvider(config.OAuth{
		MicrosoftClientID:     "ms-id",
		MicrosoftClientSecret: "ms-secret",
		MicrosoftTenantID:     "common",
		RedirectURI:           "http://localhost:8500/auth/callback",
	}, time.Second).(*microsoftProvider)

	p.tokenURL = serverURL + "/token"
	p.userInfoURL = serverURL + "/me"
	return p
}

func TestMicrosoftProvider_AuthorizeURL_UsesTenant(t *testing.T) {
	p := NewMicrosoftProvider(config.OAuth{
		MicrosoftClientID:     "ms-id",
		MicrosoftClientSecret: "ms-secret",
		MicrosoftTenantID:     "my-tenant",
	}, time.Second).(*microsoftProvider)

	authorizeURL := p.AuthorizeURL("state-123")
	assert.True(t, strings.HasPrefix(authorizeURL, "https://login.microsoftonline.com/my-tenant/"),
		"tenant segment must come from configuration, got %s", authorizeURL)
	assert.Contains(t, authorizeURL, "state=state-123")
}

func TestMicrosoftProvider_Exchange_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/token":
			w.Write([]byte(`{"access_token":"ms-token","token_type":"Bearer"}`))
		case "/me":
			assert.Equal(t, "Bearer ms-token", r.Header.Get("Authorization"))
			w.Write([]byte(`{"id":"ms-1","mail":"carol@example.com","displayName":"Carol"}`))
		}
	}))
	defer server.Close()

	p := newTestMicrosoftProvider(server.URL)

	profile, err := p.Exchange(context.Background(), "auth-code")
	require.NoError(t, err)
	assert.Equal(t, models.Profile{
		Email:         "carol@example.com",
		Name:          "Carol",
		OAuthProvider: models.ProviderMicrosoft,
		OAuthID:       "ms-1",
	}, profile)
}

// TestMicrosoftProvider_Exchange_PrincipalNameFallback covers accounts
// without a mailbox: Graph leaves "mail" null and the userPrincipalName
// stands in as the email.
func TestMicrosoftProvider_Exchange_PrincipalNameFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/token":
			w.Write([]byte(`{"access_token":"ms-token"}`))
		case "/me":
			w.Write([]byte(`{"id":"ms-1","mail":null,"userPrincipalName":"carol@tenant.onmicrosoft.com","displayName":"Carol"}`))
		}
	}))
	defer server.Close()

	p := newTestMicrosoftProvider(server.URL)

	profile, err := p.Exchange(context.Background(), "auth-code")
	require.NoError(t, err)
	assert.Equal(t, "carol@tenant.onmicrosoft.com", profile.Email)
}

func TestMicrosoftProvider_Exchange_GraphRejects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/token":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"access_token":"ms-token"}`))
		case "/me":
			http.Error(w, `{"error":"InvalidAuthenticationToken"}`, http.StatusUnauthorized)
		}
	}))
	defer server.Close()

	p := newTestMicrosoftProvider(server.URL)

	_, err := p.Exchange(context.Background(), "auth-code")
	require.ErrorIs(t, err, ErrProviderError)
}
