package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/aidocs/doc-browser/internal/config"
	"github.com/aidocs/doc-browser/models"
)

// Google OAuth 2.0 endpoints.
const (
	googleAuthURL     = "https://accounts.google.com/o/oauth2/v2/auth"
	googleTokenURL    = "https://oauth2.googleapis.com/token"
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
)

// googleProvider implements [Provider] for Google.
type googleProvider struct {
	clientID     string
	clientSecret string
	redirectURI  string
	client       *resty.Client

	// endpoint fields are constants in production and overridden in tests.
	authURL     string
	tokenURL    string
	userInfoURL string
}

// NewGoogleProvider constructs the Google provider from configuration.
func NewGoogleProvider(cfg config.OAuth, timeout time.Duration) Provider {
	return &googleProvider{
		clientID:     cfg.GoogleClientID,
		clientSecret: cfg.GoogleClientSecret,
		redirectURI:  cfg.RedirectURI,
		client:       resty.New().SetTimeout(timeout),
		authURL:      googleAuthURL,
		tokenURL:     googleTokenURL,
		userInfoURL:  googleUserInfoURL,
	}
}

func (p *googleProvider) Name() string {
	return models.ProviderGoogle
}

// AuthorizeURL builds the Google consent screen URL. access_type=offline
// and prompt=select_account match the behaviour users expect from a
// shared internal tool: pick an account every time.
func (p *googleProvider) AuthorizeURL(state string) string {
	params := url.Values{
		"client_id":              {p.clientID},
		"redirect_uri":           {p.redirectURI},
		"scope":                  {"openid email profile"},
		"response_type":          {"code"},
		"state":                  {state},
		"access_type":            {"offline"},
		"prompt":                 {"select_account"},
		"include_granted_scopes": {"true"},
	}

	return p.authURL + "?" + params.Encode()
}

// googleUserInfo is the subset of the userinfo response this app reads.
type googleUserInfo struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// Exchange trades the authorization code for an access token, then reads
// the userinfo endpoint and normalizes the result.
func (p *googleProvider) Exchange(ctx context.Context, code string) (models.Profile, error) {
	token, err := exchangeCodeForToken(ctx, p.client, p.tokenURL, map[string]string{
		"client_id":     p.clientID,
		"client_secret": p.clientSecret,
		"code":          code,
		"grant_type":    "authorization_code",
		"redirect_uri":  p.redirectURI,
	})
	if err != nil {
		return models.Profile{}, err
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token).
		Get(p.userInfoURL)
	if err != nil {
		return models.Profile{}, fmt.Errorf("google userinfo request: %w", err)
	}
	if !resp.IsSuccess() {
		return models.Profile{}, fmt.Errorf("%w: google userinfo status %d", ErrProviderError, resp.StatusCode())
	}

	var info googleUserInfo
	if err = json.Unmarshal(resp.Body(), &info); err != nil {
		return models.Profile{}, fmt.Errorf("decode google userinfo: %w", err)
	}

	if info.Email == "" {
		return models.Profile{}, fmt.Errorf("%w: google profile has no email", ErrIncompleteProfile)
	}

	return models.Profile{
		Email:         info.Email,
		Name:          info.Name,
		AvatarURL:     info.Picture,
		OAuthProvider: models.ProviderGoogle,
		OAuthID:       info.ID,
	}, nil
}
