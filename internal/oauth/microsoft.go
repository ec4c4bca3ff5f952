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

// Microsoft identity platform endpoints. The tenant segment comes from
// configuration ("common" allows any Azure AD or personal account).
const (
	microsoftAuthURLFormat  = "https://login.microsoftonline.com/%s/oauth2/v2.0/authorize"
	microsoftTokenURLFormat = "https://login.microsoftonline.com/%s/oauth2/v2.0/token"
	microsoftGraphMeURL     = "https://graph.microsoft.com/v1.0/me"
)

// microsoftProvider implements [Provider] for Microsoft.
type microsoftProvider struct {
	clientID     string
	clientSecret string
	redirectURI  string
	client       *resty.Client

	authURL     string
	tokenURL    string
	userInfoURL string
}

// NewMicrosoftProvider constructs the Microsoft provider from configuration.
func NewMicrosoftProvider(cfg config.OAuth, timeout time.Duration) Provider {
	return &microsoftProvider{
		clientID:     cfg.MicrosoftClientID,
		clientSecret: cfg.MicrosoftClientSecret,
		redirectURI:  cfg.RedirectURI,
		client:       resty.New().SetTimeout(timeout),
		authURL:      fmt.Sprintf(microsoftAuthURLFormat, cfg.MicrosoftTenantID),
		tokenURL:     fmt.Sprintf(microsoftTokenURLFormat, cfg.MicrosoftTenantID),
		userInfoURL:  microsoftGraphMeURL,
	}
}

func (p *microsoftProvider) Name() string {
	return models.ProviderMicrosoft
}

// AuthorizeURL builds the Microsoft sign-in URL.
func (p *microsoftProvider) AuthorizeURL(state string) string {
	params := url.Values{
		"client_id":     {p.clientID},
		"redirect_uri":  {p.redirectURI},
		"scope":         {"openid email profile"},
		"response_type": {"code"},
		"state":         {state},
		"prompt":        {"select_account"},
	}

	return p.authURL + "?" + params.Encode()
}

// microsoftUserInfo is the subset of the Graph /me response this app reads.
// The basic profile carries no avatar, so AvatarURL stays empty.
type microsoftUserInfo struct {
	ID                string `json:"id"`
	Mail              string `json:"mail"`
	UserPrincipalName string `json:"userPrincipalName"`
	DisplayName       string `json:"displayName"`
}

// Exchange trades the authorization code for an access token, then reads
// Microsoft Graph. The email is "mail" when present, falling back to
// "userPrincipalName" (accounts without a mailbox leave mail null).
func (p *microsoftProvider) Exchange(ctx context.Context, code string) (models.Profile, error) {
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
		return models.Profile{}, fmt.Errorf("microsoft graph request: %w", err)
	}
	if !resp.IsSuccess() {
		return models.Profile{}, fmt.Errorf("%w: microsoft graph status %d", ErrProviderError, resp.StatusCode())
	}

	var info microsoftUserInfo
	if err = json.Unmarshal(resp.Body(), &info); err != nil {
		return models.Profile{}, fmt.Errorf("decode microsoft graph response: %w", err)
	}

	email := info.Mail
	if email == "" {
		email = info.UserPrincipalName
	}
	if email == "" {
		return models.Profile{}, fmt.Errorf("%w: microsoft profile has no email", ErrIncompleteProfile)
	}

	return models.Profile{
		Email:         email,
		Name:          info.DisplayName,
		OAuthProvider: models.ProviderMicrosoft,
		OAuthID:       info.ID,
	}, nil
}
