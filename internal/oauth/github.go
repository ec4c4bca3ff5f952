package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/aidocs/doc-browser/internal/config"
	"github.com/aidocs/doc-browser/models"
)

// GitHub OAuth endpoints.
const (
	githubAuthURL       = "https://github.com/login/oauth/authorize"
	githubTokenURL      = "https://github.com/login/oauth/access_token"
	githubUserURL       = "https://api.github.com/user"
	githubUserEmailsURL = "https://api.github.com/user/emails"
)

// githubProvider implements [Provider] for GitHub.
type githubProvider struct {
	clientID     string
	clientSecret string
	redirectURI  string
	client       *resty.Client

	authURL       string
	tokenURL      string
	userInfoURL   string
	userEmailsURL string
}

// NewGitHubProvider constructs the GitHub provider from configuration.
func NewGitHubProvider(cfg config.OAuth, timeout time.Duration) Provider {
	return &githubProvider{
		clientID:      cfg.GitHubClientID,
		clientSecret:  cfg.GitHubClientSecret,
		redirectURI:   cfg.RedirectURI,
		client:        resty.New().SetTimeout(timeout),
		authURL:       githubAuthURL,
		tokenURL:      githubTokenURL,
		userInfoURL:   githubUserURL,
		userEmailsURL: githubUserEmailsURL,
	}
}

func (p *githubProvider) Name() string {
	return models.ProviderGitHub
}

// AuthorizeURL builds the GitHub authorization URL. The user:email scope
// is required for the email-list fallback in Exchange.
func (p *githubProvider) AuthorizeURL(state string) string {
	params := url.Values{
		"client_id":    {p.clientID},
		"redirect_uri": {p.redirectURI},
		"scope":        {"user:email"},
		"state":        {state},
	}

	return p.authURL + "?" + params.Encode()
}

// githubUser is the subset of the /user response this app reads.
// The numeric account id is the stable subject identifier.
type githubUser struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

// githubEmail is one entry of the /user/emails response.
type githubEmail struct {
	Email   string `json:"email"`
	Primary bool   `json:"primary"`
}

// Exchange trades the authorization code for an access token and reads
// the user profile. GitHub profiles often hide the email: when /user
// returns none, a second call to /user/emails selects the entry marked
// primary. If no entry is primary the exchange fails with
// [ErrIncompleteProfile].
func (p *githubProvider) Exchange(ctx context.Context, code string) (models.Profile, error) {
	// GitHub's token endpoint takes no grant_type or redirect_uri.
	token, err := exchangeCodeForToken(ctx, p.client, p.tokenURL, map[string]string{
		"client_id":     p.clientID,
		"client_secret": p.clientSecret,
		"code":          code,
	})
	if err != nil {
		return models.Profile{}, err
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "token "+token).
		Get(p.userInfoURL)
	if err != nil {
		return models.Profile{}, fmt.Errorf("github user request: %w", err)
	}
	if !resp.IsSuccess() {
		return models.Profile{}, fmt.Errorf("%w: github user status %d", ErrProviderError, resp.StatusCode())
	}

	var user githubUser
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.Profile{}, fmt.Errorf("decode github user: %w", err)
	}

	email := user.Email
	if email == "" {
		email, err = p.primaryEmail(ctx, token)
		if err != nil {
			return models.Profile{}, err
		}
	}

	name := user.Name
	if name == "" {
		name = user.Login
	}

	return models.Profile{
		Email:         email,
		Name:          name,
		AvatarURL:     user.AvatarURL,
		OAuthProvider: models.ProviderGitHub,
		OAuthID:       strconv.FormatInt(user.ID, 10),
	}, nil
}

// primaryEmail fetches the account's email list and returns the address
// marked primary.
func (p *githubProvider) primaryEmail(ctx context.Context, token string) (string, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "token "+token).
		Get(p.userEmailsURL)
	if err != nil {
		return "", fmt.Errorf("github emails request: %w", err)
	}
	if !resp.IsSuccess() {
		return "", fmt.Errorf("%w: github emails status %d", ErrProviderError, resp.StatusCode())
	}

	var emails []githubEmail
	if err = json.Unmarshal(resp.Body(), &emails); err != nil {
		return "", fmt.Errorf("decode github emails: %w", err)
	}

	for _, e := range emails {
		if e.Primary {
			return e.Email, nil
		}
	}

	return "", fmt.Errorf("%w: github account has no primary email", ErrIncompleteProfile)
}
