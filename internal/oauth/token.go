package oauth

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// tokenResponse is the common shape of a successful token endpoint reply.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// exchangeCodeForToken POSTs the authorization-code grant to a token
// endpoint and returns the access token. All three providers return JSON
// when asked for it, so a single helper covers them.
func exchangeCodeForToken(ctx context.Context, client *resty.Client, tokenURL string, form map[string]string) (string, error) {
	resp, err := client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetFormData(form).
		Post(tokenURL)
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}
	if !resp.IsSuccess() {
		return "", fmt.Errorf("%w: token endpoint status %d", ErrProviderError, resp.StatusCode())
	}

	var token tokenResponse
	if err = json.Unmarshal(resp.Body(), &token); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("%w: token endpoint returned no access token", ErrProviderError)
	}

	return token.AccessToken, nil
}
