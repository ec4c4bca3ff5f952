package models

// LoginURLResponse is returned by the login endpoint; the client
// redirects the browser to AuthURL to start the provider flow.
type LoginURLResponse struct {
	Provider string `json:"provider"`
	AuthURL  string `json:"auth_url"`
}

// CallbackResponse is returned after a successful OAuth callback.
// Token is the opaque session token the client must present on
// subsequent requests as "Authorization: Bearer <token>".
type CallbackResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ProvidersResponse lists the providers with configured credentials.
// Unconfigured providers are omitted rather than reported as errors.
type ProvidersResponse struct {
	Providers []string `json:"providers"`
}

// CreateCommentRequest is the body of the comment creation endpoint.
type CreateCommentRequest struct {
	Content   string `json:"content"`
	ElementID string `json:"element_id,omitempty"`
}

// UpdateCommentRequest is the body of the comment edit endpoint.
type UpdateCommentRequest struct {
	Content string `json:"content"`
}
