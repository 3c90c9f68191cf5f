package domain

import "time"

// Credential is the provider-issued token bundle used to authorise every
// service. It is owned by the caller and never mutated by the services that
// receive it; refresh happens inside the transport.
type Credential struct {
	// ClientID and ClientSecret identify the OAuth application.
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	// TokenURI is the OAuth token endpoint used for refresh.
	TokenURI string `json:"token_uri"`

	// AccessToken is the bearer token for API access.
	AccessToken string `json:"access_token"`
	// RefreshToken is used to obtain new access tokens.
	RefreshToken string `json:"refresh_token,omitempty"`
	// TokenType is typically "Bearer".
	TokenType string `json:"token_type,omitempty"`
	// Expiry is when the access token expires.
	Expiry time.Time `json:"token_expiry,omitempty"`

	// Scopes lists the OAuth scopes the token was granted.
	Scopes []string `json:"scopes,omitempty"`

	// Raw holds Google typed credential JSON (authorized_user or
	// service_account). When set, the fields above are unused.
	Raw []byte `json:"-"`
}

// IsExpired returns true if the access token has expired.
func (c *Credential) IsExpired() bool {
	if c.Expiry.IsZero() {
		return false
	}
	return time.Now().After(c.Expiry)
}

// CanRefresh returns true if the transport can obtain new access tokens.
func (c *Credential) CanRefresh() bool {
	return c.RefreshToken != "" && c.TokenURI != ""
}

// IsAuthenticated returns true if the credential can authorise a request.
func (c *Credential) IsAuthenticated() bool {
	if len(c.Raw) > 0 {
		return true
	}
	if c.AccessToken != "" && !c.IsExpired() {
		return true
	}
	return c.CanRefresh()
}
