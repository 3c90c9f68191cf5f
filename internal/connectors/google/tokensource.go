package google

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"

	"github.com/custodia-labs/gsuites/internal/core/domain"
)

// NewTokenSource builds the oauth2.TokenSource shared by every service from
// a credential. Typed Google credential JSON (authorized_user,
// service_account) is handed to the oauth2/google loader as is. Otherwise
// the stored access and refresh tokens are used, refreshing against the
// credential's token URI when the access token expires.
//
// Scopes apply when the credential does not list its own.
func NewTokenSource(ctx context.Context, cred *domain.Credential, scopes ...string) (oauth2.TokenSource, error) {
	if cred == nil {
		return nil, fmt.Errorf("no credential: %w", domain.ErrUnauthorized)
	}

	if len(cred.Raw) > 0 {
		creds, err := googleoauth.CredentialsFromJSON(ctx, cred.Raw, scopes...)
		if err != nil {
			return nil, fmt.Errorf("parse google credentials: %w", err)
		}
		return creds.TokenSource, nil
	}

	if !cred.IsAuthenticated() {
		return nil, fmt.Errorf("credential has no usable token: %w", domain.ErrUnauthorized)
	}

	if len(cred.Scopes) > 0 {
		scopes = cred.Scopes
	}
	tokenURL := cred.TokenURI
	if tokenURL == "" {
		tokenURL = googleoauth.Endpoint.TokenURL
	}
	cfg := &oauth2.Config{
		ClientID:     cred.ClientID,
		ClientSecret: cred.ClientSecret,
		Endpoint: oauth2.Endpoint{
			AuthURL:  googleoauth.Endpoint.AuthURL,
			TokenURL: tokenURL,
		},
		Scopes: scopes,
	}

	tokenType := cred.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}
	return cfg.TokenSource(ctx, &oauth2.Token{
		AccessToken:  cred.AccessToken,
		RefreshToken: cred.RefreshToken,
		TokenType:    tokenType,
		Expiry:       cred.Expiry,
	}), nil
}
