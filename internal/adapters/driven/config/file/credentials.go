package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/gsuites/internal/core/domain"
)

// CredentialsFileName is the default credential file inside the config directory.
const CredentialsFileName = "credentials.json"

// Google's typed credential files, understood by golang.org/x/oauth2/google.
var typedCredentialKinds = map[string]bool{
	"authorized_user":              true,
	"service_account":              true,
	"external_account":             true,
	"impersonated_service_account": true,
}

// DefaultCredentialsPath returns ~/.gsuites/credentials.json.
func DefaultCredentialsPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, CredentialsFileName), nil
}

// LoadCredential reads a credential JSON file.
func LoadCredential(path string) (*domain.Credential, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	cred, err := ParseCredential(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cred, nil
}

// ParseCredential decodes either a typed Google credential file or a
// token file in the oauth2client layout (access_token, refresh_token,
// client_id, client_secret, token_uri, token_expiry). OAuth client secret
// files carry no token and are rejected; obtaining consent is left to
// other tools.
func ParseCredential(data []byte) (*domain.Credential, error) {
	var probe struct {
		Type      string          `json:"type"`
		Installed json.RawMessage `json:"installed"`
		Web       json.RawMessage `json:"web"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}

	if typedCredentialKinds[probe.Type] {
		return &domain.Credential{Raw: data}, nil
	}
	if probe.Type != "" {
		return nil, fmt.Errorf("credential type %q: %w", probe.Type, domain.ErrInvalidInput)
	}
	if probe.Installed != nil || probe.Web != nil {
		return nil, fmt.Errorf("client secrets file has no token: %w", domain.ErrUnauthorized)
	}

	var cred domain.Credential
	if err := json.Unmarshal(data, &cred); err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}
	if !cred.IsAuthenticated() {
		return nil, fmt.Errorf("credential has no usable token: %w", domain.ErrUnauthorized)
	}
	return &cred, nil
}
