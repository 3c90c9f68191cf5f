// Package google provides shared infrastructure for the Google API connectors.
//
// This package contains common utilities used by the drive, gmail and
// calendar clients including:
//   - Token source construction from a domain.Credential
//   - Service factories for creating Google API clients
//   - Classification of googleapi errors into domain.TransportError
//
// # Usage
//
// Credentials are converted once into an oauth2.TokenSource that every
// service factory receives:
//
//	ts, err := google.NewTokenSource(ctx, cred, google.DefaultScopes...)
//	svc, err := google.NewDriveService(ctx, ts)
//
// # OAuth2 Scopes
//
// The default scopes grant read/write access to the three surfaces:
//   - https://www.googleapis.com/auth/drive
//   - https://www.googleapis.com/auth/gmail.modify
//   - https://www.googleapis.com/auth/calendar
//
// No consent flow is run here. Credentials must already carry an access or
// refresh token.
package google
