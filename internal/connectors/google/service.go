package google

import (
	"context"

	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// DefaultScopes are requested for credentials that do not carry their own.
var DefaultScopes = []string{
	drive.DriveScope,
	gmail.GmailModifyScope,
	calendar.CalendarScope,
}

// NewGmailService creates a Gmail API service using the provided TokenSource.
// Extra options (endpoint, HTTP client) are applied after the token source.
func NewGmailService(ctx context.Context, ts oauth2.TokenSource, opts ...option.ClientOption) (*gmail.Service, error) {
	return gmail.NewService(ctx, withTokenSource(ts, opts)...)
}

// NewDriveService creates a Google Drive API service using the provided TokenSource.
func NewDriveService(ctx context.Context, ts oauth2.TokenSource, opts ...option.ClientOption) (*drive.Service, error) {
	return drive.NewService(ctx, withTokenSource(ts, opts)...)
}

// NewCalendarService creates a Google Calendar API service using the provided TokenSource.
func NewCalendarService(
	ctx context.Context, ts oauth2.TokenSource, opts ...option.ClientOption,
) (*calendar.Service, error) {
	return calendar.NewService(ctx, withTokenSource(ts, opts)...)
}

func withTokenSource(ts oauth2.TokenSource, opts []option.ClientOption) []option.ClientOption {
	all := make([]option.ClientOption, 0, len(opts)+1)
	if ts != nil {
		all = append(all, option.WithTokenSource(ts))
	}
	return append(all, opts...)
}
