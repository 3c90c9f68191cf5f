package main

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"

	"github.com/custodia-labs/gsuites/internal/adapters/driven/config/file"
	"github.com/custodia-labs/gsuites/internal/adapters/driving/cli"
	"github.com/custodia-labs/gsuites/internal/connectors/google"
	"github.com/custodia-labs/gsuites/internal/connectors/google/calendar"
	"github.com/custodia-labs/gsuites/internal/connectors/google/drive"
	"github.com/custodia-labs/gsuites/internal/connectors/google/gmail"
	"github.com/custodia-labs/gsuites/internal/core/ports/driven"
	"github.com/custodia-labs/gsuites/internal/core/services"
	"github.com/custodia-labs/gsuites/internal/logger"
)

func openConfig(dir string) (driven.ConfigStore, error) {
	store, err := file.NewConfigStore(dir)
	if err != nil {
		return nil, err
	}
	return store, nil
}

// connect loads the credential file and builds the Google-backed services.
// An empty credentialsPath means ~/.gsuites/credentials.json.
func connect(ctx context.Context, cfg driven.ConfigStore, credentialsPath string) (*cli.Services, error) {
	if credentialsPath == "" {
		path, err := file.DefaultCredentialsPath()
		if err != nil {
			return nil, err
		}
		credentialsPath = path
	}
	logger.Debug("credentials: %s", credentialsPath)

	cred, err := file.LoadCredential(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("load credentials: %w", err)
	}
	ts, err := google.NewTokenSource(ctx, cred, google.DefaultScopes...)
	if err != nil {
		return nil, fmt.Errorf("token source: %w", err)
	}
	return newServices(ctx, cfg, ts)
}

// newServices builds the three services over one token source.
func newServices(
	ctx context.Context, cfg driven.ConfigStore, ts oauth2.TokenSource, opts ...option.ClientOption,
) (*cli.Services, error) {
	driveAPI, err := google.NewDriveService(ctx, ts, opts...)
	if err != nil {
		return nil, fmt.Errorf("drive service: %w", err)
	}
	gmailAPI, err := google.NewGmailService(ctx, ts, opts...)
	if err != nil {
		return nil, fmt.Errorf("gmail service: %w", err)
	}
	calendarAPI, err := google.NewCalendarService(ctx, ts, opts...)
	if err != nil {
		return nil, fmt.Errorf("calendar service: %w", err)
	}

	driveCfg := drive.ParseConfig(cfg)
	calendarCfg := calendar.ParseConfig(cfg)

	return &cli.Services{
		Drive: services.NewDriveService(drive.NewClient(driveAPI, driveCfg), services.DriveOptions{
			RootID: driveCfg.RootID,
			Strict: driveCfg.Strict,
		}),
		Mail: services.NewMailService(gmail.NewClient(gmailAPI, gmail.ParseConfig(cfg))),
		Calendar: services.NewCalendarService(calendar.NewClient(calendarAPI, calendarCfg), services.CalendarOptions{
			AssignEventIDs: calendarCfg.AssignEventIDs,
		}),
	}, nil
}
