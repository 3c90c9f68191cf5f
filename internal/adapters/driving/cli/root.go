// Package cli implements the gsuites command line with cobra.
// Commands call the driving ports; main supplies them through Wiring.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/gsuites/internal/core/ports/driven"
	"github.com/custodia-labs/gsuites/internal/core/ports/driving"
	"github.com/custodia-labs/gsuites/internal/logger"
)

// Environment variables consulted when the matching flag is not set.
const (
	EnvConfigDir   = "GSUITES_CONFIG_DIR"
	EnvCredentials = "GSUITES_CREDENTIALS"
)

// KeyCredentialsPath is the config key naming the credential file.
const KeyCredentialsPath = "credentials.path"

var version = "dev"

var (
	verbose         bool
	configDir       string
	credentialsPath string
	outputFormat    string
)

// Services are the Google-backed driving ports.
type Services struct {
	Drive    driving.DriveService
	Mail     driving.MailService
	Calendar driving.CalendarService
}

// Wiring builds stores and services once flags are parsed.
type Wiring struct {
	// OpenConfig opens the config store in dir ("" for the default).
	OpenConfig func(dir string) (driven.ConfigStore, error)
	// Connect loads credentials and builds the Google services.
	// credentialsPath is "" when neither flag, env nor config names one.
	Connect func(ctx context.Context, cfg driven.ConfigStore, credentialsPath string) (*Services, error)
}

var (
	wiring          Wiring
	configStore     driven.ConfigStore
	driveService    driving.DriveService
	mailService     driving.MailService
	calendarService driving.CalendarService
)

var rootCmd = &cobra.Command{
	Use:   "gsuites",
	Short: "Work with Google Drive, Gmail and Calendar",
	Long: `gsuites wraps Google Drive, Gmail and Calendar with pagination-aware,
idempotent helpers: nested folders are created only when missing, uploads
update an existing file in place, and listings stream every page.

Credentials are read from --credentials, $GSUITES_CREDENTIALS, the
credentials.path config key, or ~/.gsuites/credentials.json.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "trace API calls to stderr")
	flags.StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.gsuites)")
	flags.StringVar(&credentialsPath, "credentials", "", "credential JSON file")
	flags.StringVarP(&outputFormat, "output", "o", "",
		"output format: table, json or yaml (default table on a terminal, json otherwise)")
}

// Execute runs the root command with the given build version and wiring.
func Execute(ctx context.Context, buildVersion string, w Wiring) error {
	version = buildVersion
	wiring = w
	return rootCmd.ExecuteContext(ctx)
}

func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if _, err := resolveFormat(); err != nil {
		return err
	}

	if configStore == nil && wiring.OpenConfig != nil {
		dir := configDir
		if dir == "" {
			dir = os.Getenv(EnvConfigDir)
		}
		store, err := wiring.OpenConfig(dir)
		if err != nil {
			return fmt.Errorf("open config: %w", err)
		}
		configStore = store
		logger.Debug("config: %s", store.Path())
	}
	return nil
}

// resolveCredentialsPath applies flag, environment and config precedence.
func resolveCredentialsPath() string {
	if credentialsPath != "" {
		return credentialsPath
	}
	if env := os.Getenv(EnvCredentials); env != "" {
		return env
	}
	if configStore != nil {
		return configStore.GetString(KeyCredentialsPath)
	}
	return ""
}

// connect builds the Google services on first use. Services already set,
// for example by tests, are kept.
func connect(cmd *cobra.Command) error {
	if driveService != nil && mailService != nil && calendarService != nil {
		return nil
	}
	if wiring.Connect == nil {
		return errors.New("google services not configured")
	}

	logger.Section("Connect")
	svcs, err := wiring.Connect(cmd.Context(), configStore, resolveCredentialsPath())
	if err != nil {
		return err
	}
	if driveService == nil {
		driveService = svcs.Drive
	}
	if mailService == nil {
		mailService = svcs.Mail
	}
	if calendarService == nil {
		calendarService = svcs.Calendar
	}
	return nil
}

func requireDrive(cmd *cobra.Command) (driving.DriveService, error) {
	if driveService == nil {
		if err := connect(cmd); err != nil {
			return nil, err
		}
	}
	if driveService == nil {
		return nil, errors.New("drive service not configured")
	}
	return driveService, nil
}

func requireMail(cmd *cobra.Command) (driving.MailService, error) {
	if mailService == nil {
		if err := connect(cmd); err != nil {
			return nil, err
		}
	}
	if mailService == nil {
		return nil, errors.New("mail service not configured")
	}
	return mailService, nil
}

func requireCalendar(cmd *cobra.Command) (driving.CalendarService, error) {
	if calendarService == nil {
		if err := connect(cmd); err != nil {
			return nil, err
		}
	}
	if calendarService == nil {
		return nil, errors.New("calendar service not configured")
	}
	return calendarService, nil
}
