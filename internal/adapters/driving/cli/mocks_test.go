package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/gsuites/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/gsuites/internal/core/domain"
	"github.com/custodia-labs/gsuites/internal/core/services"
)

// testEnv holds the in-memory backends behind the injected services.
type testEnv struct {
	files     *memory.ResourceStore
	mailbox   *memory.MailStore
	calendars *memory.CalendarStore
	config    *memory.ConfigStore
}

// setupTestServices injects memory-backed services and returns a cleanup
// that restores package state.
func setupTestServices() (*testEnv, func()) {
	env := &testEnv{
		files:     memory.NewResourceStore(2),
		mailbox:   memory.NewMailStore(2),
		calendars: memory.NewCalendarStore(2),
		config:    memory.NewConfigStore(),
	}

	env.mailbox.AddLabel(domain.Label{ID: "INBOX", Name: "INBOX", Type: "system"})
	env.mailbox.AddLabel(domain.Label{ID: "Label_7", Name: "Receipts", Type: "user"})
	env.mailbox.AddMessage(domain.Message{
		ID: "m1", ThreadID: "t1", LabelIDs: []string{"INBOX"}, Snippet: "Your invoice",
		Headers: map[string]string{"From": "billing@example.com", "Subject": "Invoice 42", "Date": "Mon, 19 Oct 2026"},
		Raw:     []byte("Subject: Invoice 42\r\n\r\nTotal: 10 EUR"),
	})
	env.mailbox.AddMessage(domain.Message{
		ID: "m2", ThreadID: "t2", LabelIDs: []string{"INBOX"}, Snippet: "Lunch?",
		Headers: map[string]string{"From": "ana@example.com", "Subject": "Lunch"},
	})

	env.calendars.AddCalendar(domain.Calendar{ID: "primary", Summary: "me@example.com", Primary: true})
	env.calendars.AddCalendar(domain.Calendar{ID: "team@group", Summary: "Team"})

	driveService = services.NewDriveService(env.files, services.DriveOptions{})
	mailService = services.NewMailService(env.mailbox)
	calendarService = services.NewCalendarService(env.calendars, services.CalendarOptions{})
	configStore = env.config

	origTerminal := stdoutIsTerminal
	stdoutIsTerminal = func() bool { return false }

	return env, func() {
		driveService = nil
		mailService = nil
		calendarService = nil
		configStore = nil
		wiring = Wiring{}
		stdoutIsTerminal = origTerminal
		resetFlags()
	}
}

// resetFlags restores flag variables, which cobra keeps between executions.
func resetFlags() {
	verbose = false
	configDir = ""
	credentialsPath = ""
	outputFormat = ""
	driveFields = nil
	driveLimit = 0
	gmailLimit = 0
	gmailLabelIDs = nil
	gmailIncludeSpamTrash = false
	gmailIDsOnly = false
	gmailFormat = domain.MessageFormatFull
	calendarLimit = 0
	eventInput = domain.Event{}
	mcpAddr = ""

	var walk func(*cobra.Command)
	walk = func(c *cobra.Command) {
		c.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
		for _, sub := range c.Commands() {
			walk(sub)
		}
	}
	walk(rootCmd)
}

// execute runs the root command with args and returns the combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}
