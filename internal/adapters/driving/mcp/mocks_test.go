package mcp

import (
	"context"
	"errors"
	"iter"

	"github.com/custodia-labs/gsuites/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/gsuites/internal/core/domain"
	"github.com/custodia-labs/gsuites/internal/core/ports/driving"
	"github.com/custodia-labs/gsuites/internal/core/services"
)

// testBackends are the in-memory stores behind testPorts.
type testBackends struct {
	files     *memory.ResourceStore
	mailbox   *memory.MailStore
	calendars *memory.CalendarStore
}

// testPorts returns memory-backed services for all three surfaces.
func testPorts() (*Ports, *testBackends) {
	b := &testBackends{
		files:     memory.NewResourceStore(2),
		mailbox:   memory.NewMailStore(2),
		calendars: memory.NewCalendarStore(2),
	}

	b.mailbox.AddLabel(domain.Label{ID: "Label_1", Name: "Receipts", Type: "user"})
	b.mailbox.AddMessage(domain.Message{
		ID: "m1", ThreadID: "t1", LabelIDs: []string{"INBOX"}, Snippet: "Your invoice",
		Headers: map[string]string{"From": "billing@example.com", "Subject": "Invoice 42", "X-Mailer": "x"},
	})
	b.mailbox.AddMessage(domain.Message{
		ID: "m2", ThreadID: "t2", LabelIDs: []string{"INBOX"}, Snippet: "Lunch?",
		Headers: map[string]string{"From": "ana@example.com", "Subject": "Lunch"},
	})

	b.calendars.AddCalendar(domain.Calendar{ID: "primary", Summary: "me@example.com", Primary: true})
	b.calendars.AddCalendar(domain.Calendar{ID: "team@group", Summary: "Team", TimeZone: "Europe/Berlin"})

	return &Ports{
		Drive:    services.NewDriveService(b.files, services.DriveOptions{}),
		Mail:     services.NewMailService(b.mailbox),
		Calendar: services.NewCalendarService(b.calendars, services.CalendarOptions{}),
	}, b
}

var errBackend = errors.New("backend unavailable")

// failingDriveService fails every operation with errBackend.
type failingDriveService struct{}

var _ driving.DriveService = failingDriveService{}

func (failingDriveService) ListFiles(context.Context, string, []string) iter.Seq2[domain.Resource, error] {
	return func(yield func(domain.Resource, error) bool) { yield(domain.Resource{}, errBackend) }
}

func (failingDriveService) FindFolder(context.Context, string) iter.Seq2[domain.Resource, error] {
	return func(yield func(domain.Resource, error) bool) { yield(domain.Resource{}, errBackend) }
}

func (failingDriveService) MakeDir(context.Context, string, string) (domain.Resource, error) {
	return domain.Resource{}, errBackend
}

func (failingDriveService) MakeDirs(context.Context, string) (domain.Resource, error) {
	return domain.Resource{}, errBackend
}

func (failingDriveService) UploadFile(context.Context, string, string) (domain.Resource, error) {
	return domain.Resource{}, errBackend
}

func (failingDriveService) Delete(context.Context, string) error {
	return errBackend
}
