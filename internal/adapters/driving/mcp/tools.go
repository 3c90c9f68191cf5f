package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/gsuites/internal/connectors/google/calendar"
	"github.com/custodia-labs/gsuites/internal/connectors/google/drive"
	"github.com/custodia-labs/gsuites/internal/connectors/google/gmail"
	"github.com/custodia-labs/gsuites/internal/core/domain"
	"github.com/custodia-labs/gsuites/internal/core/services"
)

// Default result limits when a tool input gives none.
const (
	defaultFileLimit    = 100
	defaultMessageLimit = 20
	defaultEventLimit   = 50
)

// summaryHeaders are fetched for each message returned by gmail_search.
var summaryHeaders = []string{"From", "To", "Subject", "Date"}

// FileOutput is a Drive file or folder.
type FileOutput struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	MimeType     string   `json:"mime_type,omitempty"`
	Parents      []string `json:"parents,omitempty"`
	ModifiedTime string   `json:"modified_time,omitempty"`
	Size         int64    `json:"size,omitempty"`
	WebURL       string   `json:"web_url,omitempty"`
}

// FilesOutput is a list of Drive files.
type FilesOutput struct {
	Files []FileOutput `json:"files"`
	Count int          `json:"count"`
}

// DriveListInput is the input schema for the drive_list tool.
type DriveListInput struct {
	Query  string   `json:"query,omitempty" jsonschema:"Drive query, e.g. name contains 'report' and trashed = false"`
	Fields []string `json:"fields,omitempty" jsonschema:"file fields to return (default id and name)"`
	Limit  int      `json:"limit,omitempty" jsonschema:"maximum number of files to return (default 100)"`
}

// DriveFindFolderInput is the input schema for the drive_find_folder tool.
type DriveFindFolderInput struct {
	Name string `json:"name" jsonschema:"exact folder name"`
}

// DriveMakeDirsInput is the input schema for the drive_make_dirs tool.
type DriveMakeDirsInput struct {
	Path string `json:"path" jsonschema:"slash-delimited folder path from the Drive root, e.g. /projects/2026"`
}

// DriveUploadInput is the input schema for the drive_upload tool.
type DriveUploadInput struct {
	LocalPath  string `json:"local_path" jsonschema:"path of the file on this machine"`
	RemotePath string `json:"remote_path" jsonschema:"target path in Drive; missing folders are created"`
}

// MessageOutput is a Gmail message.
type MessageOutput struct {
	ID       string            `json:"id"`
	ThreadID string            `json:"thread_id,omitempty"`
	LabelIDs []string          `json:"label_ids,omitempty"`
	Snippet  string            `json:"snippet,omitempty"`
	Headers  map[string]string `json:"headers,omitempty"`
	WebURL   string            `json:"web_url"`
}

// MessagesOutput is a list of Gmail messages.
type MessagesOutput struct {
	Messages []MessageOutput `json:"messages"`
	Count    int             `json:"count"`
}

// GmailSearchInput is the input schema for the gmail_search tool.
type GmailSearchInput struct {
	Query            string   `json:"query" jsonschema:"Gmail search query, e.g. from:alice newer_than:7d"`
	Limit            int      `json:"limit,omitempty" jsonschema:"maximum number of messages to return (default 20)"`
	LabelIDs         []string `json:"label_ids,omitempty" jsonschema:"only messages carrying all of these label IDs"`
	IncludeSpamTrash bool     `json:"include_spam_trash,omitempty" jsonschema:"include messages from SPAM and TRASH"`
}

// GmailGetMessageInput is the input schema for the gmail_get_message tool.
type GmailGetMessageInput struct {
	ID string `json:"id" jsonschema:"message ID"`
}

// GmailAddLabelInput is the input schema for the gmail_add_label tool.
type GmailAddLabelInput struct {
	MessageID string `json:"message_id" jsonschema:"message ID"`
	Label     string `json:"label" jsonschema:"label name, e.g. Receipts"`
}

// CalendarOutput is a calendar list entry.
type CalendarOutput struct {
	ID       string `json:"id"`
	Summary  string `json:"summary"`
	TimeZone string `json:"time_zone,omitempty"`
	Primary  bool   `json:"primary,omitempty"`
}

// EventOutput is a calendar event.
type EventOutput struct {
	ID        string   `json:"id"`
	Summary   string   `json:"summary,omitempty"`
	Start     string   `json:"start,omitempty"`
	End       string   `json:"end,omitempty"`
	AllDay    bool     `json:"all_day,omitempty"`
	Location  string   `json:"location,omitempty"`
	Status    string   `json:"status,omitempty"`
	Attendees []string `json:"attendees,omitempty"`
	WebURL    string   `json:"web_url,omitempty"`
}

// EventsOutput is a list of calendar events.
type EventsOutput struct {
	Events []EventOutput `json:"events"`
	Count  int           `json:"count"`
}

// CalendarFindInput is the input schema for the calendar_find tool.
type CalendarFindInput struct {
	Summary string `json:"summary" jsonschema:"exact calendar summary (title)"`
}

// CalendarEventsInput is the input schema for the calendar_events tool.
type CalendarEventsInput struct {
	CalendarID string `json:"calendar_id" jsonschema:"calendar ID, or primary"`
	Query      string `json:"query,omitempty" jsonschema:"free text matched against event fields"`
	Limit      int    `json:"limit,omitempty" jsonschema:"maximum number of events to return (default 50)"`
}

// CalendarAddEventInput is the input schema for the calendar_add_event tool.
type CalendarAddEventInput struct {
	CalendarID  string   `json:"calendar_id" jsonschema:"calendar ID, or primary"`
	Summary     string   `json:"summary" jsonschema:"event title"`
	Start       string   `json:"start" jsonschema:"RFC 3339 date-time, or yyyy-mm-dd for all-day events"`
	End         string   `json:"end" jsonschema:"RFC 3339 date-time, or yyyy-mm-dd for all-day events"`
	AllDay      bool     `json:"all_day,omitempty" jsonschema:"start and end are dates"`
	Location    string   `json:"location,omitempty" jsonschema:"event location"`
	Description string   `json:"description,omitempty" jsonschema:"event description"`
	Attendees   []string `json:"attendees,omitempty" jsonschema:"attendee email addresses"`
}

func (s *Server) registerDriveTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "drive_list",
		Description: "List Google Drive files matching a Drive query",
	}, s.handleDriveList)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "drive_find_folder",
		Description: "Find Google Drive folders by exact name",
	}, s.handleDriveFindFolder)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "drive_make_dirs",
		Description: "Create every missing folder along a Drive path and return the last folder",
	}, s.handleDriveMakeDirs)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "drive_upload",
		Description: "Upload a local file to a Drive path, updating a same-named file in place",
	}, s.handleDriveUpload)
}

func (s *Server) registerMailTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "gmail_search",
		Description: "Search Gmail messages and return sender, subject and date",
	}, s.handleGmailSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "gmail_get_message",
		Description: "Fetch one Gmail message with all headers",
	}, s.handleGmailGetMessage)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "gmail_add_label",
		Description: "Apply an existing Gmail label to a message by label name",
	}, s.handleGmailAddLabel)
}

func (s *Server) registerCalendarTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "calendar_find",
		Description: "Find a calendar by its exact summary",
	}, s.handleCalendarFind)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "calendar_events",
		Description: "List events of a calendar, optionally filtered by free text",
	}, s.handleCalendarEvents)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "calendar_add_event",
		Description: "Add an event to a calendar",
	}, s.handleCalendarAddEvent)
}

func (s *Server) handleDriveList(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DriveListInput,
) (*mcp.CallToolResult, FilesOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultFileLimit
	}
	files, err := services.Collect(services.Take(s.ports.Drive.ListFiles(ctx, input.Query, input.Fields), limit))
	if err != nil {
		return nil, FilesOutput{}, err
	}
	return nil, toFilesOutput(files), nil
}

func (s *Server) handleDriveFindFolder(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DriveFindFolderInput,
) (*mcp.CallToolResult, FilesOutput, error) {
	if input.Name == "" {
		return nil, FilesOutput{}, domain.ErrInvalidInput
	}
	folders, err := services.Collect(services.Take(s.ports.Drive.FindFolder(ctx, input.Name), defaultFileLimit))
	if err != nil {
		return nil, FilesOutput{}, err
	}
	return nil, toFilesOutput(folders), nil
}

func (s *Server) handleDriveMakeDirs(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DriveMakeDirsInput,
) (*mcp.CallToolResult, FileOutput, error) {
	folder, err := s.ports.Drive.MakeDirs(ctx, input.Path)
	if err != nil {
		return nil, FileOutput{}, err
	}
	return nil, toFileOutput(folder), nil
}

func (s *Server) handleDriveUpload(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DriveUploadInput,
) (*mcp.CallToolResult, FileOutput, error) {
	file, err := s.ports.Drive.UploadFile(ctx, input.LocalPath, input.RemotePath)
	if err != nil {
		return nil, FileOutput{}, err
	}
	return nil, toFileOutput(file), nil
}

func (s *Server) handleGmailSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GmailSearchInput,
) (*mcp.CallToolResult, MessagesOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultMessageLimit
	}
	opts := domain.SearchOptions{LabelIDs: input.LabelIDs, IncludeSpamTrash: input.IncludeSpamTrash}
	hits, err := services.Collect(services.Take(s.ports.Mail.Search(ctx, input.Query, opts), limit))
	if err != nil {
		return nil, MessagesOutput{}, err
	}

	ids := make([]string, len(hits))
	for i := range hits {
		ids[i] = hits[i].ID
	}
	msgs, err := s.ports.Mail.GetMessages(ctx, ids, domain.MessageOptions{
		Format:          domain.MessageFormatMetadata,
		MetadataHeaders: summaryHeaders,
	})
	if err != nil {
		return nil, MessagesOutput{}, err
	}

	output := MessagesOutput{
		Messages: make([]MessageOutput, len(msgs)),
		Count:    len(msgs),
	}
	for i := range msgs {
		output.Messages[i] = toMessageOutput(&msgs[i])
	}
	return nil, output, nil
}

func (s *Server) handleGmailGetMessage(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GmailGetMessageInput,
) (*mcp.CallToolResult, MessageOutput, error) {
	msg, err := s.ports.Mail.GetMessage(ctx, input.ID, domain.MessageOptions{Format: domain.MessageFormatFull})
	if err != nil {
		return nil, MessageOutput{}, err
	}
	return nil, toMessageOutput(msg), nil
}

func (s *Server) handleGmailAddLabel(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GmailAddLabelInput,
) (*mcp.CallToolResult, MessageOutput, error) {
	msg, err := s.ports.Mail.AddLabel(ctx, input.MessageID, input.Label)
	if err != nil {
		return nil, MessageOutput{}, err
	}
	return nil, toMessageOutput(msg), nil
}

func (s *Server) handleCalendarFind(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CalendarFindInput,
) (*mcp.CallToolResult, CalendarOutput, error) {
	cal, err := s.ports.Calendar.FindCalendar(ctx, input.Summary)
	if err != nil {
		return nil, CalendarOutput{}, err
	}
	return nil, toCalendarOutput(cal), nil
}

func (s *Server) handleCalendarEvents(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CalendarEventsInput,
) (*mcp.CallToolResult, EventsOutput, error) {
	if input.CalendarID == "" {
		return nil, EventsOutput{}, domain.ErrInvalidInput
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultEventLimit
	}
	events, err := services.Collect(services.Take(
		s.ports.Calendar.FindEvents(ctx, input.CalendarID, input.Query), limit))
	if err != nil {
		return nil, EventsOutput{}, err
	}

	output := EventsOutput{
		Events: make([]EventOutput, len(events)),
		Count:  len(events),
	}
	for i := range events {
		output.Events[i] = toEventOutput(input.CalendarID, &events[i])
	}
	return nil, output, nil
}

func (s *Server) handleCalendarAddEvent(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CalendarAddEventInput,
) (*mcp.CallToolResult, EventOutput, error) {
	event, err := s.ports.Calendar.AddEvent(ctx, input.CalendarID, domain.Event{
		Summary:     input.Summary,
		Description: input.Description,
		Location:    input.Location,
		Start:       input.Start,
		End:         input.End,
		AllDay:      input.AllDay,
		Attendees:   input.Attendees,
	})
	if err != nil {
		return nil, EventOutput{}, err
	}
	return nil, toEventOutput(input.CalendarID, event), nil
}

func toFileOutput(r domain.Resource) FileOutput {
	return FileOutput{
		ID:           r.ID,
		Name:         r.Name,
		MimeType:     r.MimeType,
		Parents:      r.Parents,
		ModifiedTime: r.ModifiedTime,
		Size:         r.Size,
		WebURL:       drive.ResolveWebURL(r),
	}
}

func toFilesOutput(files []domain.Resource) FilesOutput {
	output := FilesOutput{
		Files: make([]FileOutput, len(files)),
		Count: len(files),
	}
	for i := range files {
		output.Files[i] = toFileOutput(files[i])
	}
	return output
}

func toMessageOutput(m *domain.Message) MessageOutput {
	return MessageOutput{
		ID:       m.ID,
		ThreadID: m.ThreadID,
		LabelIDs: m.LabelIDs,
		Snippet:  m.Snippet,
		Headers:  m.Headers,
		WebURL:   gmail.ResolveWebURL(m.ID),
	}
}

func toCalendarOutput(c *domain.Calendar) CalendarOutput {
	return CalendarOutput{
		ID:       c.ID,
		Summary:  c.Summary,
		TimeZone: c.TimeZone,
		Primary:  c.Primary,
	}
}

func toEventOutput(calendarID string, e *domain.Event) EventOutput {
	return EventOutput{
		ID:        e.ID,
		Summary:   e.Summary,
		Start:     e.Start,
		End:       e.End,
		AllDay:    e.AllDay,
		Location:  e.Location,
		Status:    e.Status,
		Attendees: e.Attendees,
		WebURL:    calendar.ResolveWebURL(calendarID, *e),
	}
}
