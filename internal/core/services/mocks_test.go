package services

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/custodia-labs/gsuites/internal/core/domain"
	"github.com/custodia-labs/gsuites/internal/core/ports/driven"
)

// --- Shared test doubles for the services package ---

// call records one ResourceClient invocation.
type call struct {
	Op     string
	Query  string
	Cursor string
	ID     string
	Body   domain.Resource
}

// recordingClient wraps a ResourceClient and records every call.
// failCreate makes Create fail for bodies with that name.
type recordingClient struct {
	mu         sync.Mutex
	next       driven.ResourceClient
	calls      []call
	failCreate string
}

func newRecordingClient(next driven.ResourceClient) *recordingClient {
	return &recordingClient{next: next}
}

func (c *recordingClient) record(cl call) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, cl)
}

func (c *recordingClient) callsOf(op string) []call {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []call
	for _, cl := range c.calls {
		if cl.Op == op {
			out = append(out, cl)
		}
	}
	return out
}

func (c *recordingClient) List(
	ctx context.Context, kind driven.ResourceKind, query, cursor string, fields []string,
) (domain.Page[domain.Resource], error) {
	c.record(call{Op: "list", Query: query, Cursor: cursor})
	return c.next.List(ctx, kind, query, cursor, fields)
}

func (c *recordingClient) Create(
	ctx context.Context, kind driven.ResourceKind, body domain.Resource,
) (domain.Resource, error) {
	c.record(call{Op: "create", Body: body})
	if c.failCreate != "" && body.Name == c.failCreate {
		return domain.Resource{}, &domain.TransportError{Op: "files.create", StatusCode: 500, Err: errors.New("backend error")}
	}
	return c.next.Create(ctx, kind, body)
}

func (c *recordingClient) Update(
	ctx context.Context, kind driven.ResourceKind, id string, body domain.Resource,
) (domain.Resource, error) {
	c.record(call{Op: "update", ID: id, Body: body})
	return c.next.Update(ctx, kind, id, body)
}

func (c *recordingClient) Delete(ctx context.Context, kind driven.ResourceKind, id string) error {
	c.record(call{Op: "delete", ID: id})
	return c.next.Delete(ctx, kind, id)
}

func (c *recordingClient) Upload(
	ctx context.Context, kind driven.ResourceKind, id string, content io.Reader, mimeType string, body domain.Resource,
) (domain.Resource, error) {
	c.record(call{Op: "upload", ID: id, Body: body})
	return c.next.Upload(ctx, kind, id, content, mimeType, body)
}

// pageScript serves canned pages keyed by the cursor that requests them.
type pageScript[T any] struct {
	pages    map[string]domain.Page[T]
	errAt    map[string]error
	requests []string
}

func (s *pageScript[T]) fetch(_ context.Context, cursor string) (domain.Page[T], error) {
	s.requests = append(s.requests, cursor)
	if err, ok := s.errAt[cursor]; ok {
		return domain.Page[T]{}, err
	}
	page, ok := s.pages[cursor]
	if !ok {
		return domain.Page[T]{}, errors.New("unexpected cursor " + cursor)
	}
	return page, nil
}

// mockMailClient implements driven.MailClient for testing.
type mockMailClient struct {
	pages     pageScript[domain.Message]
	messages  map[string]domain.Message
	labels    []domain.Label
	labelsErr error
	modified  map[string][]string
	getCalls  []string
}

func (m *mockMailClient) ListMessages(
	ctx context.Context, _ string, cursor string, _ domain.SearchOptions,
) (domain.Page[domain.Message], error) {
	return m.pages.fetch(ctx, cursor)
}

func (m *mockMailClient) GetMessage(_ context.Context, id string, _ domain.MessageOptions) (*domain.Message, error) {
	m.getCalls = append(m.getCalls, id)
	msg, ok := m.messages[id]
	if !ok {
		return nil, &domain.TransportError{Op: "messages.get", StatusCode: 404, Kind: domain.ErrNotFound}
	}
	return &msg, nil
}

func (m *mockMailClient) ListLabels(_ context.Context) ([]domain.Label, error) {
	return m.labels, m.labelsErr
}

func (m *mockMailClient) ModifyLabels(
	_ context.Context, messageID string, add, _ []string,
) (*domain.Message, error) {
	if m.modified == nil {
		m.modified = make(map[string][]string)
	}
	m.modified[messageID] = append(m.modified[messageID], add...)
	return &domain.Message{ID: messageID, LabelIDs: m.modified[messageID]}, nil
}

// mockCalendarClient implements driven.CalendarClient for testing.
type mockCalendarClient struct {
	calendars pageScript[domain.Calendar]
	events    pageScript[domain.Event]
	inserted  []domain.Event
	updated   []domain.Event
	deleted   []string
}

func (m *mockCalendarClient) ListCalendars(ctx context.Context, cursor string) (domain.Page[domain.Calendar], error) {
	return m.calendars.fetch(ctx, cursor)
}

func (m *mockCalendarClient) ListEvents(
	ctx context.Context, _, _, cursor string,
) (domain.Page[domain.Event], error) {
	return m.events.fetch(ctx, cursor)
}

func (m *mockCalendarClient) InsertEvent(_ context.Context, _ string, event domain.Event) (*domain.Event, error) {
	m.inserted = append(m.inserted, event)
	if event.ID == "" {
		event.ID = "server-assigned"
	}
	return &event, nil
}

func (m *mockCalendarClient) UpdateEvent(
	_ context.Context, _, eventID string, event domain.Event,
) (*domain.Event, error) {
	event.ID = eventID
	m.updated = append(m.updated, event)
	return &event, nil
}

func (m *mockCalendarClient) DeleteEvent(_ context.Context, _, eventID string) error {
	m.deleted = append(m.deleted, eventID)
	return nil
}
