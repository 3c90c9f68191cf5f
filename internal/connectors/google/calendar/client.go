package calendar

import (
	"context"

	"google.golang.org/api/calendar/v3"

	"github.com/custodia-labs/gsuites/internal/connectors/google"
	"github.com/custodia-labs/gsuites/internal/core/domain"
	"github.com/custodia-labs/gsuites/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.CalendarClient = (*Client)(nil)

// Client implements driven.CalendarClient over the Calendar v3 API.
type Client struct {
	svc *calendar.Service
	cfg *Config
}

// NewClient creates a Calendar client. A nil cfg uses DefaultConfig.
func NewClient(svc *calendar.Service, cfg *Config) *Client {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Client{svc: svc, cfg: cfg}
}

// ListCalendars returns one page of the user's calendar list.
func (c *Client) ListCalendars(ctx context.Context, cursor string) (domain.Page[domain.Calendar], error) {
	call := c.svc.CalendarList.List().Context(ctx).MaxResults(c.cfg.PageSize)
	if cursor != "" {
		call = call.PageToken(cursor)
	}

	resp, err := call.Do()
	if err != nil {
		return domain.Page[domain.Calendar]{}, google.WrapError("calendarList.list", err)
	}

	page := domain.Page[domain.Calendar]{
		Items:      make([]domain.Calendar, 0, len(resp.Items)),
		NextCursor: resp.NextPageToken,
	}
	for _, entry := range resp.Items {
		page.Items = append(page.Items, calendarToDomain(entry))
	}
	return page, nil
}

// ListEvents returns one page of events matching a free-text query.
func (c *Client) ListEvents(
	ctx context.Context, calendarID, query, cursor string,
) (domain.Page[domain.Event], error) {
	call := c.svc.Events.List(calendarID).
		Context(ctx).
		MaxResults(c.cfg.PageSize).
		SingleEvents(c.cfg.SingleEvents)
	if query != "" {
		call = call.Q(query)
	}
	if cursor != "" {
		call = call.PageToken(cursor)
	}

	resp, err := call.Do()
	if err != nil {
		return domain.Page[domain.Event]{}, google.WrapError("events.list", err)
	}

	page := domain.Page[domain.Event]{
		Items:      make([]domain.Event, 0, len(resp.Items)),
		NextCursor: resp.NextPageToken,
	}
	for _, ev := range resp.Items {
		page.Items = append(page.Items, *eventToDomain(ev))
	}
	return page, nil
}

// InsertEvent creates an event.
func (c *Client) InsertEvent(ctx context.Context, calendarID string, event domain.Event) (*domain.Event, error) {
	created, err := c.svc.Events.Insert(calendarID, eventToAPI(event)).Context(ctx).Do()
	if err != nil {
		return nil, google.WrapError("events.insert", err)
	}
	return eventToDomain(created), nil
}

// UpdateEvent replaces an event.
func (c *Client) UpdateEvent(
	ctx context.Context, calendarID, eventID string, event domain.Event,
) (*domain.Event, error) {
	updated, err := c.svc.Events.Update(calendarID, eventID, eventToAPI(event)).Context(ctx).Do()
	if err != nil {
		return nil, google.WrapError("events.update", err)
	}
	return eventToDomain(updated), nil
}

// DeleteEvent removes an event.
func (c *Client) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	if err := c.svc.Events.Delete(calendarID, eventID).Context(ctx).Do(); err != nil {
		return google.WrapError("events.delete", err)
	}
	return nil
}
