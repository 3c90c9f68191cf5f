package driven

import (
	"context"

	"github.com/custodia-labs/gsuites/internal/core/domain"
)

// CalendarClient gives page-level access to calendars and their events.
type CalendarClient interface {
	// ListCalendars returns one page of the user's calendar list.
	ListCalendars(ctx context.Context, cursor string) (domain.Page[domain.Calendar], error)

	// ListEvents returns one page of events matching a free-text query.
	ListEvents(ctx context.Context, calendarID, query, cursor string) (domain.Page[domain.Event], error)

	// InsertEvent creates an event. A non-empty event.ID is sent as the
	// client-chosen identifier.
	InsertEvent(ctx context.Context, calendarID string, event domain.Event) (*domain.Event, error)

	// UpdateEvent replaces an event.
	UpdateEvent(ctx context.Context, calendarID, eventID string, event domain.Event) (*domain.Event, error)

	// DeleteEvent removes an event.
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}
