package driving

import (
	"context"
	"iter"

	"github.com/custodia-labs/gsuites/internal/core/domain"
)

// CalendarService provides calendaring operations to external actors.
type CalendarService interface {
	// Calendars lazily enumerates the user's calendar list.
	Calendars(ctx context.Context) iter.Seq2[domain.Calendar, error]

	// FindCalendar returns the first calendar whose summary matches exactly.
	// Returns domain.ErrNotFound if none does.
	FindCalendar(ctx context.Context, summary string) (*domain.Calendar, error)

	// FindEvents lazily enumerates events of a calendar matching a free-text query.
	FindEvents(ctx context.Context, calendarID, query string) iter.Seq2[domain.Event, error]

	// AddEvent inserts an event.
	AddEvent(ctx context.Context, calendarID string, event domain.Event) (*domain.Event, error)

	// UpdateEvent replaces an event.
	UpdateEvent(ctx context.Context, calendarID, eventID string, event domain.Event) (*domain.Event, error)

	// DeleteEvent removes an event.
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}
