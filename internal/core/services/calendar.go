package services

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/gsuites/internal/core/domain"
	"github.com/custodia-labs/gsuites/internal/core/ports/driven"
	"github.com/custodia-labs/gsuites/internal/core/ports/driving"
)

// Ensure CalendarService implements the interface.
var _ driving.CalendarService = (*CalendarService)(nil)

// CalendarOptions configures a CalendarService.
type CalendarOptions struct {
	// AssignEventIDs gives new events a client-generated ID when they have
	// none, so a repeated insert of the same event fails with a conflict
	// instead of creating a duplicate.
	AssignEventIDs bool
}

// CalendarService implements calendaring operations over a calendar client.
type CalendarService struct {
	client driven.CalendarClient
	opts   CalendarOptions
}

// NewCalendarService creates a new calendar service.
func NewCalendarService(client driven.CalendarClient, opts CalendarOptions) *CalendarService {
	return &CalendarService{client: client, opts: opts}
}

// Calendars lazily enumerates the user's calendar list.
func (s *CalendarService) Calendars(ctx context.Context) iter.Seq2[domain.Calendar, error] {
	return Paginate(ctx, func(ctx context.Context, cursor string) (domain.Page[domain.Calendar], error) {
		return s.client.ListCalendars(ctx, cursor)
	})
}

// FindCalendar returns the first calendar whose summary equals summary.
// Pages after the match are not fetched.
func (s *CalendarService) FindCalendar(ctx context.Context, summary string) (*domain.Calendar, error) {
	for cal, err := range s.Calendars(ctx) {
		if err != nil {
			return nil, fmt.Errorf("list calendars: %w", err)
		}
		if cal.Summary == summary {
			return &cal, nil
		}
	}
	return nil, fmt.Errorf("calendar %q: %w", summary, domain.ErrNotFound)
}

// FindEvents lazily enumerates events of calendarID matching query.
func (s *CalendarService) FindEvents(ctx context.Context, calendarID, query string) iter.Seq2[domain.Event, error] {
	return Paginate(ctx, func(ctx context.Context, cursor string) (domain.Page[domain.Event], error) {
		return s.client.ListEvents(ctx, calendarID, query, cursor)
	})
}

// AddEvent inserts an event.
func (s *CalendarService) AddEvent(ctx context.Context, calendarID string, event domain.Event) (*domain.Event, error) {
	if calendarID == "" {
		return nil, domain.ErrInvalidInput
	}
	if event.ID == "" && s.opts.AssignEventIDs {
		event.ID = NewEventID()
	}
	return s.client.InsertEvent(ctx, calendarID, event)
}

// UpdateEvent replaces an event.
func (s *CalendarService) UpdateEvent(
	ctx context.Context, calendarID, eventID string, event domain.Event,
) (*domain.Event, error) {
	if calendarID == "" || eventID == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.client.UpdateEvent(ctx, calendarID, eventID, event)
}

// DeleteEvent removes an event.
func (s *CalendarService) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	if calendarID == "" || eventID == "" {
		return domain.ErrInvalidInput
	}
	return s.client.DeleteEvent(ctx, calendarID, eventID)
}

// NewEventID returns a random event identifier. Calendar IDs are limited to
// the base32hex alphabet; a dash-free UUID is lowercase hex, a subset of it.
func NewEventID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
