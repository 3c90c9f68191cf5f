package memory

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/custodia-labs/gsuites/internal/core/domain"
	"github.com/custodia-labs/gsuites/internal/core/ports/driven"
)

// Ensure CalendarStore implements the interface.
var _ driven.CalendarClient = (*CalendarStore)(nil)

// CalendarStore is an in-memory implementation of driven.CalendarClient.
type CalendarStore struct {
	mu        sync.RWMutex
	calendars []domain.Calendar
	events    map[string][]domain.Event
	nextID    int
	pageSize  int
}

// NewCalendarStore creates a new in-memory calendar store returning at most
// pageSize items per page.
func NewCalendarStore(pageSize int) *CalendarStore {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &CalendarStore{
		events:   make(map[string][]domain.Event),
		pageSize: pageSize,
	}
}

// AddCalendar stores a calendar list entry.
func (s *CalendarStore) AddCalendar(c domain.Calendar) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calendars = append(s.calendars, c)
	if _, ok := s.events[c.ID]; !ok {
		s.events[c.ID] = nil
	}
}

// Events returns a copy of every event of a calendar.
func (s *CalendarStore) Events(calendarID string) []domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.events[calendarID])
}

// ListCalendars returns one page of the calendar list.
func (s *CalendarStore) ListCalendars(_ context.Context, cursor string) (domain.Page[domain.Calendar], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return pageOf(s.calendars, cursor, s.pageSize)
}

// ListEvents returns one page of events whose summary, description or
// location contains query, ignoring case.
func (s *CalendarStore) ListEvents(
	_ context.Context, calendarID, query, cursor string,
) (domain.Page[domain.Event], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events, ok := s.events[calendarID]
	if !ok {
		return domain.Page[domain.Event]{}, fmt.Errorf("calendar %s: %w", calendarID, domain.ErrNotFound)
	}
	q := strings.ToLower(query)
	var matches []domain.Event
	for _, e := range events {
		text := strings.ToLower(e.Summary + "\n" + e.Description + "\n" + e.Location)
		if strings.Contains(text, q) {
			matches = append(matches, e)
		}
	}
	return pageOf(matches, cursor, s.pageSize)
}

// InsertEvent stores an event, assigning an ID when it has none. A
// duplicate ID is rejected with domain.ErrInvalidInput.
func (s *CalendarStore) InsertEvent(_ context.Context, calendarID string, event domain.Event) (*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	events, ok := s.events[calendarID]
	if !ok {
		return nil, fmt.Errorf("calendar %s: %w", calendarID, domain.ErrNotFound)
	}
	if event.ID == "" {
		s.nextID++
		event.ID = "evt" + strconv.Itoa(s.nextID)
	} else if indexOfEvent(events, event.ID) >= 0 {
		return nil, fmt.Errorf("event %s already exists: %w", event.ID, domain.ErrInvalidInput)
	}
	if event.Status == "" {
		event.Status = "confirmed"
	}
	event.Attendees = slices.Clone(event.Attendees)
	s.events[calendarID] = append(events, event)
	return &event, nil
}

// UpdateEvent replaces a stored event.
func (s *CalendarStore) UpdateEvent(
	_ context.Context, calendarID, eventID string, event domain.Event,
) (*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOfEvent(s.events[calendarID], eventID)
	if i < 0 {
		return nil, fmt.Errorf("event %s: %w", eventID, domain.ErrNotFound)
	}
	event.ID = eventID
	event.Attendees = slices.Clone(event.Attendees)
	s.events[calendarID][i] = event
	return &event, nil
}

// DeleteEvent removes a stored event.
func (s *CalendarStore) DeleteEvent(_ context.Context, calendarID, eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := s.events[calendarID]
	i := indexOfEvent(events, eventID)
	if i < 0 {
		return fmt.Errorf("event %s: %w", eventID, domain.ErrNotFound)
	}
	s.events[calendarID] = slices.Delete(events, i, i+1)
	return nil
}

func indexOfEvent(events []domain.Event, id string) int {
	return slices.IndexFunc(events, func(e domain.Event) bool { return e.ID == id })
}
