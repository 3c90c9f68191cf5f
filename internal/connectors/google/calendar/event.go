package calendar

import (
	"google.golang.org/api/calendar/v3"

	"github.com/custodia-labs/gsuites/internal/core/domain"
)

// eventToDomain converts a Google Calendar event.
func eventToDomain(event *calendar.Event) *domain.Event {
	if event == nil {
		return nil
	}
	start, allDay, tz := eventTime(event.Start)
	end, _, _ := eventTime(event.End)
	return &domain.Event{
		ID:               event.Id,
		Summary:          event.Summary,
		Description:      event.Description,
		Location:         event.Location,
		Start:            start,
		End:              end,
		AllDay:           allDay,
		TimeZone:         tz,
		Status:           event.Status,
		HTMLLink:         event.HtmlLink,
		RecurringEventID: event.RecurringEventId,
		Organiser:        getOrganiserEmail(event),
		Attendees:        attendeeEmails(event.Attendees),
	}
}

// eventToAPI builds an insert or update request body.
func eventToAPI(event domain.Event) *calendar.Event {
	out := &calendar.Event{
		Id:          event.ID,
		Summary:     event.Summary,
		Description: event.Description,
		Location:    event.Location,
		Status:      event.Status,
		Start:       apiTime(event.Start, event.AllDay, event.TimeZone),
		End:         apiTime(event.End, event.AllDay, event.TimeZone),
	}
	for _, email := range event.Attendees {
		out.Attendees = append(out.Attendees, &calendar.EventAttendee{Email: email})
	}
	return out
}

// eventTime extracts a start or end time. All-day events carry a date only.
func eventTime(t *calendar.EventDateTime) (value string, allDay bool, tz string) {
	if t == nil {
		return "", false, ""
	}
	if t.DateTime != "" {
		return t.DateTime, false, t.TimeZone
	}
	return t.Date, t.Date != "", t.TimeZone
}

func apiTime(value string, allDay bool, tz string) *calendar.EventDateTime {
	if value == "" {
		return nil
	}
	if allDay {
		return &calendar.EventDateTime{Date: value, TimeZone: tz}
	}
	return &calendar.EventDateTime{DateTime: value, TimeZone: tz}
}

func attendeeEmails(attendees []*calendar.EventAttendee) []string {
	if len(attendees) == 0 {
		return nil
	}
	emails := make([]string, 0, len(attendees))
	for _, a := range attendees {
		if a.Email != "" {
			emails = append(emails, a.Email)
		}
	}
	return emails
}

// getOrganiserEmail extracts the organiser email from an event.
func getOrganiserEmail(event *calendar.Event) string {
	if event.Organizer != nil { //nolint:misspell // Google API field name
		return event.Organizer.Email //nolint:misspell // Google API field name
	}
	return ""
}

func calendarToDomain(entry *calendar.CalendarListEntry) domain.Calendar {
	return domain.Calendar{
		ID:          entry.Id,
		Summary:     entry.Summary,
		Description: entry.Description,
		TimeZone:    entry.TimeZone,
		Primary:     entry.Primary,
	}
}
