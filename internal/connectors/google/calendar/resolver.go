package calendar

import (
	"net/url"

	"github.com/custodia-labs/gsuites/internal/core/domain"
)

// ResolveWebURL returns the browser URL of an event. Calendar reports an
// html link with an encoded event ID; without one the calendar's own view
// is returned.
func ResolveWebURL(calendarID string, event domain.Event) string {
	if event.HTMLLink != "" {
		return event.HTMLLink
	}
	if calendarID == "" {
		return ""
	}
	return "https://calendar.google.com/calendar/embed?src=" + url.QueryEscape(calendarID)
}
