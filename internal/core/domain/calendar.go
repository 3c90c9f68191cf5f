package domain

// Calendar is an entry of the user's calendar list.
type Calendar struct {
	ID          string `json:"id" yaml:"id"`
	Summary     string `json:"summary" yaml:"summary"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	TimeZone    string `json:"time_zone,omitempty" yaml:"time_zone,omitempty"`
	Primary     bool   `json:"primary,omitempty" yaml:"primary,omitempty"`
}

// Event is a calendar event. Start and End hold either an RFC 3339
// date-time or, for all-day events, a yyyy-mm-dd date.
type Event struct {
	ID               string   `json:"id,omitempty" yaml:"id,omitempty"`
	Summary          string   `json:"summary,omitempty" yaml:"summary,omitempty"`
	Description      string   `json:"description,omitempty" yaml:"description,omitempty"`
	Location         string   `json:"location,omitempty" yaml:"location,omitempty"`
	Start            string   `json:"start,omitempty" yaml:"start,omitempty"`
	End              string   `json:"end,omitempty" yaml:"end,omitempty"`
	AllDay           bool     `json:"all_day,omitempty" yaml:"all_day,omitempty"`
	TimeZone         string   `json:"time_zone,omitempty" yaml:"time_zone,omitempty"`
	Status           string   `json:"status,omitempty" yaml:"status,omitempty"`
	HTMLLink         string   `json:"html_link,omitempty" yaml:"html_link,omitempty"`
	RecurringEventID string   `json:"recurring_event_id,omitempty" yaml:"recurring_event_id,omitempty"`
	Organiser        string   `json:"organiser,omitempty" yaml:"organiser,omitempty"`
	Attendees        []string `json:"attendees,omitempty" yaml:"attendees,omitempty"`
}

// FindCalendar returns the first calendar whose summary matches exactly.
func FindCalendar(calendars []Calendar, summary string) (Calendar, bool) {
	for _, c := range calendars {
		if c.Summary == summary {
			return c, true
		}
	}
	return Calendar{}, false
}
