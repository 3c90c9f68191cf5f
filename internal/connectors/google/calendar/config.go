package calendar

import "github.com/custodia-labs/gsuites/internal/core/ports/driven"

// Configuration keys read by ParseConfig.
const (
	KeyPageSize       = "calendar.page_size"
	KeyAssignEventIDs = "calendar.assign_event_ids"
)

// Config holds Google Calendar connector configuration.
type Config struct {
	// PageSize is the page size for calendar list and event requests.
	PageSize int64
	// SingleEvents expands recurring events into instances when listing.
	SingleEvents bool
	// AssignEventIDs gives inserted events a client-generated ID.
	AssignEventIDs bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		PageSize:     250,
		SingleEvents: true,
	}
}

// ParseConfig reads Calendar settings from the config store.
func ParseConfig(store driven.ConfigStore) *Config {
	cfg := DefaultConfig()
	if store == nil {
		return cfg
	}

	// Calendar caps maxResults at 2500 for events and 250 for the calendar list.
	if n := store.GetInt(KeyPageSize); n > 0 && n <= 250 {
		cfg.PageSize = int64(n)
	}
	cfg.AssignEventIDs = store.GetBool(KeyAssignEventIDs)

	return cfg
}
