package gmail

import (
	"strings"

	"github.com/custodia-labs/gsuites/internal/core/ports/driven"
)

// Configuration keys read by ParseConfig.
const (
	KeyUserID           = "gmail.user_id"
	KeyPageSize         = "gmail.page_size"
	KeyIncludeSpamTrash = "gmail.include_spam_trash"
)

// DefaultUserID addresses the authenticated user's own mailbox.
const DefaultUserID = "me"

// Config holds Gmail connector configuration.
type Config struct {
	// UserID is the mailbox to access, "me" or a delegated address.
	UserID string
	// PageSize is the default page size for message searches.
	PageSize int64
	// IncludeSpamTrash includes spam and trash in searches by default.
	IncludeSpamTrash bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		UserID:   DefaultUserID,
		PageSize: 100,
	}
}

// ParseConfig reads Gmail settings from the config store.
func ParseConfig(store driven.ConfigStore) *Config {
	cfg := DefaultConfig()
	if store == nil {
		return cfg
	}

	if val := strings.TrimSpace(store.GetString(KeyUserID)); val != "" {
		cfg.UserID = val
	}
	// Gmail caps maxResults at 500.
	if n := store.GetInt(KeyPageSize); n > 0 && n <= 500 {
		cfg.PageSize = int64(n)
	}
	cfg.IncludeSpamTrash = store.GetBool(KeyIncludeSpamTrash)

	return cfg
}
