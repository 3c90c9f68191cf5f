package drive

import (
	"strings"

	"github.com/custodia-labs/gsuites/internal/core/domain"
	"github.com/custodia-labs/gsuites/internal/core/ports/driven"
)

// Configuration keys read by ParseConfig.
const (
	KeyRootID   = "drive.root_id"
	KeySpaces   = "drive.spaces"
	KeyPageSize = "drive.page_size"
	KeyStrict   = "drive.strict"
)

// Config holds Google Drive connector configuration.
type Config struct {
	// RootID is the folder remote paths are resolved from.
	RootID string
	// Spaces is a comma-separated list of spaces to query ("drive", "appDataFolder").
	Spaces string
	// PageSize is the page size for list requests.
	PageSize int64
	// Strict makes folder resolution fail on same-named duplicates.
	Strict bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		RootID:   domain.RootID,
		Spaces:   "drive",
		PageSize: 100,
	}
}

// ParseConfig reads Drive settings from the config store, falling back to
// defaults for unset or invalid values.
func ParseConfig(store driven.ConfigStore) *Config {
	cfg := DefaultConfig()
	if store == nil {
		return cfg
	}

	if val := strings.TrimSpace(store.GetString(KeyRootID)); val != "" {
		cfg.RootID = val
	}
	if val := strings.TrimSpace(store.GetString(KeySpaces)); val != "" {
		cfg.Spaces = val
	}
	// Drive caps pageSize at 1000.
	if n := store.GetInt(KeyPageSize); n > 0 && n <= 1000 {
		cfg.PageSize = int64(n)
	}
	cfg.Strict = store.GetBool(KeyStrict)

	return cfg
}
