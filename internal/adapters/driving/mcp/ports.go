package mcp

import (
	"github.com/custodia-labs/gsuites/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Drive provides file storage operations.
	Drive driving.DriveService

	// Mail provides mailbox operations. Gmail tools are omitted when nil.
	Mail driving.MailService

	// Calendar provides calendaring operations. Calendar tools are omitted when nil.
	Calendar driving.CalendarService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Drive == nil {
		return ErrMissingDriveService
	}
	return nil
}
