// Package mcp provides an MCP (Model Context Protocol) server adapter for gsuites.
// It lets AI assistants browse and organise Drive, search and label Gmail,
// and read and schedule Calendar events.
package mcp

import "errors"

// ErrMissingDriveService is returned when the drive service is not provided.
var ErrMissingDriveService = errors.New("mcp: drive service is required")
