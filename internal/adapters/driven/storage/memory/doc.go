// Package memory provides in-memory implementations of the driven ports.
// They stand in for Drive, Gmail and Calendar in tests and offline runs,
// paging results with numeric offset cursors.
package memory
