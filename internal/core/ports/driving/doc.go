// Package driving defines interfaces that external actors (CLI, MCP) use
// to interact with core services. These are the "driving" ports in hexagonal
// architecture terminology - they drive the application.
//
// Listing methods return iter.Seq2 sequences that fetch pages lazily as the
// caller ranges over them. Breaking out of the loop stops further fetches.
//
// Implementations of these interfaces live in internal/core/services.
package driving
