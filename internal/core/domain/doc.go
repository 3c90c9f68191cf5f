// Package domain defines the core entities for gsuites.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Resource: A record returned by or sent to a remote API (file, folder)
//   - Page: One page of a cursor-paginated listing
//   - Credential: The caller-owned token bundle handed to each service
//   - Message, Label: Gmail entities
//   - Calendar, Event: Calendar entities
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
