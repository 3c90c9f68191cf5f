// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - ResourceClient: The remote resource client for hierarchical storage (Drive files)
//   - MailClient: Page-level access to a mailbox (Gmail)
//   - CalendarClient: Page-level access to calendars and events (Google Calendar)
//   - ConfigStore: Application configuration
//
// Every listing method returns a single page plus the cursor for the next
// one. Looping over pages is the job of core services, not of adapters.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
