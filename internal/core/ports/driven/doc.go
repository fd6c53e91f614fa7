// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - Viewer: The host document viewer (page queries, full-screen, next page)
//   - Clock: Timers for the auto-advance cadence
//   - ConfigStore: Application configuration
//   - DocumentLoader: Reads a document file into pages
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - DocumentWatcher: Reloads the document on change. Without it the page
//     count is fixed at load time.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
