// Package domain defines the core entities for pacer.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Cadence: Seconds of dwell time per page, bounded to [MinCadence, MaxCadence]
//   - PresentationState: The host viewer's tri-state full-screen mode
//   - AdvanceState: The auto-advance session state (Idle, PendingStart, Running)
//   - Document: A paged document shown by the viewer
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
