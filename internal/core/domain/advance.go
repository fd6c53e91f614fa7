package domain

// AdvanceState is the state of the auto-advance session.
type AdvanceState string

// Auto-advance session states.
const (
	// AdvanceIdle means no timer exists. Initial and terminal state.
	AdvanceIdle AdvanceState = "idle"

	// AdvancePendingStart means a cadence was confirmed and the host was
	// asked to enter full-screen, but has not confirmed yet.
	AdvancePendingStart AdvanceState = "pending_start"

	// AdvanceRunning means exactly one timer is alive and pages advance
	// every Cadence seconds.
	AdvanceRunning AdvanceState = "running"
)

// IsActive returns true if the session is running or about to run.
func (s AdvanceState) IsActive() bool {
	return s == AdvancePendingStart || s == AdvanceRunning
}

// String returns the string representation.
func (s AdvanceState) String() string {
	return string(s)
}

// Description returns a human-readable label for status displays.
func (s AdvanceState) Description() string {
	switch s {
	case AdvanceIdle:
		return "Off"
	case AdvancePendingStart:
		return "Waiting for full-screen"
	case AdvanceRunning:
		return "Auto-advancing"
	default:
		return "Unknown"
	}
}

// AdvanceSnapshot is a read-only view of the auto-advance session.
type AdvanceSnapshot struct {
	// State is the current session state.
	State AdvanceState

	// Cadence is the committed dwell time per page.
	Cadence Cadence

	// SessionID identifies the current session. Empty while Idle.
	SessionID string

	// Ticks counts timer firings in the current session.
	Ticks int

	// Advanced counts next-page commands issued in the current session.
	Advanced int
}
