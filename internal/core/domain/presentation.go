package domain

// PresentationState is the host viewer's full-screen mode.
type PresentationState int

// Presentation states reported by the host viewer.
const (
	// PresentationUnknown is reported before the host has settled on a mode.
	PresentationUnknown PresentationState = iota

	// PresentationNormal is the regular windowed mode with toolbars.
	PresentationNormal

	// PresentationFullscreen is the distraction-free mode in which
	// auto-advance is permitted to run.
	PresentationFullscreen
)

// IsFullscreen returns true for the target presentation state.
func (s PresentationState) IsFullscreen() bool {
	return s == PresentationFullscreen
}

// String returns the string representation.
func (s PresentationState) String() string {
	switch s {
	case PresentationUnknown:
		return "unknown"
	case PresentationNormal:
		return "normal"
	case PresentationFullscreen:
		return "fullscreen"
	default:
		return "invalid"
	}
}
